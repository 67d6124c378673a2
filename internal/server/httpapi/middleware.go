package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/lifetracker/internal/apierror"
	"github.com/dmitrijs2005/lifetracker/internal/common"
	"github.com/dmitrijs2005/lifetracker/internal/server/auth"
	"github.com/dmitrijs2005/lifetracker/internal/server/models"
)

type contextKey int

const (
	claimsContextKey contextKey = iota
	nutritionContextKey
	requestIDContextKey
)

// claimsFromContext returns the verified session claims, or nil when the
// request carried no usable token.
func claimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsContextKey).(*auth.Claims)
	return claims
}

// nutritionFromContext returns the entry stashed by the ownership guard.
func nutritionFromContext(ctx context.Context) *models.Nutrition {
	entry, _ := ctx.Value(nutritionContextKey).(*models.Nutrition)
	return entry
}

// requestIDFromContext returns the id assigned to this request.
func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// parseAuthorizationHeader extracts and verifies the bearer token. It never
// rejects a request: a missing, malformed, or invalid token just leaves the
// request anonymous, and per-route checks decide whether that matters.
func (s *Server) parseAuthorizationHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], common.BearerPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		claims := auth.ValidateToken(parts[1], []byte(s.config.SecretKey))
		if claims == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuthenticatedUser rejects anonymous requests with 401.
func (s *Server) requireAuthenticatedUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claimsFromContext(r.Context()) == nil {
			writeError(w, apierror.Unauthorized("Not logged in"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authedUserOwnsNutrition loads the entry named in the route and verifies the
// caller owns it. A missing entry is 404; someone else's entry is 403, so an
// id probe cannot distinguish "absent" from "not yours" without owning it.
// The loaded entry is stashed in the request context for the handler.
func (s *Server) authedUserOwnsNutrition(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(mux.Vars(r)["nutritionId"], 10, 64)
		if err != nil {
			writeError(w, apierror.NotFound(""))
			return
		}

		entry, err := s.nutrition.FetchByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}

		claims := claimsFromContext(r.Context())
		user, err := s.users.FetchUserByEmail(r.Context(), claims.Email)
		if err != nil {
			writeError(w, err)
			return
		}

		if entry.UserID != user.ID {
			writeError(w, apierror.Forbidden(""))
			return
		}

		ctx := context.WithValue(r.Context(), nutritionContextKey, entry)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestID tags every request with a unique id, echoed in the response.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"request_id", requestIDFromContext(r.Context()),
		)
	})
}

// cors allows the browser frontend, served from another origin, to call the
// API. Preflight requests are answered here and go no further.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				s.logger.Error(r.Context(), "panic while handling request",
					"panic", p, "path", r.URL.Path)
				writeError(w, common.ErrorInternal)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
