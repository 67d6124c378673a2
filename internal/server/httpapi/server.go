// Package httpapi exposes the REST surface of the LifeTracker server:
// authentication, nutrition entries, activity summaries, and presigned image
// URLs. Routing uses gorilla/mux; every response body is JSON.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/lifetracker/internal/logging"
	"github.com/dmitrijs2005/lifetracker/internal/server/config"
	"github.com/dmitrijs2005/lifetracker/internal/server/models"
	"github.com/dmitrijs2005/lifetracker/internal/server/services"
)

// UserProvider is the account surface the API depends on.
type UserProvider interface {
	Register(ctx context.Context, req services.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email string, password string) (*models.User, error)
	FetchUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// NutritionProvider is the nutrition-entry surface the API depends on.
type NutritionProvider interface {
	Create(ctx context.Context, req services.CreateNutritionRequest, userID int64) (*models.Nutrition, error)
	FetchByID(ctx context.Context, id int64) (*models.Nutrition, error)
	ListForUser(ctx context.Context, userID int64) ([]*models.Nutrition, error)
}

// ActivityProvider is the summary-statistics surface the API depends on.
type ActivityProvider interface {
	SummaryStats(ctx context.Context, userID int64) (*services.ActivityStats, error)
}

// ImageProvider mints presigned URLs for the image object store.
type ImageProvider interface {
	GetPresignedPutUrl(ctx context.Context) (string, string, error)
	GetPresignedGetUrl(ctx context.Context, key string) (string, error)
}

// Server is the HTTP API server.
type Server struct {
	config    *config.Config
	logger    logging.Logger
	users     UserProvider
	nutrition NutritionProvider
	activity  ActivityProvider
	images    ImageProvider
}

// NewServer constructs a Server over the given services.
func NewServer(cfg *config.Config, logger logging.Logger,
	users UserProvider, nutrition NutritionProvider,
	activity ActivityProvider, images ImageProvider) *Server {
	return &Server{
		config:    cfg,
		logger:    logger,
		users:     users,
		nutrition: nutrition,
		activity:  activity,
		images:    images,
	}
}

// Router assembles the route table. Authentication is parsed for every
// request; routes that need a session enforce it per-route. The ambient
// middleware wraps the router itself so unmatched routes and CORS preflights
// pass through it too.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handlePing).Methods(http.MethodGet)

	r.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.Handle("/auth/me",
		s.requireAuthenticatedUser(http.HandlerFunc(s.handleMe))).Methods(http.MethodGet)

	r.Handle("/nutrition",
		s.requireAuthenticatedUser(http.HandlerFunc(s.handleListNutrition))).Methods(http.MethodGet)
	r.Handle("/nutrition",
		s.requireAuthenticatedUser(http.HandlerFunc(s.handleCreateNutrition))).Methods(http.MethodPost)
	r.Handle("/nutrition/image-upload",
		s.requireAuthenticatedUser(http.HandlerFunc(s.handleImageUpload))).Methods(http.MethodPost)
	r.Handle("/nutrition/image-download/{key:.+}",
		s.requireAuthenticatedUser(http.HandlerFunc(s.handleImageDownload))).Methods(http.MethodGet)
	r.Handle("/nutrition/{nutritionId}",
		s.requireAuthenticatedUser(s.authedUserOwnsNutrition(http.HandlerFunc(s.handleGetNutrition)))).Methods(http.MethodGet)

	r.Handle("/activity",
		s.requireAuthenticatedUser(http.HandlerFunc(s.handleActivity))).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.handleNotFound)

	var h http.Handler = r
	h = s.parseAuthorizationHeader(h)
	h = s.cors(h)
	h = s.logRequests(h)
	h = s.recoverPanic(h)
	h = s.requestID(h)
	return h
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.config.EndpointAddr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "starting http server", "addr", s.config.EndpointAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
