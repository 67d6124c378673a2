package httpapi

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/lifetracker/internal/apierror"
	"github.com/dmitrijs2005/lifetracker/internal/server/auth"
	"github.com/dmitrijs2005/lifetracker/internal/server/models"
	"github.com/dmitrijs2005/lifetracker/internal/server/services"
)

// handlePing is the health probe.
func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"ping": "pong"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, apierror.NotFound(""))
}

// currentUser resolves the session claims into the stored account record.
func (s *Server) currentUser(r *http.Request) (*models.User, error) {
	claims := claimsFromContext(r.Context())
	return s.users.FetchUserByEmail(r.Context(), claims.Email)
}

func (s *Server) issueToken(email string) (string, error) {
	return auth.CreateToken(email, []byte(s.config.SecretKey), s.config.TokenValidityDuration)
}

type registerRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.users.Register(r.Context(), services.RegisterRequest{
		Email:     body.Email,
		Username:  body.Username,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Password:  body.Password,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := s.issueToken(user.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"token": token, "user": user})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	user, err := s.users.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := s.issueToken(user.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user.Sanitize()})
}

func (s *Server) handleListNutrition(w http.ResponseWriter, r *http.Request) {
	user, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	entries, err := s.nutrition.ListForUser(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"nutritions": entries})
}

// createNutritionRequest is the wire shape of a new entry; the client wraps
// it in a "nutrition" envelope.
type createNutritionRequest struct {
	Nutrition struct {
		Name      string     `json:"name"`
		Category  string     `json:"category"`
		Calories  int        `json:"calories"`
		ImageURL  string     `json:"image_url"`
		CreatedAt *time.Time `json:"created_at,omitempty"`
	} `json:"nutrition"`
}

func (s *Server) handleCreateNutrition(w http.ResponseWriter, r *http.Request) {
	user, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var body createNutritionRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, err)
		return
	}

	req := services.CreateNutritionRequest{
		Name:     body.Nutrition.Name,
		Category: body.Nutrition.Category,
		Calories: body.Nutrition.Calories,
		ImageURL: body.Nutrition.ImageURL,
	}
	if body.Nutrition.CreatedAt != nil {
		req.CreatedAt = sql.NullTime{Time: *body.Nutrition.CreatedAt, Valid: true}
	}

	entry, err := s.nutrition.Create(r.Context(), req, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"nutrition": entry})
}

// handleGetNutrition serves a single entry. The ownership guard already
// loaded and verified it.
func (s *Server) handleGetNutrition(w http.ResponseWriter, r *http.Request) {
	entry := nutritionFromContext(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"nutrition": entry})
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	user, err := s.currentUser(r)
	if err != nil {
		writeError(w, err)
		return
	}

	stats, err := s.activity.SummaryStats(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"stats": map[string]any{
			"nutrition": map[string]any{
				"calories": map[string]any{
					"perDay":      stats.PerDay,
					"perCategory": stats.PerCategory,
				},
			},
		},
	})
}

func (s *Server) handleImageUpload(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.images.GetPresignedPutUrl(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key, "url": url})
}

func (s *Server) handleImageDownload(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	url, err := s.images.GetPresignedGetUrl(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
