package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/ayush/blog-service/internal/models"
)

// Sessions is the session backend used for login cookies.
type Sessions interface {
	Create(ctx context.Context, userID int64) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

// Handler holds auth-related HTTP handlers.
type Handler struct {
	svc      *Service
	sessions Sessions
}

func NewHandler(svc *Service, sessions Sessions) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

// Register creates a new user.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body", "validation"))
		return
	}

	id, err := h.svc.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "user created successfully",
		"user_id": id,
	})
}

// Login authenticates a user and creates a session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body", "validation"))
		return
	}

	res, err := h.svc.Authenticate(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	sid, err := h.sessions.Create(r.Context(), res.UserID)
	if err != nil {
		log.Printf("session create: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("session creation failed", "internal"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionTTL / time.Second),
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "login successful",
		"user_id":  res.UserID,
		"username": res.Username,
	})
}

// Logout destroys the current session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookie)
	if err == nil {
		h.sessions.Delete(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me returns the currently authenticated user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int64)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody("not authenticated", "unauthorized"))
		return
	}

	user, err := h.svc.User(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorBody(msg, kind string) map[string]string {
	return map[string]string{"error": msg, "kind": kind}
}

// writeError maps domain errors onto HTTP status classes. Unclassified errors
// are store failures and surface as a generic 500 without leaking detail.
func writeError(w http.ResponseWriter, err error) {
	var status int
	var kind string
	switch {
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrMissingIdentifier), errors.Is(err, ErrMissingPassword):
		status, kind = http.StatusBadRequest, "validation"
	case errors.Is(err, models.ErrUserNotFound):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, ErrInvalidPassword):
		status, kind = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, models.ErrExistingUsername), errors.Is(err, models.ErrExistingEmail):
		status, kind = http.StatusConflict, "conflict"
	default:
		log.Printf("auth: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal server error", "internal"))
		return
	}
	writeJSON(w, status, errorBody(err.Error(), kind))
}
