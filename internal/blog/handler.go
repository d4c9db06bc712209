package blog

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ayush/blog-service/internal/models"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorBody(msg, kind string) map[string]string {
	return map[string]string{"error": msg, "kind": kind}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrMissingFields):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error(), "validation"))
	case errors.Is(err, models.ErrOwnerNotFound), errors.Is(err, models.ErrNoBlogs):
		writeJSON(w, http.StatusNotFound, errorBody(err.Error(), "not_found"))
	default:
		log.Printf("blog: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal server error", "internal"))
	}
}

// Handler holds blog HTTP handlers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create inserts a new blog for an existing user.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body", "validation"))
		return
	}

	id, err := h.svc.CreateBlog(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "blog created successfully",
		"blog_id": id,
	})
}

// List returns all blogs of the user in the URL.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid user id", "validation"))
		return
	}

	blogs, err := h.svc.ListBlogs(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"blogs": blogs})
}
