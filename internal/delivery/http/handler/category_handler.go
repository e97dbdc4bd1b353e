package handler

import (
	"errors"
	"net/http"
	"strings"

	"inkwell/internal/application/content"
	"inkwell/internal/domain/post"
)

type CategoryHandler struct {
	service content.Service
}

func NewCategoryHandler(service content.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// Categories handles GET /api/categories
func (h *CategoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	categories, err := h.service.ListCategories()
	if err != nil {
		SendError(w, "Failed to list categories", http.StatusInternalServerError)
		return
	}
	SendJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// CategoryBySlug handles GET /api/categories/{slug} and
// GET /api/categories/{slug}/posts.
func (h *CategoryHandler) CategoryBySlug(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/categories/")
	slug, action, _ := strings.Cut(rest, "/")
	if slug == "" {
		SendError(w, "Category slug is required", http.StatusBadRequest)
		return
	}

	switch action {
	case "":
		category, err := h.service.GetCategory(slug)
		if err != nil {
			SendError(w, "Category not found", http.StatusNotFound)
			return
		}
		SendJSON(w, http.StatusOK, map[string]any{"category": category})
	case "posts":
		posts, err := h.service.ListPostsByCategory(slug)
		if err != nil {
			if errors.Is(err, post.ErrCategoryNotFound) {
				SendError(w, "Category not found", http.StatusNotFound)
				return
			}
			SendError(w, "Failed to list posts", http.StatusInternalServerError)
			return
		}
		SendJSON(w, http.StatusOK, map[string]any{"posts": posts})
	default:
		SendError(w, "Not found", http.StatusNotFound)
	}
}
