package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"inkwell/internal/application/content"
	"inkwell/internal/domain/post"
)

type PostHandler struct {
	service content.Service
}

func NewPostHandler(service content.Service) *PostHandler {
	return &PostHandler{service: service}
}

// Posts handles /api/posts (GET list, POST create).
func (h *PostHandler) Posts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w)
	case http.MethodPost:
		h.create(w, r)
	default:
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// PostBySlug handles /api/posts/{slug}, /api/posts/{slug}/like and
// /api/posts/{slug}/comments.
func (h *PostHandler) PostBySlug(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/posts/")
	slug, action, _ := strings.Cut(rest, "/")
	if slug == "" {
		SendError(w, "Post slug is required", http.StatusBadRequest)
		return
	}

	switch action {
	case "":
		switch r.Method {
		case http.MethodGet:
			h.get(w, slug)
		case http.MethodPut:
			h.update(w, r, slug)
		case http.MethodDelete:
			h.delete(w, r, slug)
		default:
			SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case "like":
		if r.Method != http.MethodPost {
			SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.like(w, slug)
	case "comments":
		if r.Method != http.MethodPost {
			SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.comment(w, r, slug)
	default:
		SendError(w, "Not found", http.StatusNotFound)
	}
}

func (h *PostHandler) list(w http.ResponseWriter) {
	posts, err := h.service.ListPosts()
	if err != nil {
		SendError(w, "Failed to list posts", http.StatusInternalServerError)
		return
	}
	SendJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (h *PostHandler) get(w http.ResponseWriter, slug string) {
	p, err := h.service.GetPost(slug)
	if err != nil {
		SendError(w, "Post not found", http.StatusNotFound)
		return
	}
	SendJSON(w, http.StatusOK, map[string]any{"post": p})
}

func (h *PostHandler) create(w http.ResponseWriter, r *http.Request) {
	a := GetAccountFromContext(r.Context())
	if a == nil {
		SendError(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	var req post.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.service.CreatePost(req, content.Author{Name: a.Name, Image: a.Image})
	if err != nil {
		switch {
		case errors.Is(err, post.ErrInvalidTitle), errors.Is(err, post.ErrInvalidContent):
			SendError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, post.ErrSlugTaken):
			SendError(w, "A post with this title already exists", http.StatusConflict)
		default:
			SendError(w, "Failed to create post", http.StatusInternalServerError)
		}
		return
	}

	SendJSON(w, http.StatusCreated, map[string]any{"post": p})
}

func (h *PostHandler) update(w http.ResponseWriter, r *http.Request, slug string) {
	if GetAccountFromContext(r.Context()) == nil {
		SendError(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	var req post.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.service.UpdatePost(slug, req)
	if err != nil {
		switch {
		case errors.Is(err, post.ErrNotFound):
			SendError(w, "Post not found", http.StatusNotFound)
		case errors.Is(err, post.ErrInvalidTitle):
			SendError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, post.ErrSlugTaken):
			SendError(w, "A post with this title already exists", http.StatusConflict)
		default:
			SendError(w, "Failed to update post", http.StatusInternalServerError)
		}
		return
	}

	SendJSON(w, http.StatusOK, map[string]any{"post": p})
}

func (h *PostHandler) delete(w http.ResponseWriter, r *http.Request, slug string) {
	if GetAccountFromContext(r.Context()) == nil {
		SendError(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	if err := h.service.DeletePost(slug); err != nil {
		if errors.Is(err, post.ErrNotFound) {
			SendError(w, "Post not found", http.StatusNotFound)
			return
		}
		SendError(w, "Failed to delete post", http.StatusInternalServerError)
		return
	}

	SendJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *PostHandler) like(w http.ResponseWriter, slug string) {
	p, err := h.service.LikePost(slug)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			SendError(w, "Post not found", http.StatusNotFound)
			return
		}
		SendError(w, "Failed to like post", http.StatusInternalServerError)
		return
	}
	SendJSON(w, http.StatusOK, map[string]any{"post": p})
}

func (h *PostHandler) comment(w http.ResponseWriter, r *http.Request, slug string) {
	a := GetAccountFromContext(r.Context())
	if a == nil {
		SendError(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	var req post.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		SendError(w, "Comment text is required", http.StatusBadRequest)
		return
	}

	p, err := h.service.AddComment(slug, req, content.Author{Name: a.Name, Image: a.Image})
	if err != nil {
		switch {
		case errors.Is(err, post.ErrNotFound):
			SendError(w, "Post not found", http.StatusNotFound)
		case errors.Is(err, post.ErrInvalidContent):
			SendError(w, "Comment text is required", http.StatusBadRequest)
		default:
			SendError(w, "Failed to add comment", http.StatusInternalServerError)
		}
		return
	}

	SendJSON(w, http.StatusOK, map[string]any{"post": p})
}
