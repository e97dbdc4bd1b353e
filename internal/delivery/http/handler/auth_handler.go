package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkwell/internal/application/auth"
	"inkwell/internal/delivery/http/cookie"
	"inkwell/internal/domain/account"
)

type AuthHandler struct {
	service auth.Service
	cookies *cookie.Manager
}

func NewAuthHandler(service auth.Service, cookies *cookie.Manager) *AuthHandler {
	return &AuthHandler{
		service: service,
		cookies: cookies,
	}
}

// Signup handles POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req account.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		SendError(w, "Name, email, and password are required", http.StatusBadRequest)
		return
	}

	pub, err := h.service.Signup(req)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrAccountExists):
			SendError(w, "User with this email already exists.", http.StatusBadRequest)
		case errors.Is(err, account.ErrInvalidEmail):
			SendError(w, "Invalid email address", http.StatusBadRequest)
		case errors.Is(err, account.ErrInvalidName):
			SendError(w, "Name is required", http.StatusBadRequest)
		case errors.Is(err, account.ErrInvalidPassword):
			SendError(w, "Password must be at least 6 characters", http.StatusBadRequest)
		default:
			SendError(w, "Failed to sign up", http.StatusInternalServerError)
		}
		return
	}

	SendJSON(w, http.StatusCreated, map[string]any{"user": pub})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req account.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		SendError(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	token, pub, err := h.service.Login(req)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			SendError(w, "Invalid email or password.", http.StatusUnauthorized)
			return
		}
		SendError(w, "Failed to login", http.StatusInternalServerError)
		return
	}

	h.cookies.Set(w, token)
	SendJSON(w, http.StatusOK, map[string]any{"user": pub})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.cookies.Clear(w)
	SendJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	a := GetAccountFromContext(r.Context())
	if a == nil {
		SendError(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	SendJSON(w, http.StatusOK, map[string]any{"user": a})
}
