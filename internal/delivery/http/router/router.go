package router

import (
	"net/http"

	"inkwell/internal/application/auth"
	"inkwell/internal/delivery/http/cookie"
	"inkwell/internal/delivery/http/handler"
	"inkwell/internal/delivery/http/middleware"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	Auth     *handler.AuthHandler
	Post     *handler.PostHandler
	Category *handler.CategoryHandler
}

// Config carries the route-level settings resolved at startup.
type Config struct {
	AllowedOrigins []string
	ProtectedPaths []string
	LoginPath      string
}

// Setup configures all routes and wraps the mux with the route guard.
func Setup(handlers Handlers, authService auth.Service, cookies *cookie.Manager, cfg Config) http.Handler {
	mux := http.NewServeMux()

	cors := middleware.CORS(cfg.AllowedOrigins)
	authRequired := middleware.Auth(authService, cookies)
	optionalAuth := middleware.OptionalAuth(authService, cookies)
	loginLimit := middleware.NewRateLimiter(1, 5)

	// Chain helper
	chain := func(h http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}

	// Auth routes
	mux.HandleFunc("/api/auth/signup", cors(handlers.Auth.Signup))
	mux.HandleFunc("/api/auth/login", chain(handlers.Auth.Login, cors, loginLimit.Limit))
	mux.HandleFunc("/api/auth/logout", cors(handlers.Auth.Logout))
	mux.HandleFunc("/api/auth/me", chain(handlers.Auth.Me, cors, authRequired))

	// Post routes. Reads and likes are public; the slug handler enforces
	// authentication on its mutating methods itself.
	mux.HandleFunc("/api/posts", chain(handlers.Post.Posts, cors, optionalAuth))
	mux.HandleFunc("/api/posts/", chain(handlers.Post.PostBySlug, cors, optionalAuth))

	// Category routes (public)
	mux.HandleFunc("/api/categories", cors(handlers.Category.Categories))
	mux.HandleFunc("/api/categories/", cors(handlers.Category.CategoryBySlug))

	guard := middleware.NewGuard(authService, cookies, cfg.ProtectedPaths, cfg.LoginPath)
	return guard.Handler(mux)
}
