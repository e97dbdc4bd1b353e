package middleware

import (
	"context"
	"net/http"
	"strings"

	"inkwell/internal/application/auth"
	"inkwell/internal/delivery/http/cookie"
	"inkwell/internal/delivery/http/handler"
)

// Auth validates the session token on API routes. Verification failures are
// never distinguished to the client: missing, malformed, tampered and expired
// tokens all produce the same 401.
func Auth(authService auth.Service, cookies *cookie.Manager) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r, cookies)
			if token == "" {
				handler.SendError(w, "Authorization required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.VerifyToken(token)
			if err != nil {
				handler.SendError(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			pub := claims.Public()
			ctx := context.WithValue(r.Context(), handler.AccountContextKey, &pub)
			next(w, r.WithContext(ctx))
		}
	}
}

// OptionalAuth adds the account to context when a valid token is present,
// but lets the request through either way. Routes that mix public reads with
// authenticated mutations check the context themselves.
func OptionalAuth(authService auth.Service, cookies *cookie.Manager) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if token := extractToken(r, cookies); token != "" {
				if claims, err := authService.VerifyToken(token); err == nil {
					pub := claims.Public()
					ctx := context.WithValue(r.Context(), handler.AccountContextKey, &pub)
					r = r.WithContext(ctx)
				}
			}
			next(w, r)
		}
	}
}

func extractToken(r *http.Request, cookies *cookie.Manager) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return cookies.Read(r)
}
