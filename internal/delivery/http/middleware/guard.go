package middleware

import (
	"net/http"
	"strings"

	"inkwell/internal/application/auth"
	"inkwell/internal/delivery/http/cookie"
)

// pathTemplate is a parsed protected-path pattern. A template matches a
// request path only segment by segment, anchored at both ends; a ":name"
// segment matches exactly one non-empty path segment. Matching runs against
// the literal request path, never a decoded or normalized form.
type pathTemplate []string

func parseTemplate(pattern string) pathTemplate {
	return strings.Split(strings.Trim(pattern, "/"), "/")
}

func (t pathTemplate) matches(path string) bool {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) != len(t) {
		return false
	}
	for i, want := range t {
		if strings.HasPrefix(want, ":") {
			if segments[i] == "" {
				return false
			}
			continue
		}
		if segments[i] != want {
			return false
		}
	}
	return true
}

// Guard is the access-control gate for protected page paths. It decides
// allow/deny/redirect before any handler runs and never mutates state.
type Guard struct {
	authService auth.Service
	cookies     *cookie.Manager
	protected   []pathTemplate
	loginPath   string
}

// NewGuard compiles the protected path patterns once. Patterns use ":name"
// for a single dynamic segment, e.g. "/posts/:slug/edit".
func NewGuard(authService auth.Service, cookies *cookie.Manager, patterns []string, loginPath string) *Guard {
	templates := make([]pathTemplate, len(patterns))
	for i, p := range patterns {
		templates[i] = parseTemplate(p)
	}
	return &Guard{
		authService: authService,
		cookies:     cookies,
		protected:   templates,
		loginPath:   loginPath,
	}
}

// Handler wraps next with the route guard.
func (g *Guard) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.isProtected(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		token := g.cookies.Read(r)
		if token == "" {
			http.Redirect(w, r, g.loginPath, http.StatusFound)
			return
		}

		if _, err := g.authService.VerifyToken(token); err != nil {
			// A stale cookie would bounce the client between the page and
			// the login redirect forever; clear it on the way out.
			g.cookies.Clear(w)
			http.Redirect(w, r, g.loginPath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (g *Guard) isProtected(path string) bool {
	for _, t := range g.protected {
		if t.matches(path) {
			return true
		}
	}
	return false
}
