package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/internal/application/auth"
	"inkwell/internal/delivery/http/cookie"
	"inkwell/internal/domain/account"
	"inkwell/internal/infrastructure/repository"
)

func newAuthService(t *testing.T, expiry time.Duration) auth.Service {
	t.Helper()
	svc := auth.NewService(repository.NewAccountMemoryRepository(), "guard-test-secret", expiry)
	if _, err := svc.Signup(account.SignupRequest{Name: "Eleanor", Email: "eleanor@example.com", Password: "hunter22"}); err != nil {
		t.Fatalf("Signup() error: %v", err)
	}
	return svc
}

func login(t *testing.T, svc auth.Service) string {
	t.Helper()
	token, _, err := svc.Login(account.LoginRequest{Email: "eleanor@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	return token
}

func newGuard(svc auth.Service) *Guard {
	return NewGuard(svc, cookie.NewManager(false), []string{"/create", "/posts/:slug/edit"}, "/login")
}

func serve(g *Guard, path, token string) (*httptest.ResponseRecorder, bool) {
	reached := false
	h := g.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: token})
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, reached
}

func TestGuardUnprotectedPassesThrough(t *testing.T) {
	g := newGuard(newAuthService(t, time.Hour))

	paths := []string{"/", "/posts/some-slug", "/login", "/posts/some-slug/comments", "/createx", "/x/create"}
	for _, path := range paths {
		rec, reached := serve(g, path, "")
		if !reached || rec.Code != http.StatusOK {
			t.Errorf("%s: code = %d, reached = %v, want pass-through", path, rec.Code, reached)
		}
	}
}

func TestGuardNoCookieRedirects(t *testing.T) {
	g := newGuard(newAuthService(t, time.Hour))

	for _, path := range []string{"/create", "/posts/my-post/edit"} {
		rec, reached := serve(g, path, "")
		if reached {
			t.Errorf("%s: handler reached without a cookie", path)
		}
		if rec.Code != http.StatusFound {
			t.Errorf("%s: code = %d, want %d", path, rec.Code, http.StatusFound)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Errorf("%s: location = %q, want /login", path, loc)
		}
		if len(rec.Result().Cookies()) != 0 {
			t.Errorf("%s: unexpected Set-Cookie on plain redirect", path)
		}
	}
}

func TestGuardValidCookiePasses(t *testing.T) {
	svc := newAuthService(t, time.Hour)
	g := newGuard(svc)
	token := login(t, svc)

	rec, reached := serve(g, "/posts/my-post/edit", token)
	if !reached || rec.Code != http.StatusOK {
		t.Errorf("code = %d, reached = %v, want pass-through", rec.Code, reached)
	}
}

func TestGuardInvalidCookieRedirectsAndClears(t *testing.T) {
	expired := newAuthService(t, -time.Hour)
	staleToken := login(t, expired)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", staleToken},
		{"garbage", "definitely.not.ajwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGuard(newAuthService(t, time.Hour))
			rec, reached := serve(g, "/create", tt.token)
			if reached {
				t.Fatal("handler reached with an invalid cookie")
			}
			if rec.Code != http.StatusFound {
				t.Errorf("code = %d, want %d", rec.Code, http.StatusFound)
			}

			var cleared *http.Cookie
			for _, c := range rec.Result().Cookies() {
				if c.Name == cookie.Name {
					cleared = c
				}
			}
			if cleared == nil {
				t.Fatal("expected a cookie-clearing Set-Cookie")
			}
			if cleared.Value != "" || cleared.MaxAge >= 0 {
				t.Errorf("cleared cookie = {value: %q, maxAge: %d}", cleared.Value, cleared.MaxAge)
			}
		})
	}
}

func TestPathTemplateMatching(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/create", "/create", true},
		{"/create", "/create/", true},
		{"/create", "/creates", false},
		{"/create", "/x/create", false},
		{"/posts/:slug/edit", "/posts/hello-world/edit", true},
		{"/posts/:slug/edit", "/posts/:slug/edit", true}, // a literal ":slug" segment is still one segment
		{"/posts/:slug/edit", "/posts/edit", false},
		{"/posts/:slug/edit", "/posts/a/b/edit", false},
		{"/posts/:slug/edit", "/posts/hello-world/editor", false},
		{"/posts/:slug/edit", "/postsx/hello-world/edit", false},
	}

	for _, tt := range tests {
		if got := parseTemplate(tt.pattern).matches(tt.path); got != tt.want {
			t.Errorf("template %q match %q = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}
