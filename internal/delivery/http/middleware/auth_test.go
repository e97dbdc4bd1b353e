package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/internal/delivery/http/cookie"
	"inkwell/internal/delivery/http/handler"
	"inkwell/internal/domain/account"
)

func TestAuthMissingToken(t *testing.T) {
	svc := newAuthService(t, time.Hour)
	gate := Auth(svc, cookie.NewManager(false))

	reached := false
	h := gate(func(w http.ResponseWriter, r *http.Request) { reached = true })

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if reached {
		t.Fatal("handler reached without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Message == "" {
		t.Error("expected an error message")
	}
}

func TestAuthInvalidTokenUniform401(t *testing.T) {
	svc := newAuthService(t, time.Hour)
	expired := newAuthService(t, -time.Hour)
	gate := Auth(svc, cookie.NewManager(false))

	tokens := map[string]string{
		"expired":  login(t, expired),
		"tampered": login(t, svc) + "x",
		"garbage":  "nope",
	}

	var messages []string
	for name, token := range tokens {
		t.Run(name, func(t *testing.T) {
			h := gate(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler reached with an invalid token")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			h(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("code = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			messages = append(messages, rec.Body.String())
		})
	}

	for _, m := range messages {
		if m != messages[0] {
			t.Errorf("failure responses differ: %q vs %q", m, messages[0])
		}
	}
}

func TestAuthAcceptsBearerAndCookie(t *testing.T) {
	svc := newAuthService(t, time.Hour)
	gate := Auth(svc, cookie.NewManager(false))
	token := login(t, svc)

	attach := map[string]func(*http.Request){
		"bearer": func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
		"cookie": func(r *http.Request) { r.AddCookie(&http.Cookie{Name: cookie.Name, Value: token}) },
	}

	for name, set := range attach {
		t.Run(name, func(t *testing.T) {
			var got *account.Public
			h := gate(func(w http.ResponseWriter, r *http.Request) {
				got = handler.GetAccountFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			set(req)
			rec := httptest.NewRecorder()
			h(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("code = %d, want %d", rec.Code, http.StatusOK)
			}
			if got == nil || got.Email != "eleanor@example.com" {
				t.Errorf("context account = %+v", got)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	svc := newAuthService(t, time.Hour)
	optional := OptionalAuth(svc, cookie.NewManager(false))
	token := login(t, svc)

	t.Run("without token", func(t *testing.T) {
		var got *account.Public
		h := optional(func(w http.ResponseWriter, r *http.Request) {
			got = handler.GetAccountFromContext(r.Context())
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("code = %d, want pass-through", rec.Code)
		}
		if got != nil {
			t.Errorf("context account = %+v, want nil", got)
		}
	})

	t.Run("with token", func(t *testing.T) {
		var got *account.Public
		h := optional(func(w http.ResponseWriter, r *http.Request) {
			got = handler.GetAccountFromContext(r.Context())
		})
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: token})
		rec := httptest.NewRecorder()
		h(rec, req)

		if got == nil || got.Name != "Eleanor" {
			t.Errorf("context account = %+v", got)
		}
	})
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	h := rl.Limit(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "198.51.100.7:4242"
		rec := httptest.NewRecorder()
		h(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("first requests = %v, want within burst", codes[:2])
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want %d", codes[2], http.StatusTooManyRequests)
	}

	// A different client has its own budget.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "203.0.113.9:4242"
	rec := httptest.NewRecorder()
	h(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("other client = %d, want %d", rec.Code, http.StatusOK)
	}
}
