package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == Name {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestSetAttributes(t *testing.T) {
	rec := httptest.NewRecorder()
	NewManager(false).Set(rec, "the-token")

	c := sessionCookie(t, rec)
	if c.Value != "the-token" {
		t.Errorf("value = %q, want the raw token", c.Value)
	}
	if !c.HttpOnly {
		t.Error("expected HttpOnly")
	}
	if c.Secure {
		t.Error("Secure set outside production mode")
	}
	if c.Path != "/" {
		t.Errorf("path = %q, want /", c.Path)
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Errorf("sameSite = %v, want Strict", c.SameSite)
	}
	if c.MaxAge != 604800 {
		t.Errorf("maxAge = %d, want 604800", c.MaxAge)
	}
}

func TestSetSecureInProduction(t *testing.T) {
	rec := httptest.NewRecorder()
	NewManager(true).Set(rec, "t")

	if !sessionCookie(t, rec).Secure {
		t.Error("expected Secure in production mode")
	}
}

func TestClear(t *testing.T) {
	rec := httptest.NewRecorder()
	NewManager(false).Clear(rec)

	c := sessionCookie(t, rec)
	if c.Value != "" {
		t.Errorf("value = %q, want empty", c.Value)
	}
	if c.MaxAge >= 0 {
		t.Errorf("maxAge = %d, want negative", c.MaxAge)
	}
	if !c.HttpOnly {
		t.Error("expected HttpOnly on the clearing cookie")
	}
}

func TestRead(t *testing.T) {
	m := NewManager(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := m.Read(req); got != "" {
		t.Errorf("Read() = %q, want empty for absent cookie", got)
	}

	req.AddCookie(&http.Cookie{Name: Name, Value: "abc"})
	if got := m.Read(req); got != "abc" {
		t.Errorf("Read() = %q, want abc", got)
	}
}
