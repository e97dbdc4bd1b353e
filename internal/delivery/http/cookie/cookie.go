// Package cookie owns the session cookie lifecycle at the HTTP boundary.
package cookie

import "net/http"

// Name is the fixed session cookie identifier.
const Name = "jwt_token"

// MaxAge is the session cookie lifetime in seconds (one week).
const MaxAge = 7 * 24 * 60 * 60

// Manager serializes the session token into a cookie with fixed security
// attributes. The payload is always exactly the signed token string.
type Manager struct {
	secure bool
}

// NewManager creates a cookie manager. secure is resolved once at process
// start and controls the Secure attribute.
func NewManager(secure bool) *Manager {
	return &Manager{secure: secure}
}

// Set writes the session cookie carrying token.
func (m *Manager) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, m.cookie(token, MaxAge))
}

// Clear instructs the client to drop the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie("", -1))
}

// Read extracts the raw token from the request. An absent cookie returns ""
// and is not an error.
func (m *Manager) Read(r *http.Request) string {
	c, err := r.Cookie(Name)
	if err != nil {
		return ""
	}
	return c.Value
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
