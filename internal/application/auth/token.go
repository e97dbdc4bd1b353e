package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inkwell/internal/domain/account"
)

// ErrInvalidToken is the single result for every verification failure:
// malformed input, bad signature, wrong algorithm, or elapsed expiry.
var ErrInvalidToken = errors.New("invalid token")

// Claims binds a public account view to a validity window. The credential
// never appears here.
type Claims struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
	jwt.RegisteredClaims
}

// Public returns the account view carried by the claims.
func (c *Claims) Public() account.Public {
	return account.Public{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Image: c.Image,
	}
}

func (s *service) signToken(pub account.Public) (string, error) {
	now := time.Now()
	claims := &Claims{
		ID:    pub.ID,
		Name:  pub.Name,
		Email: pub.Email,
		Image: pub.Image,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *service) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
