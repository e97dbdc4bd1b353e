package account

import "time"

// Account represents a registered author.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose the credential in JSON
	Image        string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public is the safe account representation for API responses and token claims.
type Public struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
}

// ToPublic strips the credential from an account.
func (a *Account) ToPublic() Public {
	return Public{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Image: a.Image,
	}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
