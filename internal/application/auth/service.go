package auth

import (
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"inkwell/internal/domain/account"
)

// Service defines the authentication service interface
type Service interface {
	Signup(req account.SignupRequest) (*account.Public, error)
	Login(req account.LoginRequest) (string, *account.Public, error)
	VerifyToken(token string) (*Claims, error)
	HashPassword(password string) (string, error)
	CheckPassword(hashedPassword, password string) bool
}

type service struct {
	accounts    account.Repository
	secret      []byte
	tokenExpiry time.Duration
}

// NewService creates a new auth service. The signing secret is fixed for the
// lifetime of the process; every token signed and verified here uses it.
func NewService(accounts account.Repository, secret string, tokenExpiry time.Duration) Service {
	return &service{
		accounts:    accounts,
		secret:      []byte(secret),
		tokenExpiry: tokenExpiry,
	}
}

func (s *service) Signup(req account.SignupRequest) (*account.Public, error) {
	if req.Name == "" {
		return nil, account.ErrInvalidName
	}
	if !isValidEmail(req.Email) {
		return nil, account.ErrInvalidEmail
	}
	if len(req.Password) < 6 {
		return nil, account.ErrInvalidPassword
	}

	hash, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	a := &account.Account{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(a); err != nil {
		return nil, err
	}

	pub := a.ToPublic()
	return &pub, nil
}

func (s *service) Login(req account.LoginRequest) (string, *account.Public, error) {
	// Unknown email and wrong password must be indistinguishable to callers.
	a, err := s.accounts.GetByEmail(req.Email)
	if err != nil {
		return "", nil, account.ErrInvalidCredentials
	}
	if !s.CheckPassword(a.PasswordHash, req.Password) {
		return "", nil, account.ErrInvalidCredentials
	}

	pub := a.ToPublic()
	token, err := s.signToken(pub)
	if err != nil {
		return "", nil, err
	}
	return token, &pub, nil
}

func (s *service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (s *service) CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}
