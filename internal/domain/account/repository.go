package account

// Repository defines the contract for account storage operations.
// Create must fail with ErrAccountExists when the email is already registered.
type Repository interface {
	Create(a *Account) error
	GetByID(id string) (*Account, error)
	GetByEmail(email string) (*Account, error)
	Count() (int, error)
}
