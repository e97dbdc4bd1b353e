package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"inkwell/internal/domain/account"
	"inkwell/internal/infrastructure/database"
)

// accountSQLiteRepository backs the credential store with sqlite. The UNIQUE
// constraint on email carries the duplicate-account invariant.
type accountSQLiteRepository struct {
	db *database.DB
}

// NewAccountSQLiteRepository creates a sqlite-backed account repository.
func NewAccountSQLiteRepository(db *database.DB) account.Repository {
	return &accountSQLiteRepository{db: db}
}

func (r *accountSQLiteRepository) Create(a *account.Account) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO accounts (id, email, name, password_hash, image, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.Name, a.PasswordHash, a.Image, a.CreatedAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return account.ErrAccountExists
		}
		return fmt.Errorf("inserting account: %w", err)
	}
	return nil
}

func (r *accountSQLiteRepository) GetByID(id string) (*account.Account, error) {
	return r.getBy(`id = ?`, id)
}

func (r *accountSQLiteRepository) GetByEmail(email string) (*account.Account, error) {
	return r.getBy(`email = ?`, email)
}

func (r *accountSQLiteRepository) getBy(where string, arg any) (*account.Account, error) {
	a := &account.Account{}
	var image sql.NullString
	err := r.db.QueryRow(
		`SELECT id, email, name, password_hash, image, created_at
		 FROM accounts WHERE `+where, arg,
	).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &image, &a.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, account.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a.Image = image.String
	return a, nil
}

func (r *accountSQLiteRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM accounts`).Scan(&count)
	return count, err
}
