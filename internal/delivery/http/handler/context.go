package handler

import (
	"context"

	"inkwell/internal/domain/account"
)

// contextKey is the type for context keys
type contextKey string

// AccountContextKey is the key used to store the authenticated account in context
const AccountContextKey contextKey = "account"

// GetAccountFromContext retrieves the authenticated account from request context
func GetAccountFromContext(ctx context.Context) *account.Public {
	a, ok := ctx.Value(AccountContextKey).(*account.Public)
	if !ok {
		return nil
	}
	return a
}
