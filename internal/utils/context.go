// Package utils provides small helpers shared across the application:
// type-safe context keys, UUIDv7 generation, and JWT token handling.
package utils

import "context"

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents collisions with other packages that
// may store string-keyed values in the same context.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated viewer's user id in the context.
var UserIDCtxKey = contextKey("userID")

// AccountIDCtxKey stores the authenticated account id in the context.
var AccountIDCtxKey = contextKey("accountID")

// GetUserIDFromContext retrieves the viewer's user id from the context.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// GetAccountIDFromContext retrieves the account id from the context.
func GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(string)
	return accountID, ok
}
