package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps a JWT session token with convenience accessors.
//
// It embeds [jwt.RegisteredClaims] for standard claim access, so the type
// satisfies jwt.Claims and can be passed directly to jwt.ParseWithClaims.
// The subject claim carries the user id; AccountID travels as a custom
// claim because the sync API scopes every request by account.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// AccountID is the account the session belongs to, stored as the
	// "account_id" claim.
	AccountID string `json:"account_id,omitempty"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the subject claim, cached after validation.
	UserID string `json:"-"`
}

// String returns the compact serialized token ready for an Authorization
// header.
func (t *Token) String() string {
	return t.SignedString
}
