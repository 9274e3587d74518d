package models

// RegisterRequest creates a new account. The email doubles as the login.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login. The token is also carried
// in the Authorization header as a bearer token.
type AuthResponse struct {
	AccountID string `json:"account_id"`
	UserID    string `json:"user_id"`
	Token     string `json:"token"`
}

// SnapshotResponse is the authoritative server snapshot for one entity
// family within one account scope, consumed by the reconciliation engine.
type SnapshotResponse struct {
	Family  string         `json:"family"`
	Records []EntityRecord `json:"records"`
	Length  int            `json:"length"`
}

// UpsertRequest pushes one entity's current state to the server. Keyed by
// the client-generated entity id, so replays are idempotent.
type UpsertRequest struct {
	Record EntityRecord `json:"record"`
}

// AcceptInvitationRequest establishes a sync connection between the inviter
// and the invitee accounts. Preferences are the inviter's declared sharing
// toggles, materialized into the sharing preference store at acceptance.
type AcceptInvitationRequest struct {
	InviterAccountID string `json:"inviter_account_id"`
	InviterUserID    string `json:"inviter_user_id"`
	InviteeAccountID string `json:"invitee_account_id"`
	InviteeUserID    string `json:"invitee_user_id"`

	// Preferences maps sharing category key → shared flag. Categories
	// absent from the map follow the default-open policy.
	Preferences map[string]bool `json:"preferences,omitempty"`
}

// SharingRequest sets one sharing toggle.
type SharingRequest struct {
	SourceProfileID string `json:"source_profile_id"`
	TargetUserID    string `json:"target_user_id"`
	Category        string `json:"category"`
	IsShared        bool   `json:"is_shared"`
}

// APIError is the uniform error body returned by the HTTP handler.
type APIError struct {
	Error string `json:"error"`
}
