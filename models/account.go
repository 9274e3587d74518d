package models

import "time"

// Account is a registered user of the application. PasswordHash is the
// Argon2id encoded hash and never leaves the server.
type Account struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	SyncMeta
}

func (a *Account) EntityID() string      { return a.ID }
func (a *Account) EntityAccount() string { return a.ID }
func (a *Account) SyncState() *SyncMeta  { return &a.SyncMeta }
func (a *Account) SetEntityID(id string) { a.ID = id }
