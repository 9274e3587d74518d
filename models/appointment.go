package models

import "time"

// Appointment is a scheduled event for a profile.
type Appointment struct {
	ID        string     `json:"id"`
	AccountID string     `json:"account_id"`
	ProfileID string     `json:"profile_id"`
	Title     string     `json:"title"`
	Location  string     `json:"location,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	StartsAt  time.Time  `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at,omitempty"`

	SyncMeta
}

func (a *Appointment) EntityID() string      { return a.ID }
func (a *Appointment) EntityAccount() string { return a.AccountID }
func (a *Appointment) SyncState() *SyncMeta  { return &a.SyncMeta }
func (a *Appointment) SetEntityID(id string) { a.ID = id }

// Countdown counts down to a date that matters (a birthday, a visit).
type Countdown struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	ProfileID string    `json:"profile_id,omitempty"`
	Title     string    `json:"title"`
	TargetDay time.Time `json:"target_day"`
	Emoji     string    `json:"emoji,omitempty"`

	SyncMeta
}

func (c *Countdown) EntityID() string      { return c.ID }
func (c *Countdown) EntityAccount() string { return c.AccountID }
func (c *Countdown) SyncState() *SyncMeta  { return &c.SyncMeta }
func (c *Countdown) SetEntityID(id string) { c.ID = id }

// Reminder is a one-shot or recurring nudge owned by an account.
type Reminder struct {
	ID         string     `json:"id"`
	AccountID  string     `json:"account_id"`
	ProfileID  string     `json:"profile_id,omitempty"`
	Message    string     `json:"message"`
	RemindAt   time.Time  `json:"remind_at"`
	Recurrence string     `json:"recurrence,omitempty"`
	DoneAt     *time.Time `json:"done_at,omitempty"`

	SyncMeta
}

func (r *Reminder) EntityID() string      { return r.ID }
func (r *Reminder) EntityAccount() string { return r.AccountID }
func (r *Reminder) SyncState() *SyncMeta  { return &r.SyncMeta }
func (r *Reminder) SetEntityID(id string) { r.ID = id }
