package models

import "time"

// TodoList is a named list of to-do items. Deleting a list soft-deletes its
// items in the same local transaction (parent→child cascade).
type TodoList struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	ProfileID string `json:"profile_id,omitempty"`
	Title     string `json:"title"`

	SyncMeta
}

func (l *TodoList) EntityID() string      { return l.ID }
func (l *TodoList) EntityAccount() string { return l.AccountID }
func (l *TodoList) SyncState() *SyncMeta  { return &l.SyncMeta }
func (l *TodoList) SetEntityID(id string) { l.ID = id }

// TodoItem is one entry in a TodoList.
type TodoItem struct {
	ID        string     `json:"id"`
	AccountID string     `json:"account_id"`
	ListID    string     `json:"list_id"`
	Text      string     `json:"text"`
	DueAt     *time.Time `json:"due_at,omitempty"`
	DoneAt    *time.Time `json:"done_at,omitempty"`

	SyncMeta
}

func (i *TodoItem) EntityID() string      { return i.ID }
func (i *TodoItem) EntityAccount() string { return i.AccountID }
func (i *TodoItem) SyncState() *SyncMeta  { return &i.SyncMeta }
func (i *TodoItem) SetEntityID(id string) { i.ID = id }

// Contact is an address-book entry attached to a profile.
type Contact struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	ProfileID string `json:"profile_id,omitempty"`
	Name      string `json:"name"`
	Relation  string `json:"relation,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`

	SyncMeta
}

func (c *Contact) EntityID() string      { return c.ID }
func (c *Contact) EntityAccount() string { return c.AccountID }
func (c *Contact) SyncState() *SyncMeta  { return &c.SyncMeta }
func (c *Contact) SetEntityID(id string) { c.ID = id }
