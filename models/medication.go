package models

import "time"

// Medication is a medication schedule entry for a profile.
type Medication struct {
	ID        string     `json:"id"`
	AccountID string     `json:"account_id"`
	ProfileID string     `json:"profile_id"`
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage,omitempty"`
	Schedule  string     `json:"schedule,omitempty"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	StoppedAt *time.Time `json:"stopped_at,omitempty"`

	SyncMeta
}

func (m *Medication) EntityID() string      { return m.ID }
func (m *Medication) EntityAccount() string { return m.AccountID }
func (m *Medication) SyncState() *SyncMeta  { return &m.SyncMeta }
func (m *Medication) SetEntityID(id string) { m.ID = id }

// MoodEntry records how a profile's person was doing on a given day.
type MoodEntry struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	ProfileID string    `json:"profile_id"`
	Day       time.Time `json:"day"`
	Score     int       `json:"score"`
	Note      string    `json:"note,omitempty"`

	SyncMeta
}

func (m *MoodEntry) EntityID() string      { return m.ID }
func (m *MoodEntry) EntityAccount() string { return m.AccountID }
func (m *MoodEntry) SyncState() *SyncMeta  { return &m.SyncMeta }
func (m *MoodEntry) SetEntityID(id string) { m.ID = id }

// MealPlanEntry assigns a meal to a day slot for a profile.
type MealPlanEntry struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	ProfileID string    `json:"profile_id"`
	Day       time.Time `json:"day"`
	Slot      string    `json:"slot"`
	Meal      string    `json:"meal"`
	Notes     string    `json:"notes,omitempty"`

	SyncMeta
}

func (m *MealPlanEntry) EntityID() string      { return m.ID }
func (m *MealPlanEntry) EntityAccount() string { return m.AccountID }
func (m *MealPlanEntry) SyncState() *SyncMeta  { return &m.SyncMeta }
func (m *MealPlanEntry) SetEntityID(id string) { m.ID = id }
