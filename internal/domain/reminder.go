package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReminderType string

const (
	ReminderMeditation ReminderType = "meditation"
	ReminderBreathing  ReminderType = "breathing"
	ReminderSleep      ReminderType = "sleep"
	ReminderJournal    ReminderType = "journal"
	ReminderOther      ReminderType = "other"
)

func (t ReminderType) Valid() bool {
	switch t {
	case ReminderMeditation, ReminderBreathing, ReminderSleep, ReminderJournal, ReminderOther:
		return true
	}
	return false
}

type Reminder struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	UserID      uuid.UUID    `gorm:"type:uuid;index;not null" json:"-"`
	Title       string       `gorm:"size:100;not null" json:"title"`
	ScheduledAt time.Time    `gorm:"index;not null" json:"scheduledAt"`
	Type        ReminderType `gorm:"size:20;not null;default:'other'" json:"type"`
	Duration    string       `gorm:"size:20" json:"duration"` // "10 min"
	Completed   bool         `gorm:"not null;default:false" json:"completed"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (r *Reminder) Validate() error {
	v := NewValidationError()
	if n := len([]rune(r.Title)); n == 0 || n > 100 {
		v.Add("title", "must be between 1 and 100 characters")
	}
	if r.ScheduledAt.IsZero() {
		v.Add("scheduledAt", "is required")
	}
	if !r.Type.Valid() {
		v.Add("type", "must be one of meditation, breathing, sleep, journal, other")
	}
	if len([]rune(r.Duration)) > 20 {
		v.Add("duration", "must be at most 20 characters")
	}
	return v.Err()
}

// ReminderPatch is a partial update; nil fields stay as they are.
type ReminderPatch struct {
	Title       *string
	ScheduledAt *time.Time
	Type        *ReminderType
	Duration    *string
	Completed   *bool
}

func (p ReminderPatch) Apply(r *Reminder) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.ScheduledAt != nil {
		r.ScheduledAt = *p.ScheduledAt
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Duration != nil {
		r.Duration = *p.Duration
	}
	if p.Completed != nil {
		r.Completed = *p.Completed
	}
}
