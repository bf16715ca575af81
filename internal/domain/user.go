package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string    `gorm:"uniqueIndex;not null;size:50"`
	Email    string    `gorm:"uniqueIndex;not null;size:100"`
	Password string    `gorm:"not null"`

	Profile   *Profile            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	MoodLogs  []MoodLog           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Reminders []Reminder          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Posts     []Post              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Unlocks   []AchievementUnlock `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
