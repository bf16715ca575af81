package domain

import (
	"time"

	"github.com/google/uuid"
)

type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// Achievement is a catalog entry. Name is the natural key.
type Achievement struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"uniqueIndex;not null;size:100"`
	Description string  `gorm:"type:text"`
	Icon        string  `gorm:"size:10;default:'🏆'"`
	Rarity      Rarity  `gorm:"size:20;default:'Common'"`
	Points      int     `gorm:"not null;default:10"`
	Secret      bool    `gorm:"not null;default:false"`
	Hint        *string `gorm:"size:200"` // только для секретных
}

// AchievementUnlock records that a user earned an achievement.
// The composite primary key keeps one row per (user, achievement).
type AchievementUnlock struct {
	UserID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	AchievementID uint        `gorm:"primaryKey"`
	Achievement   Achievement `gorm:"foreignKey:AchievementID;constraint:OnDelete:CASCADE;"`
	UnlockedAt    time.Time   `gorm:"autoCreateTime"`
}
