package domain

import (
	"time"

	"github.com/google/uuid"
)

// XPPerLevel scales the threshold of each level: leaving level N costs N*XPPerLevel.
const XPPerLevel = 100

const (
	maxBioLength    = 500
	maxAvatarLength = 255
)

type Profile struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Bio       string    `gorm:"size:500"`
	AvatarURL *string   `gorm:"size:255"`

	// Настройки
	DailyNotifications   bool `gorm:"not null;default:true"`
	MissionNotifications bool `gorm:"not null;default:true"`
	DarkTheme            bool `gorm:"not null;default:false"`
	Premium              bool `gorm:"not null;default:false"`

	// Геймификация. Меняется только через ApplyXP.
	Level      int `gorm:"not null;default:1"`
	Experience int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProfile returns the state every account starts with.
func NewProfile(userID uuid.UUID) *Profile {
	return &Profile{
		UserID:               userID,
		Level:                1,
		DailyNotifications:   true,
		MissionNotifications: true,
	}
}

func (p *Profile) NextLevelExperience() int {
	return p.Level * XPPerLevel
}

// ProfileSettings is a partial edit of the user-writable profile fields.
// Level, experience and premium are not part of it.
type ProfileSettings struct {
	Bio                  *string
	AvatarURL            *string
	DailyNotifications   *bool
	MissionNotifications *bool
	DarkTheme            *bool
}

func (s ProfileSettings) Validate() error {
	v := NewValidationError()
	if s.Bio != nil && len([]rune(*s.Bio)) > maxBioLength {
		v.Add("bio", "must be at most 500 characters")
	}
	if s.AvatarURL != nil && len(*s.AvatarURL) > maxAvatarLength {
		v.Add("avatarUrl", "must be at most 255 characters")
	}
	return v.Err()
}

// Columns maps the set fields to their column names for a partial UPDATE.
func (s ProfileSettings) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if s.Bio != nil {
		cols["bio"] = *s.Bio
	}
	if s.AvatarURL != nil {
		cols["avatar_url"] = *s.AvatarURL
	}
	if s.DailyNotifications != nil {
		cols["daily_notifications"] = *s.DailyNotifications
	}
	if s.MissionNotifications != nil {
		cols["mission_notifications"] = *s.MissionNotifications
	}
	if s.DarkTheme != nil {
		cols["dark_theme"] = *s.DarkTheme
	}
	return cols
}
