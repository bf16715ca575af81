package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Emotion string

const (
	EmotionHappy   Emotion = "happy"
	EmotionContent Emotion = "content"
	EmotionNeutral Emotion = "neutral"
	EmotionSad     Emotion = "sad"
	EmotionAnxious Emotion = "anxious"
	EmotionAngry   Emotion = "angry"
)

// Emotions lists the known emotions in display order.
var Emotions = []Emotion{
	EmotionHappy,
	EmotionContent,
	EmotionNeutral,
	EmotionSad,
	EmotionAnxious,
	EmotionAngry,
}

func (e Emotion) Valid() bool {
	for _, known := range Emotions {
		if e == known {
			return true
		}
	}
	return false
}

// Intensity and energy are rated on the same 1..10 scale.
const (
	ScaleMin     = 1
	ScaleMax     = 10
	ScaleDefault = 5

	maxActivitiesLength = 255
)

type MoodLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	LoggedAt   time.Time `gorm:"index;not null" json:"loggedAt"`
	Emotion    Emotion   `gorm:"size:20;not null" json:"emotion"`
	Intensity  int       `gorm:"not null;default:5" json:"intensity"`
	Energy     int       `gorm:"not null;default:5" json:"energy"`
	Note       *string   `gorm:"type:text" json:"note,omitempty"`
	Activities string    `gorm:"size:255" json:"activities"`
}

func (m *MoodLog) Validate() error {
	v := NewValidationError()
	if !m.Emotion.Valid() {
		v.Add("emotion", "must be one of happy, content, neutral, sad, anxious, angry")
	}
	if m.Intensity < ScaleMin || m.Intensity > ScaleMax {
		v.Add("intensity", "must be between 1 and 10")
	}
	if m.Energy < ScaleMin || m.Energy > ScaleMax {
		v.Add("energy", "must be between 1 and 10")
	}
	if len(m.Activities) > maxActivitiesLength {
		v.Add("activities", "must be at most 255 characters")
	}
	return v.Err()
}

// ActivityTags splits the comma-delimited activities into trimmed, non-empty tags.
func (m *MoodLog) ActivityTags() []string {
	if m.Activities == "" {
		return nil
	}
	var tags []string
	for _, raw := range strings.Split(m.Activities, ",") {
		if tag := strings.TrimSpace(raw); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
