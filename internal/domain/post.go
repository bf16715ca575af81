package domain

import (
	"time"

	"github.com/google/uuid"
)

const maxPostLength = 1000

type Post struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Content   string    `gorm:"type:text;not null"`
	Likes     int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"index"`
}

func (p *Post) Validate() error {
	if n := len([]rune(p.Content)); n == 0 || n > maxPostLength {
		return FieldError("content", "must be between 1 and 1000 characters")
	}
	return nil
}

// FeedItem is a post joined with its author's username.
type FeedItem struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}
