package usecase

import (
	"context"

	"github.com/waste3d/mindwell-api/internal/dashboard"
	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/google/uuid"
)

type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Taken(ctx context.Context, column, value string, except uuid.UUID) (bool, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
}

type ProfileStore interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpdateProgress(ctx context.Context, userID uuid.UUID, fn func(*domain.Profile) error) (*domain.Profile, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, settings domain.ProfileSettings) (*domain.Profile, error)
}

type TokenStore interface {
	SaveRefresh(ctx context.Context, userID string, refreshToken string) error
	CheckRefresh(ctx context.Context, refreshToken string) (string, error)
	DeleteRefresh(ctx context.Context, refreshToken string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Generate(userID string) (string, string, error)
	ValidateRefreshToken(token string) (string, error)
}

type AchievementStore interface {
	ListAll(ctx context.Context) ([]domain.Achievement, error)
	ListUnlocks(ctx context.Context, userID uuid.UUID) ([]domain.AchievementUnlock, error)
}

type ActionEvaluator interface {
	EvaluateAction(ctx context.Context, userID uuid.UUID, actionType string) ([]string, error)
}

type ProgressRecorder interface {
	XPGranted(xp int)
	LevelsGained(n int)
	AchievementUnlocked(name string)
}

type MoodLogStore interface {
	Create(ctx context.Context, log *domain.MoodLog) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MoodLog, error)
	Get(ctx context.Context, userID uuid.UUID, id uint) (*domain.MoodLog, error)
	Delete(ctx context.Context, userID uuid.UUID, id uint) error
}

type ReminderStore interface {
	Create(ctx context.Context, reminder *domain.Reminder) error
	List(ctx context.Context, userID uuid.UUID) ([]domain.Reminder, error)
	Get(ctx context.Context, userID uuid.UUID, id uint) (*domain.Reminder, error)
	Update(ctx context.Context, reminder *domain.Reminder) error
	Delete(ctx context.Context, userID uuid.UUID, id uint) error
}

type PostStore interface {
	Create(ctx context.Context, post *domain.Post) error
	Feed(ctx context.Context, limit, offset int) ([]domain.FeedItem, error)
}

// StatsCache keys entries by a per-user generation that Invalidate bumps.
// Get reports a miss as (nil, nil).
type StatsCache interface {
	Generation(ctx context.Context, userID string) (int64, error)
	Get(ctx context.Context, userID string, gen int64) (*dashboard.Stats, error)
	Set(ctx context.Context, userID string, gen int64, stats dashboard.Stats) error
	Invalidate(ctx context.Context, userID string) error
}
