package handlers

import (
	"context"

	"github.com/waste3d/mindwell-api/internal/application/usecase"
	"github.com/waste3d/mindwell-api/internal/dashboard"
	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, error)
	Login(ctx context.Context, username, password string) (*usecase.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileView, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, settings domain.ProfileSettings) (*usecase.ProfileView, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, upd usecase.AccountUpdate) (*usecase.ProfileView, error)
}

type GamificationService interface {
	RecordAction(ctx context.Context, userID uuid.UUID, actionType string, xp *int) (*usecase.ActionResult, error)
	ListAchievements(ctx context.Context, userID uuid.UUID) (*usecase.AchievementsView, error)
}

type TrackingService interface {
	Stats(ctx context.Context, userID uuid.UUID) (dashboard.Stats, error)
	ListMoodLogs(ctx context.Context, userID uuid.UUID) ([]domain.MoodLog, error)
	CreateMoodLog(ctx context.Context, userID uuid.UUID, in usecase.MoodLogInput) (*domain.MoodLog, error)
	GetMoodLog(ctx context.Context, userID uuid.UUID, id uint) (*domain.MoodLog, error)
	DeleteMoodLog(ctx context.Context, userID uuid.UUID, id uint) error
	ListReminders(ctx context.Context, userID uuid.UUID) ([]domain.Reminder, error)
	CreateReminder(ctx context.Context, userID uuid.UUID, r domain.Reminder) (*domain.Reminder, error)
	GetReminder(ctx context.Context, userID uuid.UUID, id uint) (*domain.Reminder, error)
	UpdateReminder(ctx context.Context, userID uuid.UUID, id uint, patch domain.ReminderPatch) (*domain.Reminder, error)
	DeleteReminder(ctx context.Context, userID uuid.UUID, id uint) error
}

type CommunityService interface {
	Feed(ctx context.Context, limit, offset int) ([]domain.FeedItem, error)
	Publish(ctx context.Context, userID uuid.UUID, content string) (*domain.FeedItem, error)
}
