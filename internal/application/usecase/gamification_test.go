package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/waste3d/mindwell-api/internal/domain"
	"github.com/waste3d/mindwell-api/internal/gamification"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGamification(profiles ProfileStore, achievements AchievementStore, engine ActionEvaluator) (*GamificationUseCase, *recorder) {
	rec := &recorder{}
	log, _ := test.NewNullLogger()
	uc := NewGamificationUseCase(profiles, achievements, engine, rec, log, GamificationConfig{DefaultXP: 10, MaxXP: 1000})
	return uc, rec
}

func intPtr(v int) *int { return &v }

func TestRecordAction_LevelsUpAndReportsUnlocks(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	profiles := newMemoryProfiles()
	profiles.profiles[userID] = &domain.Profile{UserID: userID, Level: 2, Experience: 150}

	engine := new(MockEvaluator)
	engine.On("EvaluateAction", ctx, userID, gamification.ActionResourceCompleted).Return([]string{"Wellness Student"}, nil)

	uc, rec := newGamification(profiles, new(MockAchievementStore), engine)

	res, err := uc.RecordAction(ctx, userID, gamification.ActionResourceCompleted, intPtr(60))
	require.NoError(t, err)

	assert.Equal(t, 3, res.NewLevel)
	assert.Equal(t, 10, res.NewXP)
	assert.Equal(t, 1, res.LevelsGained)
	assert.Equal(t, []string{"Wellness Student"}, res.UnlockedAchievements)

	assert.Equal(t, 60, rec.xp)
	assert.Equal(t, 1, rec.levels)
	assert.Equal(t, []string{"Wellness Student"}, rec.achievements)
}

func TestRecordAction_DefaultXPAndLazyProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	engine := new(MockEvaluator)
	engine.On("EvaluateAction", ctx, userID, "journal_entry").Return([]string{}, nil)

	uc, rec := newGamification(newMemoryProfiles(), new(MockAchievementStore), engine)

	res, err := uc.RecordAction(ctx, userID, "journal_entry", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, res.NewLevel)
	assert.Equal(t, 10, res.NewXP)
	assert.Empty(t, res.UnlockedAchievements)
	assert.NotNil(t, res.UnlockedAchievements)
	assert.Equal(t, 10, rec.xp)
}

func TestRecordAction_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		action string
		xp     *int
		field  string
	}{
		{"missing type", " ", nil, "type"},
		{"negative xp", "daily_mission", intPtr(-5), "xp"},
		{"xp above cap", "daily_mission", intPtr(1001), "xp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := new(MockProfileStore)
			engine := new(MockEvaluator)
			uc, _ := newGamification(profiles, new(MockAchievementStore), engine)

			_, err := uc.RecordAction(context.Background(), uuid.New(), tt.action, tt.xp)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			profiles.AssertNotCalled(t, "UpdateProgress", mock.Anything, mock.Anything, mock.Anything)
			engine.AssertNotCalled(t, "EvaluateAction", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRecordAction_UnlockFailureGrantsNoXP(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	profiles := new(MockProfileStore)
	engine := new(MockEvaluator)
	engine.On("EvaluateAction", ctx, userID, gamification.ActionDailyMission).Return(nil, domain.ErrPersistence)

	uc, rec := newGamification(profiles, new(MockAchievementStore), engine)

	_, err := uc.RecordAction(ctx, userID, gamification.ActionDailyMission, nil)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Zero(t, rec.xp)
	profiles.AssertNotCalled(t, "UpdateProgress", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordAction_RetryAfterProgressFailureGrantsXPOnce(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	profiles := newMemoryProfiles()
	profiles.fail = domain.ErrPersistence
	store := &memoryAchievements{}
	engine := gamification.NewUnlockEngine(store, gamification.DefaultCatalog)
	uc, rec := newGamification(profiles, store, engine)

	_, err := uc.RecordAction(ctx, userID, gamification.ActionDailyMission, intPtr(40))
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.Zero(t, rec.xp)

	profiles.fail = nil
	res, err := uc.RecordAction(ctx, userID, gamification.ActionDailyMission, intPtr(40))
	require.NoError(t, err)

	assert.Equal(t, 40, res.NewXP)
	assert.Empty(t, res.UnlockedAchievements)
	assert.Equal(t, 40, rec.xp)

	view, err := uc.ListAchievements(ctx, userID)
	require.NoError(t, err)
	require.Len(t, view.Unlocked, 1)
	assert.Equal(t, "Dedicated", view.Unlocked[0].Name)
}

func TestListAchievements_MasksSecretEntries(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	hint := "Log your mood at dawn"
	unlockedAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	student := domain.Achievement{ID: 1, Name: "Wellness Student", Description: "Complete a wellness resource", Points: 50}
	dedicated := domain.Achievement{ID: 2, Name: "Dedicated", Description: "Complete a daily mission", Points: 30}
	earlyBird := domain.Achievement{ID: 3, Name: "Early Bird", Description: "hidden", Points: 100, Secret: true, Hint: &hint}

	store := new(MockAchievementStore)
	store.On("ListAll", ctx).Return([]domain.Achievement{student, dedicated, earlyBird}, nil)
	store.On("ListUnlocks", ctx, userID).Return([]domain.AchievementUnlock{
		{UserID: userID, AchievementID: 1, Achievement: student, UnlockedAt: unlockedAt},
	}, nil)

	uc, _ := newGamification(new(MockProfileStore), store, new(MockEvaluator))

	view, err := uc.ListAchievements(ctx, userID)
	require.NoError(t, err)

	require.Len(t, view.Unlocked, 1)
	assert.Equal(t, "Wellness Student", view.Unlocked[0].Name)
	assert.Equal(t, unlockedAt, view.Unlocked[0].UnlockedAt)
	assert.Equal(t, 50, view.TotalPoints)

	require.Len(t, view.Locked, 2)
	assert.Equal(t, "Complete a daily mission", view.Locked[0].Description)
	assert.Nil(t, view.Locked[0].Hint)
	assert.Empty(t, view.Locked[1].Description)
	assert.Equal(t, &hint, view.Locked[1].Hint)
}

func TestListAchievements_CatalogGrowsWithActions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	store := &memoryAchievements{}
	engine := gamification.NewUnlockEngine(store, gamification.DefaultCatalog)
	uc, _ := newGamification(newMemoryProfiles(), store, engine)

	view, err := uc.ListAchievements(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, view.Unlocked)
	assert.Empty(t, view.Locked)
	assert.Zero(t, view.TotalPoints)

	_, err = uc.RecordAction(ctx, userID, gamification.ActionDailyMission, nil)
	require.NoError(t, err)

	view, err = uc.ListAchievements(ctx, userID)
	require.NoError(t, err)
	require.Len(t, view.Unlocked, 1)
	assert.Equal(t, "Dedicated", view.Unlocked[0].Name)
	assert.Equal(t, 30, view.TotalPoints)
	assert.Empty(t, view.Locked)

	other, err := uc.ListAchievements(ctx, uuid.New())
	require.NoError(t, err)
	require.Len(t, other.Locked, 1)
	assert.Equal(t, "Dedicated", other.Locked[0].Name)
}
