package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/waste3d/mindwell-api/internal/dashboard"
	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTracking() (*TrackingUseCase, *MockMoodLogStore, *MockReminderStore, *MockStatsCache) {
	logs := new(MockMoodLogStore)
	reminders := new(MockReminderStore)
	cache := new(MockStatsCache)
	log, _ := test.NewNullLogger()
	return NewTrackingUseCase(logs, reminders, cache, log), logs, reminders, cache
}

func TestCreateMoodLog_DefaultsAndInvalidation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC)

	uc, logs, _, cache := newTracking()
	uc.now = func() time.Time { return now }

	logs.On("Create", ctx, mock.MatchedBy(func(m *domain.MoodLog) bool {
		return m.UserID == userID && m.LoggedAt.Equal(now) && m.Intensity == 5 && m.Energy == 5
	})).Return(nil)
	cache.On("Invalidate", ctx, userID.String()).Return(nil)

	entry, err := uc.CreateMoodLog(ctx, userID, MoodLogInput{Emotion: domain.EmotionContent, Activities: "yoga"})
	require.NoError(t, err)
	assert.Equal(t, domain.EmotionContent, entry.Emotion)

	logs.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCreateMoodLog_Invalid(t *testing.T) {
	uc, logs, _, cache := newTracking()

	_, err := uc.CreateMoodLog(context.Background(), uuid.New(), MoodLogInput{Emotion: "bored", Intensity: intPtr(12)})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "emotion")
	assert.Contains(t, verr.Fields, "intensity")
	logs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestDeleteMoodLog_NotFoundKeepsCache(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	uc, logs, _, cache := newTracking()
	logs.On("Delete", ctx, userID, uint(9)).Return(domain.ErrNotFound)

	err := uc.DeleteMoodLog(ctx, userID, 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	key := userID.String()

	t.Run("cache hit", func(t *testing.T) {
		uc, logs, _, cache := newTracking()
		cached := &dashboard.Stats{TotalDays: 42}
		cache.On("Generation", ctx, key).Return(int64(3), nil)
		cache.On("Get", ctx, key, int64(3)).Return(cached, nil)

		stats, err := uc.Stats(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 42, stats.TotalDays)
		logs.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("miss computes and stores under the same generation", func(t *testing.T) {
		uc, logs, _, cache := newTracking()
		entries := []domain.MoodLog{
			{ID: 1, Emotion: domain.EmotionHappy, Intensity: 6, Energy: 4, LoggedAt: time.Now()},
		}
		cache.On("Generation", ctx, key).Return(int64(1), nil)
		cache.On("Get", ctx, key, int64(1)).Return(nil, nil)
		logs.On("ListByUser", ctx, userID, 0).Return(entries, nil)
		cache.On("Set", ctx, key, int64(1), mock.MatchedBy(func(s dashboard.Stats) bool { return s.TotalDays == 1 })).Return(nil)

		stats, err := uc.Stats(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 6.0, stats.AverageIntensity)
		cache.AssertExpectations(t)
	})

	t.Run("broken cache still answers", func(t *testing.T) {
		uc, logs, _, cache := newTracking()
		cache.On("Generation", ctx, key).Return(int64(0), errors.New("redis down"))
		logs.On("ListByUser", ctx, userID, 0).Return([]domain.MoodLog{}, nil)

		stats, err := uc.Stats(ctx, userID)
		require.NoError(t, err)
		assert.Zero(t, stats.TotalDays)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

// racingMoodLogs runs afterList once, right after the read snapshot is taken.
type racingMoodLogs struct {
	mu        sync.Mutex
	logs      []domain.MoodLog
	afterList func()
}

func (s *racingMoodLogs) Create(_ context.Context, entry *domain.MoodLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = uint(len(s.logs) + 1)
	s.logs = append(s.logs, *entry)
	return nil
}

func (s *racingMoodLogs) ListByUser(_ context.Context, userID uuid.UUID, _ int) ([]domain.MoodLog, error) {
	s.mu.Lock()
	var out []domain.MoodLog
	for _, l := range s.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	hook := s.afterList
	s.afterList = nil
	s.mu.Unlock()

	if hook != nil {
		hook()
	}
	return out, nil
}

func (s *racingMoodLogs) Get(context.Context, uuid.UUID, uint) (*domain.MoodLog, error) {
	return nil, domain.ErrNotFound
}

func (s *racingMoodLogs) Delete(context.Context, uuid.UUID, uint) error {
	return domain.ErrNotFound
}

type memoryStatsCache struct {
	mu      sync.Mutex
	gens    map[string]int64
	entries map[string]dashboard.Stats
}

func newMemoryStatsCache() *memoryStatsCache {
	return &memoryStatsCache{gens: map[string]int64{}, entries: map[string]dashboard.Stats{}}
}

func (c *memoryStatsCache) Generation(_ context.Context, userID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[userID], nil
}

func (c *memoryStatsCache) Get(_ context.Context, userID string, gen int64) (*dashboard.Stats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	stats, ok := c.entries[fmt.Sprintf("%s:%d", userID, gen)]
	if !ok {
		return nil, nil
	}
	return &stats, nil
}

func (c *memoryStatsCache) Set(_ context.Context, userID string, gen int64, stats dashboard.Stats) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[fmt.Sprintf("%s:%d", userID, gen)] = stats
	return nil
}

func (c *memoryStatsCache) Invalidate(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[userID]++
	return nil
}

func TestStats_WriteDuringComputeIsNotMasked(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	store := &racingMoodLogs{}
	log, _ := test.NewNullLogger()
	uc := NewTrackingUseCase(store, new(MockReminderStore), newMemoryStatsCache(), log)

	store.afterList = func() {
		_, err := uc.CreateMoodLog(ctx, userID, MoodLogInput{Emotion: domain.EmotionHappy})
		require.NoError(t, err)
	}

	first, err := uc.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, first.TotalDays)

	second, err := uc.Stats(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, second.TotalDays)
}

func TestUpdateReminder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	existing := &domain.Reminder{ID: 3, UserID: userID, Title: "Sleep early", ScheduledAt: time.Now(), Type: domain.ReminderSleep}

	t.Run("applies patch", func(t *testing.T) {
		uc, _, reminders, _ := newTracking()
		r := *existing
		reminders.On("Get", ctx, userID, uint(3)).Return(&r, nil)
		reminders.On("Update", ctx, mock.MatchedBy(func(r *domain.Reminder) bool { return r.Completed })).Return(nil)

		done := true
		got, err := uc.UpdateReminder(ctx, userID, 3, domain.ReminderPatch{Completed: &done})
		require.NoError(t, err)
		assert.True(t, got.Completed)
		assert.Equal(t, "Sleep early", got.Title)
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		uc, _, reminders, _ := newTracking()
		r := *existing
		reminders.On("Get", ctx, userID, uint(3)).Return(&r, nil)

		nap := domain.ReminderType("nap")
		_, err := uc.UpdateReminder(ctx, userID, 3, domain.ReminderPatch{Type: &nap})
		assert.True(t, domain.IsValidation(err))
		reminders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestCreateReminder_DefaultsType(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	uc, _, reminders, _ := newTracking()
	reminders.On("Create", ctx, mock.MatchedBy(func(r *domain.Reminder) bool {
		return r.UserID == userID && r.Type == domain.ReminderOther && r.ID == 0
	})).Return(nil)

	_, err := uc.CreateReminder(ctx, userID, domain.Reminder{ID: 77, Title: "Breathe", ScheduledAt: time.Now()})
	require.NoError(t, err)
	reminders.AssertExpectations(t)
}
