package usecase

import (
	"context"
	"time"

	"github.com/waste3d/mindwell-api/internal/dashboard"
	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type MoodLogInput struct {
	Emotion    domain.Emotion
	Intensity  *int
	Energy     *int
	Note       *string
	Activities string
}

type TrackingUseCase struct {
	moodLogs  MoodLogStore
	reminders ReminderStore
	cache     StatsCache
	log       *logrus.Logger
	now       func() time.Time
}

func NewTrackingUseCase(moodLogs MoodLogStore, reminders ReminderStore, cache StatsCache, log *logrus.Logger) *TrackingUseCase {
	return &TrackingUseCase{
		moodLogs:  moodLogs,
		reminders: reminders,
		cache:     cache,
		log:       log,
		now:       time.Now,
	}
}

func (uc *TrackingUseCase) ListMoodLogs(ctx context.Context, userID uuid.UUID) ([]domain.MoodLog, error) {
	logs, err := uc.moodLogs.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []domain.MoodLog{}
	}
	return logs, nil
}

// CreateMoodLog stamps the entry with the server time; clients cannot backdate it.
func (uc *TrackingUseCase) CreateMoodLog(ctx context.Context, userID uuid.UUID, in MoodLogInput) (*domain.MoodLog, error) {
	entry := &domain.MoodLog{
		UserID:     userID,
		LoggedAt:   uc.now(),
		Emotion:    in.Emotion,
		Intensity:  domain.ScaleDefault,
		Energy:     domain.ScaleDefault,
		Note:       in.Note,
		Activities: in.Activities,
	}
	if in.Intensity != nil {
		entry.Intensity = *in.Intensity
	}
	if in.Energy != nil {
		entry.Energy = *in.Energy
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := uc.moodLogs.Create(ctx, entry); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, userID)
	return entry, nil
}

func (uc *TrackingUseCase) GetMoodLog(ctx context.Context, userID uuid.UUID, id uint) (*domain.MoodLog, error) {
	return uc.moodLogs.Get(ctx, userID, id)
}

func (uc *TrackingUseCase) DeleteMoodLog(ctx context.Context, userID uuid.UUID, id uint) error {
	if err := uc.moodLogs.Delete(ctx, userID, id); err != nil {
		return err
	}
	uc.invalidate(ctx, userID)
	return nil
}

// Stats serves the dashboard from cache when possible. Cache failures only cost a recompute.
// The generation is read before the logs, so stats computed from logs that a
// concurrent write already outdated land under a key nobody reads again.
func (uc *TrackingUseCase) Stats(ctx context.Context, userID uuid.UUID) (dashboard.Stats, error) {
	key := userID.String()

	gen, err := uc.cache.Generation(ctx, key)
	if err != nil {
		uc.log.WithError(err).Warn("stats cache read failed")
		return uc.computeStats(ctx, userID)
	}

	cached, err := uc.cache.Get(ctx, key, gen)
	if err != nil {
		uc.log.WithError(err).Warn("stats cache read failed")
	}
	if cached != nil {
		return *cached, nil
	}

	stats, err := uc.computeStats(ctx, userID)
	if err != nil {
		return dashboard.Stats{}, err
	}
	if err := uc.cache.Set(ctx, key, gen, stats); err != nil {
		uc.log.WithError(err).Warn("stats cache write failed")
	}
	return stats, nil
}

func (uc *TrackingUseCase) computeStats(ctx context.Context, userID uuid.UUID) (dashboard.Stats, error) {
	logs, err := uc.moodLogs.ListByUser(ctx, userID, 0)
	if err != nil {
		return dashboard.Stats{}, err
	}
	return dashboard.ComputeStats(logs), nil
}

func (uc *TrackingUseCase) invalidate(ctx context.Context, userID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, userID.String()); err != nil {
		uc.log.WithError(err).WithField("user_id", userID).Warn("stats cache invalidation failed")
	}
}

func (uc *TrackingUseCase) ListReminders(ctx context.Context, userID uuid.UUID) ([]domain.Reminder, error) {
	reminders, err := uc.reminders.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reminders == nil {
		reminders = []domain.Reminder{}
	}
	return reminders, nil
}

func (uc *TrackingUseCase) CreateReminder(ctx context.Context, userID uuid.UUID, r domain.Reminder) (*domain.Reminder, error) {
	r.ID = 0
	r.UserID = userID
	if r.Type == "" {
		r.Type = domain.ReminderOther
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := uc.reminders.Create(ctx, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (uc *TrackingUseCase) GetReminder(ctx context.Context, userID uuid.UUID, id uint) (*domain.Reminder, error) {
	return uc.reminders.Get(ctx, userID, id)
}

func (uc *TrackingUseCase) UpdateReminder(ctx context.Context, userID uuid.UUID, id uint, patch domain.ReminderPatch) (*domain.Reminder, error) {
	r, err := uc.reminders.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(r)
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := uc.reminders.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *TrackingUseCase) DeleteReminder(ctx context.Context, userID uuid.UUID, id uint) error {
	return uc.reminders.Delete(ctx, userID, id)
}
