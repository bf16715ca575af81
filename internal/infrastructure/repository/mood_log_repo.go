package repository

import (
	"context"

	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MoodLogRepository struct {
	db *gorm.DB
}

func NewMoodLogRepository(db *gorm.DB) *MoodLogRepository {
	return &MoodLogRepository{db: db}
}

func (r *MoodLogRepository) Create(ctx context.Context, log *domain.MoodLog) error {
	return translate(r.db.WithContext(ctx).Create(log).Error)
}

// ListByUser returns the newest entries first. limit <= 0 means all of them.
func (r *MoodLogRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.MoodLog, error) {
	var logs []domain.MoodLog
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at desc").
		Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&logs).Error
	return logs, translate(err)
}

func (r *MoodLogRepository) Get(ctx context.Context, userID uuid.UUID, id uint) (*domain.MoodLog, error) {
	var log domain.MoodLog
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&log).Error; err != nil {
		return nil, translate(err)
	}
	return &log, nil
}

// Delete answers domain.ErrNotFound for foreign and missing entries alike.
func (r *MoodLogRepository) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&domain.MoodLog{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
