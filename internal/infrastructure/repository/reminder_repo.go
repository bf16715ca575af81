package repository

import (
	"context"

	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Create(ctx context.Context, reminder *domain.Reminder) error {
	return translate(r.db.WithContext(ctx).Create(reminder).Error)
}

// List returns the user's reminders, soonest first.
func (r *ReminderRepository) List(ctx context.Context, userID uuid.UUID) ([]domain.Reminder, error) {
	var reminders []domain.Reminder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_at asc").
		Find(&reminders).Error
	return reminders, translate(err)
}

func (r *ReminderRepository) Get(ctx context.Context, userID uuid.UUID, id uint) (*domain.Reminder, error) {
	var reminder domain.Reminder
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).First(&reminder).Error; err != nil {
		return nil, translate(err)
	}
	return &reminder, nil
}

func (r *ReminderRepository) Update(ctx context.Context, reminder *domain.Reminder) error {
	return translate(r.db.WithContext(ctx).Save(reminder).Error)
}

func (r *ReminderRepository) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&domain.Reminder{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
