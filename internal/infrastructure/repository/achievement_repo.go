package repository

import (
	"context"
	"errors"

	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// GetOrCreate looks the achievement up by name and inserts def when missing.
// Existing rows are returned untouched.
func (r *AchievementRepository) GetOrCreate(ctx context.Context, def *domain.Achievement) (*domain.Achievement, error) {
	var found domain.Achievement
	err := r.db.WithContext(ctx).
		Where(domain.Achievement{Name: def.Name}).
		Attrs(*def).
		FirstOrCreate(&found).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = r.db.WithContext(ctx).Where("name = ?", def.Name).First(&found).Error
	}
	if err != nil {
		return nil, translate(err)
	}
	return &found, nil
}

// Unlock returns domain.ErrConflict when the pair is already recorded.
func (r *AchievementRepository) Unlock(ctx context.Context, userID uuid.UUID, achievementID uint) error {
	unlock := domain.AchievementUnlock{UserID: userID, AchievementID: achievementID}
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(&unlock).Error)
}

func (r *AchievementRepository) ListAll(ctx context.Context) ([]domain.Achievement, error) {
	var achievements []domain.Achievement
	err := r.db.WithContext(ctx).Order("id asc").Find(&achievements).Error
	return achievements, translate(err)
}

func (r *AchievementRepository) ListUnlocks(ctx context.Context, userID uuid.UUID) ([]domain.AchievementUnlock, error) {
	var unlocks []domain.AchievementUnlock
	err := r.db.WithContext(ctx).
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("unlocked_at asc").
		Find(&unlocks).Error
	return unlocks, translate(err)
}
