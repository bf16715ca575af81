package repository

import (
	"context"
	"errors"

	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create stores the initial profile of a freshly registered user.
func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	return translate(r.db.WithContext(ctx).Create(profile).Error)
}

// Find returns domain.ErrNotFound when the user has no profile yet.
func (r *ProfileRepository) Find(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// GetOrCreate never yields two profiles for one user: a lost insert race
// falls back to reading the winner's row.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).
		Where(domain.Profile{UserID: userID}).
		Attrs(*domain.NewProfile(userID)).
		FirstOrCreate(&profile).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.Find(ctx, userID)
	}
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// UpdateProgress runs fn against a row-locked profile and persists level and
// experience in the same transaction, so concurrent awards are serialized.
func (r *ProfileRepository) UpdateProgress(ctx context.Context, userID uuid.UUID, fn func(*domain.Profile) error) (*domain.Profile, error) {
	// Строку создаём заранее: вставка внутри транзакции при гонке ломает её целиком
	if _, err := r.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	var profile domain.Profile
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&profile, "user_id = ?", userID).Error; err != nil {
			return err
		}

		if err := fn(&profile); err != nil {
			return err
		}

		return tx.Model(&domain.Profile{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"level":      profile.Level,
				"experience": profile.Experience,
			}).Error
	})
	if err != nil {
		if domain.IsValidation(err) {
			return nil, err
		}
		return nil, translate(err)
	}
	return &profile, nil
}

// UpdateSettings applies a partial edit and returns the fresh row.
func (r *ProfileRepository) UpdateSettings(ctx context.Context, userID uuid.UUID, settings domain.ProfileSettings) (*domain.Profile, error) {
	profile, err := r.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	cols := settings.Columns()
	if len(cols) == 0 {
		return profile, nil
	}

	if err := r.db.WithContext(ctx).Model(&domain.Profile{}).
		Where("user_id = ?", userID).
		Updates(cols).Error; err != nil {
		return nil, translate(err)
	}
	return r.Find(ctx, userID)
}
