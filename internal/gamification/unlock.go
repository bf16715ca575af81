package gamification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/waste3d/mindwell-api/internal/domain"
)

// AchievementStore persists catalog entries and unlocks.
// Unlock must return domain.ErrConflict when the pair already exists.
type AchievementStore interface {
	GetOrCreate(ctx context.Context, a *domain.Achievement) (*domain.Achievement, error)
	Unlock(ctx context.Context, userID uuid.UUID, achievementID uint) error
}

type UnlockEngine struct {
	store   AchievementStore
	catalog Catalog
}

func NewUnlockEngine(store AchievementStore, catalog Catalog) *UnlockEngine {
	if catalog == nil {
		catalog = DefaultCatalog
	}
	return &UnlockEngine{store: store, catalog: catalog}
}

// EvaluateAction returns the names of achievements the action unlocked right now.
// Unknown actions and already-earned achievements yield an empty, non-nil slice.
func (e *UnlockEngine) EvaluateAction(ctx context.Context, userID uuid.UUID, actionType string) ([]string, error) {
	unlocked := []string{}

	def, ok := e.catalog.Lookup(actionType)
	if !ok {
		return unlocked, nil
	}

	achievement, err := e.store.GetOrCreate(ctx, def.Achievement())
	if err != nil {
		return nil, fmt.Errorf("get achievement %q: %w", def.Name, err)
	}

	if err := e.store.Unlock(ctx, userID, achievement.ID); err != nil {
		// Второй запрос с тем же действием упирается в первичный ключ.
		if errors.Is(err, domain.ErrConflict) {
			return unlocked, nil
		}
		return nil, fmt.Errorf("unlock achievement %q: %w", def.Name, err)
	}

	return append(unlocked, achievement.Name), nil
}
