package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/waste3d/mindwell-api/internal/domain"
	"github.com/waste3d/mindwell-api/internal/gamification"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ActionResult struct {
	Message              string   `json:"message"`
	NewLevel             int      `json:"newLevel"`
	NewXP                int      `json:"newXp"`
	LevelsGained         int      `json:"levelsGained"`
	UnlockedAchievements []string `json:"unlockedAchievements"`
}

type UnlockedAchievement struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Rarity      domain.Rarity `json:"rarity"`
	Points      int           `json:"points"`
	UnlockedAt  time.Time     `json:"unlockedAt"`
}

// LockedAchievement hides the description of secret entries; only the hint is shown.
type LockedAchievement struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Icon        string        `json:"icon"`
	Rarity      domain.Rarity `json:"rarity"`
	Points      int           `json:"points"`
	Secret      bool          `json:"secret"`
	Hint        *string       `json:"hint,omitempty"`
}

type AchievementsView struct {
	Unlocked    []UnlockedAchievement `json:"unlocked"`
	Locked      []LockedAchievement   `json:"locked"`
	TotalPoints int                   `json:"totalPoints"`
}

type GamificationConfig struct {
	DefaultXP int
	MaxXP     int
}

type GamificationUseCase struct {
	profiles     ProfileStore
	achievements AchievementStore
	engine       ActionEvaluator
	metrics      ProgressRecorder
	log          *logrus.Logger
	cfg          GamificationConfig
}

func NewGamificationUseCase(
	profiles ProfileStore,
	achievements AchievementStore,
	engine ActionEvaluator,
	metrics ProgressRecorder,
	log *logrus.Logger,
	cfg GamificationConfig,
) *GamificationUseCase {
	if cfg.DefaultXP <= 0 {
		cfg.DefaultXP = 10
	}
	return &GamificationUseCase{
		profiles:     profiles,
		achievements: achievements,
		engine:       engine,
		metrics:      metrics,
		log:          log,
		cfg:          cfg,
	}
}

// RecordAction awards xp (the configured default when nil) and evaluates
// achievements for the action type. Unlocks go first: they are idempotent, so
// a retry after a failed xp update cannot grant the experience twice.
func (uc *GamificationUseCase) RecordAction(ctx context.Context, userID uuid.UUID, actionType string, xp *int) (*ActionResult, error) {
	actionType = strings.TrimSpace(actionType)
	if actionType == "" {
		return nil, domain.FieldError("type", "is required")
	}

	amount := uc.cfg.DefaultXP
	if xp != nil {
		amount = *xp
	}
	if amount < 0 {
		return nil, domain.FieldError("xp", "must not be negative")
	}
	if uc.cfg.MaxXP > 0 && amount > uc.cfg.MaxXP {
		return nil, domain.FieldError("xp", fmt.Sprintf("must be at most %d", uc.cfg.MaxXP))
	}

	unlocked, err := uc.engine.EvaluateAction(ctx, userID, actionType)
	if err != nil {
		return nil, err
	}
	for _, name := range unlocked {
		uc.metrics.AchievementUnlocked(name)
		uc.log.WithFields(logrus.Fields{"user_id": userID, "achievement": name}).Info("achievement unlocked")
	}

	var levelUps []gamification.LevelUp
	profile, err := uc.profiles.UpdateProgress(ctx, userID, func(p *domain.Profile) error {
		ups, err := gamification.ApplyXP(p, amount)
		levelUps = ups
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.XPGranted(amount)
	if len(levelUps) > 0 {
		uc.metrics.LevelsGained(len(levelUps))
		for _, up := range levelUps {
			uc.log.WithFields(logrus.Fields{
				"user_id": up.UserID,
				"from":    up.From,
				"to":      up.To,
			}).Info("level up")
		}
	}

	return &ActionResult{
		Message:              "Action recorded",
		NewLevel:             profile.Level,
		NewXP:                profile.Experience,
		LevelsGained:         len(levelUps),
		UnlockedAchievements: unlocked,
	}, nil
}

func (uc *GamificationUseCase) ListAchievements(ctx context.Context, userID uuid.UUID) (*AchievementsView, error) {
	all, err := uc.achievements.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	unlocks, err := uc.achievements.ListUnlocks(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &AchievementsView{
		Unlocked: []UnlockedAchievement{},
		Locked:   []LockedAchievement{},
	}

	earned := make(map[uint]bool, len(unlocks))
	for _, u := range unlocks {
		earned[u.AchievementID] = true
		view.Unlocked = append(view.Unlocked, UnlockedAchievement{
			Name:        u.Achievement.Name,
			Description: u.Achievement.Description,
			Icon:        u.Achievement.Icon,
			Rarity:      u.Achievement.Rarity,
			Points:      u.Achievement.Points,
			UnlockedAt:  u.UnlockedAt,
		})
		view.TotalPoints += u.Achievement.Points
	}

	for _, a := range all {
		if earned[a.ID] {
			continue
		}
		locked := LockedAchievement{
			Name:   a.Name,
			Icon:   a.Icon,
			Rarity: a.Rarity,
			Points: a.Points,
			Secret: a.Secret,
		}
		if a.Secret {
			locked.Hint = a.Hint
		} else {
			locked.Description = a.Description
		}
		view.Locked = append(view.Locked, locked)
	}
	return view, nil
}
