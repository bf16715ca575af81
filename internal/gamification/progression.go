// Package gamification turns user actions into experience, levels and achievements.
package gamification

import (
	"github.com/google/uuid"

	"github.com/waste3d/mindwell-api/internal/domain"
)

// LevelUp is emitted once for every level boundary crossed by a single grant.
type LevelUp struct {
	UserID uuid.UUID
	From   int
	To     int
}

// ApplyXP adds xp to the profile and rolls the excess over into as many
// level-ups as it pays for. On return Experience < Level*XPPerLevel.
func ApplyXP(p *domain.Profile, xp int) ([]LevelUp, error) {
	if xp < 0 {
		return nil, domain.FieldError("xp", "must not be negative")
	}
	if p.Level < 1 {
		p.Level = 1
	}
	if p.Experience < 0 {
		p.Experience = 0
	}

	p.Experience += xp

	var ups []LevelUp
	for p.Experience >= p.NextLevelExperience() {
		p.Experience -= p.NextLevelExperience()
		ups = append(ups, LevelUp{UserID: p.UserID, From: p.Level, To: p.Level + 1})
		p.Level++
	}
	return ups, nil
}
