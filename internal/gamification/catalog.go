package gamification

import "github.com/waste3d/mindwell-api/internal/domain"

// Action types that carry an achievement.
const (
	ActionResourceCompleted = "resource_completed"
	ActionDailyMission      = "daily_mission"
)

// Definition describes the catalog entry created the first time its action fires.
type Definition struct {
	Name        string
	Description string
	Icon        string
	Points      int
	Rarity      domain.Rarity
}

func (d Definition) Achievement() *domain.Achievement {
	rarity := d.Rarity
	if rarity == "" {
		rarity = domain.RarityCommon
	}
	return &domain.Achievement{
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
		Points:      d.Points,
		Rarity:      rarity,
	}
}

// Catalog maps an action type to the achievement it unlocks.
type Catalog map[string]Definition

var DefaultCatalog = Catalog{
	ActionResourceCompleted: {
		Name:        "Wellness Student",
		Description: "Complete a wellness resource",
		Icon:        "📚",
		Points:      50,
	},
	ActionDailyMission: {
		Name:        "Dedicated",
		Description: "Complete a daily mission",
		Icon:        "🎯",
		Points:      30,
	},
}

func (c Catalog) Lookup(actionType string) (Definition, bool) {
	def, ok := c[actionType]
	return def, ok
}
