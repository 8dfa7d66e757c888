package factories

import (
	"time"

	"github.com/andriantama/brewsim/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

// DefaultVariants is the authored preference content. Every spawned customer
// references one of these; variants themselves are never mutated.
var DefaultVariants = []*models.CustomerVariant{
	{Name: "balanced", Preference: models.Ingredients{Coffee: 7, Milk: 120, Sugar: 10}},
	{Name: "strong", Preference: models.Ingredients{Coffee: 9, Milk: 90, Sugar: 8}},
	{Name: "sweet_tooth", Preference: models.Ingredients{Coffee: 6, Milk: 130, Sugar: 14}},
	{Name: "milky", Preference: models.Ingredients{Coffee: 6, Milk: 160, Sugar: 10}},
	{Name: "purist", Preference: models.Ingredients{Coffee: 8, Milk: 60, Sugar: 5}},
}

type CustomerFactory struct{}

// CreateCustomer builds a walking customer at the given spawn position. The
// caller decides variant and walk direction; the factory only fills identity
// and movement defaults.
func (cf *CustomerFactory) CreateCustomer(config *models.Config, variant *models.CustomerVariant, position models.Vec2, spawnedAt time.Time) *models.Customer {
	return &models.Customer{
		ID:              cuid.New(),
		Name:            fake.Person().Name(),
		State:           models.CustomerStateWalking,
		Variant:         variant,
		Position:        position,
		WalkDirection:   models.DirectionLeft,
		WalkSpeed:       config.WalkSpeed,
		SpeedMultiplier: config.SpeedMultiplier,
		SpawnedAt:       spawnedAt,
	}
}
