package simulator

import (
	"time"

	"github.com/andriantama/brewsim/internal/factories"
	"github.com/andriantama/brewsim/internal/models"
	"github.com/andriantama/brewsim/internal/rng"
)

// spawnMargin keeps fresh customers just outside the visible strip so they
// walk into frame instead of popping in.
const spawnMargin = 16.0

// Spawner rolls for a new customer on a fixed interval. Each successful roll
// picks an edge by coin toss and walks the customer towards the opposite one.
type Spawner struct {
	config   *models.Config
	rng      *rng.Rng
	factory  *factories.CustomerFactory
	variants []*models.CustomerVariant
}

func NewSpawner(config *models.Config, r *rng.Rng) *Spawner {
	return &Spawner{
		config:   config,
		rng:      r,
		factory:  &factories.CustomerFactory{},
		variants: factories.DefaultVariants,
	}
}

// Interval returns the delay between spawn checks on the in-game clock. The
// cadence is authored in wall seconds, and one wall second spans
// timeSpeed*timeMultiplier in-game minutes, so the check density per in-game
// minute stays constant whether or not fast forward is active.
func (sp *Spawner) Interval() time.Duration {
	minutes := sp.config.SpawnIntervalSeconds * sp.config.TimeSpeed * sp.config.TimeMultiplier
	return time.Duration(minutes * float64(time.Minute))
}

// TrySpawn rolls the spawn chance once and returns the new customer, or nil
// when the roll fails.
func (sp *Spawner) TrySpawn(now time.Time) *models.Customer {
	if !sp.rng.Chance(sp.config.SpawnChance) {
		return nil
	}

	y := sp.rng.FloatBetween(sp.config.MinSpawnY, sp.config.MaxSpawnY)
	variant := sp.variants[sp.rng.IntBetween(0, len(sp.variants)-1)]

	var position models.Vec2
	var direction models.Vec2
	if sp.rng.CoinToss() == 0 {
		position = models.Vec2{X: -spawnMargin, Y: y}
		direction = models.DirectionRight
	} else {
		position = models.Vec2{X: sp.config.ScreenWidth + spawnMargin, Y: y}
		direction = models.DirectionLeft
	}

	customer := sp.factory.CreateCustomer(sp.config, variant, position, now)
	customer.SetWalkDirection(direction)
	return customer
}
