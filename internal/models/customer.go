package models

import "time"

// Vec2 is a 2-D position or direction on the promenade. Movement is pure
// straight-line translation; there is no collision or physics.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var (
	DirectionLeft  = Vec2{X: -1, Y: 0}
	DirectionRight = Vec2{X: 1, Y: 0}
)

// CustomerVariant is an immutable preference triple authored as game
// content. Customers reference a variant; they never own or mutate one.
type CustomerVariant struct {
	Name       string      `json:"name"`
	Preference Ingredients `json:"preference"`
}

// Customer is one spawned passer-by. It walks toward the cart, decides
// whether to queue, and leaves after being served or rejected.
type Customer struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	State           string           `json:"state"`
	Variant         *CustomerVariant `json:"-"`
	Position        Vec2             `json:"position"`
	WalkDirection   Vec2             `json:"-"`
	WalkSpeed       float64          `json:"-"`
	SpeedMultiplier float64          `json:"-"`
	FacingRight     bool             `json:"-"`
	Feedback        string           `json:"feedback,omitempty"`
	SpawnedAt       time.Time        `json:"spawned_at"`

	// decided latches the queue decision so re-entering the cart's trigger
	// region never rolls the dice twice.
	decided bool
}

// SetWalkDirection points the customer along the promenade and flips its
// visual orientation when heading right.
func (c *Customer) SetWalkDirection(direction Vec2) {
	c.WalkDirection = direction
	c.FacingRight = direction == DirectionRight
}

// Step advances the customer's straight-line walk. Waiting customers hold
// their place in the queue and do not move.
func (c *Customer) Step(delta float64) {
	if c.State == CustomerStateWaiting {
		return
	}
	c.Position.X += c.WalkDirection.X * c.WalkSpeed * delta * c.SpeedMultiplier
	c.Position.Y += c.WalkDirection.Y * c.WalkSpeed * delta * c.SpeedMultiplier
}

// HasDecided reports whether the queue decision has already been made.
func (c *Customer) HasDecided() bool {
	return c.decided
}

// MarkDecided latches the queue decision.
func (c *Customer) MarkDecided() {
	c.decided = true
}
