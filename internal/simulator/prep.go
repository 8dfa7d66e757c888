package simulator

import (
	"errors"
	"fmt"

	"github.com/andriantama/brewsim/internal/models"
)

// PrepOutcome reports what the shopkeeper managed to do before opening.
type PrepOutcome struct {
	// Purchased is nil when the daily purchase was skipped.
	Purchased *models.PurchaseOrder
	Cost      int

	// Alerts are the blocked actions the in-game UI would have flashed at
	// the player.
	Alerts []string
}

// PrepPhase applies the configured shopkeeper policy before the doors open:
// buy the daily restock, set the recipe and price, then brew the day's
// stock. It stands in for the player working the prep screens.
type PrepPhase struct {
	config *models.Config
	state  *models.GameState
}

func NewPrepPhase(config *models.Config, state *models.GameState) *PrepPhase {
	return &PrepPhase{config: config, state: state}
}

// Run executes the policy. Individual blocked actions (no funds, bad recipe)
// degrade to alerts and the day continues on the previous settings; the
// returned error is non-nil only when the day cannot open at all.
func (p *PrepPhase) Run() (*PrepOutcome, error) {
	outcome := &PrepOutcome{}
	policy := p.config.Shopkeeper

	if p.state.IsNewGame() {
		p.state.StartNew()
	}

	order := policy.DailyPurchase
	if err := p.state.PurchaseIngredients(order); err != nil {
		outcome.Alerts = append(outcome.Alerts, fmt.Sprintf("purchase skipped: %v", err))
	} else {
		outcome.Purchased = &order
		outcome.Cost = order.Cost()
	}

	if err := p.state.SaveRecipe(policy.Recipe.Coffee, policy.Recipe.Milk, policy.Recipe.Sugar); err != nil {
		outcome.Alerts = append(outcome.Alerts, fmt.Sprintf("recipe rejected: %v", err))
	}

	if err := p.state.SetPrice(policy.Price); err != nil {
		outcome.Alerts = append(outcome.Alerts, fmt.Sprintf("price rejected: %v", err))
	}

	if err := p.state.StartDay(); err != nil {
		if errors.Is(err, models.ErrNoStock) || errors.Is(err, models.ErrNotEnoughCups) {
			outcome.Alerts = append(outcome.Alerts, fmt.Sprintf("day not opened: %v", err))
		}
		return outcome, err
	}

	return outcome, nil
}
