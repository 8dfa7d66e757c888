package simulator

import (
	"strings"
	"testing"

	"github.com/andriantama/brewsim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepOpensANewGame(t *testing.T) {
	config := testConfig()
	state := models.NewGameState()
	prep := NewPrepPhase(config, state)

	outcome, err := prep.Run()
	require.NoError(t, err)
	assert.Empty(t, outcome.Alerts)

	assert.Equal(t, 1, state.Day)
	require.NotNil(t, outcome.Purchased)
	assert.Equal(t, config.Shopkeeper.DailyPurchase, *outcome.Purchased)
	assert.Equal(t, 220, outcome.Cost)
	assert.Equal(t, 1000-220, state.Money)

	// opening inventory plus one pack of each, brewed down by the day's stock
	assert.Equal(t, config.Shopkeeper.Recipe, state.Recipe)
	assert.Equal(t, config.Shopkeeper.Price, state.Price)
	assert.Equal(t, 16, state.Stock)
	assert.InDelta(t, 600-7*16, state.Inventory.Coffee, 1e-9)
	assert.InDelta(t, 2000-120*16, state.Inventory.Milk, 1e-9)
	assert.Equal(t, 100-16, state.Cups)
}

func TestPrepSkipsPurchaseWhenBroke(t *testing.T) {
	config := testConfig()
	state := models.NewGameState()
	state.StartNew()
	state.Money = 0
	prep := NewPrepPhase(config, state)

	outcome, err := prep.Run()
	require.NoError(t, err, "the shop can open on existing inventory")

	assert.Nil(t, outcome.Purchased)
	require.Len(t, outcome.Alerts, 1)
	assert.Contains(t, outcome.Alerts[0], "purchase skipped")
	assert.Equal(t, 0, state.Money)
	assert.Equal(t, 8, state.Stock)
}

func TestPrepFailsWithoutStock(t *testing.T) {
	config := testConfig()
	state := models.NewGameState()
	state.StartNew()
	state.Money = 0
	state.Inventory = models.Ingredients{}
	prep := NewPrepPhase(config, state)

	outcome, err := prep.Run()
	assert.ErrorIs(t, err, models.ErrNoStock)
	assert.Contains(t, outcome.Alerts[len(outcome.Alerts)-1], "day not opened")
}

func TestPrepKeepsOldRecipeOnBadPolicy(t *testing.T) {
	config := testConfig()
	config.Shopkeeper.Recipe = models.Ingredients{Coffee: 0, Milk: 120, Sugar: 10}
	state := models.NewGameState()
	state.StartNew()
	prep := NewPrepPhase(config, state)

	outcome, err := prep.Run()
	require.NoError(t, err)

	var found bool
	for _, alert := range outcome.Alerts {
		if strings.HasPrefix(alert, "recipe rejected") {
			found = true
		}
	}
	assert.True(t, found, "expected a recipe rejection alert")
	assert.Equal(t, models.Ingredients{Coffee: 7, Milk: 120, Sugar: 10}, state.Recipe)
}
