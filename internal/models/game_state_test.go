package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDayOneState() *GameState {
	g := NewGameState()
	g.StartNew()
	return g
}

func TestStartNewSeedsOpeningBalance(t *testing.T) {
	g := newDayOneState()

	assert.Equal(t, 1, g.Day)
	assert.Equal(t, 1000, g.Money)
	assert.Equal(t, 8, g.Price)
	assert.Equal(t, 50, g.Cups)
	assert.Equal(t, 0.5, g.Favorability)
	assert.Equal(t, Ingredients{Coffee: 300, Milk: 1000, Sugar: 1000}, g.Inventory)
	assert.Equal(t, Ingredients{Coffee: 7, Milk: 120, Sugar: 10}, g.Recipe)
	// milk is the binding ingredient: 1000 / 120 = 8 cups
	assert.Equal(t, 8, g.Stock)
	assert.False(t, g.IsNewGame())
}

func TestIsNewGameOnFreshState(t *testing.T) {
	assert.True(t, NewGameState().IsNewGame())
}

func TestBrewableCupsTakesTheBindingIngredient(t *testing.T) {
	inv := Ingredients{Coffee: 300, Milk: 1000, Sugar: 1000}

	assert.Equal(t, 8, inv.BrewableCups(Ingredients{Coffee: 7, Milk: 120, Sugar: 10}))
	assert.Equal(t, 0, inv.BrewableCups(Ingredients{Coffee: 301, Milk: 120, Sugar: 10}))
	assert.Equal(t, 100, inv.BrewableCups(Ingredients{Coffee: 3, Milk: 10, Sugar: 10}))
}

func TestSaveRecipeRejectsNonPositiveComponents(t *testing.T) {
	g := newDayOneState()
	before := g.Recipe

	for _, recipe := range []Ingredients{
		{Coffee: 0, Milk: 120, Sugar: 10},
		{Coffee: 7, Milk: -1, Sugar: 10},
		{Coffee: 7, Milk: 120, Sugar: 0},
	} {
		err := g.SaveRecipe(recipe.Coffee, recipe.Milk, recipe.Sugar)
		assert.ErrorIs(t, err, ErrInvalidRecipe)
		assert.Equal(t, before, g.Recipe)
	}
}

func TestSaveRecipeRecomputesStock(t *testing.T) {
	g := newDayOneState()

	require.NoError(t, g.SaveRecipe(3, 10, 10))
	assert.Equal(t, 100, g.Stock)
}

func TestSetPrice(t *testing.T) {
	g := newDayOneState()

	assert.ErrorIs(t, g.SetPrice(0), ErrInvalidPrice)
	assert.ErrorIs(t, g.SetPrice(-3), ErrInvalidPrice)
	assert.Equal(t, 8, g.Price)

	require.NoError(t, g.SetPrice(12))
	assert.Equal(t, 12, g.Price)
}

func TestPurchaseIngredientsCreditsInventory(t *testing.T) {
	g := newDayOneState()

	order := PurchaseOrder{CoffeePacks: 2, MilkPacks: 1, SugarPacks: 1, CupSleeves: 1}
	require.NoError(t, g.PurchaseIngredients(order))

	// 2*120 + 30 + 20 + 50 = 340
	assert.Equal(t, 1000-340, g.Money)
	assert.Equal(t, Ingredients{Coffee: 900, Milk: 2000, Sugar: 2000}, g.Inventory)
	assert.Equal(t, 100, g.Cups)
}

func TestPurchaseIngredientsRefusesOverdraft(t *testing.T) {
	g := newDayOneState()
	g.Money = 100

	err := g.PurchaseIngredients(PurchaseOrder{CoffeePacks: 1})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 100, g.Money)
	assert.Equal(t, Ingredients{Coffee: 300, Milk: 1000, Sugar: 1000}, g.Inventory)
}

func TestStartDayConsumesIngredientsAndCups(t *testing.T) {
	g := newDayOneState()
	require.Equal(t, 8, g.Stock)

	require.NoError(t, g.StartDay())

	assert.Equal(t, 1, g.Day, "opening the day must not advance the day counter")
	assert.InDelta(t, 300-7*8, g.Inventory.Coffee, 1e-9)
	assert.InDelta(t, 1000-120*8, g.Inventory.Milk, 1e-9)
	assert.InDelta(t, 1000-10*8, g.Inventory.Sugar, 1e-9)
	assert.Equal(t, 42, g.Cups)
}

func TestStartDayValidations(t *testing.T) {
	g := newDayOneState()
	g.Price = 0
	assert.ErrorIs(t, g.StartDay(), ErrInvalidPrice)

	g = newDayOneState()
	g.Recipe.Milk = 0
	assert.ErrorIs(t, g.StartDay(), ErrInvalidRecipe)

	g = newDayOneState()
	g.Stock = 0
	assert.ErrorIs(t, g.StartDay(), ErrNoStock)

	g = newDayOneState()
	g.Cups = g.Stock - 1
	assert.ErrorIs(t, g.StartDay(), ErrNotEnoughCups)
}

func TestFinishDayAdvancesOnceAndDiscardsStock(t *testing.T) {
	g := newDayOneState()
	g.Stock = 3

	g.FinishDay()

	assert.Equal(t, 2, g.Day)
	assert.Equal(t, 0, g.Stock)
}

func TestUpdateFavorabilityNudges(t *testing.T) {
	g := newDayOneState()

	g.UpdateFavorability(FeedbackLove)
	assert.InDelta(t, 0.55, g.Favorability, 1e-9)

	g.UpdateFavorability(FeedbackLike)
	assert.InDelta(t, 0.57, g.Favorability, 1e-9)

	g.UpdateFavorability(FeedbackDislike)
	assert.InDelta(t, 0.53, g.Favorability, 1e-9)

	g.UpdateFavorability("unknown")
	assert.InDelta(t, 0.53, g.Favorability, 1e-9)
}

func TestUpdateFavorabilityClamps(t *testing.T) {
	g := newDayOneState()

	g.Favorability = 0.99
	g.UpdateFavorability(FeedbackLove)
	assert.Equal(t, 1.0, g.Favorability)

	g.Favorability = 0.01
	g.UpdateFavorability(FeedbackDislike)
	assert.Equal(t, 0.0, g.Favorability)
}

func TestAddMoney(t *testing.T) {
	g := newDayOneState()

	assert.Equal(t, 1008, g.AddMoney(8))
	assert.Equal(t, 1000, g.AddMoney(-8))
}
