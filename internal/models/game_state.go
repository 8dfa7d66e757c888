package models

import (
	"errors"
	"math"
)

var (
	ErrInvalidRecipe     = errors.New("recipe components must all be greater than zero")
	ErrInvalidPrice      = errors.New("price must be greater than zero")
	ErrInsufficientFunds = errors.New("not enough money")
	ErrNoStock           = errors.New("no stock to sell")
	ErrNotEnoughCups     = errors.New("not enough cups for the day's stock")
)

// Ingredients is a coffee/milk/sugar triple, used both for raw inventory
// (grams / millilitres / grams owned) and for the per-cup recipe.
type Ingredients struct {
	Coffee float64 `json:"coffee" mapstructure:"coffee"`
	Milk   float64 `json:"milk" mapstructure:"milk"`
	Sugar  float64 `json:"sugar" mapstructure:"sugar"`
}

// BrewableCups returns how many cups the inventory covers under the given
// recipe. The recipe must have been validated (all components > 0).
func (inv Ingredients) BrewableCups(recipe Ingredients) int {
	cups := math.Min(inv.Coffee/recipe.Coffee, inv.Milk/recipe.Milk)
	cups = math.Min(cups, inv.Sugar/recipe.Sugar)
	return int(math.Floor(cups))
}

// PurchaseOrder is a shop purchase expressed in whole packs.
type PurchaseOrder struct {
	CoffeePacks int `json:"coffee_packs" mapstructure:"coffee_packs"`
	MilkPacks   int `json:"milk_packs" mapstructure:"milk_packs"`
	SugarPacks  int `json:"sugar_packs" mapstructure:"sugar_packs"`
	CupSleeves  int `json:"cup_sleeves" mapstructure:"cup_sleeves"`
}

// Cost returns the total price of the order.
func (po PurchaseOrder) Cost() int {
	return po.CoffeePacks*CoffeePackPrice +
		po.MilkPacks*MilkPackPrice +
		po.SugarPacks*SugarPackPrice +
		po.CupSleeves*CupSleevePrice
}

// GameState is the mutable record of the whole shop economy. It is
// constructed once by the simulation driver and passed by reference to every
// component that needs it; there is no global lookup.
type GameState struct {
	Stock        int         `json:"stock"`
	Money        int         `json:"money"`
	Day          int         `json:"day"`
	Price        int         `json:"price"`
	Cups         int         `json:"cup"`
	Favorability float64     `json:"favorability"`
	Inventory    Ingredients `json:"inventory"`
	Recipe       Ingredients `json:"recipe"`
}

func NewGameState() *GameState {
	return &GameState{}
}

// IsNewGame reports whether the state has never been initialised. Day 0 is
// the uninitialised sentinel; StartNew moves the game to day 1.
func (g *GameState) IsNewGame() bool {
	return g.Day == 0
}

// StartNew seeds the opening balance of a fresh game.
func (g *GameState) StartNew() {
	g.Day = 1
	g.Money = 1000
	g.Price = 8
	g.Cups = 50
	g.Favorability = 0.5
	g.Inventory = Ingredients{Coffee: 300, Milk: 1000, Sugar: 1000}
	g.Recipe = Ingredients{Coffee: 7, Milk: 120, Sugar: 10}
	g.Stock = g.Inventory.BrewableCups(g.Recipe)
}

// SaveRecipe stores a new per-cup formulation and recomputes the sellable
// stock from the current inventory. A recipe with any component at or below
// zero is rejected without touching the state.
func (g *GameState) SaveRecipe(coffee, milk, sugar float64) error {
	if coffee <= 0 || milk <= 0 || sugar <= 0 {
		return ErrInvalidRecipe
	}
	g.Recipe = Ingredients{Coffee: coffee, Milk: milk, Sugar: sugar}
	g.Stock = g.Inventory.BrewableCups(g.Recipe)
	return nil
}

func (g *GameState) SetPrice(price int) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	g.Price = price
	return nil
}

// PurchaseIngredients debits the order cost and credits the inventory. On
// insufficient funds nothing is mutated.
func (g *GameState) PurchaseIngredients(order PurchaseOrder) error {
	total := order.Cost()
	if total > g.Money {
		return ErrInsufficientFunds
	}
	g.Money -= total
	g.Inventory.Coffee += float64(order.CoffeePacks) * CoffeePackGrams
	g.Inventory.Milk += float64(order.MilkPacks) * MilkPackMillis
	g.Inventory.Sugar += float64(order.SugarPacks) * SugarPackGrams
	g.Cups += order.CupSleeves * CupSleeveCount
	return nil
}

// StartDay brews the day's stock: it consumes one recipe's worth of
// ingredients per cup of stock plus a disposable cup per cup. The day counter
// is NOT advanced here; FinishDay is the single authoritative increment point.
func (g *GameState) StartDay() error {
	if g.Price <= 0 {
		return ErrInvalidPrice
	}
	if g.Recipe.Coffee <= 0 || g.Recipe.Milk <= 0 || g.Recipe.Sugar <= 0 {
		return ErrInvalidRecipe
	}
	if g.Stock <= 0 {
		return ErrNoStock
	}
	if g.Cups < g.Stock {
		return ErrNotEnoughCups
	}
	brewed := float64(g.Stock)
	g.Inventory.Coffee -= g.Recipe.Coffee * brewed
	g.Inventory.Milk -= g.Recipe.Milk * brewed
	g.Inventory.Sugar -= g.Recipe.Sugar * brewed
	g.Cups -= g.Stock
	return nil
}

// FinishDay closes out the trading day: unsold stock is discarded and the day
// counter advances exactly once.
func (g *GameState) FinishDay() {
	g.Day++
	g.Stock = 0
}

// UpdateFavorability applies the fixed nudge for a feedback kind, clamped to
// [0, 1].
func (g *GameState) UpdateFavorability(feedback string) {
	switch feedback {
	case FeedbackLove:
		g.Favorability += FavorabilityNudgeLove
	case FeedbackLike:
		g.Favorability += FavorabilityNudgeLike
	case FeedbackDislike:
		g.Favorability += FavorabilityNudgeDislike
	default:
		return
	}
	g.Favorability = math.Max(0, math.Min(1, g.Favorability))
}

// AddMoney credits (or debits, for negative delta) the balance and returns
// the new total.
func (g *GameState) AddMoney(delta int) int {
	g.Money += delta
	return g.Money
}
