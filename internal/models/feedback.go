package models

import "math"

// Normalisation scales for the satisfaction score. Each recipe component's
// deviation from the customer's preference is divided by its scale before
// averaging, so a gram of coffee weighs far more than a millilitre of milk.
const (
	coffeeDiffScale = 10.0
	milkDiffScale   = 150.0
	sugarDiffScale  = 15.0
)

// SatisfactionScore rates how well the shop recipe matches a customer's
// preferred formulation, in [0, 1]. A perfect match scores 1.
func SatisfactionScore(recipe, preference Ingredients) float64 {
	diffCoffee := math.Abs(recipe.Coffee - preference.Coffee)
	diffMilk := math.Abs(recipe.Milk - preference.Milk)
	diffSugar := math.Abs(recipe.Sugar - preference.Sugar)

	score := 1.0 - (diffCoffee/coffeeDiffScale+diffMilk/milkDiffScale+diffSugar/sugarDiffScale)/3.0
	return math.Max(0, math.Min(1, score))
}

// ClassifyFeedback maps a recipe/preference pair to the customer's reaction.
// Both thresholds are strict: a score of exactly 0.85 is a Like, not a Love.
func ClassifyFeedback(recipe, preference Ingredients) string {
	score := SatisfactionScore(recipe, preference)
	switch {
	case score > 0.85:
		return FeedbackLove
	case score > 0.5:
		return FeedbackLike
	default:
		return FeedbackDislike
	}
}
