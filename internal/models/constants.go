package models

const (
	CustomerStateWalking = "walking"
	CustomerStateWaiting = "waiting"
	CustomerStateLeaving = "leaving"

	FeedbackNone    = ""
	FeedbackLove    = "love"
	FeedbackLike    = "like"
	FeedbackDislike = "dislike"
)

// Ingredient shop pack sizes and prices. Purchases are made in whole packs.
const (
	CoffeePackGrams = 300.0
	MilkPackMillis  = 1000.0
	SugarPackGrams  = 1000.0
	CupSleeveCount  = 50

	CoffeePackPrice = 120
	MilkPackPrice   = 30
	SugarPackPrice  = 20
	CupSleevePrice  = 50
)

// Favorability nudges per feedback kind. The dislike magnitude being larger
// than the like magnitude is inherited game balance, not a typo.
const (
	FavorabilityNudgeLove    = 0.05
	FavorabilityNudgeLike    = 0.02
	FavorabilityNudgeDislike = -0.04
)
