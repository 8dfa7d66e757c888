package repositories

import (
	"context"

	"github.com/andriantama/brewsim/internal/models"
)

// DaySummary is a persisted end-of-day row, one per trading day.
type DaySummary struct {
	Day          int
	LoveCount    int
	LikeCount    int
	DislikeCount int
	CustomersIn  int
	Served       int
	Rejected     int
	Revenue      int
	Money        int
	Favorability float64
}

type GameStateRepository interface {
	SaveSnapshot(ctx context.Context, state *models.GameState) error
	GetLatest(ctx context.Context) (*models.GameState, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type DaySummaryRepository interface {
	Create(ctx context.Context, summary *DaySummary) error
	GetByDay(ctx context.Context, day int) (*DaySummary, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
