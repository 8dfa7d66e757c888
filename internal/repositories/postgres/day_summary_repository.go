package postgres

import (
	"context"
	"fmt"

	"github.com/andriantama/brewsim/internal/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DaySummaryRepository struct {
	pool *pgxpool.Pool
}

func NewDaySummaryRepository(pool *pgxpool.Pool) *DaySummaryRepository {
	return &DaySummaryRepository{pool: pool}
}

func (r *DaySummaryRepository) Create(ctx context.Context, summary *repositories.DaySummary) error {
	query := `
        INSERT INTO day_summaries (
            day, love_count, like_count, dislike_count,
            customers_in, served, rejected, revenue, money, favorability
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
        )`
	_, err := r.pool.Exec(ctx, query,
		summary.Day,
		summary.LoveCount,
		summary.LikeCount,
		summary.DislikeCount,
		summary.CustomersIn,
		summary.Served,
		summary.Rejected,
		summary.Revenue,
		summary.Money,
		summary.Favorability,
	)
	if err != nil {
		return fmt.Errorf("failed to insert day summary for day %d: %w", summary.Day, err)
	}
	return nil
}

func (r *DaySummaryRepository) GetByDay(ctx context.Context, day int) (*repositories.DaySummary, error) {
	query := `
        SELECT
            day, love_count, like_count, dislike_count,
            customers_in, served, rejected, revenue, money, favorability
        FROM day_summaries
        WHERE day = $1`

	summary := &repositories.DaySummary{}
	err := r.pool.QueryRow(ctx, query, day).Scan(
		&summary.Day,
		&summary.LoveCount,
		&summary.LikeCount,
		&summary.DislikeCount,
		&summary.CustomersIn,
		&summary.Served,
		&summary.Rejected,
		&summary.Revenue,
		&summary.Money,
		&summary.Favorability,
	)
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func (r *DaySummaryRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM day_summaries").Scan(&count)
	return count, err
}

func (r *DaySummaryRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE day_summaries")
	return err
}
