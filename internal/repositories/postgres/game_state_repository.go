package postgres

import (
	"context"

	"github.com/andriantama/brewsim/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GameStateRepository struct {
	pool *pgxpool.Pool
}

func NewGameStateRepository(pool *pgxpool.Pool) *GameStateRepository {
	return &GameStateRepository{pool: pool}
}

func (r *GameStateRepository) SaveSnapshot(ctx context.Context, state *models.GameState) error {
	query := `
        INSERT INTO game_state_snapshots (
            day, stock, money, price, cups, favorability,
            inventory_coffee, inventory_milk, inventory_sugar,
            recipe_coffee, recipe_milk, recipe_sugar
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
        )`
	_, err := r.pool.Exec(ctx, query,
		state.Day,
		state.Stock,
		state.Money,
		state.Price,
		state.Cups,
		state.Favorability,
		state.Inventory.Coffee,
		state.Inventory.Milk,
		state.Inventory.Sugar,
		state.Recipe.Coffee,
		state.Recipe.Milk,
		state.Recipe.Sugar,
	)
	return err
}

func (r *GameStateRepository) GetLatest(ctx context.Context) (*models.GameState, error) {
	query := `
        SELECT
            day, stock, money, price, cups, favorability,
            inventory_coffee, inventory_milk, inventory_sugar,
            recipe_coffee, recipe_milk, recipe_sugar
        FROM game_state_snapshots
        ORDER BY day DESC
        LIMIT 1`

	state := models.NewGameState()
	err := r.pool.QueryRow(ctx, query).Scan(
		&state.Day,
		&state.Stock,
		&state.Money,
		&state.Price,
		&state.Cups,
		&state.Favorability,
		&state.Inventory.Coffee,
		&state.Inventory.Milk,
		&state.Inventory.Sugar,
		&state.Recipe.Coffee,
		&state.Recipe.Milk,
		&state.Recipe.Sugar,
	)
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (r *GameStateRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM game_state_snapshots").Scan(&count)
	return count, err
}

func (r *GameStateRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE game_state_snapshots")
	return err
}
