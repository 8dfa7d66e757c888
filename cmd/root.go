package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/andriantama/brewsim/internal/models"
	"github.com/andriantama/brewsim/internal/repositories"
	"github.com/andriantama/brewsim/internal/repositories/postgres"
	"github.com/andriantama/brewsim/internal/simulator"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "brewsim",
	Short: "Simulates streaming data for a street coffee cart",
	Long:  `brewsim is a CLI tool that plays out trading days of a small coffee cart and emits the resulting customer, order and feedback events as a stream.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		sim := simulator.NewSimulator(cfg)

		if cfg.PostgresEnabled {
			states, summaries, err := connectRepositories(&cfg.Database)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
				os.Exit(1)
			}
			sim.WithRepositories(states, summaries)
		}

		sim.Run()
	},
}

func connectRepositories(db *models.DatabaseConfig) (repositories.GameStateRepository, repositories.DaySummaryRepository, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.User, db.Password, db.DBName, db.SSLMode,
	)

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating connection pool: %w", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		return nil, nil, fmt.Errorf("error pinging database: %w", err)
	}

	return postgres.NewGameStateRepository(pool), postgres.NewDaySummaryRepository(pool), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int64("seed", 42, "Random seed for simulation")
	rootCmd.Flags().Int("days", 7, "Number of trading days to simulate")
	rootCmd.Flags().Bool("continuous", false, "Run simulation in continuous mode")
	rootCmd.Flags().Float64("time-multiplier", 5.0, "In-game minutes per simulated second")
	rootCmd.Flags().Float64("spawn-chance", 30.0, "Percent chance of a customer per spawn check")
	rootCmd.Flags().String("save-file-path", "brewsim_save.json", "Path of the JSON save file")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("output-path", "", "Output directory for file formats (if not using Kafka)")
	rootCmd.Flags().String("output-format", "json", "Output format: json, csv or parquet")
	rootCmd.Flags().Bool("postgres-enabled", false, "Persist daily snapshots to Postgres")

	viper.BindPFlags(rootCmd.Flags())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
