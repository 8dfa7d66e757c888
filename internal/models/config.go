package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ShopkeeperConfig is the headless stand-in for the player: what gets bought,
// brewed, and charged at the start of every day.
type ShopkeeperConfig struct {
	Recipe        Ingredients   `mapstructure:"recipe"`
	Price         int           `mapstructure:"price"`
	DailyPurchase PurchaseOrder `mapstructure:"daily_purchase"`
}

type Config struct {
	Seed       int64     `mapstructure:"seed"`
	StartDate  time.Time `mapstructure:"start_date"`
	Days       int       `mapstructure:"days"`
	Continuous bool      `mapstructure:"continuous"`

	// Frame stepping and in-game clock.
	TickSeconds    float64 `mapstructure:"tick_seconds"`
	TimeSpeed      float64 `mapstructure:"time_speed"`
	TimeMultiplier float64 `mapstructure:"time_multiplier"`
	DayStartMinute float64 `mapstructure:"day_start_minute"`
	DayEndMinute   float64 `mapstructure:"day_end_minute"`
	ServingSpeed   float64 `mapstructure:"serving_speed"`

	// Customer spawning and movement.
	SpawnIntervalSeconds float64 `mapstructure:"spawn_interval_seconds"`
	SpawnChance          float64 `mapstructure:"spawn_chance"`
	MinSpawnY            float64 `mapstructure:"min_spawn_y"`
	MaxSpawnY            float64 `mapstructure:"max_spawn_y"`
	WalkSpeed            float64 `mapstructure:"walk_speed"`
	SpeedMultiplier      float64 `mapstructure:"speed_multiplier"`
	ScreenWidth          float64 `mapstructure:"screen_width"`
	CartX                float64 `mapstructure:"cart_x"`
	CartRadius           float64 `mapstructure:"cart_radius"`

	// Fast forward: at the given in-game minute the clock, spawner and
	// customers all speed up by the factor. Zero disables the toggle.
	FastForwardAtMinute float64 `mapstructure:"fast_forward_at_minute"`
	FastForwardFactor   float64 `mapstructure:"fast_forward_factor"`

	Shopkeeper ShopkeeperConfig `mapstructure:"shopkeeper"`

	SaveFilePath string `mapstructure:"save_file_path"`

	// Output routing.
	KafkaEnabled          bool   `mapstructure:"kafka_enabled"`
	KafkaUseLocal         bool   `mapstructure:"kafka_use_local"`
	KafkaBrokerList       string `mapstructure:"kafka_broker_list"`
	KafkaSecurityProtocol string `mapstructure:"kafka_security_protocol"`
	KafkaSaslMechanism    string `mapstructure:"kafka_sasl_mechanism"`
	KafkaSaslUsername     string `mapstructure:"kafka_sasl_username"`
	KafkaSaslPassword     string `mapstructure:"kafka_sasl_password"`
	SessionTimeoutMs      int    `mapstructure:"session_timeout_ms"`

	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputFormat      string             `mapstructure:"output_format"`
	OutputDestination string             `mapstructure:"output_destination"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`

	PostgresEnabled bool           `mapstructure:"postgres_enabled"`
	Database        DatabaseConfig `mapstructure:"database"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults cover a playable shop.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("seed", 42)
	viper.SetDefault("start_date", time.Now().Format(time.RFC3339))
	viper.SetDefault("days", 7)

	viper.SetDefault("tick_seconds", 0.1)
	viper.SetDefault("time_speed", 1.0)
	viper.SetDefault("time_multiplier", 5.0)
	viper.SetDefault("day_start_minute", 8*60)
	viper.SetDefault("day_end_minute", 17*60)
	viper.SetDefault("serving_speed", 1.0)

	viper.SetDefault("spawn_interval_seconds", 1.0)
	viper.SetDefault("spawn_chance", 30.0)
	viper.SetDefault("min_spawn_y", 92.0)
	viper.SetDefault("max_spawn_y", 94.0)
	viper.SetDefault("walk_speed", 100.0)
	viper.SetDefault("speed_multiplier", 1.0)
	viper.SetDefault("screen_width", 640.0)
	viper.SetDefault("cart_x", 320.0)
	viper.SetDefault("cart_radius", 16.0)

	viper.SetDefault("fast_forward_at_minute", 0.0)
	viper.SetDefault("fast_forward_factor", 2.0)

	viper.SetDefault("shopkeeper.recipe.coffee", 7.0)
	viper.SetDefault("shopkeeper.recipe.milk", 120.0)
	viper.SetDefault("shopkeeper.recipe.sugar", 10.0)
	viper.SetDefault("shopkeeper.price", 8)
	viper.SetDefault("shopkeeper.daily_purchase.coffee_packs", 1)
	viper.SetDefault("shopkeeper.daily_purchase.milk_packs", 1)
	viper.SetDefault("shopkeeper.daily_purchase.sugar_packs", 1)
	viper.SetDefault("shopkeeper.daily_purchase.cup_sleeves", 1)

	viper.SetDefault("save_file_path", "brewsim_save.json")
}
