package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string `env:"DB_PORT" envDefault:"5432"`
	DBUser        string `env:"DB_USER"`
	DBPassword    string `env:"DB_PASSWORD"`
	DBName        string `env:"DB_NAME"`
	DBSslMode     string `env:"DB_SSLMODE" envDefault:"disable"`

	JWTSecret string `env:"JWT_SECRET,required"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	CompletionDelay         time.Duration `env:"COMPLETION_DELAY" envDefault:"5s"`
	CompletionSweepSchedule string        `env:"COMPLETION_SWEEP_SCHEDULE" envDefault:"* * * * * *"`
	CompletionBatchSize     int           `env:"COMPLETION_BATCH_SIZE" envDefault:"100"`
	CompletionSweepTimeout  time.Duration `env:"COMPLETION_SWEEP_TIMEOUT" envDefault:"30s"`

	BuyerServiceFeeRate  decimal.Decimal `env:"BUYER_SERVICE_FEE_RATE" envDefault:"0.05"`
	SellerCommissionRate decimal.Decimal `env:"SELLER_COMMISSION_RATE" envDefault:"0.20"`
}

// LoadConfig reads envFile into the environment when it exists, without
// overriding variables already set, then parses and validates the config.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error loading %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing env config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// FeePolicy builds the pricing policy from the configured rates.
func (c Config) FeePolicy() (order.FeePolicy, error) {
	return order.NewFeePolicy(c.BuyerServiceFeeRate, c.SellerCommissionRate)
}

// SlogLevel returns the configured log level. LoadConfig rejects unknown levels.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c Config) validate() error {
	var problems []error

	switch c.StorageDriver {
	case StorageDriverPostgres:
		if c.DBUser == "" || c.DBName == "" {
			problems = append(problems, errors.New("DB_USER and DB_NAME are required for the postgres driver"))
		}
	case StorageDriverMemory:
	default:
		problems = append(problems, fmt.Errorf("STORAGE_DRIVER %q is not one of postgres, memory", c.StorageDriver))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
	}

	if c.CompletionDelay < 0 {
		problems = append(problems, fmt.Errorf("COMPLETION_DELAY %s is negative", c.CompletionDelay))
	}

	if _, err := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	).Parse(c.CompletionSweepSchedule); err != nil {
		problems = append(problems, fmt.Errorf("COMPLETION_SWEEP_SCHEDULE: %w", err))
	}

	if c.CompletionBatchSize <= 0 {
		problems = append(problems, fmt.Errorf("COMPLETION_BATCH_SIZE %d is not positive", c.CompletionBatchSize))
	}

	if c.CompletionSweepTimeout <= 0 {
		problems = append(problems, fmt.Errorf("COMPLETION_SWEEP_TIMEOUT %s is not positive", c.CompletionSweepTimeout))
	}

	if _, err := c.FeePolicy(); err != nil {
		problems = append(problems, err)
	}

	if err := errors.Join(problems...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
