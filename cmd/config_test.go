package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"marketplace/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "STORAGE_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"DB_SSLMODE", "JWT_SECRET", "LOG_LEVEL", "COMPLETION_DELAY", "COMPLETION_SWEEP_SCHEDULE",
	"COMPLETION_BATCH_SIZE", "COMPLETION_SWEEP_TIMEOUT", "BUYER_SERVICE_FEE_RATE",
	"SELLER_COMMISSION_RATE",
}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := cmd.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, 5*time.Second, cfg.CompletionDelay)
	assert.Equal(t, "* * * * * *", cfg.CompletionSweepSchedule)
	assert.Equal(t, 100, cfg.CompletionBatchSize)
	assert.Equal(t, 30*time.Second, cfg.CompletionSweepTimeout)
	assert.Equal(t, "0.05", cfg.BuyerServiceFeeRate.String())
	assert.Equal(t, "0.2", cfg.SellerCommissionRate.String())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())

	policy, err := cfg.FeePolicy()
	require.NoError(t, err)
	assert.True(t, policy.BuyerServiceRate().Equal(cfg.BuyerServiceFeeRate))
}

func TestLoadConfig_ReadsEnvFileWithoutOverriding(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_NAME", "from_env")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"JWT_SECRET=file-secret\nDB_USER=marketplace\nDB_NAME=from_file\nCOMPLETION_DELAY=90s\nLOG_LEVEL=debug\n",
	), 0o600))

	cfg, err := cmd.LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, cmd.StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, "from_env", cfg.DBName)
	assert.Equal(t, 90*time.Second, cfg.CompletionDelay)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadConfig_MissingEnvFileIsIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORAGE_DRIVER", "memory")

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "missing secret", env: map[string]string{"STORAGE_DRIVER": "memory"}, want: "JWT_SECRET"},
		{name: "unknown driver", env: map[string]string{"STORAGE_DRIVER": "sqlite"}, want: "STORAGE_DRIVER"},
		{name: "postgres without database", env: map[string]string{"STORAGE_DRIVER": "postgres"}, want: "DB_NAME"},
		{name: "bad schedule", env: map[string]string{"COMPLETION_SWEEP_SCHEDULE": "every second"}, want: "COMPLETION_SWEEP_SCHEDULE"},
		{name: "bad delay", env: map[string]string{"COMPLETION_DELAY": "soon"}, want: "error parsing env config"},
		{name: "zero sweep timeout", env: map[string]string{"COMPLETION_SWEEP_TIMEOUT": "0s"}, want: "COMPLETION_SWEEP_TIMEOUT"},
		{name: "zero batch", env: map[string]string{"COMPLETION_BATCH_SIZE": "0"}, want: "COMPLETION_BATCH_SIZE"},
		{name: "bad level", env: map[string]string{"LOG_LEVEL": "loud"}, want: "LOG_LEVEL"},
		{name: "rate above one", env: map[string]string{"SELLER_COMMISSION_RATE": "1.5"}, want: "invalid config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if tt.name != "missing secret" {
				t.Setenv("JWT_SECRET", "secret")
				t.Setenv("STORAGE_DRIVER", "memory")
			}
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := cmd.LoadConfig("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
