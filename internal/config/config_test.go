package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-engine/internal/budget"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	t.Setenv(configFileEnv, "")

	env, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "localhost", env.PostgresAddress)
	assert.Equal(t, "5433", env.PostgresPort)
	assert.Equal(t, "9446", env.Port)
	assert.Equal(t, StorageDriverPostgres, env.StorageDriver)
	assert.Equal(t, budget.AlertPolicyEdge, env.AlertPolicy)
	assert.False(t, env.SchedulerEnabled)
	assert.Equal(t, 5*time.Minute, env.RateLimitSweep)
	assert.Equal(t, ratelimit.DefaultRules(), env.RateLimits)
}

func TestProcessEnvironmentVariables_EnvOverrides(t *testing.T) {
	t.Setenv(configFileEnv, "")
	t.Setenv("POSTGRES_ADDRESS", "db.internal")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("ALERT_POLICY", "level")
	t.Setenv("SCHEDULER_ENABLED", "true")
	t.Setenv("RATE_LIMIT_EXPORT_MAX", "2")
	t.Setenv("RATE_LIMIT_EXPORT_WINDOW_SECONDS", "10")
	t.Setenv("CRON_SECRET", "s3cret")

	env, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", env.PostgresAddress)
	assert.Equal(t, StorageDriverMemory, env.StorageDriver)
	assert.Equal(t, budget.AlertPolicyLevel, env.AlertPolicy)
	assert.True(t, env.SchedulerEnabled)
	assert.Equal(t, "s3cret", env.CronSecret)
	assert.Equal(t, ratelimit.Rule{Window: 10 * time.Second, Max: 2}, env.RateLimits[ratelimit.ClassExport])
}

func TestProcessEnvironmentVariables_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("port = \"8080\"\noperator_workers = 9\n"), 0o600))
	t.Setenv(configFileEnv, path)

	env, err := ProcessEnvironmentVariables()
	require.NoError(t, err)
	assert.Equal(t, "8080", env.Port)
	assert.Equal(t, 9, env.OperatorWorkers)
}

func TestProcessEnvironmentVariables_Invalid(t *testing.T) {
	tests := map[string]string{
		"ALERT_POLICY":        "sometimes",
		"STORAGE_DRIVER":      "sqlite",
		"SCHEDULER_WORKERS":   "0",
		"SCHEDULER_ENABLED":   "maybe",
		"RATE_LIMIT_READ_MAX": "lots",
		"OPERATOR_WORKERS":    "-3",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(configFileEnv, "")
			t.Setenv(key, value)
			_, err := ProcessEnvironmentVariables()
			assert.Error(t, err)
		})
	}
}

func TestProcessEnvironmentVariables_MissingConfigFile(t *testing.T) {
	t.Setenv(configFileEnv, filepath.Join(t.TempDir(), "absent.toml"))
	_, err := ProcessEnvironmentVariables()
	assert.Error(t, err)
}
