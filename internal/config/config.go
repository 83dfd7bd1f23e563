package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/carson-networks/budget-engine/internal/budget"
	"github.com/carson-networks/budget-engine/internal/ratelimit"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	configFileEnv = "BUDGET_ENGINE_CONFIG"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	Port           string
	StorageDriver  string
	MigrationsPath string
	LogLevel       string

	CronSecret       string
	SchedulerEnabled bool
	SchedulerWorkers int
	OperatorWorkers  int

	AlertPolicy budget.AlertPolicy

	RateLimits     map[ratelimit.Class]ratelimit.Rule
	RateLimitSweep time.Duration
}

var rateLimitClasses = []ratelimit.Class{
	ratelimit.ClassAI,
	ratelimit.ClassExport,
	ratelimit.ClassMutation,
	ratelimit.ClassRead,
}

func ProcessEnvironmentVariables() (*Config, error) {
	v := viper.New()

	// In all cases the default behavior should be for the docker compose setup
	v.SetDefault("postgres_address", "localhost")
	v.SetDefault("postgres_port", "5433")
	v.SetDefault("postgres_db", "postgres")
	v.SetDefault("postgres_username", "postgres")
	v.SetDefault("postgres_password", "testpassword")
	v.SetDefault("port", "9446")
	v.SetDefault("storage_driver", StorageDriverPostgres)
	v.SetDefault("migrations_path", "file://migrations")
	v.SetDefault("log_level", "info")
	v.SetDefault("cron_secret", "")
	v.SetDefault("scheduler_enabled", false)
	v.SetDefault("scheduler_workers", 4)
	v.SetDefault("operator_workers", 4)
	v.SetDefault("alert_policy", string(budget.AlertPolicyEdge))
	v.SetDefault("rate_limit_sweep_seconds", 300)
	for class, rule := range ratelimit.DefaultRules() {
		v.SetDefault(rateLimitKey(class, "max"), rule.Max)
		v.SetDefault(rateLimitKey(class, "window_seconds"), int(rule.Window/time.Second))
	}

	v.AutomaticEnv()

	if path := os.Getenv(configFileEnv); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	return build(v)
}

func build(v *viper.Viper) (*Config, error) {
	env := Config{
		PostgresAddress:  v.GetString("postgres_address"),
		PostgresPort:     v.GetString("postgres_port"),
		PostgresDB:       v.GetString("postgres_db"),
		PostgresUsername: v.GetString("postgres_username"),
		PostgresPassword: v.GetString("postgres_password"),
		Port:             v.GetString("port"),
		StorageDriver:    strings.ToLower(v.GetString("storage_driver")),
		MigrationsPath:   v.GetString("migrations_path"),
		LogLevel:         v.GetString("log_level"),
		CronSecret:       v.GetString("cron_secret"),
		RateLimits:       make(map[ratelimit.Class]ratelimit.Rule, len(rateLimitClasses)),
	}

	var err error
	if env.SchedulerEnabled, err = boolValue(v, "scheduler_enabled"); err != nil {
		return nil, err
	}
	if env.SchedulerWorkers, err = positiveInt(v, "scheduler_workers"); err != nil {
		return nil, err
	}
	if env.OperatorWorkers, err = positiveInt(v, "operator_workers"); err != nil {
		return nil, err
	}
	if env.AlertPolicy, err = budget.ParseAlertPolicy(v.GetString("alert_policy")); err != nil {
		return nil, fmt.Errorf("ALERT_POLICY: %w", err)
	}

	sweep, err := positiveInt(v, "rate_limit_sweep_seconds")
	if err != nil {
		return nil, err
	}
	env.RateLimitSweep = time.Duration(sweep) * time.Second

	for _, class := range rateLimitClasses {
		max, err := positiveInt(v, rateLimitKey(class, "max"))
		if err != nil {
			return nil, err
		}
		window, err := positiveInt(v, rateLimitKey(class, "window_seconds"))
		if err != nil {
			return nil, err
		}
		env.RateLimits[class] = ratelimit.Rule{Window: time.Duration(window) * time.Second, Max: max}
	}

	switch env.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER: unknown driver %q", env.StorageDriver)
	}

	return &env, nil
}

func rateLimitKey(class ratelimit.Class, field string) string {
	return "rate_limit_" + string(class) + "_" + field
}

func positiveInt(v *viper.Viper, key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s: must be a positive integer, got %q", strings.ToUpper(key), v.GetString(key))
	}
	return n, nil
}

func boolValue(v *viper.Viper, key string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return false, fmt.Errorf("%s: must be a boolean, got %q", strings.ToUpper(key), v.GetString(key))
	}
	return b, nil
}
