// Package config loads the engine's single root configuration handle,
// replacing the three process-wide globals (spec.md §9) the source
// threaded through hot paths. Pattern mirrors the teacher's
// pkg/config.LoadConfig: viper defaults, AutomaticEnv, Unmarshal.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the immutable handle passed down from a single root
// (cmd/simulate, cmd/searchd) to every component that needs a
// hyperparameter or resource knob.
type Config struct {
	// Env selects log formatting ("development" vs "production").
	Env string `mapstructure:"ENV"`

	// RootSeed seeds every team/match RNG stream deterministically
	// (spec.md §5).
	RootSeed int64 `mapstructure:"ROOT_SEED"`

	// SchedulerMode selects sched.Mode: "work-stealing" or "composable"
	// (spec.md §5).
	SchedulerMode string `mapstructure:"SCHEDULER_MODE"`
	WorkerPoolSize int   `mapstructure:"WORKER_POOL_SIZE"`

	// Rating-search hyperparameters (spec.md §4.9).
	NReps      int     `mapstructure:"SEARCH_NREPS"`
	NSteps     int     `mapstructure:"SEARCH_NSTEPS"`
	Thresh0    float64 `mapstructure:"SEARCH_THRESH0"`
	ThreshD    float64 `mapstructure:"SEARCH_THRESHD"`
	StepSize0  int     `mapstructure:"SEARCH_STEPSIZE0"`
	StaleLimit int     `mapstructure:"SEARCH_STALE_LIMIT"`

	// Run archive.
	RunStorePath string `mapstructure:"RUNSTORE_PATH"`

	// Baseline cache; empty disables Redis entirely.
	RedisURL string `mapstructure:"REDIS_URL"`

	// LogLevel is one of logrus's level names.
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// ProgressRateLimitHz throttles the rating-search engine's
	// progress callback (pkg/ratelimit).
	ProgressRateLimitHz float64 `mapstructure:"PROGRESS_RATE_LIMIT_HZ"`

	// SearchdCron is the cron expression cmd/searchd schedules batch
	// search runs on.
	SearchdCron string `mapstructure:"SEARCHD_CRON"`
}

// Load reads configuration from the environment (and an optional
// .env/config file in the working directory), falling back to
// defaults tuned for a single local run.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("ENV", "development")
	viper.SetDefault("ROOT_SEED", int64(0))
	viper.SetDefault("SCHEDULER_MODE", "work-stealing")
	viper.SetDefault("WORKER_POOL_SIZE", 0) // loaded only; sched always sizes its pool to GOMAXPROCS

	viper.SetDefault("SEARCH_NREPS", 4)
	viper.SetDefault("SEARCH_NSTEPS", 1000)
	viper.SetDefault("SEARCH_THRESH0", 5.0)
	viper.SetDefault("SEARCH_THRESHD", 0.01)
	viper.SetDefault("SEARCH_STEPSIZE0", 10)
	viper.SetDefault("SEARCH_STALE_LIMIT", 100)

	viper.SetDefault("RUNSTORE_PATH", "runstore.sqlite3")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PROGRESS_RATE_LIMIT_HZ", 5.0)
	viper.SetDefault("SEARCHD_CRON", "0 */6 * * *")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool { return c.Env == "development" }
