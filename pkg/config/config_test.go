package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "work-stealing", cfg.SchedulerMode)
	assert.Equal(t, 4, cfg.NReps)
	assert.Equal(t, 1000, cfg.NSteps)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0 */6 * * *", cfg.SearchdCron)
}

func TestLoadHonorsEnvironmentOverride(t *testing.T) {
	os.Setenv("ROOT_SEED", "42")
	defer os.Unsetenv("ROOT_SEED")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.RootSeed)
}

func TestIsDevelopmentReflectsEnvField(t *testing.T) {
	cfg := &Config{Env: "development"}
	assert.True(t, cfg.IsDevelopment())

	cfg.Env = "production"
	assert.False(t, cfg.IsDevelopment())
}
