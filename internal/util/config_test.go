package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, 12, cfg.TargetMonth)
	assert.False(t, cfg.UnlockAll)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SANTAEXE_STORE", "memory")
	t.Setenv("SANTAEXE_UNLOCK_ALL", "true")
	t.Setenv("SANTAEXE_TODAY", "2025-12-03")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store)
	assert.True(t, cfg.UnlockAll)
	d, err := cfg.FixedDate()
	require.NoError(t, err)
	assert.Equal(t, time.December, d.Month())
	assert.Equal(t, 3, d.Day())
}

func TestValidate(t *testing.T) {
	base := Config{Store: "sqlite", TargetMonth: 12}
	require.NoError(t, base.Validate())

	bad := base
	bad.Store = "redis"
	assert.Error(t, bad.Validate())

	bad = base
	bad.Store = "postgres"
	assert.ErrorContains(t, bad.Validate(), "DATABASE_URL")

	bad = base
	bad.TargetMonth = 13
	assert.Error(t, bad.Validate())

	bad = base
	bad.Today = "3.12.2025"
	assert.ErrorContains(t, bad.Validate(), "SANTAEXE_TODAY")
}
