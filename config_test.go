package main

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("day-duration", "24h", "")
	fs.String("seed", "", "")
	fs.Bool("verbose", false, "")
	return fs
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("", testFlags())
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.DayDuration)
	assert.Empty(t, cfg.SeedPath)
	assert.False(t, cfg.Verbose)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("LIBRARIUM_DAY_DURATION", "10s")
	t.Setenv("LIBRARIUM_VERBOSE", "true")

	cfg, err := loadConfig("", testFlags())
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.DayDuration)
	assert.True(t, cfg.Verbose)
}

func TestFlagOverridesEnv(t *testing.T) {
	t.Setenv("LIBRARIUM_DAY_DURATION", "10s")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--day-duration=5m"}))

	cfg, err := loadConfig("", fs)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.DayDuration)
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("LIBRARIUM_DAY_DURATION", "often")
	_, err := loadConfig("", testFlags())
	assert.Error(t, err)

	t.Setenv("LIBRARIUM_DAY_DURATION", "-24h")
	_, err = loadConfig("", testFlags())
	assert.Error(t, err)
}

func TestLoadConfigMissingEnvFile(t *testing.T) {
	_, err := loadConfig("does-not-exist.env", testFlags())
	assert.Error(t, err)
}
