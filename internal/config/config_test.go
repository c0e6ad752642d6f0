package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into dir for the rest of the test so no stray orfscan.yaml
// is picked up.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 0.98, c.Threshold)
	assert.Equal(t, "BOTH", c.Direction)
	assert.Equal(t, 5, c.TopK)
	assert.Equal(t, "localhost:8080", c.Addr())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero threshold", func(c *Config) { c.Threshold = 0 }},
		{"threshold above one", func(c *Config) { c.Threshold = 1.5 }},
		{"unknown direction", func(c *Config) { c.Direction = "UP" }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"no topk", func(c *Config) { c.TopK = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	t.Run("threshold of one", func(t *testing.T) {
		c := Default()
		c.Threshold = 1
		assert.NoError(t, c.Validate())
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ORFSCAN_THRESHOLD", "0.9")
	t.Setenv("ORFSCAN_DIRECTION", "FWD")
	t.Setenv("ORFSCAN_CACHE_TTL", "5m")
	t.Setenv("ORFSCAN_SERVER_PORT", "9000")

	c, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 0.9, c.Threshold)
	assert.Equal(t, "FWD", c.Direction)
	assert.Equal(t, 5*time.Minute, c.Cache.TTL)
	assert.Equal(t, 9000, c.Server.Port)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 0.95\ntopk: 3\ncache:\n  sweep-interval: 10s\n"), 0o644))

	c, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 0.95, c.Threshold)
	assert.Equal(t, 3, c.TopK)
	assert.Equal(t, 10*time.Second, c.Cache.SweepInterval)
}

func TestLoadRejectsInvalid(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ORFSCAN_THRESHOLD", "2")

	_, err := Load(viper.New(), "")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
