package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, DefaultPriority, cfg.Priority)
	assert.Empty(t, cfg.Directory)
	assert.Empty(t, cfg.Image)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := &Config{Image: "mariadb"}

	withDefaults := cfg.WithDefaults()

	assert.Equal(t, DefaultPriority, withDefaults.Priority)
	assert.Equal(t, "mariadb", withDefaults.Image)
	assert.Zero(t, cfg.Priority, "original must not be modified")

	custom := (&Config{Priority: 30}).WithDefaults()
	assert.Equal(t, 30, custom.Priority)
}
