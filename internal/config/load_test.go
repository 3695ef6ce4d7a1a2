package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultLogLevel, cfg.Server.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TASKS_SERVER_PORT", "9090")
	t.Setenv("TASKS_SERVER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "TASKS_SERVER_PORT", value: "70000"},
		{name: "unknown log level", key: "TASKS_SERVER_LOG_LEVEL", value: "verbose"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
