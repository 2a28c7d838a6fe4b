package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.Port = 70000 }, wantErr: true},
		{name: "no players file", mutate: func(c *Config) { c.PlayersFile = "" }, wantErr: true},
		{name: "zero suggestion limit", mutate: func(c *Config) { c.SuggestionLimit = 0 }, wantErr: true},
		{name: "negative tolerance", mutate: func(c *Config) { c.RatioTolerance = -0.1 }, wantErr: true},
		{name: "zero burst", mutate: func(c *Config) { c.RateLimitBurst = 0 }, wantErr: true},
		{name: "unknown timezone", mutate: func(c *Config) { c.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "utc timezone", mutate: func(c *Config) { c.Timezone = "UTC" }},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBindEnv_EnvironmentOverridesDefault(t *testing.T) {
	t.Setenv("PRODLE_PORT", "9090")
	t.Setenv("PRODLE_SUGGESTION_LIMIT", "5")
	t.Setenv("PRODLE_READ_TIMEOUT", "3s")

	cfg := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, cfg)
	require.NoError(t, fs.Parse(nil))

	BindEnv(fs, zerolog.Nop())

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5, cfg.SuggestionLimit)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
}

func TestBindEnv_FlagWinsOverEnvironment(t *testing.T) {
	t.Setenv("PRODLE_PORT", "9090")

	cfg := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs, cfg)
	require.NoError(t, fs.Parse([]string{"--port", "7000"}))

	BindEnv(fs, zerolog.Nop())

	assert.Equal(t, 7000, cfg.Port)
}

func TestAddr(t *testing.T) {
	cfg := Default()
	cfg.Bind = "127.0.0.1"
	cfg.Port = 8081
	assert.Equal(t, "127.0.0.1:8081", cfg.Addr())
}
