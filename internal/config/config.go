package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every flag name to form its environment variable
const EnvPrefix = "PRODLE"

type Config struct {
	// Server
	Port         int
	Bind         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	CORSOrigins  []string

	// Data
	PlayersFile    string
	TeamImagesFile string
	TeamImagesDir  string

	// Game
	Timezone        string
	SuggestionLimit int
	RatioTolerance  float64
	EnableDebug     bool

	// Rate limiting
	RateLimitRPS   float64
	RateLimitBurst int

	LogLevel string
}

// Default returns the configuration used when no flag or environment
// variable overrides a value.
func Default() *Config {
	return &Config{
		Port:            8080,
		Bind:            "0.0.0.0",
		Environment:     "development",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		CORSOrigins:     []string{"*"},
		PlayersFile:     "data/players.json",
		TeamImagesFile:  "data/team_image_mapping.json",
		TeamImagesDir:   "static/team_images",
		Timezone:        "Local",
		SuggestionLimit: 3,
		RatioTolerance:  0,
		EnableDebug:     true,
		RateLimitRPS:    10,
		RateLimitBurst:  20,
		LogLevel:        "info",
	}
}

// RegisterFlags adds every configuration flag to fs, using the current
// values of cfg as defaults.
func RegisterFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on (env: PRODLE_PORT)")
	fs.StringVarP(&cfg.Bind, "bind", "b", cfg.Bind, "address to bind to (env: PRODLE_BIND)")
	fs.StringVar(&cfg.Environment, "environment", cfg.Environment, "development or production (env: PRODLE_ENVIRONMENT)")
	fs.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "http read timeout (env: PRODLE_READ_TIMEOUT)")
	fs.DurationVar(&cfg.WriteTimeout, "write-timeout", cfg.WriteTimeout, "http write timeout (env: PRODLE_WRITE_TIMEOUT)")
	fs.DurationVar(&cfg.IdleTimeout, "idle-timeout", cfg.IdleTimeout, "http idle timeout (env: PRODLE_IDLE_TIMEOUT)")
	fs.StringSliceVar(&cfg.CORSOrigins, "cors-origins", cfg.CORSOrigins, "allowed CORS origins (env: PRODLE_CORS_ORIGINS)")

	fs.StringVar(&cfg.PlayersFile, "players-file", cfg.PlayersFile, "path to the roster JSON (env: PRODLE_PLAYERS_FILE)")
	fs.StringVar(&cfg.TeamImagesFile, "team-images-file", cfg.TeamImagesFile, "path to the team logo mapping JSON (env: PRODLE_TEAM_IMAGES_FILE)")
	fs.StringVar(&cfg.TeamImagesDir, "team-images-dir", cfg.TeamImagesDir, "directory served under /static/team_images (env: PRODLE_TEAM_IMAGES_DIR)")

	fs.StringVar(&cfg.Timezone, "timezone", cfg.Timezone, "IANA zone used to decide the puzzle date (env: PRODLE_TIMEZONE)")
	fs.IntVar(&cfg.SuggestionLimit, "suggestion-limit", cfg.SuggestionLimit, "maximum autocomplete results (env: PRODLE_SUGGESTION_LIMIT)")
	fs.Float64Var(&cfg.RatioTolerance, "ratio-tolerance", cfg.RatioTolerance, "KDA difference still counted as equal (env: PRODLE_RATIO_TOLERANCE)")
	fs.BoolVar(&cfg.EnableDebug, "enable-debug", cfg.EnableDebug, "expose /api/debug/answer (env: PRODLE_ENABLE_DEBUG)")

	fs.Float64Var(&cfg.RateLimitRPS, "rate-limit-rps", cfg.RateLimitRPS, "requests per second per client on /api (env: PRODLE_RATE_LIMIT_RPS)")
	fs.IntVar(&cfg.RateLimitBurst, "rate-limit-burst", cfg.RateLimitBurst, "burst size per client on /api (env: PRODLE_RATE_LIMIT_BURST)")

	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "zerolog level (env: PRODLE_LOG_LEVEL)")
}

// BindEnv loads an optional .env file and copies PRODLE_* environment values
// into any flag the user did not set explicitly.
func BindEnv(fs *pflag.FlagSet, logger zerolog.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})
}

func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.Port)
	}
	if c.PlayersFile == "" {
		return errors.New("players file is required")
	}
	if c.SuggestionLimit <= 0 {
		return fmt.Errorf("suggestion limit must be positive: %d", c.SuggestionLimit)
	}
	if c.RatioTolerance < 0 {
		return fmt.Errorf("ratio tolerance must not be negative: %v", c.RatioTolerance)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("rate limit rps and burst must be positive")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Location resolves the configured timezone. Validate must have passed.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Bind, strconv.Itoa(c.Port))
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
