package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dom/prodle/internal/api"
	"github.com/dom/prodle/internal/config"
	"github.com/dom/prodle/internal/domain"
	"github.com/dom/prodle/internal/ratelimit"
	"github.com/dom/prodle/internal/repository"
	"github.com/dom/prodle/internal/repository/memory"
	"github.com/dom/prodle/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// TestConfig returns a configuration suitable for testing
func TestConfig() *config.Config {
	cfg := config.Default()
	cfg.Port = 8080
	cfg.Environment = "test"
	cfg.Timezone = "UTC"
	cfg.TeamImagesDir = ""
	cfg.RateLimitRPS = 1000
	cfg.RateLimitBurst = 1000
	cfg.LogLevel = "disabled"
	return cfg
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	Repos    *repository.Repositories
	Services *service.Services
	Config   *config.Config
}

type serverOptions struct {
	players    []*domain.Player
	teamImages map[string]string
	mutate     func(*config.Config)
}

type ServerOption func(*serverOptions)

// WithPlayers replaces the sample roster
func WithPlayers(players []*domain.Player) ServerOption {
	return func(o *serverOptions) { o.players = players }
}

func WithTeamImages(mapping map[string]string) ServerOption {
	return func(o *serverOptions) { o.teamImages = mapping }
}

// WithConfig tweaks the test configuration before anything is built
func WithConfig(mutate func(*config.Config)) ServerOption {
	return func(o *serverOptions) { o.mutate = mutate }
}

// NewTestServer creates a complete test server over an in-memory roster
func NewTestServer(t *testing.T, opts ...ServerOption) *TestServer {
	t.Helper()

	o := &serverOptions{
		players:    SampleRoster(),
		teamImages: SampleTeamImages(),
	}
	for _, opt := range opts {
		opt(o)
	}

	cfg := TestConfig()
	if o.mutate != nil {
		o.mutate(cfg)
	}
	if cfg.TeamImagesDir == "" {
		cfg.TeamImagesDir = t.TempDir()
	}

	repos, err := memory.NewRepositories(o.players, o.teamImages)
	require.NoError(t, err)

	logger := zerolog.Nop()
	services := service.NewServices(repos, cfg, logger)

	limiter := ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst, time.Minute)
	router := api.NewRouter(services, limiter, cfg, logger)

	server := httptest.NewServer(router)

	t.Cleanup(func() {
		server.Close()
		limiter.Stop()
	})

	return &TestServer{
		Server:   server,
		Repos:    repos,
		Services: services,
		Config:   cfg,
	}
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api%s", ts.Server.URL, path)
}

// PostJSON sends body encoded as JSON
func (ts *TestServer) PostJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(ts.APIURL(path), "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}
