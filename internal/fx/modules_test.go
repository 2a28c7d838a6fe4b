package fx

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/dom/prodle/internal/config"
	"github.com/dom/prodle/internal/repository"
	"github.com/dom/prodle/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

const roster = `[
  {"player_username": "Caps", "player_team": "G2 Esports", "player_league": "LEC", "player_country": "Denmark", "player_role": "Mid", "player_age": 25, "kda_ratio": 4.48},
  {"player_username": "Rekkles", "player_team": "Fnatic", "player_league": "LEC", "player_country": "Sweden", "player_role": "Bot", "player_age": 28, "kda_ratio": 5.02}
]`

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	playersFile := filepath.Join(dir, "players.json")
	require.NoError(t, os.WriteFile(playersFile, []byte(roster), 0o644))

	cfg := config.Default()
	cfg.PlayersFile = playersFile
	cfg.TeamImagesFile = filepath.Join(dir, "missing.json")
	cfg.TeamImagesDir = dir
	cfg.Environment = "test"
	cfg.LogLevel = "disabled"
	cfg.Timezone = "UTC"
	return cfg
}

func TestModule_Graph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(
		fx.Supply(testConfig(t)),
		Module,
		fx.Invoke(func(*http.Server) {}),
	))
}

func TestModule_ResolvesServices(t *testing.T) {
	var (
		repos    *repository.Repositories
		services *service.Services
	)

	app := fx.New(
		fx.NopLogger,
		fx.Supply(testConfig(t)),
		Module,
		fx.Populate(&repos, &services),
	)
	require.NoError(t, app.Err())

	assert.Equal(t, 2, repos.Player.Count())
	assert.Equal(t, 0, repos.TeamImage.Count(), "missing mapping is tolerated")

	player, err := services.Daily.Today(context.Background())
	require.NoError(t, err)
	assert.Contains(t, []string{"Caps", "Rekkles"}, player.Username)
}

func TestModule_BadRosterFailsStartup(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.PlayersFile, []byte(`[]`), 0o644))

	var repos *repository.Repositories
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		Module,
		fx.Populate(&repos),
	)
	assert.Error(t, app.Err())
}
