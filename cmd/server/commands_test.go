package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dom/prodle/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roster = `[
  {"player_username": "Caps", "player_team": "G2 Esports", "player_league": "LEC", "player_country": "Denmark", "player_role": "Mid", "player_age": 25, "player_most_played_champion": "Sylas"},
  {"player_username": "Rekkles", "player_team": "Fnatic", "player_league": "LEC", "player_country": "Atlantis", "player_role": "ADC", "player_age": null},
  {"player_username": "Hylissang", "player_name": "Zdravets Galabov", "player_team": "Fnatic", "player_league": "LEC", "player_country": "Bulgaria", "player_role": "Coach", "player_age": 29, "player_most_played_champion": "Rakan"}
]`

func runCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	players := filepath.Join(dir, "players.json")
	images := filepath.Join(dir, "team_image_mapping.json")
	require.NoError(t, os.WriteFile(players, []byte(roster), 0o644))
	require.NoError(t, os.WriteFile(images, []byte(`{"G2 Esports": "G2.png"}`), 0o644))

	cmd := newCmd(config.Default())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"check", "--players-file", players, "--team-images-file", images, "--log-level", "disabled", "--timezone", "UTC"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	out, err := runCheck(t)
	require.NoError(t, err)

	assert.Contains(t, out, "players:            3")
	assert.Contains(t, out, "team logos:         1")
	assert.Contains(t, out, "without logo:       2")
	assert.Contains(t, out, "without age:        1")
	assert.Contains(t, out, "unknown continent:  1")
	assert.Contains(t, out, "without champion:   1")
	assert.Contains(t, out, "unrecognized role:  1")
	assert.Contains(t, out, "role Bot:           1")
	assert.Contains(t, out, "role Top:           0")
	assert.Contains(t, out, "role Coach:         1")
	assert.Less(t, strings.Index(out, "role Support:"), strings.Index(out, "role Coach:"), "off-list roles come last")
	assert.NotContains(t, out, "answer for")
}

func TestCheckCommand_Reveal(t *testing.T) {
	out, err := runCheck(t, "--reveal")
	require.NoError(t, err)
	assert.Regexp(t, `answer for \d{4}-\d{2}-\d{2}: (Caps \(Caps\)|Rekkles \(Rekkles\)|Hylissang \(Zdravets Galabov\))`, out)
}

func TestCheckCommand_MissingRoster(t *testing.T) {
	cmd := newCmd(config.Default())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"check", "--players-file", filepath.Join(t.TempDir(), "nope.json"), "--log-level", "disabled"})

	assert.Error(t, cmd.Execute())
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	cmd := newCmd(config.Default())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"check", "--port", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}
