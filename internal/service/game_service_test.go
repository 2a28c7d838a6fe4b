package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/dom/prodle/internal/domain"
	"github.com/dom/prodle/internal/service"
	"github.com/dom/prodle/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGameService(t *testing.T, roster []*domain.Player, tolerance float64) (*service.GameService, *service.DailyService) {
	t.Helper()
	repos := newRepos(t, roster)
	daily := service.NewDailyService(repos.Player, time.UTC, zerolog.Nop())
	return service.NewGameService(repos.Player, repos.TeamImage, daily, tolerance), daily
}

func TestGameService_CompareSelfIsAllCorrect(t *testing.T) {
	roster := append(testutil.SampleRoster(),
		testutil.NewPlayerBuilder().WithUsername("NoAge").WithoutAge().WithCountry("Atlantis").WithChampion("").Build(),
	)
	game, _ := newGameService(t, roster, 0)
	ctx := context.Background()

	for _, p := range roster {
		t.Run(p.Username, func(t *testing.T) {
			result := game.Compare(ctx, p, p)
			assert.True(t, result.IsCorrect)
			for field, verdict := range result.Verdicts() {
				assert.Equal(t, domain.VerdictCorrect, verdict, "field %s", field)
			}
			assert.Empty(t, result.Age.Direction)
			assert.Empty(t, result.KDA.Direction)
		})
	}
}

func TestGameService_Compare(t *testing.T) {
	game, _ := newGameService(t, testutil.SampleRoster(), 0)
	ctx := context.Background()

	base := func() *testutil.PlayerBuilder {
		return testutil.NewPlayerBuilder().
			WithUsername("Target").
			WithTeam("G2 Esports", "LEC").
			WithCountry("Denmark").
			WithRole(domain.RoleMid).
			WithChampion("Sylas").
			WithAge(25).
			WithRatio(4.48).
			WithClubs(3)
	}

	tests := []struct {
		name  string
		guess *domain.Player
		check func(t *testing.T, r *domain.GuessResult)
	}{
		{
			name:  "younger guess points higher",
			guess: base().WithUsername("Young").WithAge(20).Build(),
			check: func(t *testing.T, r *domain.GuessResult) {
				assert.Equal(t, domain.VerdictIncorrect, r.Age.Status)
				assert.Equal(t, domain.DirectionHigher, r.Age.Direction)
				require.NotNil(t, r.Age.Value)
				assert.Equal(t, 20, *r.Age.Value)
			},
		},
		{
			name:  "older guess points lower",
			guess: base().WithUsername("Old").WithAge(31).Build(),
			check: func(t *testing.T, r *domain.GuessResult) {
				assert.Equal(t, domain.VerdictIncorrect, r.Age.Status)
				assert.Equal(t, domain.DirectionLower, r.Age.Direction)
			},
		},
		{
			name:  "unknown guess age has no direction",
			guess: base().WithUsername("Unknown").WithoutAge().Build(),
			check: func(t *testing.T, r *domain.GuessResult) {
				assert.Equal(t, domain.VerdictIncorrect, r.Age.Status)
				assert.Empty(t, r.Age.Direction)
				assert.Nil(t, r.Age.Value)
			},
		},
		{
			name:  "same league is a partial team",
			guess: base().WithUsername("Rival").WithTeam("Fnatic", "LEC").Build(),
			check: func(t *testing.T, r *domain.GuessResult) {
				assert.Equal(t, domain.VerdictPartial, r.Team.Status)
				assert.Equal(t, "/static/team_images/Fnatic.png", r.Team.Logo)
				assert.Equal(t, domain.VerdictCorrect, r.League.Status)
			},
		},
		{
			name:  "different league is an incorrect team",
			guess: base().WithUsername("Abroad").WithTeam("T1", "LCK").Build(),
			check: func(t *testing.T, r *domain.GuessResult) {
				assert.Equal(t, domain.VerdictIncorrect, r.Team.Status)
				assert.Equal(t, domain.VerdictIncorrect, r.League.Status)
				assert.Empty(t, r.Team.Logo, "no mapping means no logo")
			},
		},
		{
			name:  "same continent is a partial country",
			guess: base().WithUsername("Swede").WithCountry("Sweden").Build(),
			check: func(t *testing.T, r *domain.GuessResult) {
				assert.Equal(t, domain.VerdictPartial, r.Country.Status)
				assert.Equal(t, "Sweden", r.Country.Value)
			},
		},
		{
			name:  "other continent is an incorrect country",
			guess: base().WithUsername("Korean").WithCountry("South Korea").Build(),
			check: func(t *testing.T, r *domain.GuessResult) {
				assert.Equal(t, domain.VerdictIncorrect, r.Country.Status)
			},
		},
		{
			name:  "lower ratio points higher",
			guess: base().WithUsername("Feeder").WithRatio(2.5).Build(),
			check: func(t *testing.T, r *domain.GuessResult) {
				assert.Equal(t, domain.VerdictIncorrect, r.KDA.Status)
				assert.Equal(t, domain.DirectionHigher, r.KDA.Direction)
				assert.Equal(t, 2.5, r.KDA.Value)
			},
		},
		{
			name:  "ratio equal at two decimals",
			guess: base().WithUsername("Close").WithRatio(4.481).Build(),
			check: func(t *testing.T, r *domain.GuessResult) {
				assert.Equal(t, domain.VerdictCorrect, r.KDA.Status)
				assert.Equal(t, 4.48, r.KDA.Value)
			},
		},
		{
			name:  "role and champion are exact",
			guess: base().WithUsername("Support").WithRole(domain.RoleSupport).WithChampion("Kai'Sa").Build(),
			check: func(t *testing.T, r *domain.GuessResult) {
				assert.Equal(t, domain.VerdictIncorrect, r.Role.Status)
				assert.Equal(t, "Support", r.Role.Value)
				assert.Equal(t, domain.VerdictIncorrect, r.Champion.Status)
				assert.Equal(t, "https://ddragon.leagueoflegends.com/cdn/img/champion/centered/Kaisa_0.jpg", r.Champion.Image)
			},
		},
		{
			name:  "more clubs points lower",
			guess: base().WithUsername("Journeyman").WithClubs(7).Build(),
			check: func(t *testing.T, r *domain.GuessResult) {
				assert.Equal(t, domain.VerdictIncorrect, r.Clubs.Status)
				assert.Equal(t, domain.DirectionLower, r.Clubs.Direction)
			},
		},
	}

	target := base().Build()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := game.Compare(ctx, tt.guess, target)
			assert.False(t, result.IsCorrect)
			assert.Equal(t, tt.guess.Username, result.Username)
			tt.check(t, result)
		})
	}
}

func TestGameService_CompareSampleRoster(t *testing.T) {
	roster := testutil.SampleRoster()
	game, _ := newGameService(t, roster, 0)
	caps, jankos, rekkles := roster[0], roster[1], roster[2]
	ctx := context.Background()

	result := game.Compare(ctx, jankos, caps)
	assert.Equal(t, domain.VerdictCorrect, result.Team.Status)
	assert.Equal(t, "/static/team_images/G2_Esports.png", result.Team.Logo)
	assert.Equal(t, domain.VerdictPartial, result.Country.Status)
	assert.Equal(t, domain.VerdictIncorrect, result.Age.Status)
	assert.Equal(t, domain.DirectionLower, result.Age.Direction)

	result = game.Compare(ctx, rekkles, caps)
	assert.Equal(t, domain.VerdictPartial, result.Team.Status, "Fnatic and G2 share the LEC")
	assert.Equal(t, domain.DirectionLower, result.KDA.Direction)
}

func TestGameService_RatioTolerance(t *testing.T) {
	game, _ := newGameService(t, testutil.SampleRoster(), 0.05)
	ctx := context.Background()

	target := testutil.NewPlayerBuilder().WithRatio(3.00).Build()
	near := testutil.NewPlayerBuilder().WithRatio(3.05).Build()
	far := testutil.NewPlayerBuilder().WithRatio(3.06).Build()

	assert.Equal(t, domain.VerdictCorrect, game.Compare(ctx, near, target).KDA.Status)
	assert.Equal(t, domain.VerdictIncorrect, game.Compare(ctx, far, target).KDA.Status)
}

func TestGameService_DirectionOmittedWhenCorrect(t *testing.T) {
	game, _ := newGameService(t, testutil.SampleRoster(), 0)
	p := testutil.SampleRoster()[0]

	raw, err := json.Marshal(game.Compare(context.Background(), p, p))
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	for _, key := range []string{"age", "kda", "clubs"} {
		var obj map[string]any
		require.NoError(t, json.Unmarshal(fields[key], &obj))
		assert.NotContains(t, obj, "direction", "field %s", key)
	}
}

func TestGameService_Guess(t *testing.T) {
	roster := testutil.SampleRoster()
	game, daily := newGameService(t, roster, 0)
	ctx := context.Background()

	target, err := daily.Today(ctx)
	require.NoError(t, err)

	result, err := game.Guess(ctx, target.Username)
	require.NoError(t, err)
	assert.True(t, result.IsCorrect)

	_, err = game.Guess(ctx, "Faker")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	for _, name := range []string{"", "  ", " " + target.Username + " "} {
		_, err = game.Guess(ctx, name)
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound, "username %q", name)
	}
}
