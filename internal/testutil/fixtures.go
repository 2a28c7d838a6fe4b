package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/dom/prodle/internal/domain"
	"github.com/dom/prodle/internal/lookup"
)

var playerSeq atomic.Int64

// PlayerBuilder creates test players with a builder pattern
type PlayerBuilder struct {
	player domain.Player
}

// NewPlayerBuilder creates a new PlayerBuilder with default values
func NewPlayerBuilder() *PlayerBuilder {
	n := playerSeq.Add(1)
	return &PlayerBuilder{
		player: domain.Player{
			Username:           fmt.Sprintf("player%d", n),
			RealName:           fmt.Sprintf("Test Player %d", n),
			Team:               "Test Team",
			League:             "LEC",
			ClubCount:          1,
			Country:            "Denmark",
			Continent:          "Europe",
			Role:               domain.RoleMid,
			MostPlayedChampion: "Ahri",
			Age:                domain.IntPtr(22),
			AvgKills:           3.0,
			AvgDeaths:          2.0,
			AvgAssists:         5.0,
			Ratio:              4.0,
			GamesPlayed:        20,
		},
	}
}

func (b *PlayerBuilder) WithUsername(username string) *PlayerBuilder {
	b.player.Username = username
	return b
}

func (b *PlayerBuilder) WithTeam(team, league string) *PlayerBuilder {
	b.player.Team = team
	b.player.League = league
	return b
}

// WithCountry sets the country and derives the continent from it
func (b *PlayerBuilder) WithCountry(country string) *PlayerBuilder {
	b.player.Country = country
	b.player.Continent = lookup.Continent(country)
	return b
}

func (b *PlayerBuilder) WithRole(role domain.Role) *PlayerBuilder {
	b.player.Role = role
	return b
}

func (b *PlayerBuilder) WithChampion(champion string) *PlayerBuilder {
	b.player.MostPlayedChampion = champion
	return b
}

func (b *PlayerBuilder) WithAge(age int) *PlayerBuilder {
	b.player.Age = domain.IntPtr(age)
	return b
}

func (b *PlayerBuilder) WithoutAge() *PlayerBuilder {
	b.player.Age = nil
	return b
}

func (b *PlayerBuilder) WithRatio(ratio float64) *PlayerBuilder {
	b.player.Ratio = ratio
	return b
}

func (b *PlayerBuilder) WithClubs(clubs int) *PlayerBuilder {
	b.player.ClubCount = clubs
	return b
}

// Build returns a fresh copy so a builder can be reused
func (b *PlayerBuilder) Build() *domain.Player {
	p := b.player
	if b.player.Age != nil {
		p.Age = domain.IntPtr(*b.player.Age)
	}
	return &p
}

// SampleRoster returns a small roster with three well known players
func SampleRoster() []*domain.Player {
	return []*domain.Player{
		NewPlayerBuilder().
			WithUsername("Caps").
			WithTeam("G2 Esports", "LEC").
			WithCountry("Denmark").
			WithRole(domain.RoleMid).
			WithChampion("Sylas").
			WithAge(25).
			WithRatio(4.48).
			WithClubs(2).
			Build(),
		NewPlayerBuilder().
			WithUsername("Jankos").
			WithTeam("G2 Esports", "LEC").
			WithCountry("Poland").
			WithRole(domain.RoleJungle).
			WithChampion("Lee Sin").
			WithAge(29).
			WithRatio(3.1).
			WithClubs(4).
			Build(),
		NewPlayerBuilder().
			WithUsername("Rekkles").
			WithTeam("Fnatic", "LEC").
			WithCountry("Sweden").
			WithRole(domain.RoleBot).
			WithChampion("Kai'Sa").
			WithAge(28).
			WithRatio(5.02).
			WithClubs(5).
			Build(),
	}
}

// SampleTeamImages maps the sample roster teams to logo files
func SampleTeamImages() map[string]string {
	return map[string]string{
		"G2 Esports": "G2_Esports.png",
		"Fnatic":     "Fnatic.png",
	}
}
