package domain

import "math"

// UnknownContinent is used when a country has no continent mapping
const UnknownContinent = "Unknown"

// Player is one roster entry. Field tags follow the JSON emitted by the
// offline roster scraper, which is also what the debug endpoint returns.
type Player struct {
	Username           string  `json:"player_username"`
	RealName           string  `json:"player_name"`
	ImageURL           string  `json:"player_media_url"`
	Team               string  `json:"player_team"`
	TeamImageURL       string  `json:"player_team_media_url"`
	League             string  `json:"player_league"`
	ClubCount          int     `json:"number_of_clubs"`
	Country            string  `json:"player_country"`
	Continent          string  `json:"player_country_continent"`
	Role               Role    `json:"player_role"`
	MostPlayedChampion string  `json:"player_most_played_champion"`
	Age                *int    `json:"player_age"` // nil when the birthdate is unknown
	AvgKills           float64 `json:"avg_kills"`
	AvgDeaths          float64 `json:"avg_deaths"`
	AvgAssists         float64 `json:"avg_assists"`
	Ratio              float64 `json:"kda_ratio"`
	GamesPlayed        int     `json:"games_played"`
}

// HasAge reports whether the player's age is known
func (p *Player) HasAge() bool {
	return p.Age != nil
}

// DisplayName returns the real name, falling back to the username
func (p *Player) DisplayName() string {
	if p.RealName != "" {
		return p.RealName
	}
	return p.Username
}

// KDARatio computes (kills + assists) / deaths with deaths floored at 1,
// rounded to two decimals.
func KDARatio(avgKills, avgDeaths, avgAssists float64) float64 {
	deaths := math.Max(avgDeaths, 1)
	return RoundTo(((avgKills + avgAssists) / deaths), 2)
}

// RoundTo rounds v to the given number of decimal places
func RoundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// IntPtr is a small helper for building players with a known age
func IntPtr(v int) *int {
	return &v
}

// Suggestion is a single autocomplete candidate
type Suggestion struct {
	Username string `json:"username"`
	Team     string `json:"team"`
}
