package lookup

import (
	"fmt"
	"strings"
)

const championSplashURL = "https://ddragon.leagueoflegends.com/cdn/img/champion/centered/%s_0.jpg"

// championIDOverrides maps sanitized display names to Data Dragon ids where
// the two differ. Consulted before the generic sanitized name is used.
var championIDOverrides = map[string]string{
	"KaiSa":        "Kaisa",
	"Wukong":       "MonkeyKing",
	"RenataGlasc":  "Renata",
	"Nunu&Willump": "Nunu",
}

var championNameStripper = strings.NewReplacer("'", "", " ", "", ".", "")

// ChampionID converts a champion display name to its Data Dragon id
func ChampionID(name string) string {
	id := championNameStripper.Replace(name)
	if override, ok := championIDOverrides[id]; ok {
		return override
	}
	return id
}

// ChampionImage returns the centered splash URL for a champion, or an empty
// string when the name is empty.
func ChampionImage(name string) string {
	id := ChampionID(name)
	if id == "" {
		return ""
	}
	return fmt.Sprintf(championSplashURL, id)
}
