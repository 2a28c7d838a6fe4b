// Package lookup holds the static tables used to score and display guesses:
// country to continent, country to flag, and champion name to splash art.
package lookup

import "github.com/dom/prodle/internal/domain"

var continents = map[string]string{
	// Europe
	"Germany": "Europe", "France": "Europe", "Spain": "Europe", "Italy": "Europe",
	"United Kingdom": "Europe", "Netherlands": "Europe", "Belgium": "Europe",
	"Sweden": "Europe", "Denmark": "Europe", "Norway": "Europe", "Finland": "Europe",
	"Poland": "Europe", "Czech Republic": "Europe", "Austria": "Europe",
	"Switzerland": "Europe", "Greece": "Europe", "Portugal": "Europe",
	"Hungary": "Europe", "Slovenia": "Europe", "Croatia": "Europe",
	"Slovakia": "Europe", "Estonia": "Europe", "Latvia": "Europe",
	"Lithuania": "Europe", "Romania": "Europe", "Bulgaria": "Europe",
	"Serbia": "Europe", "Bosnia and Herzegovina": "Europe", "Albania": "Europe",
	"North Macedonia": "Europe", "Montenegro": "Europe", "Moldova": "Europe",
	"Ukraine": "Europe", "Russia": "Europe", "Belarus": "Europe",
	"Turkey": "Europe", "Iceland": "Europe", "Ireland": "Europe",
	"Luxembourg": "Europe", "Malta": "Europe", "Cyprus": "Europe",

	"United States": "North America", "Canada": "North America", "Mexico": "North America",

	"South Korea": "Asia", "China": "Asia", "Japan": "Asia", "Taiwan": "Asia",
	"Vietnam": "Asia", "Thailand": "Asia", "Singapore": "Asia", "Malaysia": "Asia",
	"Philippines": "Asia", "Indonesia": "Asia", "India": "Asia", "Pakistan": "Asia",

	"Australia": "Oceania", "New Zealand": "Oceania",

	"Brazil": "South America", "Argentina": "South America", "Chile": "South America",
	"Peru": "South America", "Colombia": "South America", "Venezuela": "South America",

	"Morocco": "Africa", "Egypt": "Africa", "Tunisia": "Africa", "Algeria": "Africa",
	"South Africa": "Africa",
}

// Continent returns the continent for a country, or domain.UnknownContinent
func Continent(country string) string {
	if c, ok := continents[country]; ok {
		return c
	}
	return domain.UnknownContinent
}
