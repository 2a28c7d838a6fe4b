package lookup

// UnknownFlag is shown for countries missing from the table
const UnknownFlag = "🏳️"

var flags = map[string]string{
	"Belgium":        "🇧🇪",
	"Canada":         "🇨🇦",
	"Czech Republic": "🇨🇿",
	"Denmark":        "🇩🇰",
	"France":         "🇫🇷",
	"Germany":        "🇩🇪",
	"Greece":         "🇬🇷",
	"Lithuania":      "🇱🇹",
	"Morocco":        "🇲🇦",
	"Poland":         "🇵🇱",
	"Slovenia":       "🇸🇮",
	"South Korea":    "🇰🇷",
	"Spain":          "🇪🇸",
	"Sweden":         "🇸🇪",
	"Turkey":         "🇹🇷",
	"United Kingdom": "🇬🇧",
	"China":          "🇨🇳",
	"Japan":          "🇯🇵",
	"Taiwan":         "🇹🇼",
	"Vietnam":        "🇻🇳",
	"United States":  "🇺🇸",
	"Brazil":         "🇧🇷",
	"Australia":      "🇦🇺",
	"Netherlands":    "🇳🇱",
	"Norway":         "🇳🇴",
	"Finland":        "🇫🇮",
	"Austria":        "🇦🇹",
	"Switzerland":    "🇨🇭",
	"Italy":          "🇮🇹",
	"Portugal":       "🇵🇹",
	"Croatia":        "🇭🇷",
	"Serbia":         "🇷🇸",
	"Hungary":        "🇭🇺",
	"Romania":        "🇷🇴",
	"Bulgaria":       "🇧🇬",
	"Slovakia":       "🇸🇰",
	"Ireland":        "🇮🇪",
	"Ukraine":        "🇺🇦",
	"Russia":         "🇷🇺",
}

// Flag returns the flag emoji for a country, or UnknownFlag
func Flag(country string) string {
	if f, ok := flags[country]; ok {
		return f
	}
	return UnknownFlag
}
