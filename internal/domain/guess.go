package domain

// Verdict is the per-field outcome of comparing a guess with the target
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictPartial   Verdict = "partial"
	VerdictIncorrect Verdict = "incorrect"
)

// Direction tells the user where the target value lies relative to the guess
type Direction string

const (
	DirectionHigher Direction = "higher"
	DirectionLower  Direction = "lower"
)

// DirectionOf returns higher when target is above guess, lower otherwise
func DirectionOf(guess, target float64) Direction {
	if target > guess {
		return DirectionHigher
	}
	return DirectionLower
}

type TeamComparison struct {
	Value  string  `json:"value"`
	Logo   string  `json:"logo"`
	Status Verdict `json:"status"`
}

type TextComparison struct {
	Value  string  `json:"value"`
	Status Verdict `json:"status"`
}

type CountryComparison struct {
	Value  string  `json:"value"`
	Flag   string  `json:"flag"`
	Status Verdict `json:"status"`
}

type ChampionComparison struct {
	Value  string  `json:"value"`
	Image  string  `json:"image"`
	Status Verdict `json:"status"`
}

// NumberComparison carries an optional value and a direction hint. The hint
// is only set when the verdict is incorrect and both sides are known.
type NumberComparison struct {
	Value     *int      `json:"value"`
	Status    Verdict   `json:"status"`
	Direction Direction `json:"direction,omitempty"`
}

type RatioComparison struct {
	Value     float64   `json:"value"`
	Status    Verdict   `json:"status"`
	Direction Direction `json:"direction,omitempty"`
}

// GuessResult is the full comparison of a guessed player against the daily target
type GuessResult struct {
	Username  string             `json:"username"`
	Team      TeamComparison     `json:"team"`
	League    TextComparison     `json:"league"`
	Age       NumberComparison   `json:"age"`
	Role      TextComparison     `json:"role"`
	Country   CountryComparison  `json:"country"`
	KDA       RatioComparison    `json:"kda"`
	Champion  ChampionComparison `json:"champion"`
	Clubs     NumberComparison   `json:"clubs"`
	IsCorrect bool               `json:"is_correct"`
}

// Verdicts returns every field verdict keyed by its JSON name
func (g *GuessResult) Verdicts() map[string]Verdict {
	return map[string]Verdict{
		"team":     g.Team.Status,
		"league":   g.League.Status,
		"age":      g.Age.Status,
		"role":     g.Role.Status,
		"country":  g.Country.Status,
		"kda":      g.KDA.Status,
		"champion": g.Champion.Status,
		"clubs":    g.Clubs.Status,
	}
}
