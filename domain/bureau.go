package domain

const (
	BureauCIBIL    = "CIBIL"
	BureauExperian = "Experian"
	BureauEquifax  = "Equifax"
	BureauCRIF     = "CRIF"
)

// Bureau is a simulated credit-reporting agency.
type Bureau struct {
	Name          string
	ValidRangeMin int
	ValidRangeMax int
}

// Clamp pins score into the bureau's valid range.
func (b Bureau) Clamp(score int) int {
	if score < b.ValidRangeMin {
		return b.ValidRangeMin
	}
	if score > b.ValidRangeMax {
		return b.ValidRangeMax
	}
	return score
}

func (b Bureau) InRange(score float64) bool {
	return score >= float64(b.ValidRangeMin) && score <= float64(b.ValidRangeMax)
}

type ScoreRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type HistoryEntry struct {
	Period int    `json:"period"`
	Month  string `json:"month"`
	Score  int    `json:"score"`
}

// BureauScoreRecord is one bureau's current score and its six-period history,
// most recent first.
type BureauScoreRecord struct {
	Bureau       string         `json:"bureau"`
	CurrentScore int            `json:"currentScore"`
	Range        ScoreRange     `json:"range"`
	TrendPattern string         `json:"trendPattern,omitempty"`
	History      []HistoryEntry `json:"history"`
}
