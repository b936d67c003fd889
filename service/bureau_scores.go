package service

import (
	"math/rand/v2"

	"credit-simulator/domain"
)

// DeriveBureauScores builds one record per bureau around baseScore. With
// MissingBureauProbability a single bureau is left out of the result.
// History is filled in later by SynthesizeHistory.
func DeriveBureauScores(r *rand.Rand, c *Catalog, baseScore int) []domain.BureauScoreRecord {
	omit := -1
	if chance(r, MissingBureauProbability) {
		omit = r.IntN(len(c.Bureaus))
	}

	records := make([]domain.BureauScoreRecord, 0, len(c.Bureaus))
	for i, b := range c.Bureaus {
		if i == omit {
			continue
		}
		variance := intBetween(r, -ScoreVariance, ScoreVariance)
		records = append(records, domain.BureauScoreRecord{
			Bureau:       b.Name,
			CurrentScore: b.Clamp(baseScore + variance),
			Range:        domain.ScoreRange{Min: b.ValidRangeMin, Max: b.ValidRangeMax},
		})
	}
	return records
}
