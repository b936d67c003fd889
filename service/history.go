package service

import (
	"math/rand/v2"
	"time"

	"credit-simulator/domain"
)

// SynthesizeHistory walks a bureau score backward over HistoryPeriods months
// using one pattern drawn from candidates. Entry 0 is the current score; every
// entry is clamped to the bureau range.
func SynthesizeHistory(
	r *rand.Rand,
	bureau domain.Bureau,
	current int,
	candidates []TrendPattern,
	asOf time.Time,
) (TrendPattern, []domain.HistoryEntry) {
	pattern := TrendStable
	if len(candidates) > 0 {
		pattern = pick(r, candidates)
	}

	history := make([]domain.HistoryEntry, 0, HistoryPeriods)
	score := bureau.Clamp(current)
	history = append(history, domain.HistoryEntry{
		Period: 1,
		Month:  monthLabel(asOf, 0),
		Score:  score,
	})

	for step := 1; step < HistoryPeriods; step++ {
		score = bureau.Clamp(score + trendStep(r, pattern, step))
		history = append(history, domain.HistoryEntry{
			Period: step + 1,
			Month:  monthLabel(asOf, step),
			Score:  score,
		})
	}
	return pattern, history
}

// trendStep returns the change applied when moving one period further into
// the past. step is 1 for the first backward move.
func trendStep(r *rand.Rand, pattern TrendPattern, step int) int {
	switch pattern {
	case TrendStable:
		return intBetween(r, -5, 5)
	case TrendGradualImprovement:
		return -intBetween(r, 5, 15)
	case TrendFluctuatingImprovement:
		if chance(r, 0.25) {
			return intBetween(r, 3, 8)
		}
		return -intBetween(r, 10, 20)
	case TrendRecovery:
		return -intBetween(r, 15, 25)
	case TrendRecentDip:
		if step == 1 {
			return -intBetween(r, 20, 40)
		}
		return intBetween(r, 5, 15)
	case TrendDeclining:
		return intBetween(r, 10, 20)
	case TrendEarlyRecovery:
		if step <= 2 {
			return -intBetween(r, 5, 10)
		}
		return -intBetween(r, 15, 30)
	case TrendVolatile:
		return intBetween(r, -30, 30)
	}
	return 0
}

func monthLabel(asOf time.Time, monthsBack int) string {
	first := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -monthsBack, 0).Format(monthLabelLayout)
}
