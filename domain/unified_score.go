package domain

// UnifiedScoreRequest carries bureau scores keyed by bureau name. A nil value
// or a missing key marks the bureau as absent.
type UnifiedScoreRequest struct {
	LoanType string              `json:"loanType"`
	Scores   map[string]*float64 `json:"scores"`
}

type ScoreBreakdown struct {
	Bureau               string  `json:"bureau"`
	Score                float64 `json:"score"`
	Weight               string  `json:"weight"`
	WeightedContribution int     `json:"weightedContribution"`
	PriorityReason       string  `json:"priorityReason"`
}

type UnifiedScoreResult struct {
	LoanType            string           `json:"loanType"`
	UnifiedScore        int              `json:"unifiedScore"`
	ScoreBreakdown      []ScoreBreakdown `json:"scoreBreakdown"`
	BureauPriorityOrder []string         `json:"bureauPriorityOrder"`
	MissingBureaus      []string         `json:"missingBureaus"`
}
