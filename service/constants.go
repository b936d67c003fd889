package service

const (
	MaxLoanAmount   = 1_000_000_000.0
	MaxInterestRate = 100.0
	MaxTermMonths   = 600
	MinTermMonths   = 1

	// HistoryPeriods is the number of entries in every bureau history.
	HistoryPeriods = 6

	// ScoreVariance bounds the per-bureau offset from the base score.
	ScoreVariance = 20

	MissingBureauProbability = 0.25

	MaxClosedLoans = 3

	// MaxBatchReports bounds a single batch generation call.
	MaxBatchReports = 1000

	UnifiedScoreMin = 300
	UnifiedScoreMax = 900

	monthLabelLayout = "Jan 2006"
)
