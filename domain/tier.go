package domain

// CreditTier is a coarse credit-quality bucket.
type CreditTier string

const (
	TierPoor      CreditTier = "Poor"
	TierFair      CreditTier = "Fair"
	TierGood      CreditTier = "Good"
	TierExcellent CreditTier = "Excellent"
)

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v lies within the range.
func (r IntRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// FloatRange is an inclusive float range.
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r FloatRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// TierProfile holds the score range and factor ranges owned by a tier.
type TierProfile struct {
	Tier               CreditTier
	Score              IntRange
	OnTimePaymentsPct  IntRange
	LatePayments       IntRange
	TotalPayments      IntRange
	UtilizationPct     IntRange
	HistoryLengthYears IntRange
	LoanMixCount       IntRange
	Inquiries          IntRange
}

// CreditFactors are the tier-correlated factors of a sampled profile.
type CreditFactors struct {
	OnTimePaymentsPct  int `json:"onTimePaymentsPct"`
	LatePaymentsCount  int `json:"latePaymentsCount"`
	TotalPaymentsCount int `json:"totalPaymentsCount"`
	UtilizationPct     int `json:"utilizationPct"`
	HistoryLengthYears int `json:"historyLengthYears"`
	LoanMixCount       int `json:"loanMixCount"`
	InquiriesCount     int `json:"inquiriesCount"`
}

// Profile is the output of the profile sampler.
type Profile struct {
	Tier      CreditTier
	BaseScore int
	Factors   CreditFactors
}
