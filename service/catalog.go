package service

import (
	"fmt"

	"credit-simulator/domain"
)

// TrendPattern names a stochastic rule for walking a score back in time.
type TrendPattern string

const (
	TrendStable                 TrendPattern = "stable"
	TrendGradualImprovement     TrendPattern = "gradual-improvement"
	TrendFluctuatingImprovement TrendPattern = "fluctuating-improvement"
	TrendRecovery               TrendPattern = "recovery"
	TrendRecentDip              TrendPattern = "recent-dip"
	TrendDeclining              TrendPattern = "declining"
	TrendEarlyRecovery          TrendPattern = "early-recovery"
	TrendVolatile               TrendPattern = "volatile"
)

const (
	LoanMortgage   = "Mortgage"
	LoanAuto       = "Auto Loan"
	LoanPersonal   = "Personal Loan"
	LoanEducation  = "Education Loan"
	LoanCreditCard = "Credit Card"
	LoanBusiness   = "Business Loan"
	LoanHome       = "Home Loan"
)

// TierCutoff maps draws strictly above Above to Tier.
type TierCutoff struct {
	Above float64
	Tier  domain.CreditTier
}

// LoanTypeSpec carries the base amount and tenure ranges of a loan type.
type LoanTypeSpec struct {
	Name   string
	Amount domain.IntRange
	Tenure domain.IntRange
}

// TierLoanPolicy parameterizes the portfolio generator for one tier.
type TierLoanPolicy struct {
	ActiveCount          domain.IntRange
	AmountScale          float64
	TenureScale          float64
	InterestRatePct      domain.FloatRange
	RejectionProbability float64
	RejectionCount       domain.IntRange
	RejectionTypes       []string
	RejectionReasons     []string
	TrendPatterns        []TrendPattern
}

// Catalog is the immutable configuration shared by every generator and the
// aggregator. Build it once with DefaultCatalog and pass it by pointer;
// nothing in this package writes to it after construction.
type Catalog struct {
	TierCutoffs  []TierCutoff
	FallbackTier domain.CreditTier
	Tiers        map[domain.CreditTier]domain.TierProfile
	Policies     map[domain.CreditTier]TierLoanPolicy

	Bureaus []domain.Bureau

	PortfolioTypes   []LoanTypeSpec
	RejectionAmounts map[string]domain.IntRange

	Lenders           []string
	ClosureMonths     []string
	ApplicationMonths []string
	FirstNames        []string
	LastNames         []string
	Streets           []string
	Cities            []string
	AgeRange          domain.IntRange

	LoanTypePriority map[string][]string
	PriorityReasons  map[string]map[string]string
	CIBILWeights     []float64
	DefaultWeights   []float64
}

// DefaultCatalog builds the built-in catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{
		TierCutoffs: []TierCutoff{
			{Above: 0.8, Tier: domain.TierExcellent},
			{Above: 0.5, Tier: domain.TierGood},
			{Above: 0.2, Tier: domain.TierFair},
		},
		FallbackTier: domain.TierPoor,
		Tiers: map[domain.CreditTier]domain.TierProfile{
			domain.TierExcellent: {
				Tier:               domain.TierExcellent,
				Score:              domain.IntRange{Min: 750, Max: 850},
				OnTimePaymentsPct:  domain.IntRange{Min: 95, Max: 100},
				LatePayments:       domain.IntRange{Min: 0, Max: 1},
				TotalPayments:      domain.IntRange{Min: 120, Max: 240},
				UtilizationPct:     domain.IntRange{Min: 1, Max: 20},
				HistoryLengthYears: domain.IntRange{Min: 8, Max: 20},
				LoanMixCount:       domain.IntRange{Min: 3, Max: 5},
				Inquiries:          domain.IntRange{Min: 0, Max: 2},
			},
			domain.TierGood: {
				Tier:               domain.TierGood,
				Score:              domain.IntRange{Min: 670, Max: 749},
				OnTimePaymentsPct:  domain.IntRange{Min: 85, Max: 94},
				LatePayments:       domain.IntRange{Min: 1, Max: 3},
				TotalPayments:      domain.IntRange{Min: 72, Max: 180},
				UtilizationPct:     domain.IntRange{Min: 21, Max: 40},
				HistoryLengthYears: domain.IntRange{Min: 5, Max: 12},
				LoanMixCount:       domain.IntRange{Min: 2, Max: 4},
				Inquiries:          domain.IntRange{Min: 1, Max: 4},
			},
			domain.TierFair: {
				Tier:               domain.TierFair,
				Score:              domain.IntRange{Min: 580, Max: 669},
				OnTimePaymentsPct:  domain.IntRange{Min: 75, Max: 84},
				LatePayments:       domain.IntRange{Min: 3, Max: 8},
				TotalPayments:      domain.IntRange{Min: 36, Max: 120},
				UtilizationPct:     domain.IntRange{Min: 41, Max: 70},
				HistoryLengthYears: domain.IntRange{Min: 2, Max: 8},
				LoanMixCount:       domain.IntRange{Min: 2, Max: 3},
				Inquiries:          domain.IntRange{Min: 3, Max: 7},
			},
			domain.TierPoor: {
				Tier:               domain.TierPoor,
				Score:              domain.IntRange{Min: 300, Max: 579},
				OnTimePaymentsPct:  domain.IntRange{Min: 50, Max: 74},
				LatePayments:       domain.IntRange{Min: 8, Max: 20},
				TotalPayments:      domain.IntRange{Min: 12, Max: 72},
				UtilizationPct:     domain.IntRange{Min: 71, Max: 100},
				HistoryLengthYears: domain.IntRange{Min: 1, Max: 5},
				LoanMixCount:       domain.IntRange{Min: 1, Max: 2},
				Inquiries:          domain.IntRange{Min: 5, Max: 12},
			},
		},
		Policies: map[domain.CreditTier]TierLoanPolicy{
			domain.TierExcellent: {
				ActiveCount:          domain.IntRange{Min: 1, Max: 3},
				AmountScale:          1.0,
				TenureScale:          1.0,
				InterestRatePct:      domain.FloatRange{Min: 5, Max: 8},
				RejectionProbability: 0.05,
				RejectionCount:       domain.IntRange{Min: 1, Max: 1},
				RejectionTypes:       []string{LoanBusiness, LoanMortgage, LoanPersonal},
				RejectionReasons: []string{
					"Income verification needed",
					"Requested amount exceeds eligibility",
				},
				TrendPatterns: []TrendPattern{TrendStable, TrendGradualImprovement},
			},
			domain.TierGood: {
				ActiveCount:          domain.IntRange{Min: 1, Max: 2},
				AmountScale:          0.75,
				TenureScale:          0.85,
				InterestRatePct:      domain.FloatRange{Min: 8, Max: 12},
				RejectionProbability: 0.20,
				RejectionCount:       domain.IntRange{Min: 1, Max: 1},
				RejectionTypes:       []string{LoanBusiness, LoanMortgage, LoanPersonal},
				RejectionReasons: []string{
					"High debt-to-income ratio",
					"Insufficient income documentation",
					"Too many recent credit inquiries",
				},
				TrendPatterns: []TrendPattern{TrendGradualImprovement, TrendFluctuatingImprovement},
			},
			domain.TierFair: {
				ActiveCount:          domain.IntRange{Min: 1, Max: 1},
				AmountScale:          0.5,
				TenureScale:          0.7,
				InterestRatePct:      domain.FloatRange{Min: 12, Max: 18},
				RejectionProbability: 0.60,
				RejectionCount:       domain.IntRange{Min: 1, Max: 2},
				RejectionTypes:       []string{LoanBusiness, LoanCreditCard, LoanAuto, LoanPersonal, LoanMortgage},
				RejectionReasons: []string{
					"Credit score below lender threshold",
					"High credit utilization",
					"Multiple recent inquiries",
				},
				TrendPatterns: []TrendPattern{TrendFluctuatingImprovement, TrendRecovery, TrendRecentDip},
			},
			domain.TierPoor: {
				ActiveCount:          domain.IntRange{Min: 0, Max: 0},
				AmountScale:          0.3,
				TenureScale:          0.5,
				InterestRatePct:      domain.FloatRange{Min: 18, Max: 24},
				RejectionProbability: 0.90,
				RejectionCount:       domain.IntRange{Min: 1, Max: 3},
				RejectionTypes:       []string{LoanBusiness, LoanCreditCard, LoanAuto, LoanPersonal, LoanMortgage},
				RejectionReasons: []string{
					"Low credit score",
					"Recent defaults",
					"High existing debt",
					"Irregular repayment history",
				},
				TrendPatterns: []TrendPattern{TrendDeclining, TrendEarlyRecovery, TrendVolatile},
			},
		},
		Bureaus: []domain.Bureau{
			{Name: domain.BureauCIBIL, ValidRangeMin: 300, ValidRangeMax: 900},
			{Name: domain.BureauExperian, ValidRangeMin: 300, ValidRangeMax: 900},
			{Name: domain.BureauEquifax, ValidRangeMin: 1, ValidRangeMax: 999},
			{Name: domain.BureauCRIF, ValidRangeMin: 300, ValidRangeMax: 900},
		},
		PortfolioTypes: []LoanTypeSpec{
			{Name: LoanMortgage, Amount: domain.IntRange{Min: 1_500_000, Max: 7_500_000}, Tenure: domain.IntRange{Min: 120, Max: 240}},
			{Name: LoanAuto, Amount: domain.IntRange{Min: 300_000, Max: 1_200_000}, Tenure: domain.IntRange{Min: 24, Max: 84}},
			{Name: LoanPersonal, Amount: domain.IntRange{Min: 50_000, Max: 500_000}, Tenure: domain.IntRange{Min: 12, Max: 60}},
			{Name: LoanEducation, Amount: domain.IntRange{Min: 200_000, Max: 1_500_000}, Tenure: domain.IntRange{Min: 36, Max: 120}},
			{Name: LoanCreditCard, Amount: domain.IntRange{Min: 20_000, Max: 300_000}, Tenure: domain.IntRange{Min: 6, Max: 24}},
		},
		RejectionAmounts: map[string]domain.IntRange{
			LoanBusiness:   {Min: 500_000, Max: 5_000_000},
			LoanMortgage:   {Min: 1_500_000, Max: 10_000_000},
			LoanPersonal:   {Min: 50_000, Max: 1_000_000},
			LoanAuto:       {Min: 300_000, Max: 1_500_000},
			LoanCreditCard: {Min: 25_000, Max: 500_000},
		},
		Lenders: []string{
			"Northbridge Bank",
			"Harbor Finance",
			"Lakeside Credit Union",
			"Summit Capital",
			"Meridian Savings",
			"Keystone Lending",
		},
		ClosureMonths: []string{
			"Mar 2019", "Aug 2019", "Jan 2020", "Jun 2020", "Nov 2020", "Apr 2021",
			"Sep 2021", "Feb 2022", "Jul 2022", "Dec 2022", "May 2023", "Oct 2023",
		},
		ApplicationMonths: []string{
			"Nov 2023", "Jan 2024", "Mar 2024", "May 2024", "Jul 2024", "Sep 2024",
		},
		FirstNames: []string{"Aarav", "Diya", "Kabir", "Meera", "Rohan", "Ananya", "Vikram", "Isha"},
		LastNames:  []string{"Sharma", "Iyer", "Khan", "Mehta", "Reddy", "Das", "Kapoor", "Nair"},
		Streets: []string{
			"12 Lotus Lane", "48 Banyan Road", "7 Harbour View", "221 Station Street",
			"15 Orchard Avenue", "93 Riverside Drive",
		},
		Cities:   []string{"Mumbai", "Bengaluru", "Pune", "Chennai", "Hyderabad", "Kolkata"},
		AgeRange: domain.IntRange{Min: 23, Max: 65},

		LoanTypePriority: map[string][]string{
			LoanHome:       {domain.BureauCIBIL, domain.BureauCRIF, domain.BureauExperian, domain.BureauEquifax},
			LoanPersonal:   {domain.BureauExperian, domain.BureauEquifax, domain.BureauCIBIL, domain.BureauCRIF},
			LoanAuto:       {domain.BureauEquifax, domain.BureauCIBIL, domain.BureauExperian, domain.BureauCRIF},
			LoanCreditCard: {domain.BureauExperian, domain.BureauCIBIL, domain.BureauEquifax, domain.BureauCRIF},
			LoanEducation:  {domain.BureauCIBIL, domain.BureauExperian, domain.BureauCRIF, domain.BureauEquifax},
			LoanBusiness:   {domain.BureauCRIF, domain.BureauCIBIL, domain.BureauEquifax, domain.BureauExperian},
		},
		PriorityReasons: map[string]map[string]string{
			LoanHome: {
				domain.BureauCIBIL:    "Most widely used by banks for secured home loans",
				domain.BureauCRIF:     "Strong coverage of long-tenure secured lending",
				domain.BureauExperian: "Supplementary view of retail repayment behaviour",
				domain.BureauEquifax:  "Secondary cross-check for mortgage underwriting",
			},
			LoanPersonal: {
				domain.BureauExperian: "Detailed unsecured credit and repayment data",
				domain.BureauEquifax:  "Broad coverage of consumer lending accounts",
				domain.BureauCIBIL:    "Reference score used by most lenders",
				domain.BureauCRIF:     "Additional signal from microfinance and NBFC data",
			},
			LoanAuto: {
				domain.BureauEquifax:  "Extensive vehicle finance reporting",
				domain.BureauCIBIL:    "Reference score used by most lenders",
				domain.BureauExperian: "Supplementary view of retail repayment behaviour",
				domain.BureauCRIF:     "Additional signal from NBFC vehicle lenders",
			},
			LoanCreditCard: {
				domain.BureauExperian: "Granular revolving credit and utilization history",
				domain.BureauCIBIL:    "Reference score used by card issuers",
				domain.BureauEquifax:  "Broad coverage of consumer lending accounts",
				domain.BureauCRIF:     "Additional signal from small-ticket lending",
			},
			LoanEducation: {
				domain.BureauCIBIL:    "Preferred by public sector banks for education loans",
				domain.BureauExperian: "Thin-file coverage for young borrowers",
				domain.BureauCRIF:     "Co-applicant history from regional lenders",
				domain.BureauEquifax:  "Secondary cross-check for student borrowers",
			},
			LoanBusiness: {
				domain.BureauCRIF:     "Deep commercial and MSME credit coverage",
				domain.BureauCIBIL:    "Promoter and commercial bureau reference",
				domain.BureauEquifax:  "Trade credit and business account reporting",
				domain.BureauExperian: "Supplementary view of proprietor retail credit",
			},
		},
		CIBILWeights:   []float64{0.6, 0.2, 0.15, 0.05},
		DefaultWeights: []float64{0.4, 0.3, 0.2, 0.1},
	}
}

// TierProfile returns the profile for tier. Unknown tiers fall back to the
// catalog's fallback tier.
func (c *Catalog) TierProfile(tier domain.CreditTier) domain.TierProfile {
	if p, ok := c.Tiers[tier]; ok {
		return p
	}
	return c.Tiers[c.FallbackTier]
}

func (c *Catalog) Policy(tier domain.CreditTier) TierLoanPolicy {
	if p, ok := c.Policies[tier]; ok {
		return p
	}
	return c.Policies[c.FallbackTier]
}

// Bureau looks up a bureau definition by name.
func (c *Catalog) Bureau(name string) (domain.Bureau, bool) {
	for _, b := range c.Bureaus {
		if b.Name == name {
			return b, true
		}
	}
	return domain.Bureau{}, false
}

// Validate checks that every range is non-empty and every lookup table is
// complete, so that generation can never fail at runtime.
func (c *Catalog) Validate() error {
	if len(c.Bureaus) == 0 {
		return fmt.Errorf("%w: no bureaus defined", ErrConfigurationGap)
	}
	if len(c.CIBILWeights) < len(c.Bureaus) || len(c.DefaultWeights) < len(c.Bureaus) {
		return fmt.Errorf("%w: weight vectors shorter than bureau list", ErrConfigurationGap)
	}
	tiers := []domain.CreditTier{c.FallbackTier}
	for _, cut := range c.TierCutoffs {
		tiers = append(tiers, cut.Tier)
	}
	for _, tier := range tiers {
		p, ok := c.Tiers[tier]
		if !ok {
			return fmt.Errorf("%w: no profile for tier %s", ErrConfigurationGap, tier)
		}
		for name, r := range map[string]domain.IntRange{
			"score":       p.Score,
			"onTime":      p.OnTimePaymentsPct,
			"late":        p.LatePayments,
			"payments":    p.TotalPayments,
			"utilization": p.UtilizationPct,
			"history":     p.HistoryLengthYears,
			"loanMix":     p.LoanMixCount,
			"inquiries":   p.Inquiries,
		} {
			if r.Min > r.Max {
				return fmt.Errorf("%w: empty %s range for tier %s", ErrConfigurationGap, name, tier)
			}
		}
		pol, ok := c.Policies[tier]
		if !ok {
			return fmt.Errorf("%w: no loan policy for tier %s", ErrConfigurationGap, tier)
		}
		if len(pol.TrendPatterns) == 0 || len(pol.RejectionTypes) == 0 || len(pol.RejectionReasons) == 0 {
			return fmt.Errorf("%w: incomplete loan policy for tier %s", ErrConfigurationGap, tier)
		}
		for _, t := range pol.RejectionTypes {
			if _, ok := c.RejectionAmounts[t]; !ok {
				return fmt.Errorf("%w: no rejection amount for %s", ErrConfigurationGap, t)
			}
		}
	}
	for loanType, order := range c.LoanTypePriority {
		if len(order) != len(c.Bureaus) {
			return fmt.Errorf("%w: priority order for %s has %d bureaus", ErrConfigurationGap, loanType, len(order))
		}
		for _, b := range order {
			if _, ok := c.PriorityReasons[loanType][b]; !ok {
				return fmt.Errorf("%w: no priority reason for %s/%s", ErrConfigurationGap, loanType, b)
			}
		}
	}
	if len(c.Lenders) == 0 || len(c.ClosureMonths) == 0 || len(c.ApplicationMonths) == 0 {
		return fmt.Errorf("%w: empty lender or date list", ErrConfigurationGap)
	}
	if len(c.FirstNames) == 0 || len(c.LastNames) == 0 || len(c.Streets) == 0 || len(c.Cities) == 0 {
		return fmt.Errorf("%w: empty personal info list", ErrConfigurationGap)
	}
	return nil
}
