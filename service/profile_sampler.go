package service

import (
	"math/rand/v2"

	"credit-simulator/domain"
)

// SampleTier maps a uniform draw onto a tier using the catalog cutoffs.
func SampleTier(r *rand.Rand, c *Catalog) domain.CreditTier {
	return tierForDraw(c, r.Float64())
}

func tierForDraw(c *Catalog, u float64) domain.CreditTier {
	for _, cut := range c.TierCutoffs {
		if u > cut.Above {
			return cut.Tier
		}
	}
	return c.FallbackTier
}

// SampleProfile draws a tier, a base score within the tier and every credit
// factor from the tier's sub-ranges.
func SampleProfile(r *rand.Rand, c *Catalog) domain.Profile {
	tier := SampleTier(r, c)
	p := c.TierProfile(tier)

	return domain.Profile{
		Tier:      tier,
		BaseScore: intBetween(r, p.Score.Min, p.Score.Max),
		Factors: domain.CreditFactors{
			OnTimePaymentsPct:  intBetween(r, p.OnTimePaymentsPct.Min, p.OnTimePaymentsPct.Max),
			LatePaymentsCount:  intBetween(r, p.LatePayments.Min, p.LatePayments.Max),
			TotalPaymentsCount: intBetween(r, p.TotalPayments.Min, p.TotalPayments.Max),
			UtilizationPct:     intBetween(r, p.UtilizationPct.Min, p.UtilizationPct.Max),
			HistoryLengthYears: intBetween(r, p.HistoryLengthYears.Min, p.HistoryLengthYears.Max),
			LoanMixCount:       intBetween(r, p.LoanMixCount.Min, p.LoanMixCount.Max),
			InquiriesCount:     intBetween(r, p.Inquiries.Min, p.Inquiries.Max),
		},
	}
}
