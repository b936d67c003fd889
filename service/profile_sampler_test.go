package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"credit-simulator/domain"
)

func TestTierForDraw_Boundaries(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		u    float64
		want domain.CreditTier
	}{
		{0.0, domain.TierPoor},
		{0.2, domain.TierPoor},
		{0.2000001, domain.TierFair},
		{0.5, domain.TierFair},
		{0.51, domain.TierGood},
		{0.8, domain.TierGood},
		{0.81, domain.TierExcellent},
		{0.999, domain.TierExcellent},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tierForDraw(c, tt.u), "u=%v", tt.u)
	}
}

func TestSampleProfile_FactorsWithinTierRanges(t *testing.T) {
	c := DefaultCatalog()
	r := NewRand(2024)
	tiers := map[domain.CreditTier]int{}

	for i := 0; i < 2000; i++ {
		p := SampleProfile(r, c)
		tp := c.TierProfile(p.Tier)
		tiers[p.Tier]++

		assert.True(t, tp.Score.Contains(p.BaseScore))
		assert.True(t, tp.OnTimePaymentsPct.Contains(p.Factors.OnTimePaymentsPct))
		assert.True(t, tp.LatePayments.Contains(p.Factors.LatePaymentsCount))
		assert.True(t, tp.TotalPayments.Contains(p.Factors.TotalPaymentsCount))
		assert.True(t, tp.UtilizationPct.Contains(p.Factors.UtilizationPct))
		assert.True(t, tp.HistoryLengthYears.Contains(p.Factors.HistoryLengthYears))
		assert.True(t, tp.LoanMixCount.Contains(p.Factors.LoanMixCount))
		assert.True(t, tp.Inquiries.Contains(p.Factors.InquiriesCount))
	}

	assert.Len(t, tiers, 4)
	// Good covers 30% of draws, Excellent 20%.
	assert.Greater(t, tiers[domain.TierGood], tiers[domain.TierExcellent])
}
