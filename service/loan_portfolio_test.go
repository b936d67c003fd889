package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credit-simulator/domain"
)

func profileFor(tier domain.CreditTier, loanMix, historyYears int) domain.Profile {
	return domain.Profile{
		Tier: tier,
		Factors: domain.CreditFactors{
			LoanMixCount:       loanMix,
			HistoryLengthYears: historyYears,
		},
	}
}

func TestGeneratePortfolio_ActiveLoansFollowTierPolicy(t *testing.T) {
	c := DefaultCatalog()
	tiers := []domain.CreditTier{domain.TierExcellent, domain.TierGood, domain.TierFair, domain.TierPoor}

	for _, tier := range tiers {
		t.Run(string(tier), func(t *testing.T) {
			r := NewRand(31)
			policy := c.Policy(tier)
			tp := c.TierProfile(tier)

			for i := 0; i < 300; i++ {
				mix := intBetween(r, tp.LoanMixCount.Min, tp.LoanMixCount.Max)
				loans := GeneratePortfolio(r, c, profileFor(tier, mix, 10))

				require.NotNil(t, loans.Active)
				require.NotNil(t, loans.Closed)
				require.NotNil(t, loans.Rejected)

				assert.LessOrEqual(t, len(loans.Active), min(policy.ActiveCount.Max, mix))
				if policy.ActiveCount.Min > 0 {
					assert.NotEmpty(t, loans.Active)
				}

				seen := map[string]bool{}
				for _, l := range loans.Active {
					assert.False(t, seen[l.Type], "duplicate active type %s", l.Type)
					seen[l.Type] = true

					assert.True(t, policy.InterestRatePct.Contains(l.InterestRatePct), "rate %v", l.InterestRatePct)
					assert.Equal(t, l.InterestRatePct, math.Round(l.InterestRatePct*100)/100)
					assert.GreaterOrEqual(t, l.RemainingTenureMonths, 1)
					assert.Equal(t, CalculateEMI(float64(l.Amount), l.InterestRatePct, l.RemainingTenureMonths), l.EMI)
					assert.Contains(t, c.Lenders, l.Lender)
				}
			}
		})
	}
}

func TestGeneratePortfolio_PoorHasNoActiveLoans(t *testing.T) {
	c := DefaultCatalog()
	r := NewRand(12)
	for i := 0; i < 100; i++ {
		loans := GeneratePortfolio(r, c, profileFor(domain.TierPoor, 2, 4))
		assert.Empty(t, loans.Active)
	}
}

func TestGeneratePortfolio_AmountsScaledByTier(t *testing.T) {
	c := DefaultCatalog()
	r := NewRand(77)
	policy := c.Policy(domain.TierGood)

	for i := 0; i < 200; i++ {
		loans := GeneratePortfolio(r, c, profileFor(domain.TierGood, 4, 12))
		for _, l := range loans.Active {
			spec := specByName(t, c, l.Type)
			lo := int(math.Round(float64(spec.Amount.Min) * policy.AmountScale))
			hi := int(math.Round(float64(spec.Amount.Max) * policy.AmountScale))
			assert.True(t, l.Amount >= lo && l.Amount <= hi, "%s amount %d", l.Type, l.Amount)
		}
	}
}

func TestGenerateClosedLoans_PrefersUnusedAvailableTypes(t *testing.T) {
	c := DefaultCatalog()
	policy := c.Policy(domain.TierExcellent)
	available := c.PortfolioTypes[:3]
	active := []domain.ActiveLoan{{Type: available[0].Name}}
	factors := domain.CreditFactors{HistoryLengthYears: 20}

	r := NewRand(3)
	for i := 0; i < 200; i++ {
		closed := generateClosedLoans(r, c, policy, factors, available, active)
		require.LessOrEqual(t, len(closed), MaxClosedLoans)

		for j, l := range closed {
			assert.Contains(t, c.ClosureMonths, l.ClosureDate)
			assert.NotEqual(t, available[0].Name, l.Type, "active type reused")
			if j < 2 {
				// Two unused available types exist, so they come first.
				assert.Contains(t, []string{available[1].Name, available[2].Name}, l.Type)
			}
		}
		if len(closed) == 3 {
			assert.Contains(t, []string{c.PortfolioTypes[3].Name, c.PortfolioTypes[4].Name}, closed[2].Type)
		}
	}
}

func TestGenerateClosedLoans_ShortHistoryHasNone(t *testing.T) {
	c := DefaultCatalog()
	closed := generateClosedLoans(NewRand(1), c, c.Policy(domain.TierPoor),
		domain.CreditFactors{HistoryLengthYears: 1}, c.PortfolioTypes[:1], nil)
	assert.NotNil(t, closed)
	assert.Empty(t, closed)
}

func TestGenerateRejectedLoans_WithinPolicy(t *testing.T) {
	c := DefaultCatalog()
	policy := c.Policy(domain.TierPoor)
	r := NewRand(21)
	rejectedRuns := 0

	for i := 0; i < 500; i++ {
		rejected := generateRejectedLoans(r, c, policy)
		if len(rejected) > 0 {
			rejectedRuns++
		}
		assert.LessOrEqual(t, len(rejected), policy.RejectionCount.Max)
		for _, l := range rejected {
			assert.Contains(t, policy.RejectionTypes, l.Type)
			assert.Contains(t, policy.RejectionReasons, l.RejectionReason)
			assert.Contains(t, c.ApplicationMonths, l.ApplicationDate)
			assert.True(t, c.RejectionAmounts[l.Type].Contains(l.Amount))
		}
	}
	assert.Greater(t, rejectedRuns, 400)
}

func TestScaledBetween(t *testing.T) {
	r := NewRand(6)
	for i := 0; i < 100; i++ {
		v := scaledBetween(r, domain.IntRange{Min: 10, Max: 20}, 0.5)
		assert.True(t, v >= 5 && v <= 10)
	}
	assert.Equal(t, 3, scaledBetween(r, domain.IntRange{Min: 6, Max: 6}, 0.5))
}

func specByName(t *testing.T, c *Catalog, name string) LoanTypeSpec {
	t.Helper()
	for _, s := range c.PortfolioTypes {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("no portfolio type %q", name)
	return LoanTypeSpec{}
}
