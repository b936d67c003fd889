package service

import (
	"math"
	"math/rand/v2"

	"credit-simulator/domain"
)

// GeneratePortfolio builds active, closed and rejected loans consistent with
// the profile's tier and factors. The available type set has exactly
// LoanMixCount distinct types; closed loans may add types outside it.
func GeneratePortfolio(r *rand.Rand, c *Catalog, profile domain.Profile) domain.LoanPortfolio {
	policy := c.Policy(profile.Tier)

	available := sampleWithoutReplacement(r, c.PortfolioTypes, profile.Factors.LoanMixCount)

	active := generateActiveLoans(r, c, policy, available)
	closed := generateClosedLoans(r, c, policy, profile.Factors, available, active)
	rejected := generateRejectedLoans(r, c, policy)

	return domain.LoanPortfolio{
		Active:   active,
		Closed:   closed,
		Rejected: rejected,
	}
}

func generateActiveLoans(
	r *rand.Rand,
	c *Catalog,
	policy TierLoanPolicy,
	available []LoanTypeSpec,
) []domain.ActiveLoan {
	count := min(intBetween(r, policy.ActiveCount.Min, policy.ActiveCount.Max), len(available))

	loans := make([]domain.ActiveLoan, 0, count)
	for _, spec := range available[:count] {
		amount := scaledBetween(r, spec.Amount, policy.AmountScale)
		tenure := max(scaledBetween(r, spec.Tenure, policy.TenureScale), 1)
		rate := roundTo2Decimals(floatBetween(r, policy.InterestRatePct.Min, policy.InterestRatePct.Max))

		loans = append(loans, domain.ActiveLoan{
			Type:                  spec.Name,
			Lender:                pick(r, c.Lenders),
			Amount:                amount,
			EMI:                   CalculateEMI(float64(amount), rate, tenure),
			RemainingTenureMonths: tenure,
			InterestRatePct:       rate,
		})
	}
	return loans
}

func generateClosedLoans(
	r *rand.Rand,
	c *Catalog,
	policy TierLoanPolicy,
	factors domain.CreditFactors,
	available []LoanTypeSpec,
	active []domain.ActiveLoan,
) []domain.ClosedLoan {
	count := min(intBetween(r, 0, factors.HistoryLengthYears/2), MaxClosedLoans)
	if count == 0 {
		return []domain.ClosedLoan{}
	}

	activeTypes := make(map[string]bool, len(active))
	for _, l := range active {
		activeTypes[l.Type] = true
	}
	inAvailable := make(map[string]bool, len(available))
	for _, t := range available {
		inAvailable[t.Name] = true
	}

	// Unused available types first, then types outside the profile's mix.
	var preferred, extra []LoanTypeSpec
	for _, t := range available {
		if !activeTypes[t.Name] {
			preferred = append(preferred, t)
		}
	}
	for _, t := range c.PortfolioTypes {
		if !inAvailable[t.Name] {
			extra = append(extra, t)
		}
	}
	candidates := sampleWithoutReplacement(r, preferred, len(preferred))
	candidates = append(candidates, sampleWithoutReplacement(r, extra, len(extra))...)
	count = min(count, len(candidates))

	loans := make([]domain.ClosedLoan, 0, count)
	for _, spec := range candidates[:count] {
		loans = append(loans, domain.ClosedLoan{
			Type:        spec.Name,
			Lender:      pick(r, c.Lenders),
			Amount:      scaledBetween(r, spec.Amount, policy.AmountScale),
			ClosureDate: pick(r, c.ClosureMonths),
		})
	}
	return loans
}

func generateRejectedLoans(r *rand.Rand, c *Catalog, policy TierLoanPolicy) []domain.RejectedLoan {
	if !chance(r, policy.RejectionProbability) {
		return []domain.RejectedLoan{}
	}

	count := intBetween(r, policy.RejectionCount.Min, policy.RejectionCount.Max)
	loans := make([]domain.RejectedLoan, 0, count)
	for i := 0; i < count; i++ {
		loanType := pick(r, policy.RejectionTypes)
		amount := c.RejectionAmounts[loanType]
		loans = append(loans, domain.RejectedLoan{
			Type:            loanType,
			Lender:          pick(r, c.Lenders),
			Amount:          intBetween(r, amount.Min, amount.Max),
			ApplicationDate: pick(r, c.ApplicationMonths),
			RejectionReason: pick(r, policy.RejectionReasons),
		})
	}
	return loans
}

// scaledBetween draws from rng after scaling both bounds by factor.
func scaledBetween(r *rand.Rand, rng domain.IntRange, factor float64) int {
	lo := int(math.Round(float64(rng.Min) * factor))
	hi := int(math.Round(float64(rng.Max) * factor))
	if hi < lo {
		hi = lo
	}
	return intBetween(r, lo, hi)
}
