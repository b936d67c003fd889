package service

import (
	"context"
	"fmt"
	"math"

	"credit-simulator/domain"
	"credit-simulator/logger"
)

// roundTo2Decimals rounds to two decimal places.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// MonthlyInstallment returns the unrounded amortized installment for a
// principal at annualRatePct over months. A zero rate divides evenly.
func MonthlyInstallment(principal, annualRatePct float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	if annualRatePct == 0 {
		return principal / float64(months)
	}
	r := annualRatePct / 100 / 12
	growth := math.Pow(1+r, float64(months))
	return principal * r * growth / (growth - 1)
}

// CalculateEMI rounds MonthlyInstallment to the nearest currency unit.
func CalculateEMI(principal, annualRatePct float64, months int) int {
	return int(math.Round(MonthlyInstallment(principal, annualRatePct, months)))
}

type EMIService struct {
	log *logger.Logger
}

func NewEMIService(log *logger.Logger) *EMIService {
	return &EMIService{log: log}
}

// Calculate validates input and returns the installment breakdown.
func (s *EMIService) Calculate(
	ctx context.Context,
	input domain.EMIInput,
) (domain.EMIResult, error) {
	_, span := tracer.Start(ctx, "emi.calculate")
	defer span.End()

	if input.Amount <= 0 {
		return domain.EMIResult{}, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if input.Amount > MaxLoanAmount {
		return domain.EMIResult{}, fmt.Errorf("%w: amount exceeds maximum of %.2f", ErrInvalidInput, MaxLoanAmount)
	}
	if input.InterestRate < 0 {
		return domain.EMIResult{}, fmt.Errorf("%w: interest rate must not be negative", ErrInvalidInput)
	}
	if input.InterestRate > MaxInterestRate {
		return domain.EMIResult{}, fmt.Errorf("%w: interest rate exceeds maximum of %.2f%%", ErrInvalidInput, MaxInterestRate)
	}
	if input.TenureMonths < MinTermMonths {
		return domain.EMIResult{}, fmt.Errorf("%w: tenure must be at least %d month", ErrInvalidInput, MinTermMonths)
	}
	if input.TenureMonths > MaxTermMonths {
		return domain.EMIResult{}, fmt.Errorf("%w: tenure exceeds maximum of %d months", ErrInvalidInput, MaxTermMonths)
	}

	emi := CalculateEMI(input.Amount, input.InterestRate, input.TenureMonths)
	total := float64(emi) * float64(input.TenureMonths)

	result := domain.EMIResult{
		EMI:           emi,
		MonthlyRate:   input.InterestRate / 100 / 12,
		TotalPayment:  roundTo2Decimals(total),
		TotalInterest: roundTo2Decimals(total - input.Amount),
	}

	s.log.Debug("emi calculated",
		"amount", input.Amount,
		"rate", input.InterestRate,
		"tenure", input.TenureMonths,
		"emi", emi,
	)
	return result, nil
}
