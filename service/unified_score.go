package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"credit-simulator/domain"
	"credit-simulator/logger"
)

// ComputeUnifiedScore weights the caller's bureau scores by the priority
// order of the loan type and returns one score in
// [UnifiedScoreMin, UnifiedScoreMax]. It is a pure function of its inputs.
func ComputeUnifiedScore(c *Catalog, req domain.UnifiedScoreRequest) (domain.UnifiedScoreResult, error) {
	loanType := strings.TrimSpace(req.LoanType)
	if loanType == "" {
		return domain.UnifiedScoreResult{}, fmt.Errorf("%w: loanType is required", ErrInvalidInput)
	}
	if req.Scores == nil {
		return domain.UnifiedScoreResult{}, fmt.Errorf("%w: scores are required", ErrInvalidInput)
	}

	order, ok := c.LoanTypePriority[loanType]
	if !ok {
		return domain.UnifiedScoreResult{}, fmt.Errorf("%w: %q", ErrUnknownLoanType, loanType)
	}

	ordered := make([]*float64, len(order))
	missing := []string{}
	for i, name := range order {
		v := req.Scores[name]
		if v == nil {
			missing = append(missing, name)
			continue
		}
		b, ok := c.Bureau(name)
		if !ok {
			return domain.UnifiedScoreResult{}, fmt.Errorf("%w: bureau %s has no definition", ErrConfigurationGap, name)
		}
		if math.IsNaN(*v) || !b.InRange(*v) {
			return domain.UnifiedScoreResult{}, fmt.Errorf("%w: %s score %v outside %d-%d",
				ErrInvalidInput, name, *v, b.ValidRangeMin, b.ValidRangeMax)
		}
		ordered[i] = v
	}

	// The CIBIL-heavy vector is chosen when the first-priority score equals
	// the supplied CIBIL score by value, whichever bureau ranks first.
	weights := c.DefaultWeights
	if first, cibil := ordered[0], req.Scores[domain.BureauCIBIL]; first != nil && cibil != nil && *first == *cibil {
		weights = c.CIBILWeights
	}

	var bureaus []string
	var scores []float64
	for i, v := range ordered {
		if v != nil {
			bureaus = append(bureaus, order[i])
			scores = append(scores, *v)
		}
	}
	if len(scores) == 0 {
		return domain.UnifiedScoreResult{}, fmt.Errorf("%w: at least one bureau score is required", ErrInvalidInput)
	}

	normalized := normalizeWeights(weights[:len(scores)])

	var weighted float64
	for i, s := range scores {
		weighted += float64(s * normalized[i])
	}

	unified := int(math.Round(rescale(weighted, UnifiedScoreMin, UnifiedScoreMax)))
	unified = min(max(unified, UnifiedScoreMin), UnifiedScoreMax)

	reasons := c.PriorityReasons[loanType]
	breakdown := make([]domain.ScoreBreakdown, 0, len(scores))
	for i, name := range bureaus {
		reason, ok := reasons[name]
		if !ok {
			return domain.UnifiedScoreResult{}, fmt.Errorf("%w: no priority reason for %s/%s",
				ErrConfigurationGap, loanType, name)
		}
		breakdown = append(breakdown, domain.ScoreBreakdown{
			Bureau:               name,
			Score:                scores[i],
			Weight:               decimal.NewFromFloat(normalized[i]).StringFixed(2),
			WeightedContribution: int(math.Round(float64(scores[i] * normalized[i]))),
			PriorityReason:       reason,
		})
	}

	return domain.UnifiedScoreResult{
		LoanType:            loanType,
		UnifiedScore:        unified,
		ScoreBreakdown:      breakdown,
		BureauPriorityOrder: append([]string(nil), order...),
		MissingBureaus:      missing,
	}, nil
}

// normalizeWeights scales w so that it sums to one.
func normalizeWeights(w []float64) []float64 {
	var total float64
	for _, v := range w {
		total += v
	}
	out := make([]float64, len(w))
	for i, v := range w {
		out[i] = v / total
	}
	return out
}

// rescale maps v from [lo, hi] onto [lo, hi]. It is the identity up to
// floating point and is kept so results match existing consumers bit for bit.
func rescale(v float64, lo, hi int) float64 {
	span := float64(hi - lo)
	return float64((v-float64(lo))/span*span) + float64(lo)
}

type UnifiedScoreService struct {
	catalog *Catalog
	log     *logger.Logger
}

func NewUnifiedScoreService(catalog *Catalog, log *logger.Logger) *UnifiedScoreService {
	return &UnifiedScoreService{catalog: catalog, log: log}
}

// Compute runs ComputeUnifiedScore inside a span and logs the outcome.
func (s *UnifiedScoreService) Compute(
	ctx context.Context,
	req domain.UnifiedScoreRequest,
) (domain.UnifiedScoreResult, error) {
	_, span := tracer.Start(ctx, "unified_score.compute")
	defer span.End()
	span.SetAttributes(
		attribute.String("loan_type", req.LoanType),
		attribute.Int("scores", len(req.Scores)),
	)

	result, err := ComputeUnifiedScore(s.catalog, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, ErrConfigurationGap) {
			s.log.Error("unified score catalog gap", "loan_type", req.LoanType, "error", err)
		} else {
			s.log.Debug("unified score rejected", "loan_type", req.LoanType, "error", err)
		}
		return domain.UnifiedScoreResult{}, err
	}

	span.SetAttributes(attribute.Int("unified_score", result.UnifiedScore))
	s.log.Info("unified score computed",
		"loan_type", result.LoanType,
		"unified_score", result.UnifiedScore,
		"missing", len(result.MissingBureaus),
	)
	return result, nil
}
