package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"credit-simulator/domain"
	"credit-simulator/logger"
)

var tracer = otel.Tracer("credit-simulator/service")

// GenerateReport runs the sampler, the bureau deriver, the history
// synthesizer and the portfolio generator against r and assembles the result.
// The same generator state and asOf always yield the same report.
func GenerateReport(r *rand.Rand, c *Catalog, asOf time.Time) domain.CreditReport {
	id, _ := uuid.NewRandomFromReader(randReader{r: r})

	profile := SampleProfile(r, c)
	policy := c.Policy(profile.Tier)

	records := DeriveBureauScores(r, c, profile.BaseScore)
	for i := range records {
		b, _ := c.Bureau(records[i].Bureau)
		pattern, history := SynthesizeHistory(r, b, records[i].CurrentScore, policy.TrendPatterns, asOf)
		records[i].TrendPattern = string(pattern)
		records[i].History = history
	}

	loans := GeneratePortfolio(r, c, profile)

	return domain.CreditReport{
		ReportID:     id.String(),
		GeneratedAt:  asOf,
		PersonalInfo: samplePersonalInfo(r, c),
		CreditTier:   profile.Tier,
		BureauScores: records,
		Loans:        loans,
		PaymentHistory: domain.PaymentHistory{
			OnTime:        profile.Factors.OnTimePaymentsPct,
			Late:          profile.Factors.LatePaymentsCount,
			TotalPayments: profile.Factors.TotalPaymentsCount,
			TotalAccounts: len(loans.Active) + len(loans.Closed),
		},
		CreditUtilization: profile.Factors.UtilizationPct,
		Inquiries:         profile.Factors.InquiriesCount,
		OldestAccount:     oldestAccount(r, loans, profile.Factors.HistoryLengthYears),
	}
}

func samplePersonalInfo(r *rand.Rand, c *Catalog) domain.PersonalInfo {
	return domain.PersonalInfo{
		Name:    pick(r, c.FirstNames) + " " + pick(r, c.LastNames),
		Age:     intBetween(r, c.AgeRange.Min, c.AgeRange.Max),
		Address: pick(r, c.Streets) + ", " + pick(r, c.Cities),
	}
}

// oldestAccount picks the account type the history length is attributed to.
// Profiles with no open or closed loan are treated as card-only files.
func oldestAccount(r *rand.Rand, loans domain.LoanPortfolio, years int) domain.OldestAccount {
	var types []string
	for _, l := range loans.Closed {
		types = append(types, l.Type)
	}
	for _, l := range loans.Active {
		types = append(types, l.Type)
	}
	if len(types) == 0 {
		return domain.OldestAccount{Type: LoanCreditCard, AgeYears: years}
	}
	return domain.OldestAccount{Type: pick(r, types), AgeYears: years}
}

// ReportOptions controls a single generation. A nil Seed draws a fresh one;
// a zero AsOf uses the service clock.
type ReportOptions struct {
	Seed *uint64
	AsOf time.Time
}

type ReportService struct {
	catalog *Catalog
	log     *logger.Logger
	now     func() time.Time
}

func NewReportService(catalog *Catalog, log *logger.Logger) *ReportService {
	return &ReportService{
		catalog: catalog,
		log:     log,
		now:     time.Now,
	}
}

// Generate produces one report. It never fails.
func (s *ReportService) Generate(ctx context.Context, opts ReportOptions) domain.CreditReport {
	_, span := tracer.Start(ctx, "report.generate")
	defer span.End()

	seed := rand.Uint64()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	asOf := opts.AsOf
	if asOf.IsZero() {
		asOf = s.now().UTC()
	}

	report := GenerateReport(NewRand(seed), s.catalog, asOf)
	report.Seed = seed

	span.SetAttributes(
		attribute.Int64("seed", int64(seed)),
		attribute.String("tier", string(report.CreditTier)),
		attribute.Int("bureaus", len(report.BureauScores)),
	)
	s.log.Info("credit report generated",
		"report_id", report.ReportID,
		"seed", seed,
		"tier", report.CreditTier,
		"bureaus", len(report.BureauScores),
		"active_loans", len(report.Loans.Active),
	)
	return report
}

// GenerateBatch produces count reports seeded seed, seed+1, ... using up to
// workers goroutines. Results keep seed order.
func (s *ReportService) GenerateBatch(
	ctx context.Context,
	seed uint64,
	count int,
	workers int,
	asOf time.Time,
) ([]domain.CreditReport, error) {
	if count <= 0 || count > MaxBatchReports {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidInput, MaxBatchReports)
	}
	if workers <= 0 {
		workers = 1
	}
	if asOf.IsZero() {
		asOf = s.now().UTC()
	}

	reports := make([]domain.CreditReport, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < count; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sd := seed + uint64(i)
			reports[i] = s.Generate(gctx, ReportOptions{Seed: &sd, AsOf: asOf})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
