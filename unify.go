package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"credit-simulator/domain"
	"credit-simulator/service"
)

func newUnifyCmd() *cobra.Command {
	var (
		loanType string
		scores   map[string]string
		format   string
	)

	cmd := &cobra.Command{
		Use:     "unify",
		Short:   "Combine bureau scores into one unified score",
		Example: `  credit-simulator unify --loan-type "Home Loan" --score CIBIL=800,Experian=780,Equifax=750,CRIF=600`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			req, err := buildUnifiedScoreRequest(loanType, scores)
			if err != nil {
				return err
			}

			svc := service.NewUnifiedScoreService(service.DefaultCatalog(), log)
			result, err := svc.Compute(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, result)
		},
	}

	cmd.Flags().StringVar(&loanType, "loan-type", "", "loan type, e.g. \"Home Loan\"")
	cmd.Flags().StringToStringVar(&scores, "score", nil, "bureau scores as BUREAU=SCORE pairs")
	cmd.Flags().StringVar(&format, "format", formatJSON, "output format [json, yaml]")
	return cmd
}

// buildUnifiedScoreRequest parses BUREAU=SCORE flag pairs. An empty value
// marks the bureau as absent.
func buildUnifiedScoreRequest(loanType string, raw map[string]string) (domain.UnifiedScoreRequest, error) {
	req := domain.UnifiedScoreRequest{LoanType: loanType}
	if raw == nil {
		return req, nil
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	req.Scores = make(map[string]*float64, len(raw))
	for _, name := range names {
		if raw[name] == "" {
			req.Scores[name] = nil
			continue
		}
		v, err := strconv.ParseFloat(raw[name], 64)
		if err != nil {
			return domain.UnifiedScoreRequest{}, fmt.Errorf("%w: score for %s is not a number", service.ErrInvalidInput, name)
		}
		req.Scores[name] = &v
	}
	return req, nil
}
