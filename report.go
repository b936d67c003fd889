package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"credit-simulator/service"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

func newReportCmd() *cobra.Command {
	var (
		seed    uint64
		count   int
		workers int
		format  string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate one or more synthetic credit reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			svc := service.NewReportService(service.DefaultCatalog(), log)

			if count <= 1 {
				var opts service.ReportOptions
				if cmd.Flags().Changed("seed") {
					opts.Seed = &seed
				}
				return writeOutput(cmd.OutOrStdout(), format, svc.Generate(cmd.Context(), opts))
			}

			reports, err := svc.GenerateBatch(cmd.Context(), seed, count, workers, time.Time{})
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), format, reports)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the random stream (batch reports use seed, seed+1, ...)")
	cmd.Flags().IntVar(&count, "count", 1, "number of reports to generate")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "concurrent generators for batch output")
	cmd.Flags().StringVar(&format, "format", formatJSON, "output format [json, yaml]")
	return cmd
}

// writeOutput renders v as indented JSON or as YAML. YAML goes through the
// JSON form so field names match the API.
func writeOutput(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML, "yml":
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshalling output: %w", err)
		}
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return fmt.Errorf("re-reading output: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(generic)
	default:
		return fmt.Errorf("unsupported format %q (valid: %s, %s)", format, formatJSON, formatYAML)
	}
}
