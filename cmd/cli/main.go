package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"golift/adapters/excel"
	"golift/adapters/source"
	"golift/app"
	"golift/domain/core"
	"golift/domain/experiment"
	"golift/domain/stats"
	"golift/internal/config"
)

func main() {
	// .env is optional for the CLI
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "golift",
		Short: "A/B significance analysis for warehouse process metrics",
	}

	rootCmd.AddCommand(
		newCompareCmd(),
		newBatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCompareCmd() *cobra.Command {
	var controlSuccesses, controlTotal, testSuccesses, testTotal int
	var confidence, alpha float64
	var metric string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare control and test counts for one metric",
		Long: `Run the significance engine on a single control/test count pair.

Example: golift compare --metric pick_conversion \
  --control-successes 100 --control-total 1000 \
  --test-successes 120 --test-total 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := core.ParseMetricKey(metric)
			if err != nil {
				return err
			}

			svc := app.NewCompareService(confidence, alpha)
			report, err := svc.Compare(cmd.Context(), app.CompareRequest{
				Metric:  key,
				Control: stats.Sample{Successes: controlSuccesses, Total: controlTotal},
				Test:    stats.Sample{Successes: testSuccesses, Total: testTotal},
			})
			if err != nil {
				return err
			}

			printReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().StringVar(&metric, "metric", "conversion", "Metric key being compared")
	cmd.Flags().IntVar(&controlSuccesses, "control-successes", 0, "Control group successes")
	cmd.Flags().IntVar(&controlTotal, "control-total", 0, "Control group total")
	cmd.Flags().IntVar(&testSuccesses, "test-successes", 0, "Test group successes")
	cmd.Flags().IntVar(&testTotal, "test-total", 0, "Test group total")
	cmd.Flags().Float64Var(&confidence, "confidence", stats.DefaultConfidence, "Confidence level for intervals")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.05, "Significance threshold")

	return cmd
}

func newBatchCmd() *cobra.Command {
	var exportPath, metricsPath string

	cmd := &cobra.Command{
		Use:   "batch [input.json]",
		Short: "Compare every metric found in a JSON export",
		Long: `Extract control/test count pairs from a JSON document and run one
comparison per metric. With --export, the reports are also written to an
xlsx workbook.

Example: golift batch counts.json --export report.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			extractorCfg := source.DefaultExtractorConfig()
			if metricsPath != "" {
				extractorCfg.MetricsPath = metricsPath
			}
			counts, err := source.NewExtractor(extractorCfg).Extract(doc)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			batch := app.NewBatchService(app.NewCompareService(cfg.Analysis.Confidence, cfg.Analysis.Alpha))
			result, err := batch.Run(cmd.Context(), counts)
			if err != nil {
				return err
			}

			for i := range result.Reports {
				printReport(cmd, &result.Reports[i])
			}
			s := result.Summary
			cmd.Printf("Batch: %d metrics, %d significant, %d unbounded lifts\n", s.Metrics, s.SignificantCount, s.UnboundedLifts)
			cmd.Printf("Lift mean/median: %.1f%% / %.1f%%  p-value mean/median: %.4f / %.4f\n",
				s.MeanLift, s.MedianLift, s.MeanPValue, s.MedianPValue)

			if exportPath != "" {
				if err := excel.NewReportWriter().Export(cmd.Context(), exportPath, result.Reports); err != nil {
					return err
				}
				cmd.Printf("Exported %d reports to %s\n", len(result.Reports), exportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "Write reports to this xlsx path")
	cmd.Flags().StringVar(&metricsPath, "metrics-path", "", "JSON path to the metrics array (default \"metrics\")")

	return cmd
}

func printReport(cmd *cobra.Command, r *experiment.ComparisonReport) {
	cmd.Printf("%s\n", r.Metric)
	cmd.Printf("  control: %s %s  test: %s %s\n",
		experiment.FormatRate(r.ControlRate), experiment.FormatInterval(r.ControlCI),
		experiment.FormatRate(r.TestRate), experiment.FormatInterval(r.TestCI))
	cmd.Printf("  chi2=%.4f p=%.4f lift=%s verdict=%s\n",
		r.Significance.ChiSquare, r.Significance.PValue, r.Lift, r.Verdict)
	cmd.Printf("  %s\n", r.Interpretation)
}
