package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/staged"
	"github.com/aretw0/staged/internal/metrics"
	"github.com/aretw0/staged/internal/presentation/tui"
)

var generateCmd = &cobra.Command{
	Use:   "generate <definition>...",
	Short: "Generate the interfaces of one or more DSL definitions",
	Long: `Loads every definition, validates it and writes one Go file per generated interface
below --out. Definitions are processed concurrently and independently; a failing definition
leaves none of its files behind, while definitions that already completed keep theirs.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := createLogger(cmd)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		jobs, _ := cmd.Flags().GetInt("jobs")
		metricsFile, _ := cmd.Flags().GetString("metrics-file")

		collector := metrics.New()
		gen := staged.New(
			staged.WithLogger(logger),
			staged.WithOutputDir(out),
			staged.WithMetrics(collector),
			staged.WithConcurrency(jobs),
		)

		results, runErr := gen.GenerateFiles(cmd.Context(), args...)
		if metricsFile != "" {
			if err := collector.WriteTextfile(metricsFile); err != nil {
				logger.Error("failed to write metrics", "path", metricsFile, "error", err)
			}
		}
		if runErr != nil {
			tui.Failure(cmd.ErrOrStderr(), "generation failed")
			return runErr
		}

		w := cmd.OutOrStdout()
		for _, r := range results {
			for _, warning := range r.Warnings {
				tui.Warn(w, "%s: %s", r.Plan.Definition.Name, warning)
			}
			tui.Success(w, "%s: %d files in %s", r.Plan.Entry.Name, len(r.Files), out)
			if verbose, _ := cmd.Flags().GetBool("list"); verbose {
				for _, f := range r.Files {
					fmt.Fprintf(w, "  %s\n", f)
				}
			}
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("out", "o", ".", "Root directory of generated files")
	generateCmd.Flags().IntP("jobs", "j", 0, "Maximum definitions processed at once (0 = unbounded)")
	generateCmd.Flags().String("metrics-file", "", "Write run metrics in Prometheus text format to this file")
	generateCmd.Flags().Bool("list", false, "List written files")
	rootCmd.AddCommand(generateCmd)
}
