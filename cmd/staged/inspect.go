package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/staged"
	"github.com/aretw0/staged/internal/presentation/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <definition>",
	Short: "Summarize the interfaces a definition produces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := createLogger(cmd)
		if err != nil {
			return err
		}
		gen := staged.New(staged.WithLogger(logger))
		def, _, err := gen.Load(args[0])
		if err != nil {
			return err
		}
		plan, err := gen.Plan(cmd.Context(), def)
		if err != nil {
			return err
		}
		return tui.Print(cmd.OutOrStdout(), tui.Report(plan))
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
