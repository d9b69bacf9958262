package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/staged"
	"github.com/aretw0/staged/internal/presentation/tui"
)

var validateCmd = &cobra.Command{
	Use:   "validate <definition>...",
	Short: "Check definitions for consistency",
	Long:  `Reports duplicate actions, actions without keywords, cyclic interface hierarchies, dangling transitions and unreachable actions.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := createLogger(cmd)
		if err != nil {
			return err
		}
		gen := staged.New(staged.WithLogger(logger))
		w := cmd.OutOrStdout()
		for _, path := range args {
			_, warnings, err := gen.Load(path)
			if err != nil {
				tui.Failure(w, "%s", path)
				return err
			}
			for _, warning := range warnings {
				tui.Warn(w, "%s: %s", path, warning)
			}
			tui.Success(w, "%s is valid", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
