package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/staged"
	"github.com/aretw0/staged/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <definition>",
	Short: "Export the grammar visualization",
	Long: `Outputs a Mermaid diagram (graph TD). By default every expanded call path is drawn;
--actions draws one node per declared action with keyword-labelled edges instead.`,
	Args: cobra.ExactArgs(1),
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

		if actionsOnly, _ := cmd.Flags().GetBool("actions"); actionsOnly {
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateActionMermaid(def))
			return nil
		}
		plan, err := gen.Plan(cmd.Context(), def)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(plan.Roots))
		return nil
	},
}

func init() {
	graphCmd.Flags().Bool("actions", false, "Draw declared actions instead of expanded paths")
	rootCmd.AddCommand(graphCmd)
}
