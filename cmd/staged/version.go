package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/staged"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of staged",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "staged version %s\n", staged.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
