package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var Version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the carga version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "carga version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
