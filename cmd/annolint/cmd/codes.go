package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abramin/annolint/internal/checks"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List all check codes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, code := range checks.AllCodes {
			fmt.Printf("%-8s %s\n", code, checks.Summaries[code])
		}
	},
}

func init() {
	rootCmd.AddCommand(codesCmd)
}
