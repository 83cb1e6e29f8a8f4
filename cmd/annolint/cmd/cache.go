package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abramin/annolint/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the result cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached results",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cache.Open(".")
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer c.Close()
		if err := c.Clear(); err != nil {
			return err
		}
		fmt.Printf("Cleared %s\n", c.DBPath())
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
