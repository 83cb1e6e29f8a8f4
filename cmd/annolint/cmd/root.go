package cmd

import (
	"fmt"

	"github.com/abramin/annolint/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "annolint",
	Short: "annolint - Lint Python type annotations from AST dumps",
	Long: `annolint checks Python code for missing and overly-dynamic type
annotations. It consumes AST dumps (*.ast.json) produced by the companion
exporter, so it never parses Python source itself.

Check codes are selected by prefix: a whole category (ANN), a block (ANN2),
or a single code (ANN201). Finer selectors override coarser ones.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./annolint.yaml)")
}

func GetConfig() *config.Config {
	return cfg
}
