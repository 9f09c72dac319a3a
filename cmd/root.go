package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nordkapp-group/categorize-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "categorize-cli",
	Short: "Norwegian company categorization pipeline",
	Long:  "Resolves company names against the BRREG business registry, classifies them into product categories via industry codes and keywords, and reports graded confidence.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
