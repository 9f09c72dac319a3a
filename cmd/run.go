package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var runNoCache bool

var runCmd = &cobra.Command{
	Use:   "run NAME...",
	Short: "Categorize one or more company names",
	Long: `Looks each name up in the BRREG registry, picks the best candidate, and
prints the full categorization result as JSON.

Examples:
  categorize-cli run "Equinor ASA"
  categorize-cli run "DNB Bank" "Elkjøp" --no-cache`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initEnv(ctx, !runNoCache)
		if err != nil {
			return err
		}
		defer env.Close()

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		for _, name := range args {
			result := env.Categorizer.Categorize(ctx, name)
			if err := enc.Encode(result); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&runNoCache, "no-cache", false, "bypass the local lookup cache")
	rootCmd.AddCommand(runCmd)
}
