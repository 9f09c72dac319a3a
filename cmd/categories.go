package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nordkapp-group/categorize-cli/internal/taxonomy"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the product category taxonomy",
	RunE: func(cmd *cobra.Command, args []string) error {
		cats := taxonomy.Categories
		if cfg.Taxonomy.Path != "" {
			loaded, err := taxonomy.LoadFile(cfg.Taxonomy.Path)
			if err != nil {
				return err
			}
			cats = loaded
		}

		for _, c := range cats {
			fmt.Printf("%d. %s\n", c.ID, c.Name)
			fmt.Printf("   codes:       %s\n", strings.Join(c.CodePrefixes, ", "))
			fmt.Printf("   subsegments: %s\n", strings.Join(c.Subsegments, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
