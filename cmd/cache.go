package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the local lookup cache",
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove expired lookup cache entries",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := openStore(cmd.Context())
		if err != nil {
			return eris.Wrap(err, "cache: open store")
		}
		defer s.Close()

		n, err := s.PruneExpired(cmd.Context())
		if err != nil {
			return eris.Wrap(err, "cache: prune")
		}

		zap.L().Info("pruned lookup cache", zap.Int64("removed", n))
		fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired entries\n", n)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cachePruneCmd)
	rootCmd.AddCommand(cacheCmd)
}
