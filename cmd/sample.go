package main

import (
	"encoding/csv"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sampleOutput string

// sampleCompanies is a small set of well-known Norwegian companies covering
// several categories, for trying the pipeline end to end.
var sampleCompanies = [][]string{
	{"Equinor ASA", "750000000000"},
	{"DNB Bank", "45000000000"},
	{"Telenor Norge AS", "12500000000"},
	{"Rema 1000", "95000000000"},
	{"IKEA", "4500000000"},
	{"H&M", "2300000000"},
	{"Apotek 1", "8900000000"},
	{"Elkjøp", "15600000000"},
	{"Oslo Kommune", "85000000000"},
	{"Lego", "1200000000"},
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a sample input CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Create(sampleOutput)
		if err != nil {
			return eris.Wrapf(err, "sample: create %s", sampleOutput)
		}
		defer f.Close()

		w := csv.NewWriter(f)
		w.Comma = cfg.CSV.DelimiterRune()
		defer w.Flush()

		if err := w.Write([]string{"company_name", "revenue"}); err != nil {
			return eris.Wrap(err, "sample: write header")
		}
		for _, row := range sampleCompanies {
			if err := w.Write(row); err != nil {
				return eris.Wrap(err, "sample: write row")
			}
		}

		w.Flush()
		if err := w.Error(); err != nil {
			return eris.Wrap(err, "sample: flush")
		}

		zap.L().Info("sample csv written",
			zap.String("path", sampleOutput),
			zap.Int("companies", len(sampleCompanies)),
		)
		return nil
	},
}

func init() {
	sampleCmd.Flags().StringVar(&sampleOutput, "output", "sample_companies.csv", "output path")
	rootCmd.AddCommand(sampleCmd)
}
