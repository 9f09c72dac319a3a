package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nordkapp-group/categorize-cli/internal/batch"
)

var (
	csvrunCSV         string
	csvrunOutput      string
	csvrunFormat      string
	csvrunMetadata    bool
	csvrunConcurrency int
	csvrunLimit       int
	csvrunNoCache     bool
	csvrunPlainUTF8   bool
)

var csvrunCmd = &cobra.Command{
	Use:   "csvrun",
	Short: "Categorize companies from a CSV file",
	Long: `Reads a two-column CSV (company name, revenue), categorizes every company
against the BRREG registry concurrently, and writes the results plus a
summary report.

Examples:
  categorize-cli csvrun --csv input/companies.csv
  categorize-cli csvrun --csv companies.csv --metadata --output out.csv
  categorize-cli csvrun --csv companies.csv --format xlsx --concurrency 8`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		companies, err := batch.ReadCompanies(csvrunCSV, cfg.CSV.DelimiterRune())
		if err != nil {
			return eris.Wrap(err, "csvrun: read input")
		}
		zap.L().Info("parsed input csv",
			zap.String("path", csvrunCSV),
			zap.Int("companies", len(companies)),
		)
		if len(companies) == 0 {
			return eris.New("csvrun: no companies found in input file")
		}

		if csvrunLimit > 0 && csvrunLimit < len(companies) {
			companies = companies[:csvrunLimit]
		}

		env, err := initEnv(ctx, !csvrunNoCache)
		if err != nil {
			return eris.Wrap(err, "csvrun: init")
		}
		defer env.Close()

		var runID string
		if env.Store != nil {
			if runID, err = env.Store.StartRun(ctx, csvrunCSV, len(companies)); err != nil {
				zap.L().Warn("record run start failed", zap.Error(err))
				runID = ""
			}
		}

		concurrency := csvrunConcurrency
		if concurrency == 0 {
			concurrency = cfg.Batch.Concurrency
		}

		records := batch.Process(ctx, companies, concurrency, env.Categorizer.Categorize)
		summary := batch.Summarize(records)

		outPath := csvrunOutput
		if outPath == "" {
			outPath = defaultOutputPath(csvrunCSV, csvrunFormat)
		}

		switch csvrunFormat {
		case "csv":
			err = batch.WriteCSV(records, outPath, batch.WriteOptions{
				Metadata:  csvrunMetadata,
				Delimiter: cfg.CSV.DelimiterRune(),
				PlainUTF8: csvrunPlainUTF8,
			})
		case "xlsx":
			err = batch.WriteXLSX(records, outPath, csvrunMetadata)
		default:
			return eris.Errorf("csvrun: unknown format %q (want csv or xlsx)", csvrunFormat)
		}
		if err != nil {
			return eris.Wrap(err, "csvrun: write output")
		}

		if runID != "" {
			if err := env.Store.CompleteRun(ctx, runID, summary); err != nil {
				zap.L().Warn("record run completion failed", zap.Error(err))
			}
		}

		zap.L().Info("batch complete",
			zap.String("output", outPath),
			zap.Int("companies", summary.Total),
			zap.Float64("avg_confidence", summary.AvgConfidenceScore),
		)
		fmt.Fprint(os.Stderr, batch.FormatSummary(summary))

		return ctx.Err()
	},
}

func init() {
	csvrunCmd.Flags().StringVar(&csvrunCSV, "csv", "", "path to input CSV file (required)")
	csvrunCmd.Flags().StringVar(&csvrunOutput, "output", "", "output path (default: <input>_categorized_<timestamp>.<ext>)")
	csvrunCmd.Flags().StringVar(&csvrunFormat, "format", "csv", "output format: csv or xlsx")
	csvrunCmd.Flags().BoolVar(&csvrunMetadata, "metadata", false, "include detailed metadata columns")
	csvrunCmd.Flags().IntVar(&csvrunConcurrency, "concurrency", 0, "worker count (default from config)")
	csvrunCmd.Flags().IntVar(&csvrunLimit, "limit", 0, "max companies to process (0 = all)")
	csvrunCmd.Flags().BoolVar(&csvrunNoCache, "no-cache", false, "bypass the local lookup cache")
	csvrunCmd.Flags().BoolVar(&csvrunPlainUTF8, "plain-utf8", false, "write plain UTF-8 without BOM")
	_ = csvrunCmd.MarkFlagRequired("csv")
	rootCmd.AddCommand(csvrunCmd)
}

// defaultOutputPath derives an output filename next to the input file.
func defaultOutputPath(inputPath, format string) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	ts := time.Now().Format("20060102_150405")
	return fmt.Sprintf("%s_categorized_%s.%s", stem, ts, format)
}
