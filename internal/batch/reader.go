// Package batch reads company lists from CSV, fans categorization out over a
// bounded worker pool, and writes result files and summary reports.
package batch

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Company is one input row: a name to categorize and its revenue, carried
// through to the output untouched.
type Company struct {
	Name    string `json:"company_name"`
	Revenue string `json:"revenue"`
}

// ReadCompanies reads a two-column CSV (company name, revenue). A header row
// is detected by checking whether the second column of the first row parses
// as a number; extra columns are ignored. Rows with fewer than two columns
// or an empty name are skipped with a warning.
func ReadCompanies(path string, delimiter rune) ([]Company, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "batch: open %s", path)
	}
	defer f.Close()

	return readCompanies(f, delimiter)
}

func readCompanies(r io.Reader, delimiter rune) ([]Company, error) {
	reader := csv.NewReader(stripBOM(r))
	if delimiter != 0 {
		reader.Comma = delimiter
	}
	reader.FieldsPerRecord = -1 // allow variable fields
	reader.LazyQuotes = true

	first, err := reader.Read()
	if err == io.EOF {
		return nil, eris.New("batch: input file is empty")
	}
	if err != nil {
		return nil, eris.Wrap(err, "batch: read first row")
	}
	if len(first) < 2 {
		return nil, eris.New("batch: input needs at least 2 columns (company name, revenue)")
	}

	var companies []Company
	hasHeader := !looksNumeric(first[1])
	if !hasHeader {
		if name := strings.TrimSpace(first[0]); name != "" {
			companies = append(companies, Company{Name: name, Revenue: strings.TrimSpace(first[1])})
		}
	}
	zap.L().Debug("parsed first row",
		zap.Bool("has_header", hasHeader),
		zap.Int("columns", len(first)),
	)

	rowNum := 1
	for {
		rowNum++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "batch: read row %d", rowNum)
		}
		if len(row) < 2 {
			zap.L().Warn("skipping row with insufficient columns", zap.Int("row", rowNum))
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			zap.L().Warn("skipping row with empty company name", zap.Int("row", rowNum))
			continue
		}
		companies = append(companies, Company{Name: name, Revenue: strings.TrimSpace(row[1])})
	}

	return companies, nil
}

// looksNumeric reports whether a revenue cell parses as a number once
// thousands separators and quotes are removed. Used for header detection.
func looksNumeric(s string) bool {
	s = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(s, ",", ""), "\"", ""))
	if s == "" {
		return false
	}
	s = strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), "-", "")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// stripBOM removes a leading UTF-8 BOM so Excel-exported inputs parse cleanly.
func stripBOM(r io.Reader) io.Reader {
	br := make([]byte, 3)
	n, _ := io.ReadFull(r, br)
	if n == 3 && br[0] == 0xEF && br[1] == 0xBB && br[2] == 0xBF {
		return r
	}
	return io.MultiReader(strings.NewReader(string(br[:n])), r)
}
