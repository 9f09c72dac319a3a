package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/unicode"
)

// metadataColumns is the full ordered output column set.
var metadataColumns = []string{
	"company_name",
	"company_category",
	"category_id",
	"revenue",
	"subsegment",
	"confidence",
	"selected_company",
	"org_number",
	"categorized_by_naringskode",
	"num_naringskoder",
	"exact_code_match",
	"keyword_match",
	"confidence_score",
	"primary_naringskode",
	"matching_keywords",
	"method",
}

// basicColumns is the reduced column set without per-match metadata.
var basicColumns = []string{
	"company_name",
	"company_category",
	"category_id",
	"revenue",
	"categorized_by_naringskode",
	"confidence_score",
}

// WriteOptions configures result output.
type WriteOptions struct {
	// Metadata selects the full column set instead of the basic one.
	Metadata bool
	// Delimiter overrides the CSV delimiter (default ',').
	Delimiter rune
	// PlainUTF8 skips the UTF-8 BOM. By default output carries a BOM so
	// Excel opens Norwegian characters correctly.
	PlainUTF8 bool
}

// WriteCSV writes records to a CSV file.
func WriteCSV(records []Record, path string, opts WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "batch: create %s", path)
	}
	defer f.Close()

	var w io.Writer = f
	if !opts.PlainUTF8 {
		w = unicode.UTF8BOM.NewEncoder().Writer(f)
	}

	cw := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		cw.Comma = opts.Delimiter
	}
	defer cw.Flush()

	columns := basicColumns
	if opts.Metadata {
		columns = metadataColumns
	}

	if err := cw.Write(columns); err != nil {
		return eris.Wrap(err, "batch: write header")
	}
	for _, r := range records {
		if err := cw.Write(buildRow(r, columns)); err != nil {
			return eris.Wrap(err, "batch: write row")
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "batch: flush output")
}

// buildRow renders one record into the requested column order.
func buildRow(r Record, columns []string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = fieldValue(r, col)
	}
	return row
}

func fieldValue(r Record, column string) string {
	res := r.Result
	switch column {
	case "company_name":
		return r.Company.Name
	case "company_category":
		return res.Category
	case "category_id":
		return fmt.Sprintf("%d", res.CategoryID)
	case "revenue":
		return r.Company.Revenue
	case "subsegment":
		return res.Subsegment
	case "confidence":
		return res.Confidence
	case "selected_company":
		return res.SelectedCompany
	case "org_number":
		return res.OrgNumber
	case "categorized_by_naringskode":
		return fmt.Sprintf("%d", res.CategorizedByNaringskode)
	case "num_naringskoder":
		return fmt.Sprintf("%d", res.NumNaringskoder)
	case "exact_code_match":
		return fmt.Sprintf("%d", res.ExactCodeMatch)
	case "keyword_match":
		return fmt.Sprintf("%d", res.KeywordMatch)
	case "confidence_score":
		return formatScore(res.ConfidenceScore)
	case "primary_naringskode":
		return res.PrimaryNaringskode
	case "matching_keywords":
		return res.MatchingKeywords
	case "method":
		return res.Method
	}
	return ""
}

// formatScore renders a confidence score with up to 3 decimals, no trailing
// zeros beyond the first.
func formatScore(v float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.3f", v), "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
