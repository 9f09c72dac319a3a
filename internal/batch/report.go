package batch

import (
	"fmt"
	"sort"
	"strings"
)

// Summary aggregates a batch run for reporting and the run log.
type Summary struct {
	Total                  int            `json:"total_companies"`
	Categories             map[string]int `json:"categories"`
	ConfidenceLevels       map[string]int `json:"confidence_levels"`
	Methods                map[string]int `json:"method_distribution"`
	NaringskodeCategorized int            `json:"naringskode_categorized"`
	ExactCodeMatches       int            `json:"exact_code_matches"`
	KeywordMatches         int            `json:"keyword_matches"`
	AvgConfidenceScore     float64        `json:"avg_confidence_score"`
	HighQuality            int            `json:"high_quality"`   // score >= 0.8
	MediumQuality          int            `json:"medium_quality"` // 0.5 <= score < 0.8
	LowQuality             int            `json:"low_quality"`    // score < 0.5
}

// Summarize computes distribution and quality metrics over a batch.
func Summarize(records []Record) Summary {
	s := Summary{
		Total:            len(records),
		Categories:       make(map[string]int),
		ConfidenceLevels: make(map[string]int),
		Methods:          make(map[string]int),
	}

	var scoreSum float64
	for _, r := range records {
		res := r.Result
		s.Categories[res.Category]++
		s.ConfidenceLevels[res.Confidence]++
		s.Methods[res.Method]++

		if res.CategorizedByNaringskode == 1 {
			s.NaringskodeCategorized++
		}
		if res.ExactCodeMatch == 1 {
			s.ExactCodeMatches++
		}
		if res.KeywordMatch == 1 {
			s.KeywordMatches++
		}

		scoreSum += res.ConfidenceScore
		switch {
		case res.ConfidenceScore >= 0.8:
			s.HighQuality++
		case res.ConfidenceScore >= 0.5:
			s.MediumQuality++
		default:
			s.LowQuality++
		}
	}

	if s.Total > 0 {
		s.AvgConfidenceScore = scoreSum / float64(s.Total)
	}
	return s
}

// FormatSummary renders a summary as a human-readable report.
func FormatSummary(s Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Categorization summary (%d companies)\n", s.Total)

	b.WriteString("\nCategories:\n")
	writeCounts(&b, s.Categories, s.Total, true)

	b.WriteString("\nConfidence levels:\n")
	writeCounts(&b, s.ConfidenceLevels, s.Total, false)

	b.WriteString("\nMethods:\n")
	writeCounts(&b, s.Methods, s.Total, true)

	fmt.Fprintf(&b, "\nCategorized by naringskode: %d/%d (%s)\n",
		s.NaringskodeCategorized, s.Total, pct(s.NaringskodeCategorized, s.Total))
	fmt.Fprintf(&b, "Exact code matches:         %d/%d (%s)\n",
		s.ExactCodeMatches, s.Total, pct(s.ExactCodeMatches, s.Total))
	fmt.Fprintf(&b, "Keyword matches:            %d/%d (%s)\n",
		s.KeywordMatches, s.Total, pct(s.KeywordMatches, s.Total))
	fmt.Fprintf(&b, "Average confidence score:   %.3f\n", s.AvgConfidenceScore)

	b.WriteString("\nQuality:\n")
	fmt.Fprintf(&b, "  high   (>=0.8):    %d (%s)\n", s.HighQuality, pct(s.HighQuality, s.Total))
	fmt.Fprintf(&b, "  medium (0.5-0.8):  %d (%s)\n", s.MediumQuality, pct(s.MediumQuality, s.Total))
	fmt.Fprintf(&b, "  low    (<0.5):     %d (%s)\n", s.LowQuality, pct(s.LowQuality, s.Total))

	return b.String()
}

// writeCounts prints a count map, optionally sorted by count descending
// (alphabetical otherwise), with percentages.
func writeCounts(b *strings.Builder, counts map[string]int, total int, byCount bool) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if byCount && counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		fmt.Fprintf(b, "  %s: %d (%s)\n", k, counts[k], pct(counts[k], total))
	}
}

func pct(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(n)/float64(total)*100)
}
