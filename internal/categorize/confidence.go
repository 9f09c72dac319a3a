package categorize

import "math"

// MatchMethod identifies which matching path produced a categorization.
type MatchMethod int

const (
	// MatchNotFound means no registry record was resolved at all.
	MatchNotFound MatchMethod = iota
	// MatchNone means a record was resolved but nothing matched.
	MatchNone
	// MatchTextKeyword means the free-text keyword fallback matched.
	MatchTextKeyword
	// MatchCodeKeyword means a taxonomy keyword matched inside an industry
	// code's description.
	MatchCodeKeyword
	// MatchCodeExact means an industry code matched a taxonomy code prefix.
	MatchCodeExact
)

// confidenceRow maps a match method to its label and base scores. The
// noCodesBase applies when the record carried zero industry codes, so the
// keyword fallback was the only option rather than a second choice.
type confidenceRow struct {
	label       string
	base        float64
	noCodesBase float64
}

var confidenceTable = map[MatchMethod]confidenceRow{
	MatchCodeExact:   {label: "High", base: 0.95, noCodesBase: 0.95},
	MatchCodeKeyword: {label: "High", base: 0.75, noCodesBase: 0.75},
	MatchTextKeyword: {label: "Medium", base: 0.60, noCodesBase: 0.50},
	MatchNone:        {label: "Low", base: 0.20, noCodesBase: 0.10},
	MatchNotFound:    {label: "Low", base: 0.0, noCodesBase: 0.0},
}

// confidence derives the label and score for a match method. nameMismatch
// applies a 0.9 multiplier for disambiguation uncertainty; the label is not
// affected by it. The score is rounded to three decimals.
func confidence(m MatchMethod, noCodes, nameMismatch bool) (string, float64) {
	row := confidenceTable[m]
	score := row.base
	if noCodes {
		score = row.noCodesBase
	}
	if nameMismatch {
		score *= 0.9
	}
	return row.label, round3(score)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
