package categorize

import (
	"strings"
	"unicode/utf8"

	"github.com/nordkapp-group/categorize-cli/internal/brreg"
	"github.com/nordkapp-group/categorize-cli/internal/taxonomy"
)

// keywordMatch is the winning category of the free-text keyword fallback,
// with the keywords that hit.
type keywordMatch struct {
	Category string
	Keywords []string
}

// textBlob concatenates every free-text field of a record, lower-cased, into
// one searchable string.
func textBlob(e *brreg.Enhet) string {
	fields := []string{strings.ToLower(e.Navn)}
	for _, a := range e.Aktivitet {
		fields = append(fields, strings.ToLower(a))
	}
	for _, v := range e.VedtektsfestetFormaal {
		fields = append(fields, strings.ToLower(v))
	}
	for _, m := range e.FrivilligMvaRegistrertBeskrivelser {
		fields = append(fields, strings.ToLower(m))
	}
	return strings.Join(fields, " ")
}

// bestKeywordMatch scans the record's combined text for taxonomy keywords.
// Each category scores the summed length of its keywords found in the text,
// so multiple or longer hits outweigh a single short one. Ties resolve to
// the earlier category in table order.
func bestKeywordMatch(cats taxonomy.Table, e *brreg.Enhet) (keywordMatch, bool) {
	blob := textBlob(e)

	var best keywordMatch
	bestScore := 0

	for _, cat := range cats {
		score := 0
		var matched []string
		for _, kw := range cat.Keywords {
			if strings.Contains(blob, strings.ToLower(kw)) {
				score += utf8.RuneCountInString(kw)
				matched = append(matched, kw)
			}
		}
		if score > bestScore {
			best = keywordMatch{Category: cat.Name, Keywords: matched}
			bestScore = score
		}
	}

	return best, bestScore > 0
}
