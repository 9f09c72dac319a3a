package categorize

import (
	"strings"
	"unicode/utf8"

	"github.com/nordkapp-group/categorize-cli/internal/brreg"
	"github.com/nordkapp-group/categorize-cli/internal/taxonomy"
)

// codeMatch is the best (category, industry code) pairing found by
// bestCodeMatch. Keyword is set when the match came from a taxonomy keyword
// inside the code's description rather than from the code itself.
type codeMatch struct {
	Category    string
	Code        string
	Keyword     string
	Description string
}

// bestCodeMatch reduces over every (category, industry code) pair, tracking
// the single highest-scoring match. A code-prefix hit scores the prefix
// length, so longer (more specific) prefixes outrank shorter ones. A keyword
// hit inside the code's description scores half the keyword length, keeping
// it generally below direct code hits. Comparisons are strict, so equal
// scores resolve to the earliest category in table order.
func bestCodeMatch(cats taxonomy.Table, koder []brreg.Naeringskode) (codeMatch, bool) {
	var best codeMatch
	bestScore := 0.0

	for _, cat := range cats {
		for _, nk := range koder {
			desc := strings.ToLower(nk.Beskrivelse)

			for _, prefix := range cat.CodePrefixes {
				if !strings.HasPrefix(nk.Kode, prefix) {
					continue
				}
				if score := float64(len(prefix)); score > bestScore {
					best = codeMatch{
						Category:    cat.Name,
						Code:        nk.Kode,
						Description: nk.Beskrivelse,
					}
					bestScore = score
				}
			}

			for _, kw := range cat.Keywords {
				if !strings.Contains(desc, strings.ToLower(kw)) {
					continue
				}
				if score := 0.5 * float64(utf8.RuneCountInString(kw)); score > bestScore {
					best = codeMatch{
						Category:    cat.Name,
						Code:        nk.Kode,
						Keyword:     kw,
						Description: nk.Beskrivelse,
					}
					bestScore = score
				}
			}
		}
	}

	return best, bestScore > 0
}
