package categorize

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/nordkapp-group/categorize-cli/internal/brreg"
)

// closeMatchWindow is the score distance within which candidates are
// considered tied and go through the secondary tie-break.
const closeMatchWindow = 0.10

// primaryOrgForms are the main legal forms, preferred during selection.
var primaryOrgForms = map[string]bool{
	"AS": true, "ASA": true, "ENK": true, "DA": true, "BA": true, "SA": true,
}

// branchOrgForms are foreign branch forms, deprioritized during selection.
var branchOrgForms = map[string]bool{
	"NUF": true, "FIL": true,
}

// SelectBest picks the single best registry record for a search name out of
// the raw lookup hits. Records carrying industry codes are strictly preferred
// over ambiguous name collisions, since only coded records can be categorized
// with high confidence. Returns false when the candidate list is empty.
//
// Selection is deterministic: the same input order always yields the same
// record.
func SelectBest(searchName string, enheter []brreg.Enhet) (brreg.Enhet, bool) {
	switch len(enheter) {
	case 0:
		return brreg.Enhet{}, false
	case 1:
		return enheter[0], true
	}

	var withCodes []brreg.Enhet
	for _, e := range enheter {
		if e.HasNaeringskoder() {
			withCodes = append(withCodes, e)
		}
	}

	// Exactly one coded candidate wins outright, regardless of name
	// similarity.
	if len(withCodes) == 1 {
		return withCodes[0], true
	}

	pool := enheter
	scoringCoded := false
	if len(withCodes) > 1 {
		pool = withCodes
		scoringCoded = true
	}

	type scored struct {
		score float64
		enhet brreg.Enhet
	}
	ranked := make([]scored, len(pool))
	for i, e := range pool {
		ranked[i] = scored{score: relevanceScore(searchName, e), enhet: e}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	best := ranked[0]
	var close []scored
	for _, s := range ranked {
		if best.score-s.score <= closeMatchWindow {
			close = append(close, s)
		}
	}

	// Among coded candidates with near-equal scores, prefer the first
	// active one. The no-codes fallback pool is already unreliable, so its
	// top score stands as-is.
	if len(close) > 1 && scoringCoded {
		for _, s := range close {
			if s.enhet.Active() {
				return s.enhet, true
			}
		}
	}

	return best.enhet, true
}

// relevanceScore rates how well a candidate record matches the search name:
// name similarity (0.60), active status (0.25), presence of descriptive text
// (0.10), and a legal-form bonus/penalty (+0.05 / -0.02).
func relevanceScore(searchName string, e brreg.Enhet) float64 {
	score := nameSimilarity(searchName, e.Navn) * 0.60

	if e.Active() {
		score += 0.25
	}
	if len(e.Aktivitet) > 0 || len(e.VedtektsfestetFormaal) > 0 {
		score += 0.10
	}

	switch form := e.OrgFormKode(); {
	case primaryOrgForms[form]:
		score += 0.05
	case branchOrgForms[form]:
		score -= 0.02
	}

	return score
}

// nameSimilarity returns an edit-distance based similarity ratio in [0, 1],
// case-insensitive.
func nameSimilarity(a, b string) float64 {
	return levenshtein.Similarity(strings.ToLower(a), strings.ToLower(b), levenshtein.NewParams())
}
