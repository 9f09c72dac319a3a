package categorize

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nordkapp-group/categorize-cli/internal/brreg"
	"github.com/nordkapp-group/categorize-cli/internal/taxonomy"
)

// Fetcher supplies raw registry candidates for a name lookup. Implementations
// may return an empty slice or an error on failure; the categorizer treats
// both the same way and never distinguishes "lookup failed" from "zero hits".
type Fetcher interface {
	FetchByName(ctx context.Context, name string) ([]brreg.Enhet, error)
}

// Categorizer resolves and classifies company names against a fixed taxonomy.
// It holds no mutable state and is safe for concurrent use.
type Categorizer struct {
	fetcher Fetcher
	cats    taxonomy.Table
}

// New creates a Categorizer. A nil table uses the built-in taxonomy.
func New(fetcher Fetcher, cats taxonomy.Table) *Categorizer {
	if cats == nil {
		cats = taxonomy.Categories
	}
	return &Categorizer{fetcher: fetcher, cats: cats}
}

// Taxonomy returns the table this categorizer classifies against.
func (c *Categorizer) Taxonomy() taxonomy.Table {
	return c.cats
}

// Categorize resolves a company name to one registry record and classifies
// it. It always returns a complete Result and never an error: a failed or
// empty lookup yields the Not Found result, and a record nothing matches
// yields Uncategorized with low confidence.
func (c *Categorizer) Categorize(ctx context.Context, name string) Result {
	enheter, err := c.fetcher.FetchByName(ctx, name)
	if err != nil {
		zap.L().Debug("registry lookup failed, treating as not found",
			zap.String("name", name),
			zap.Error(err),
		)
		enheter = nil
	}

	enhet, ok := SelectBest(name, enheter)
	if !ok {
		return notFoundResult(name)
	}

	koder := enhet.Naeringskoder()

	var (
		method   MatchMethod = MatchNone
		category             = taxonomy.Uncategorized
		code     string
		desc     string
		keywords []string
	)

	if len(koder) > 0 {
		if cm, matched := bestCodeMatch(c.cats, koder); matched {
			category = cm.Category
			desc = cm.Description
			if cm.Keyword != "" {
				method = MatchCodeKeyword
				code = fmt.Sprintf("%s (keyword: %s)", cm.Code, cm.Keyword)
				keywords = []string{cm.Keyword}
			} else {
				method = MatchCodeExact
				code = cm.Code
			}
		}
	}

	if method == MatchNone {
		if km, matched := bestKeywordMatch(c.cats, &enhet); matched {
			method = MatchTextKeyword
			category = km.Category
			code = "keyword_match"
			keywords = km.Keywords
			desc = "Keywords: " + strings.Join(km.Keywords, ", ")
		} else {
			code = "no_match"
		}
	}

	nameMismatch := !strings.EqualFold(enhet.Navn, name)
	noCodes := len(koder) == 0
	label, score := confidence(method, noCodes, nameMismatch)

	r := Result{
		CompanyName:       name,
		SelectedCompany:   enhet.Navn,
		OrgNumber:         enhet.Organisasjonsnummer,
		Category:          category,
		CategoryID:        c.cats.IDFor(category),
		Subsegment:        suggestSubsegment(c.cats, category, &enhet),
		Code:              code,
		Description:       desc,
		Confidence:        label,
		ConfidenceScore:   score,
		NumNaringskoder:   len(koder),
		MatchingKeywords:  strings.Join(keywords, ", "),
		Activities:        enhet.Aktivitet,
		StatutoryPurposes: enhet.VedtektsfestetFormaal,
		AllNaringskoder:   brreg.FormatKoder(koder),
	}

	switch method {
	case MatchCodeExact:
		r.Method = MethodNaringskode
		r.CategorizedByNaringskode = 1
		r.ExactCodeMatch = 1
		r.PrimaryNaringskode = primaryKode(code)
	case MatchCodeKeyword:
		r.Method = MethodNaringskode
		r.CategorizedByNaringskode = 1
		r.KeywordMatch = 1
		r.PrimaryNaringskode = primaryKode(code)
	case MatchTextKeyword:
		r.Method = MethodKeywords
		r.KeywordMatch = 1
	case MatchNone:
		r.Method = MethodKeywords
	}

	return r
}

// primaryKode extracts the bare code from a match tag, which may carry a
// "(keyword: ...)" suffix.
func primaryKode(tag string) string {
	if tag == "" {
		return ""
	}
	return strings.Fields(tag)[0]
}

// notFoundResult is returned when the registry yields no candidates at all.
func notFoundResult(name string) Result {
	return Result{
		CompanyName:       name,
		Category:          taxonomy.NotFound,
		Method:            MethodAPIError,
		Description:       "Company not found in registry",
		Confidence:        "Low",
		ConfidenceScore:   0.0,
		Activities:        []string{},
		StatutoryPurposes: []string{},
		AllNaringskoder:   []string{},
	}
}
