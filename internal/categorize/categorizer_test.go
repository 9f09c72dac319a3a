package categorize

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordkapp-group/categorize-cli/internal/brreg"
	"github.com/nordkapp-group/categorize-cli/internal/taxonomy"
)

type fakeFetcher struct {
	enheter []brreg.Enhet
	err     error
	calls   int
}

func (f *fakeFetcher) FetchByName(ctx context.Context, name string) ([]brreg.Enhet, error) {
	f.calls++
	return f.enheter, f.err
}

func TestCategorize_NotFound(t *testing.T) {
	c := New(&fakeFetcher{}, nil)

	r := c.Categorize(context.Background(), "Ghost Company AS")

	assert.Equal(t, "Ghost Company AS", r.CompanyName)
	assert.Empty(t, r.SelectedCompany)
	assert.Equal(t, taxonomy.NotFound, r.Category)
	assert.Zero(t, r.CategoryID)
	assert.Equal(t, MethodAPIError, r.Method)
	assert.Equal(t, "Company not found in registry", r.Description)
	assert.Equal(t, "Low", r.Confidence)
	assert.Zero(t, r.ConfidenceScore)
	assert.Zero(t, r.CategorizedByNaringskode)
	assert.Zero(t, r.ExactCodeMatch)
	assert.Zero(t, r.KeywordMatch)
	assert.NotNil(t, r.Activities)
	assert.NotNil(t, r.StatutoryPurposes)
	assert.NotNil(t, r.AllNaringskoder)
}

func TestCategorize_FetchErrorFoldsIntoNotFound(t *testing.T) {
	c := New(&fakeFetcher{err: errors.New("brreg: search request: connection refused")}, nil)

	r := c.Categorize(context.Background(), "Acme AS")

	assert.Equal(t, taxonomy.NotFound, r.Category)
	assert.Equal(t, MethodAPIError, r.Method)
	assert.Zero(t, r.ConfidenceScore)
}

func TestCategorize_ExactCodeWithNameMismatch(t *testing.T) {
	// Two candidates, only one with industry codes. The coded one wins
	// outright, its "47.71" code is an exact Fashion prefix, and the name
	// difference applies the 0.9 penalty: 0.95 * 0.9 = 0.855.
	f := &fakeFetcher{enheter: []brreg.Enhet{
		{Organisasjonsnummer: "910000001", Navn: "Acme Retail Norge AS"},
		{
			Organisasjonsnummer: "910000002",
			Navn:                "Acme Retail AS",
			Naeringskode1:       &brreg.Naeringskode{Kode: "47.71", Beskrivelse: "Butikkhandel med klær"},
		},
	}}
	c := New(f, nil)

	r := c.Categorize(context.Background(), "Acme Retail")

	assert.Equal(t, "Acme Retail AS", r.SelectedCompany)
	assert.Equal(t, "910000002", r.OrgNumber)
	assert.Equal(t, "Fashion & Personal Accessories", r.Category)
	assert.Equal(t, 1, r.CategoryID)
	assert.Equal(t, "Apparel", r.Subsegment)
	assert.Equal(t, MethodNaringskode, r.Method)
	assert.Equal(t, "47.71", r.Code)
	assert.Equal(t, "47.71", r.PrimaryNaringskode)
	assert.Equal(t, "High", r.Confidence)
	assert.Equal(t, 0.855, r.ConfidenceScore)
	assert.Equal(t, 1, r.CategorizedByNaringskode)
	assert.Equal(t, 1, r.ExactCodeMatch)
	assert.Zero(t, r.KeywordMatch)
	assert.Equal(t, 1, r.NumNaringskoder)
	assert.Equal(t, []string{"47.71: Butikkhandel med klær"}, r.AllNaringskoder)
}

func TestCategorize_ExactNameExactCode(t *testing.T) {
	f := &fakeFetcher{enheter: []brreg.Enhet{{
		Organisasjonsnummer: "910000003",
		Navn:                "Bergen Sko AS",
		Naeringskode1:       &brreg.Naeringskode{Kode: "47.72", Beskrivelse: "Butikkhandel med skotøy"},
	}}}
	c := New(f, nil)

	r := c.Categorize(context.Background(), "bergen sko as")

	// EqualFold comparison: case difference alone is not a mismatch.
	assert.Equal(t, 0.95, r.ConfidenceScore)
	assert.Equal(t, "Footwear", r.Subsegment)
}

func TestCategorize_CodeDescriptionKeyword(t *testing.T) {
	// The code matches no taxonomy prefix, but its description carries a
	// taxonomy keyword. The code field is tagged with the keyword and the
	// bare code is still reported separately.
	f := &fakeFetcher{enheter: []brreg.Enhet{{
		Organisasjonsnummer: "910000004",
		Navn:                "Norsk Energi AS",
		Naeringskode1:       &brreg.Naeringskode{Kode: "42.22", Beskrivelse: "Bygging av anlegg for elektrisitet"},
	}}}
	c := New(f, nil)

	r := c.Categorize(context.Background(), "Norsk Energi AS")

	assert.Equal(t, "Energy, Utilities & Recycling", r.Category)
	assert.Equal(t, MethodNaringskode, r.Method)
	assert.Equal(t, "42.22 (keyword: elektrisitet)", r.Code)
	assert.Equal(t, "42.22", r.PrimaryNaringskode)
	assert.Equal(t, "elektrisitet", r.MatchingKeywords)
	assert.Equal(t, "High", r.Confidence)
	assert.Equal(t, 0.75, r.ConfidenceScore)
	assert.Equal(t, 1, r.CategorizedByNaringskode)
	assert.Zero(t, r.ExactCodeMatch)
	assert.Equal(t, 1, r.KeywordMatch)
}

func TestCategorize_KeywordFallbackNoCodes(t *testing.T) {
	// Single candidate without industry codes: the free-text fallback
	// classifies it, and the no-codes base score of 0.5 applies.
	f := &fakeFetcher{enheter: []brreg.Enhet{{
		Organisasjonsnummer: "910000005",
		Navn:                "Nordic Consulting AS",
		Aktivitet:           []string{"Management consulting services"},
	}}}
	c := New(f, nil)

	r := c.Categorize(context.Background(), "Nordic Consulting AS")

	assert.Equal(t, "Services, Trade & Institutions", r.Category)
	assert.Equal(t, 9, r.CategoryID)
	assert.Equal(t, "Business Services", r.Subsegment)
	assert.Equal(t, MethodKeywords, r.Method)
	assert.Equal(t, "keyword_match", r.Code)
	assert.Equal(t, "Medium", r.Confidence)
	assert.Equal(t, 0.5, r.ConfidenceScore)
	assert.Zero(t, r.CategorizedByNaringskode)
	assert.Equal(t, 1, r.KeywordMatch)
	assert.Zero(t, r.NumNaringskoder)
	assert.Contains(t, r.Description, "Keywords: ")
	assert.Contains(t, r.MatchingKeywords, "consulting")
}

func TestCategorize_KeywordFallbackWithUnmatchedCodes(t *testing.T) {
	// Codes present but matching nothing: the fallback still runs, and the
	// regular 0.6 base applies instead of the no-codes 0.5.
	f := &fakeFetcher{enheter: []brreg.Enhet{{
		Organisasjonsnummer: "910000006",
		Navn:                "Fjordmat AS",
		Naeringskode1:       &brreg.Naeringskode{Kode: "00.00", Beskrivelse: "Ukjent"},
		Aktivitet:           []string{"Produksjon av matvarer"},
	}}}
	c := New(f, nil)

	r := c.Categorize(context.Background(), "Fjordmat AS")

	assert.Equal(t, "Food, Grocery & Pet", r.Category)
	assert.Equal(t, MethodKeywords, r.Method)
	assert.Equal(t, 0.6, r.ConfidenceScore)
	assert.Equal(t, 1, r.NumNaringskoder)
}

func TestCategorize_NothingMatches(t *testing.T) {
	f := &fakeFetcher{enheter: []brreg.Enhet{{
		Organisasjonsnummer: "910000007",
		Navn:                "Xqzw Holding AS",
	}}}
	c := New(f, nil)

	r := c.Categorize(context.Background(), "Xqzw Holding AS")

	assert.Equal(t, taxonomy.Uncategorized, r.Category)
	assert.Zero(t, r.CategoryID)
	assert.Equal(t, MethodKeywords, r.Method)
	assert.Equal(t, "no_match", r.Code)
	assert.Equal(t, "Low", r.Confidence)
	assert.Equal(t, 0.1, r.ConfidenceScore)
	assert.Empty(t, r.Subsegment)
}

func TestCategorize_Deterministic(t *testing.T) {
	f := &fakeFetcher{enheter: []brreg.Enhet{
		{Navn: "Fjell Sport AS", Naeringskode1: &brreg.Naeringskode{Kode: "47.64", Beskrivelse: "Sportsutstyr"}},
		{Navn: "Fjell Sport Norge AS", Naeringskode1: &brreg.Naeringskode{Kode: "47.65", Beskrivelse: "Butikkhandel med spill og leker"}},
	}}
	c := New(f, nil)

	first := c.Categorize(context.Background(), "Fjell Sport")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, c.Categorize(context.Background(), "Fjell Sport"))
	}
}

func TestCategorize_CustomTaxonomy(t *testing.T) {
	cats := taxonomy.Table{
		{Name: "Maritime", ID: 1, CodePrefixes: []string{"30.11"}, Subsegments: []string{"Shipbuilding"}},
	}
	f := &fakeFetcher{enheter: []brreg.Enhet{{
		Navn:          "Verftet AS",
		Naeringskode1: &brreg.Naeringskode{Kode: "30.11", Beskrivelse: "Bygging av skip"},
	}}}
	c := New(f, cats)

	require.Equal(t, cats, c.Taxonomy())

	r := c.Categorize(context.Background(), "Verftet AS")
	assert.Equal(t, "Maritime", r.Category)
	assert.Equal(t, "Shipbuilding", r.Subsegment)
}

func TestPrimaryKode(t *testing.T) {
	assert.Equal(t, "47.71", primaryKode("47.71"))
	assert.Equal(t, "42.22", primaryKode("42.22 (keyword: elektrisitet)"))
	assert.Empty(t, primaryKode(""))
}
