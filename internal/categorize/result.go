// Package categorize resolves a free-text company name to a single registry
// record and classifies it into a product category with a graded confidence
// score. Everything in this package is a pure function of its inputs; it is
// safe to call concurrently from many workers.
package categorize

// Categorization methods reported in results.
const (
	MethodNaringskode = "naringskode"
	MethodKeywords    = "keywords"
	MethodAPIError    = "api_error"
)

// Result is the complete outcome of categorizing one company name.
// Created once per query and never mutated after return.
type Result struct {
	CompanyName     string `json:"company_name"`
	SelectedCompany string `json:"selected_company"`
	OrgNumber       string `json:"org_number"`

	Category   string `json:"category"`
	CategoryID int    `json:"category_id"`
	Subsegment string `json:"subsegment"`

	Method      string `json:"method"`
	Code        string `json:"code"`
	Description string `json:"description"`

	Confidence      string  `json:"confidence"`
	ConfidenceScore float64 `json:"confidence_score"`

	// Granular match flags used by downstream quality reporting.
	CategorizedByNaringskode int    `json:"categorized_by_naringskode"`
	NumNaringskoder          int    `json:"num_naringskoder"`
	ExactCodeMatch           int    `json:"exact_code_match"`
	KeywordMatch             int    `json:"keyword_match"`
	PrimaryNaringskode       string `json:"primary_naringskode"`
	MatchingKeywords         string `json:"matching_keywords"`

	Activities        []string `json:"activities"`
	StatutoryPurposes []string `json:"statutory_purposes"`
	AllNaringskoder   []string `json:"all_naringskoder"`
}
