package categorize

import (
	"strings"

	"github.com/nordkapp-group/categorize-cli/internal/brreg"
	"github.com/nordkapp-group/categorize-cli/internal/taxonomy"
)

// suggestSubsegment picks a finer-grained label under the resolved category
// from keyword-presence checks on the record's name and activity text.
// Categories without bespoke rules fall back to their first listed
// subsegment; an unknown category yields "".
func suggestSubsegment(cats taxonomy.Table, category string, e *brreg.Enhet) string {
	cat := cats.ByName(category)
	if cat == nil || len(cat.Subsegments) == 0 {
		return ""
	}

	text := strings.ToLower(e.Navn + " " + strings.Join(e.Aktivitet, " "))

	switch category {
	case "Fashion & Personal Accessories":
		switch {
		case containsAny(text, "barn", "child", "kid"):
			return "Childrenswear"
		case containsAny(text, "sko", "shoe", "footwear"):
			return "Footwear"
		case containsAny(text, "sport"):
			return "Sportswear"
		case containsAny(text, "brille", "eyewear", "glasses"):
			return "Eyewear"
		case containsAny(text, "veske", "bag", "luggage"):
			return "Bags and Luggage"
		case containsAny(text, "smykke", "jewelry", "jewellery"):
			return "Jewellery"
		case containsAny(text, "klokke", "watch"):
			return "Traditional and Connected Watches"
		default:
			return "Apparel"
		}

	case "Services, Trade & Institutions":
		switch {
		case containsAny(text, "bank", "finans", "finance"):
			return "Finance & Insurance"
		case containsAny(text, "handel", "retail", "butikk"):
			return "Retail & Wholesale"
		case containsAny(text, "IT", "software", "data", "tech"):
			return "Information & Communications"
		case containsAny(text, "bygg", "construction", "eiendom"):
			return "Construction & Real Estate"
		case containsAny(text, "hotell", "restaurant"):
			return "Hotels & Restaurants"
		case containsAny(text, "skole", "utdanning", "education"):
			return "Education"
		case containsAny(text, "transport", "logistikk"):
			return "Transport & Storage"
		default:
			return "Business Services"
		}
	}

	return cat.Subsegments[0]
}

func containsAny(text string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
