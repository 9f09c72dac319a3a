// Package taxonomy defines the product category table: per-category industry
// code prefixes, matching keywords, subsegment labels, and numeric ids.
//
// The table is constructed once at process start and never mutated. Category
// order is fixed; scoring loops iterate it in order so equal-score ties
// always resolve to the earlier entry.
package taxonomy

// Category holds the matching rules for one product category.
type Category struct {
	Name         string
	ID           int
	CodePrefixes []string
	Keywords     []string
	Subsegments  []string
}

// Table is an ordered list of categories.
type Table []Category

// Uncategorized and NotFound are the special category names with id 0.
const (
	Uncategorized = "Uncategorized"
	NotFound      = "Not Found"
)

// ByName returns the category with the given name, or nil.
func (t Table) ByName(name string) *Category {
	for i := range t {
		if t[i].Name == name {
			return &t[i]
		}
	}
	return nil
}

// IDFor returns the numeric id for a category name. The special names
// Uncategorized and Not Found (and any unknown name) map to 0.
func (t Table) IDFor(name string) int {
	if c := t.ByName(name); c != nil {
		return c.ID
	}
	return 0
}

// Names returns the category names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, c := range t {
		names[i] = c.Name
	}
	return names
}

// Categories is the built-in product category table. Code prefixes follow
// the Norwegian næringskode (NACE) numbering; keywords cover both Norwegian
// and English terms.
var Categories = Table{
	{
		Name: "Fashion & Personal Accessories",
		ID:   1,
		CodePrefixes: []string{
			"14", "15.1", "32.1", "46.41", "46.42", "47.71", "47.72", "47.77", "95.25",
		},
		Keywords: []string{
			"klær", "clothing", "apparel", "fashion", "mote", "sko", "shoes",
			"vesker", "bags", "smykker", "jewelry", "klokker", "watches",
			"briller", "eyewear", "accessories", "tilbehør",
		},
		Subsegments: []string{
			"Apparel and Footwear", "Apparel", "Childrenswear", "Footwear",
			"Sportswear", "Eyewear", "Bags and Luggage", "Jewellery",
			"Traditional and Connected Watches", "Personal Accessories",
		},
	},
	{
		Name: "Beauty, Health & Well-Being",
		ID:   2,
		CodePrefixes: []string{
			"20.4", "21", "26.6", "32.5", "46.45", "46.46", "47.75", "86", "87", "88",
		},
		Keywords: []string{
			"skjønnhet", "beauty", "kosmetikk", "cosmetics", "helse", "health",
			"medisin", "medical", "pharmaceutical", "farmasøytisk",
			"helsevesen", "healthcare", "wellness", "velvære",
		},
		Subsegments: []string{
			"Beauty and Personal Care", "Consumer Health",
			"Pharmaceuticals and Medical Equipment",
		},
	},
	{
		Name: "Consumer Tech & Appliances",
		ID:   3,
		CodePrefixes: []string{
			"26.1", "26.2", "26.3", "26.4", "26.8", "27", "28.2",
			"46.43", "46.51", "47.5", "95.1", "95.2",
		},
		Keywords: []string{
			"elektronikk", "electronics", "teknologi", "technology",
			"datamaskiner", "computers", "telefoner", "phones", "TV", "radio",
			"appliances", "hvitevarer", "kjøkken", "kitchen",
		},
		Subsegments: []string{"Consumer Electronics", "Consumer Appliances"},
	},
	{
		Name: "Food, Grocery & Pet",
		ID:   4,
		CodePrefixes: []string{
			"01", "02", "03", "10", "11", "12",
			"46.1", "46.2", "46.3", "47.1", "47.2", "47.9",
		},
		Keywords: []string{
			"mat", "food", "matvarer", "grocery", "landbruk", "agriculture",
			"fiske", "fishing", "kjæledyr", "pet", "dyrefôr", "tobakk",
			"tobacco", "drikke", "beverage",
		},
		Subsegments: []string{"Staple Foods", "Pet Care", "Tobacco Products", "Agriculture"},
	},
	{
		Name: "Home & Living",
		ID:   5,
		CodePrefixes: []string{
			"16", "31", "32.9", "43.3", "46.47", "46.49",
			"47.52", "47.53", "47.54", "47.59",
		},
		Keywords: []string{
			"møbler", "furniture", "hjem", "home", "bolig", "living",
			"interiør", "interior", "hage", "garden", "renovering",
			"renovation", "luksus", "luxury", "innredning", "furnishing",
		},
		Subsegments: []string{
			"Home Improvement", "Gardening", "Homewares & Home Furnishings",
			"Household Goods", "Luxury Goods",
		},
	},
	{
		Name:         "Toys, Games & Leisure Goods",
		ID:           6,
		CodePrefixes: []string{"32.4", "32.3", "46.49", "47.65", "93.1"},
		Keywords: []string{
			"leker", "toys", "spill", "games", "gaming", "sport", "sports",
			"fritid", "leisure", "hobby",
		},
		Subsegments: []string{"Toys and Games", "Sports Goods"},
	},
	{
		Name: "Industrial & Manufacturing Supplies",
		ID:   7,
		CodePrefixes: []string{
			"19", "20", "22", "23", "24", "25", "28", "29", "30", "33", "46.6", "46.7",
		},
		Keywords: []string{
			"industri", "industrial", "produksjon", "manufacturing",
			"kjemisk", "chemical", "metall", "metal", "maskin", "machinery",
			"utstyr", "equipment", "råvarer", "materials",
		},
		Subsegments: []string{
			"Chemical Products", "Metal Products", "Non-metallic Mineral Products",
			"Machinery and Equipment", "Transport Equipment", "Paper and Printing",
			"Building and Construction Materials", "Professional Equipment",
		},
	},
	{
		Name: "Energy, Utilities & Recycling",
		ID:   8,
		CodePrefixes: []string{
			"35", "36", "37", "38", "39", "05", "06", "07", "08", "09",
		},
		Keywords: []string{
			"energi", "energy", "elektrisitet", "electricity", "olje", "oil",
			"gass", "gas", "vann", "water", "avfall", "waste",
			"resirkulering", "recycling", "miljø", "environmental",
		},
		Subsegments: []string{"Energy", "Utilities and Recycling"},
	},
	{
		Name: "Services, Trade & Institutions",
		ID:   9,
		CodePrefixes: []string{
			"45", "46", "47", "49", "50", "51", "52", "53", "58", "59", "60",
			"61", "62", "63", "64", "65", "66", "68", "69", "70", "71", "72",
			"73", "74", "75", "77", "78", "79", "80", "81", "82", "84", "85",
			"90", "91", "92", "93", "94", "95", "96", "97", "98", "99",
		},
		Keywords: []string{
			"handel", "trade", "service", "tjeneste", "bank", "finans",
			"finance", "forsikring", "insurance", "eiendom", "real estate",
			"rådgivning", "consulting", "IT", "software", "utdanning",
			"education", "helse", "health", "kultur", "culture", "transport",
			"logistics", "hotell", "restaurant",
		},
		Subsegments: []string{
			"Retail & Wholesale", "Information & Communications",
			"Publishing & Printing", "Finance & Insurance", "Real Estate",
			"Consulting & Business Services", "Education",
			"Health & Social Services", "Arts & Culture",
			"Transportation & Storage", "Hotels & Restaurants",
			"Business Services", "Construction & Real Estate",
		},
	},
}
