package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	c := Categories.ByName("Fashion & Personal Accessories")
	require.NotNil(t, c)
	assert.Equal(t, 1, c.ID)

	assert.Nil(t, Categories.ByName("No Such Category"))
	assert.Nil(t, Categories.ByName(""))
}

func TestIDFor(t *testing.T) {
	assert.Equal(t, 1, Categories.IDFor("Fashion & Personal Accessories"))
	assert.Equal(t, 9, Categories.IDFor("Services, Trade & Institutions"))

	// The sentinel names carry no taxonomy id.
	assert.Zero(t, Categories.IDFor(Uncategorized))
	assert.Zero(t, Categories.IDFor(NotFound))
	assert.Zero(t, Categories.IDFor("whatever"))
}

func TestCategoriesTable(t *testing.T) {
	require.Len(t, Categories, 9)

	// Scoring semantics depend on the table order staying put.
	assert.Equal(t, []string{
		"Fashion & Personal Accessories",
		"Beauty, Health & Well-Being",
		"Consumer Tech & Appliances",
		"Food, Grocery & Pet",
		"Home & Living",
		"Toys, Games & Leisure Goods",
		"Industrial & Manufacturing Supplies",
		"Energy, Utilities & Recycling",
		"Services, Trade & Institutions",
	}, Categories.Names())

	seen := make(map[int]bool)
	for _, c := range Categories {
		assert.Positive(t, c.ID, c.Name)
		assert.False(t, seen[c.ID], c.Name)
		seen[c.ID] = true
		assert.NotEmpty(t, c.Subsegments, c.Name)
	}
}
