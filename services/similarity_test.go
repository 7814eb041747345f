package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"franchise-bot/models"
)

func rankingCatalog(t *testing.T) *Catalog {
	t.Helper()

	catalog, err := NewCatalog(map[string]string{
		"COUNTRIES_OPERATING_IN": "We operate in many countries.",
		"WHERE_CAN_I_OPEN":       "You can open in any available territory.",
		"PHYSICAL_OFFICE_NEED":   "An office is recommended.",
	})
	require.NoError(t, err)
	return catalog
}

func TestRankSimilarOrdering(t *testing.T) {
	catalog := rankingCatalog(t)

	// "where can" and "open" hit WHERE_CAN_I_OPEN twice; "where" hits
	// COUNTRIES_OPERATING_IN once and "office" hits PHYSICAL_OFFICE_NEED
	// once, so the tie between those two follows catalog order.
	got := RankSimilar("where can I open an office", catalog, 3)
	assert.Equal(t, []models.Category{
		models.CategoryWhereCanIOpen,
		models.CategoryCountriesOperatingIn,
		models.CategoryPhysicalOfficeNeed,
	}, got)
}

func TestRankSimilarTruncation(t *testing.T) {
	catalog := rankingCatalog(t)

	got := RankSimilar("where can I open an office", catalog, 2)
	assert.Equal(t, []models.Category{
		models.CategoryWhereCanIOpen,
		models.CategoryCountriesOperatingIn,
	}, got)

	got = RankSimilar("where can I open an office", catalog, 1)
	assert.Equal(t, []models.Category{models.CategoryWhereCanIOpen}, got)
}

func TestRankSimilarExcludesZeroScores(t *testing.T) {
	catalog := rankingCatalog(t)

	got := RankSimilar("completely unrelated question", catalog, 3)
	assert.Empty(t, got)

	// Only one category overlaps; the result must not be padded
	got = RankSimilar("do I need an office?", catalog, 3)
	assert.Equal(t, []models.Category{models.CategoryPhysicalOfficeNeed}, got)
}

func TestRankSimilarCaseInsensitive(t *testing.T) {
	catalog := rankingCatalog(t)

	got := RankSimilar("WHERE CAN I OPEN", catalog, 3)
	require.NotEmpty(t, got)
	assert.Equal(t, models.CategoryWhereCanIOpen, got[0])
}

func TestRankSimilarEmptyCatalog(t *testing.T) {
	got := RankSimilar("where can I open", EmptyCatalog(), 3)
	assert.Empty(t, got)
}
