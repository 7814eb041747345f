package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"franchise-bot/models"
)

func TestNewCatalog(t *testing.T) {
	catalog, err := NewCatalog(map[string]string{
		"WHERE_CAN_I_OPEN":   "You can open in any available territory.",
		"WHAT_IS_REALTYPLUS": "RealtyPlus is a real estate franchise network.",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, catalog.Size())
	assert.True(t, catalog.Contains(models.CategoryWhatIsRealtyPlus))
	assert.True(t, catalog.Contains(models.CategoryWhereCanIOpen))
	assert.False(t, catalog.Contains(models.CategoryMarketingAssistance))
	assert.False(t, catalog.Contains(models.CategoryOther))

	// Members come back in canonical order regardless of map order
	assert.Equal(t, []models.Category{
		models.CategoryWhatIsRealtyPlus,
		models.CategoryWhereCanIOpen,
	}, catalog.Members())

	text, ok := catalog.Response(models.CategoryWhatIsRealtyPlus)
	assert.True(t, ok)
	assert.Equal(t, "RealtyPlus is a real estate franchise network.", text)
}

func TestNewCatalogRejectsUnknownID(t *testing.T) {
	_, err := NewCatalog(map[string]string{
		"NOT_A_CATEGORY": "bogus",
	})
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	t.Run("missing file yields empty catalog", func(t *testing.T) {
		catalog := LoadCatalog(filepath.Join(t.TempDir(), "absent.json"))
		assert.Equal(t, 0, catalog.Size())
		assert.Empty(t, catalog.Members())
	})

	t.Run("malformed json yields empty catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		catalog := LoadCatalog(path)
		assert.Equal(t, 0, catalog.Size())
	})

	t.Run("valid file loads members", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"SUPPORT_RECEIVED": "You receive full support."}`), 0o644))

		catalog := LoadCatalog(path)
		assert.Equal(t, 1, catalog.Size())
		assert.True(t, catalog.Contains(models.CategorySupportReceived))
	})
}

func TestCatalogDisplayName(t *testing.T) {
	catalog := EmptyCatalog()

	assert.Equal(t, "Where can I open?", catalog.DisplayName(models.CategoryWhereCanIOpen, models.LanguageEnglish))
	assert.Equal(t, "¿Dónde puedo abrir?", catalog.DisplayName(models.CategoryWhereCanIOpen, models.LanguageSpanish))

	// Unknown categories fall back to the raw identifier
	assert.Equal(t, "BOGUS", catalog.DisplayName(models.Category("BOGUS"), models.LanguageEnglish))
}
