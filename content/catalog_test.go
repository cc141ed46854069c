package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogFromFile(t *testing.T) {
	catalog, err := LoadCatalog("events.yaml")
	require.NoError(t, err)

	pages := catalog.List()
	assert.Len(t, pages, 4)

	wedding, ok := catalog.Get("weddings")
	require.True(t, ok)
	assert.Equal(t, "Weddings", wedding.Name)
	assert.Equal(t, "Elegant Entertainment for Your Special Day", wedding.Tagline)
	assert.NotEmpty(t, wedding.Pricing)
	assert.NotEmpty(t, wedding.Testimonials)

	assert.True(t, catalog.Has("kiddie-party"))
	assert.True(t, catalog.Has("debuts"))
	assert.True(t, catalog.Has("corporate-event"))
	assert.False(t, catalog.Has("general"))
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog("no_such_file.yaml")
	assert.Error(t, err)
}

func TestParseCatalogRejectsDuplicateIDs(t *testing.T) {
	raw := []byte(`
events:
  - id: weddings
    name: Weddings
    tagline: First
  - id: weddings
    name: Weddings Again
    tagline: Second
`)
	_, err := ParseCatalog(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate event page id")
}

func TestParseCatalogRejectsMissingFields(t *testing.T) {
	_, err := ParseCatalog([]byte("events:\n  - id: weddings\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing name or tagline")

	_, err = ParseCatalog([]byte("events: []\n"))
	assert.Error(t, err)

	_, err = ParseCatalog([]byte("events:\n  - name: No ID\n    tagline: x\n"))
	assert.Error(t, err)
}

func TestParseCatalogRejectsMalformedYAML(t *testing.T) {
	_, err := ParseCatalog([]byte("{not yaml"))
	assert.Error(t, err)
}
