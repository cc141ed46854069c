// Package content loads the static event page catalog. Landing page theming
// and copy carry no behavior, so they live in a YAML data file rather than
// in code.
package content

import (
	"fmt"
	"os"

	"github.com/ColorMeBooth/colorme-backend/types"
	"gopkg.in/yaml.v3"
)

// Catalog is the read-only set of event page configurations, keyed by event
// type id. It is loaded once at startup and never mutated, so concurrent
// reads need no locking.
type Catalog struct {
	pages []types.EventPage
	byID  map[string]types.EventPage
}

type catalogFile struct {
	Events []types.EventPage `yaml:"events"`
}

// LoadCatalog reads and validates the event page catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event catalog: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog builds a catalog from raw YAML.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse event catalog: %w", err)
	}

	if len(file.Events) == 0 {
		return nil, fmt.Errorf("event catalog is empty")
	}

	byID := make(map[string]types.EventPage, len(file.Events))
	for _, page := range file.Events {
		if page.ID == "" {
			return nil, fmt.Errorf("event page missing id")
		}
		if _, dup := byID[page.ID]; dup {
			return nil, fmt.Errorf("duplicate event page id %q", page.ID)
		}
		if page.Name == "" || page.Tagline == "" {
			return nil, fmt.Errorf("event page %q missing name or tagline", page.ID)
		}
		byID[page.ID] = page
	}

	return &Catalog{pages: file.Events, byID: byID}, nil
}

// List returns all event pages in catalog order.
func (c *Catalog) List() []types.EventPage {
	return c.pages
}

// Get returns the event page for the given event type id.
func (c *Catalog) Get(id string) (types.EventPage, bool) {
	page, ok := c.byID[id]
	return page, ok
}

// Has reports whether an event type id exists in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}
