// Package catalog holds the read-only asset table every other component
// queries. A Catalog is built once at startup and never mutated.
package catalog

import (
	"fmt"
	"strings"

	"crypto-buddy/loader"
	"crypto-buddy/models"
)

type Catalog struct {
	assets []models.Asset
	byName map[string]int
}

// New validates the records and builds a catalog that preserves their order.
// It fails on an empty set, on any invalid record and on duplicate names
// (compared case-insensitively).
func New(assets []models.Asset) (*Catalog, error) {
	if len(assets) == 0 {
		return nil, models.ErrEmptyCatalog
	}

	c := &Catalog{
		assets: make([]models.Asset, len(assets)),
		byName: make(map[string]int, len(assets)),
	}
	copy(c.assets, assets)

	for i, a := range c.assets {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		key := strings.ToLower(a.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("%w: %s", models.ErrDuplicateAsset, a.Name)
		}
		c.byName[key] = i
	}

	return c, nil
}

// Default builds the catalog from the built-in table.
func Default() (*Catalog, error) {
	assets, err := loader.DefaultAssets()
	if err != nil {
		return nil, err
	}
	return New(assets)
}

// Load builds a catalog from a file. An empty path selects the built-in table.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	assets, err := loader.LoadAssets(path)
	if err != nil {
		return nil, err
	}
	c, err := New(assets)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Assets returns the records in catalog order. The slice is a copy.
func (c *Catalog) Assets() []models.Asset {
	out := make([]models.Asset, len(c.assets))
	copy(out, c.assets)
	return out
}

func (c *Catalog) Len() int {
	return len(c.assets)
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.assets))
	for i, a := range c.assets {
		names[i] = a.Name
	}
	return names
}

// Get returns the asset with exactly this name, ignoring case.
func (c *Catalog) Get(name string) (models.Asset, bool) {
	i, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return models.Asset{}, false
	}
	return c.assets[i], true
}
