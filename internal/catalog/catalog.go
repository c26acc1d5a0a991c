// Package catalog loads the product catalogue from a JSON file at startup.
// The catalogue is immutable for the lifetime of the process, so concurrent
// reads from request handlers need no locking.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

// Product is one catalogue entry eligible for recommendation.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	URL         string   `json:"url"`
	ConcernTags []string `json:"concern_tags"`
}

// HasTag reports whether the product targets the given concern.
func (p Product) HasTag(tag string) bool {
	return slices.Contains(p.ConcernTags, tag)
}

// Catalog is the read-only collection of products.
type Catalog struct {
	products []Product
}

// Load reads and validates the product catalogue from a JSON file.
// A missing file, malformed JSON or duplicate product id is a startup
// failure; the caller is expected to abort.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read product file %s: %w", path, err)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("could not parse product file %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q has an empty id", p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	return &Catalog{products: products}, nil
}

// Products returns all products in file order.
// The returned slice must not be modified.
func (c *Catalog) Products() []Product {
	return c.products
}

// Len returns the number of products in the catalogue.
func (c *Catalog) Len() int {
	return len(c.products)
}
