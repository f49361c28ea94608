// Package catalog serves the read-only restaurant list.
//
// The catalog is built once at startup and never mutated, so a single
// *Catalog can be shared by every request goroutine without locking.
package catalog

import (
	"strings"

	"github.com/sakif/restaurant-reviews/internal/apperror"
	"github.com/sakif/restaurant-reviews/internal/model"
)

type Catalog struct {
	restaurants []model.Restaurant
}

// New returns a catalog over the given restaurants. The slice is copied so
// later changes by the caller cannot leak in.
func New(restaurants []model.Restaurant) *Catalog {
	rs := make([]model.Restaurant, len(restaurants))
	copy(rs, restaurants)
	return &Catalog{restaurants: rs}
}

// Default returns the catalog seeded with the built-in restaurant list.
func Default() *Catalog {
	return New(seed)
}

// List returns every restaurant in catalog order.
//
// The location argument is accepted for API compatibility but does not
// filter: the static list has no notion of distance. Callers may log it.
func (c *Catalog) List(_ string) []model.Restaurant {
	out := make([]model.Restaurant, len(c.restaurants))
	copy(out, c.restaurants)
	return out
}

// Search returns the restaurants whose name or city contains query,
// case-insensitively, in catalog order. An empty query is the same as List.
func (c *Catalog) Search(query string) []model.Restaurant {
	if query == "" {
		return c.List("")
	}

	q := strings.ToLower(query)
	out := make([]model.Restaurant, 0, len(c.restaurants))
	for _, r := range c.restaurants {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Location.City), q) {
			out = append(out, r)
		}
	}
	return out
}

// GetByID finds a restaurant by exact id.
func (c *Catalog) GetByID(id string) (*model.Restaurant, error) {
	for i := range c.restaurants {
		if c.restaurants[i].ID == id {
			r := c.restaurants[i]
			return &r, nil
		}
	}
	return nil, apperror.NotFound("Restaurant")
}

// IDs lists the catalog ids in order. Used for "not found" diagnostics.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.restaurants))
	for i, r := range c.restaurants {
		ids[i] = r.ID
	}
	return ids
}
