package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/aretw0/tripwizard/pkg/ports"
)

// Catalog implements ports.Catalog using in-memory maps.
type Catalog struct {
	destinations map[string]ports.CatalogDestination
	guides       map[string]ports.CatalogGuide
}

// NewCatalog creates a catalog from the given entries.
// Entries without an ID are rejected.
func NewCatalog(destinations []ports.CatalogDestination, guides []ports.CatalogGuide) (*Catalog, error) {
	c := &Catalog{
		destinations: make(map[string]ports.CatalogDestination, len(destinations)),
		guides:       make(map[string]ports.CatalogGuide, len(guides)),
	}
	for _, d := range destinations {
		if d.ID == "" {
			return nil, fmt.Errorf("destination %q missing ID", d.Record.Name)
		}
		c.destinations[d.ID] = d
	}
	for _, g := range guides {
		if g.ID == "" {
			return nil, fmt.Errorf("guide %q missing ID", g.Record.Name)
		}
		c.guides[g.ID] = g
	}
	return c, nil
}

// DefaultCatalog returns the built-in destinations and guides.
func DefaultCatalog() *Catalog {
	c, _ := NewCatalog(defaultDestinations, defaultGuides)
	return c
}

// Destinations lists all destinations ordered by ID.
func (c *Catalog) Destinations(ctx context.Context) ([]ports.CatalogDestination, error) {
	out := make([]ports.CatalogDestination, 0, len(c.destinations))
	for _, d := range c.destinations {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Destination returns a destination by ID.
func (c *Catalog) Destination(ctx context.Context, id string) (ports.CatalogDestination, error) {
	d, ok := c.destinations[id]
	if !ok {
		return ports.CatalogDestination{}, fmt.Errorf("destination %q: %w", id, domain.ErrNotFound)
	}
	return d, nil
}

// Guides lists all guides ordered by ID.
func (c *Catalog) Guides(ctx context.Context) ([]ports.CatalogGuide, error) {
	out := make([]ports.CatalogGuide, 0, len(c.guides))
	for _, g := range c.guides {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Guide returns a guide by ID.
func (c *Catalog) Guide(ctx context.Context, id string) (ports.CatalogGuide, error) {
	g, ok := c.guides[id]
	if !ok {
		return ports.CatalogGuide{}, fmt.Errorf("guide %q: %w", id, domain.ErrNotFound)
	}
	return g, nil
}

var defaultDestinations = []ports.CatalogDestination{
	{
		ID:          "goa",
		Record:      domain.DestinationRecord{Name: "Goa Beach Escape", Price: 2000, Image: "images/goa.jpg"},
		Description: "Sun, sand and Portuguese-era villages along the Konkan coast.",
	},
	{
		ID:          "jaipur",
		Record:      domain.DestinationRecord{Name: "Jaipur Heritage Trail", Price: 1800, Image: "images/jaipur.jpg"},
		Description: "Forts, palaces and bazaars of the Pink City.",
	},
	{
		ID:          "kerala",
		Record:      domain.DestinationRecord{Name: "Kerala Backwaters", Price: 3000, Image: "images/kerala.jpg"},
		Description: "Houseboat cruises through Alleppey and Kumarakom.",
	},
	{
		ID:          "ladakh",
		Record:      domain.DestinationRecord{Name: "Ladakh High Passes", Price: 3500, Image: "images/ladakh.jpg"},
		Description: "Monasteries, lakes and the highest motorable roads.",
	},
	{
		ID:          "manali",
		Record:      domain.DestinationRecord{Name: "Manali Mountain Retreat", Price: 2500, Image: "images/manali.jpg"},
		Description: "Pine forests and snow points in the Kullu valley.",
	},
}

var defaultGuides = []ports.CatalogGuide{
	{
		ID: "arjun",
		Record: domain.GuideRecord{
			Name: "Arjun Mehta", Age: 34, Gender: "Male", Specialty: "Trekking & Adventure",
			Rating: 4.8, Languages: []string{"Hindi", "English", "Punjabi"},
		},
		Description: "Certified mountaineer with ten seasons in the Himalaya.",
	},
	{
		ID: "lakshmi",
		Record: domain.GuideRecord{
			Name: "Lakshmi Nair", Age: 29, Gender: "Female", Specialty: "Culture & Cuisine",
			Rating: 4.9, Languages: []string{"Malayalam", "English", "Tamil"},
		},
		Description: "Food historian who runs spice-market walks.",
	},
	{
		ID: "rahul",
		Record: domain.GuideRecord{
			Name: "Rahul Singh", Age: 41, Gender: "Male", Specialty: "History & Architecture",
			Rating: 4.7, Languages: []string{"Hindi", "English", "Rajasthani"},
		},
		Description: "Former museum curator specialising in Rajput forts.",
	},
}
