package ports

import (
	"context"

	"github.com/aretw0/tripwizard/pkg/domain"
)

// CatalogDestination is a destination offered on the destination page.
type CatalogDestination struct {
	ID          string                   `json:"id" yaml:"id"`
	Record      domain.DestinationRecord `json:"record" yaml:"record"`
	Description string                   `json:"description,omitempty" yaml:"description,omitempty"`
}

// CatalogGuide is a guide offered on the guide page.
type CatalogGuide struct {
	ID          string             `json:"id" yaml:"id"`
	Record      domain.GuideRecord `json:"record" yaml:"record"`
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
}

// Catalog provides the entries the selection pages offer.
type Catalog interface {
	// Destinations lists all destinations, ordered by ID.
	Destinations(ctx context.Context) ([]CatalogDestination, error)

	// Destination returns a destination by ID, or domain.ErrNotFound.
	Destination(ctx context.Context, id string) (CatalogDestination, error)

	// Guides lists all guides, ordered by ID.
	Guides(ctx context.Context) ([]CatalogGuide, error)

	// Guide returns a guide by ID, or domain.ErrNotFound.
	Guide(ctx context.Context, id string) (CatalogGuide, error)
}
