package loam

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/aretw0/tripwizard/pkg/ports"
)

// Catalog adapts two Loam repositories (destinations and guides) to ports.Catalog.
// Each entry is a Markdown document whose frontmatter holds the record and whose
// body is the description.
type Catalog struct {
	destinations *loam.TypedRepository[DestinationMetadata]
	guides       *loam.TypedRepository[GuideMetadata]
}

// Open initializes a read-only catalog rooted at dir, which must contain
// "destinations" and "guides" subdirectories.
func Open(dir string) (*Catalog, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	destRepo, err := openRepo(filepath.Join(absPath, "destinations"))
	if err != nil {
		return nil, err
	}
	guideRepo, err := openRepo(filepath.Join(absPath, "guides"))
	if err != nil {
		return nil, err
	}

	return &Catalog{
		destinations: loam.NewTypedRepository[DestinationMetadata](destRepo),
		guides:       loam.NewTypedRepository[GuideMetadata](guideRepo),
	}, nil
}

func openRepo(path string) (core.Repository, error) {
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("catalog directory %s: %w", path, domain.ErrNotFound)
	}
	// Strict mode keeps numbers as json.Number; ReadOnly because the catalog is never written.
	repo, err := loam.Init(path,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam at %s: %w", path, err)
	}
	return repo, nil
}

// Destinations lists all destination documents ordered by ID.
func (c *Catalog) Destinations(ctx context.Context) ([]ports.CatalogDestination, error) {
	docs, err := c.destinations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	out := make([]ports.CatalogDestination, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toDestination(entryID(doc.Data.ID, doc.ID), doc.Data, doc.Content))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Destination retrieves a destination document by ID.
func (c *Catalog) Destination(ctx context.Context, id string) (ports.CatalogDestination, error) {
	doc, err := c.destinations.Get(ctx, id)
	if err != nil {
		return ports.CatalogDestination{}, fmt.Errorf("destination %q: %w: %v", id, domain.ErrNotFound, err)
	}
	return toDestination(entryID(doc.Data.ID, doc.ID), doc.Data, doc.Content), nil
}

// Guides lists all guide documents ordered by ID.
func (c *Catalog) Guides(ctx context.Context) ([]ports.CatalogGuide, error) {
	docs, err := c.guides.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	out := make([]ports.CatalogGuide, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toGuide(entryID(doc.Data.ID, doc.ID), doc.Data, doc.Content))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Guide retrieves a guide document by ID.
func (c *Catalog) Guide(ctx context.Context, id string) (ports.CatalogGuide, error) {
	doc, err := c.guides.Get(ctx, id)
	if err != nil {
		return ports.CatalogGuide{}, fmt.Errorf("guide %q: %w: %v", id, domain.ErrNotFound, err)
	}
	return toGuide(entryID(doc.Data.ID, doc.ID), doc.Data, doc.Content), nil
}

func toDestination(id string, meta DestinationMetadata, content string) ports.CatalogDestination {
	return ports.CatalogDestination{
		ID: id,
		Record: domain.DestinationRecord{
			Name:  meta.Name,
			Price: meta.Price,
			Image: meta.Image,
		},
		Description: strings.TrimSpace(content),
	}
}

func toGuide(id string, meta GuideMetadata, content string) ports.CatalogGuide {
	return ports.CatalogGuide{
		ID: id,
		Record: domain.GuideRecord{
			Name:      meta.Name,
			Age:       meta.Age,
			Gender:    meta.Gender,
			Specialty: meta.Specialty,
			Rating:    meta.Rating,
			Languages: meta.Languages,
		},
		Description: strings.TrimSpace(content),
	}
}

// entryID prefers the frontmatter ID, falling back to the file name without extension.
func entryID(metaID, docID string) string {
	id := metaID
	if id == "" {
		id = docID
	}
	if ext := filepath.Ext(id); ext != "" {
		id = strings.TrimSuffix(id, ext)
	}
	return filepath.ToSlash(id)
}
