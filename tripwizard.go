package tripwizard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/tripwizard/internal/logging"
	loamAdapter "github.com/aretw0/tripwizard/pkg/adapters/loam"
	"github.com/aretw0/tripwizard/pkg/adapters/memory"
	"github.com/aretw0/tripwizard/pkg/aggregator"
	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/aretw0/tripwizard/pkg/navigation"
	"github.com/aretw0/tripwizard/pkg/pages"
	"github.com/aretw0/tripwizard/pkg/ports"
)

// Wizard is the high-level entry point of the library.
// It owns the stores, the catalog and the single Aggregator of a session.
type Wizard struct {
	session ports.Store
	durable ports.Store
	catalog ports.Catalog

	aggregator *aggregator.Aggregator
	navigator  *navigation.Navigator

	catalogDir string
	logger     *slog.Logger
	hooks      domain.LifecycleHooks
	now        func() time.Time
	formatter  *aggregator.Formatter
	noDelay    bool

	err error
}

// Option defines a functional option for configuring the Wizard.
type Option func(*Wizard)

// WithSessionStore sets the store for profile and trip parameters.
func WithSessionStore(s ports.Store) Option {
	return func(w *Wizard) {
		w.session = s
	}
}

// WithDurableStore sets the store for destination and guide selections.
func WithDurableStore(s ports.Store) Option {
	return func(w *Wizard) {
		w.durable = s
	}
}

// WithCatalog injects the destination and guide catalog.
func WithCatalog(c ports.Catalog) Option {
	return func(w *Wizard) {
		w.catalog = c
	}
}

// WithCatalogDir reads the catalog from a directory of markdown documents.
// It is ignored when WithCatalog is also given.
func WithCatalogDir(dir string) Option {
	return func(w *Wizard) {
		w.catalogDir = dir
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Wizard) {
		w.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks on the aggregator and the navigator.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(w *Wizard) {
		w.hooks = hooks
	}
}

// WithClock sets the source of "today" used to derive the traveller's age.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) {
		w.now = now
	}
}

// WithFormatter sets the currency formatter.
func WithFormatter(f *aggregator.Formatter) Option {
	return func(w *Wizard) {
		w.formatter = f
	}
}

// WithoutDelays makes page transitions immediate.
func WithoutDelays() Option {
	return func(w *Wizard) {
		w.noDelay = true
	}
}

// WithAggregator binds an existing aggregator instead of creating one.
// Binding a second aggregator makes New fail with domain.ErrAggregatorExists.
func WithAggregator(a *aggregator.Aggregator) Option {
	return func(w *Wizard) {
		if w.aggregator != nil {
			w.err = domain.ErrAggregatorExists
			return
		}
		w.aggregator = a
	}
}

// New initializes a Wizard. Stores default to in-memory ones and the catalog
// to the built-in set of destinations and guides.
func New(opts ...Option) (*Wizard, error) {
	w := &Wizard{}
	for _, opt := range opts {
		opt(w)
	}
	if w.err != nil {
		return nil, w.err
	}

	if w.logger == nil {
		w.logger = logging.NewNop()
	}
	if w.session == nil {
		w.session = memory.NewStore()
	}
	if w.durable == nil {
		w.durable = memory.NewStore()
	}

	if w.catalog == nil {
		if w.catalogDir != "" {
			c, err := loamAdapter.Open(w.catalogDir)
			if err != nil {
				return nil, fmt.Errorf("failed to open catalog: %w", err)
			}
			w.catalog = c
		} else {
			w.catalog = memory.DefaultCatalog()
		}
	}

	if w.formatter == nil {
		w.formatter = aggregator.NewFormatter()
	}

	if w.aggregator == nil {
		aggOpts := []aggregator.Option{
			aggregator.WithLogger(w.logger),
			aggregator.WithLifecycleHooks(w.hooks),
			aggregator.WithFormatter(w.formatter),
		}
		if w.now != nil {
			aggOpts = append(aggOpts, aggregator.WithClock(w.now))
		}
		w.aggregator = aggregator.New(w.session, w.durable, aggOpts...)
	}

	navOpts := []navigation.Option{
		navigation.WithLogger(w.logger),
		navigation.WithLifecycleHooks(w.hooks),
	}
	if w.noDelay {
		navOpts = append(navOpts, navigation.WithoutDelays())
	}
	w.navigator = navigation.New(navOpts...)

	return w, nil
}

// Aggregator returns the session's aggregator. Every call returns the same instance.
func (w *Wizard) Aggregator() *aggregator.Aggregator {
	return w.aggregator
}

// Navigator returns the page transition controller.
func (w *Wizard) Navigator() *navigation.Navigator {
	return w.navigator
}

// Session returns the session-scoped store.
func (w *Wizard) Session() ports.Store {
	return w.session
}

// Durable returns the durable store.
func (w *Wizard) Durable() ports.Store {
	return w.durable
}

// Catalog returns the destination and guide catalog.
func (w *Wizard) Catalog() ports.Catalog {
	return w.catalog
}

// Formatter returns the currency formatter used for cost breakdowns.
func (w *Wizard) Formatter() *aggregator.Formatter {
	return w.formatter
}

// Load rebuilds the snapshot from both stores and returns it.
func (w *Wizard) Load(ctx context.Context) domain.Snapshot {
	w.aggregator.LoadAll(ctx)
	return w.aggregator.GetAll()
}

// Navigate fires trigger on page from. Guards see the selections currently in
// the durable store.
func (w *Wizard) Navigate(ctx context.Context, from navigation.Page, trigger navigation.Trigger) (navigation.Page, error) {
	view, err := pages.CurrentView(ctx, w.durable)
	if err != nil {
		return from, err
	}
	return w.navigator.Fire(ctx, from, trigger, view)
}

// Reset clears both stores. The aggregator keeps its last snapshot until the next Load.
func (w *Wizard) Reset(ctx context.Context) error {
	if err := w.session.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session store: %w", err)
	}
	if err := w.durable.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear durable store: %w", err)
	}
	return nil
}
