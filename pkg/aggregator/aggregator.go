package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/tripwizard/internal/logging"
	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/aretw0/tripwizard/pkg/ports"
)

// Aggregator rebuilds the trip snapshot from the session and durable stores.
type Aggregator struct {
	session ports.Store
	durable ports.Store

	now       func() time.Time
	formatter *Formatter
	logger    *slog.Logger
	hooks     domain.LifecycleHooks

	mu       sync.RWMutex
	snapshot domain.Snapshot
}

// Option configures the Aggregator.
type Option func(*Aggregator)

// WithClock sets the function used to obtain "today" for age derivation.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

// WithFormatter sets the currency formatter.
func WithFormatter(f *Formatter) Option {
	return func(a *Aggregator) {
		a.formatter = f
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Aggregator) {
		a.hooks = hooks
	}
}

// New creates an Aggregator over the given stores.
// The snapshot starts empty-initialized until the first LoadAll.
func New(session, durable ports.Store, opts ...Option) *Aggregator {
	a := &Aggregator{
		session:   session,
		durable:   durable,
		now:       time.Now,
		formatter: NewFormatter(),
		logger:    logging.NewNop(),
		snapshot:  emptySnapshot(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func emptySnapshot() domain.Snapshot {
	return domain.Snapshot{
		Guide: domain.Guide{Languages: []string{}},
	}
}

// LoadAll reads both stores, rebuilds the snapshot and computes the cost breakdown.
// It never fails: unreadable or absent fields degrade to defaults.
func (a *Aggregator) LoadAll(ctx context.Context) {
	snap := domain.Snapshot{
		User:        a.loadUser(ctx),
		Trip:        a.loadTrip(ctx),
		Destination: a.loadDestination(ctx),
		Guide:       a.loadGuide(ctx),
	}
	snap.Costs = Breakdown(snap.Destination.CostPerDay, snap.Trip.TravelerCount, snap.Trip.DurationInDays, a.formatter)

	a.mu.Lock()
	a.snapshot = snap
	a.mu.Unlock()

	a.logger.Debug("Snapshot loaded",
		"destination", snap.Destination.Name,
		"travelers", snap.Trip.TravelerCount,
		"days", snap.Trip.DurationInDays,
		"costs_ok", snap.Costs.OK(),
	)

	event := &domain.LoadEvent{
		EventBase: domain.EventBase{Timestamp: a.now(), Type: domain.EventSnapshotLoaded},
		Snapshot:  snap.Clone(),
	}
	if a.hooks.OnLoad != nil {
		a.hooks.OnLoad(ctx, event)
	}
	if !snap.Costs.OK() && a.hooks.OnCostError != nil {
		event.Type = domain.EventCostError
		a.hooks.OnCostError(ctx, event)
	}
}

// GetAll returns a copy of the snapshot as of the last LoadAll.
func (a *Aggregator) GetAll() domain.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot.Clone()
}

func (a *Aggregator) loadUser(ctx context.Context) domain.UserProfile {
	first := a.read(ctx, a.session, domain.KeyFirstName)
	last := a.read(ctx, a.session, domain.KeyLastName)
	dob := a.read(ctx, a.session, domain.KeyDOB)

	return domain.UserProfile{
		FirstName: first,
		LastName:  last,
		FullName:  strings.TrimSpace(first + " " + last),
		Email:     a.read(ctx, a.session, domain.KeyEmail),
		Mobile:    a.read(ctx, a.session, domain.KeyMobile),
		Gender:    a.read(ctx, a.session, domain.KeyGender),
		DOB:       dob,
		Age:       AgeFromString(dob, a.now()),
	}
}

func (a *Aggregator) loadTrip(ctx context.Context) domain.TripParameters {
	return domain.TripParameters{
		TravelerCount:  ParseLeadingInt(a.read(ctx, a.session, domain.KeyTravelers)),
		DurationInDays: ParseLeadingInt(a.read(ctx, a.session, domain.KeyDuration)),
	}
}

func (a *Aggregator) loadDestination(ctx context.Context) domain.Destination {
	raw := a.read(ctx, a.durable, domain.KeySelectedDestination)
	dest, err := DecodeDestination(raw)
	if err != nil {
		a.logger.Warn("Unreadable destination record, using defaults", "error", err)
	}
	return dest
}

func (a *Aggregator) loadGuide(ctx context.Context) domain.Guide {
	raw := a.read(ctx, a.durable, domain.KeySelectedGuide)
	guide, err := DecodeGuide(raw)
	if err != nil {
		a.logger.Warn("Unreadable guide record, using defaults", "error", err)
	}
	return guide
}

// read returns the stored value or "" when absent or unreadable.
func (a *Aggregator) read(ctx context.Context, store ports.Store, key string) string {
	val, err := store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			a.logger.Warn("Store read failed", "key", key, "error", fmt.Errorf("get %s: %w", key, err))
		}
		return ""
	}
	return val
}
