package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSnapshotLoaded EventType = "snapshot_loaded"
	EventCostError      EventType = "cost_error"
	EventPageChanged    EventType = "page_changed"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// LoadEvent is emitted after the aggregator rebuilt its snapshot.
type LoadEvent struct {
	EventBase
	Snapshot Snapshot `json:"snapshot"`
}

// NavigationEvent is emitted when a trigger moves the wizard to another page.
type NavigationEvent struct {
	EventBase
	From    string        `json:"from"`
	To      string        `json:"to"`
	Trigger string        `json:"trigger"`
	Delay   time.Duration `json:"delay"`
}

// LifecycleHooks defines callbacks for wizard observability.
type LifecycleHooks struct {
	OnLoad      func(context.Context, *LoadEvent)
	OnCostError func(context.Context, *LoadEvent)
	OnNavigate  func(context.Context, *NavigationEvent)
}
