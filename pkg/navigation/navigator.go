package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/tripwizard/internal/logging"
	"github.com/aretw0/tripwizard/pkg/domain"
)

var (
	// ErrUnknownTrigger is returned when a page has no transition for a trigger.
	ErrUnknownTrigger = errors.New("unknown trigger")
	// ErrTransitionBlocked is returned when a guard rejects the transition.
	ErrTransitionBlocked = errors.New("transition blocked")
)

type transitionKey struct {
	from    Page
	trigger Trigger
}

// Navigator resolves triggers into page transitions.
type Navigator struct {
	transitions map[transitionKey]Transition
	order       []Transition
	noDelay     bool
	logger      *slog.Logger
	hooks       domain.LifecycleHooks
}

// Option configures the Navigator.
type Option func(*Navigator)

// WithTransitions replaces the default flow.
func WithTransitions(ts ...Transition) Option {
	return func(n *Navigator) {
		n.order = ts
	}
}

// WithoutDelays makes transitions immediate.
func WithoutDelays() Option {
	return func(n *Navigator) {
		n.noDelay = true
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Navigator) {
		n.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(n *Navigator) {
		n.hooks = hooks
	}
}

// New creates a Navigator over the default flow unless WithTransitions is given.
func New(opts ...Option) *Navigator {
	n := &Navigator{
		order:  DefaultTransitions(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(n)
	}

	n.transitions = make(map[transitionKey]Transition, len(n.order))
	for _, t := range n.order {
		n.transitions[transitionKey{t.From, t.Trigger}] = t
	}
	return n
}

// Transitions returns the configured transitions in declaration order.
func (n *Navigator) Transitions() []Transition {
	out := make([]Transition, len(n.order))
	copy(out, n.order)
	return out
}

// Lookup returns the transition for a trigger on a page.
func (n *Navigator) Lookup(from Page, trigger Trigger) (Transition, error) {
	t, ok := n.transitions[transitionKey{from, trigger}]
	if !ok {
		return Transition{}, fmt.Errorf("%w: %q on page %q", ErrUnknownTrigger, trigger, from)
	}
	return t, nil
}

// Fire resolves trigger on page from, checks its guard against view, waits the
// transition delay and returns the target page. Cancelling ctx during the
// delay aborts the transition.
func (n *Navigator) Fire(ctx context.Context, from Page, trigger Trigger, view View) (Page, error) {
	t, err := n.Lookup(from, trigger)
	if err != nil {
		return from, err
	}

	if t.Guard != nil && !t.Guard(view) {
		n.logger.Debug("Transition blocked by guard", "from", from, "trigger", trigger)
		return from, fmt.Errorf("%w: %q on page %q", ErrTransitionBlocked, trigger, from)
	}

	delay := t.Delay
	if n.noDelay {
		delay = 0
	}

	if delay > 0 {
		pending := Schedule(delay, nil)
		select {
		case <-ctx.Done():
			pending.Cancel()
			return from, ctx.Err()
		case <-pending.Done():
		}
	}

	n.logger.Debug("Page changed", "from", from, "to", t.To, "trigger", trigger)
	if n.hooks.OnNavigate != nil {
		n.hooks.OnNavigate(ctx, &domain.NavigationEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventPageChanged},
			From:      string(from),
			To:        string(t.To),
			Trigger:   string(trigger),
			Delay:     delay,
		})
	}
	return t.To, nil
}

// ParsePage validates a page name.
func ParsePage(name string) (Page, error) {
	for _, p := range Pages {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown page %q", name)
}
