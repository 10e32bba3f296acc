package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/tripwizard/pkg/domain"
)

// LogHooks returns lifecycle hooks that write one log line per event.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLoad: func(ctx context.Context, e *domain.LoadEvent) {
			logger.InfoContext(ctx, "snapshot_loaded",
				"destination", e.Snapshot.Destination.Name,
				"guide", e.Snapshot.Guide.Name,
				"total", e.Snapshot.Costs.Total,
			)
		},
		OnCostError: func(ctx context.Context, e *domain.LoadEvent) {
			logger.WarnContext(ctx, "cost_error", "reason", e.Snapshot.Costs.Error)
		},
		OnNavigate: func(ctx context.Context, e *domain.NavigationEvent) {
			logger.InfoContext(ctx, "page_changed",
				"from", e.From,
				"to", e.To,
				"trigger", e.Trigger,
				"delay", e.Delay,
			)
		},
	}
}

// Combine merges hook sets. Each callback runs in argument order.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, s := range sets {
		out.OnLoad = chainLoad(out.OnLoad, s.OnLoad)
		out.OnCostError = chainLoad(out.OnCostError, s.OnCostError)
		out.OnNavigate = chainNavigate(out.OnNavigate, s.OnNavigate)
	}
	return out
}

func chainLoad(a, b func(context.Context, *domain.LoadEvent)) func(context.Context, *domain.LoadEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *domain.LoadEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainNavigate(a, b func(context.Context, *domain.NavigationEvent)) func(context.Context, *domain.NavigationEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *domain.NavigationEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
