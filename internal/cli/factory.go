package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/tripwizard"
	"github.com/aretw0/tripwizard/internal/config"
	"github.com/aretw0/tripwizard/pkg/adapters/file"
	"github.com/aretw0/tripwizard/pkg/adapters/memory"
	"github.com/aretw0/tripwizard/pkg/adapters/redis"
	"github.com/aretw0/tripwizard/pkg/aggregator"
	"github.com/aretw0/tripwizard/pkg/observability"
	"github.com/aretw0/tripwizard/pkg/persistence/middleware"
	"github.com/aretw0/tripwizard/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/language"
)

// Runtime is a wizard wired from configuration, plus what the commands need around it.
type Runtime struct {
	Wizard    *tripwizard.Wizard
	SessionID string
	Registry  *prometheus.Registry
	Metrics   *observability.Metrics
	Logger    *slog.Logger

	closers []func() error
}

// BuildOptions tweak the wiring for a particular command.
type BuildOptions struct {
	// NoDelays makes page transitions immediate.
	NoDelays bool
}

// Build wires stores, catalog, metrics and the wizard from cfg.
func Build(ctx context.Context, cfg config.Config, logger *slog.Logger, opts BuildOptions) (*Runtime, error) {
	rt := &Runtime{
		Registry: prometheus.NewRegistry(),
		Logger:   logger,
	}
	rt.Metrics = observability.NewMetrics(rt.Registry)

	// Settings that can fail are resolved before any connection is opened.
	var enc middleware.Middleware
	key, err := cfg.EncryptionKeyBytes()
	if err != nil {
		return nil, err
	}
	if key != nil {
		enc, err = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
		if err != nil {
			return nil, err
		}
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", cfg.Locale, err)
	}

	session, durable, err := rt.openStores(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if enc != nil {
		durable = middleware.Chain(durable, enc)
	}

	wizOpts := []tripwizard.Option{
		tripwizard.WithSessionStore(session),
		tripwizard.WithDurableStore(durable),
		tripwizard.WithLogger(logger),
		tripwizard.WithFormatter(aggregator.NewFormatter(
			aggregator.WithLocale(tag),
			aggregator.WithSymbol(cfg.Currency),
		)),
		tripwizard.WithLifecycleHooks(observability.Combine(
			observability.LogHooks(logger),
			rt.Metrics.Hooks(),
		)),
	}
	if cfg.CatalogDir != "" {
		wizOpts = append(wizOpts, tripwizard.WithCatalogDir(cfg.CatalogDir))
	}
	if opts.NoDelays {
		wizOpts = append(wizOpts, tripwizard.WithoutDelays())
	}

	wiz, err := tripwizard.New(wizOpts...)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}
	rt.Wizard = wiz
	return rt, nil
}

func (rt *Runtime) openStores(ctx context.Context, cfg config.Config) (ports.Store, ports.Store, error) {
	if cfg.Store.Backend == config.BackendMemory {
		rt.SessionID = cfg.SessionID
		return memory.NewStore(), memory.NewStore(), nil
	}

	id, err := ResolveSessionID(cfg.Store.DataDir, cfg.SessionID)
	if err != nil {
		return nil, nil, err
	}
	rt.SessionID = id
	durable := file.New(filepath.Join(cfg.Store.DataDir, "local.json"))

	switch cfg.Store.Backend {
	case config.BackendRedis:
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, id, redis.WithTTL(cfg.Redis.SessionTTL))
		rt.closers = append(rt.closers, store.Close)
		if err := store.Ping(ctx); err != nil {
			_ = rt.Close()
			return nil, nil, fmt.Errorf("redis unreachable at %s: %w", cfg.Redis.Addr, err)
		}
		return store, durable, nil
	default:
		return file.New(filepath.Join(cfg.Store.DataDir, "sessions", id+".json")), durable, nil
	}
}

// Close releases store connections.
func (rt *Runtime) Close() error {
	var errs []error
	for _, c := range rt.closers {
		errs = append(errs, c())
	}
	rt.closers = nil
	return errors.Join(errs...)
}
