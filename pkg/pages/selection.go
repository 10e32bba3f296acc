package pages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/aretw0/tripwizard/pkg/navigation"
	"github.com/aretw0/tripwizard/pkg/ports"
)

// SelectDestination stores the chosen destination in the durable store.
func SelectDestination(ctx context.Context, durable ports.Store, rec domain.DestinationRecord) error {
	if rec.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
	}
	return putJSON(ctx, durable, domain.KeySelectedDestination, rec)
}

// SelectGuide stores the chosen guide and clears any earlier opt-out.
func SelectGuide(ctx context.Context, durable ports.Store, rec domain.GuideRecord) error {
	if rec.Languages == nil {
		rec.Languages = []string{}
	}
	if err := putJSON(ctx, durable, domain.KeySelectedGuide, rec); err != nil {
		return err
	}
	return durable.Delete(ctx, domain.KeyNoGuide)
}

// ChooseHometown records that the traveller explores without a guide.
func ChooseHometown(ctx context.Context, durable ports.Store) error {
	if err := durable.Delete(ctx, domain.KeySelectedGuide); err != nil {
		return fmt.Errorf("failed to clear %s: %w", domain.KeySelectedGuide, err)
	}
	return durable.Set(ctx, domain.KeyNoGuide, "true")
}

// CurrentView derives the guide page state from the durable store.
func CurrentView(ctx context.Context, durable ports.Store) (navigation.View, error) {
	var view navigation.View

	if _, err := durable.Get(ctx, domain.KeySelectedGuide); err == nil {
		view.GuideSelected = true
	} else if !errors.Is(err, domain.ErrKeyNotFound) {
		return view, err
	}

	val, err := durable.Get(ctx, domain.KeyNoGuide)
	if err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		return view, err
	}
	view.HometownVisible = val == "true"
	return view, nil
}

func putJSON(ctx context.Context, store ports.Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to store %s: %w", key, err)
	}
	return nil
}
