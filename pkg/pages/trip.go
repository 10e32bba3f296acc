package pages

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/aretw0/tripwizard/pkg/ports"
)

// SubmitTrip writes the planner page values to the session store.
// Start and end dates are shown on the planner but only the duration is kept.
func SubmitTrip(ctx context.Context, session ports.Store, travelers, days int) error {
	if travelers <= 0 {
		return fmt.Errorf("%w: traveler count must be positive", domain.ErrInvalidInput)
	}
	if days <= 0 {
		return fmt.Errorf("%w: trip duration must be positive", domain.ErrInvalidInput)
	}

	if err := session.Set(ctx, domain.KeyTravelers, strconv.Itoa(travelers)); err != nil {
		return fmt.Errorf("failed to store %s: %w", domain.KeyTravelers, err)
	}
	if err := session.Set(ctx, domain.KeyDuration, strconv.Itoa(days)); err != nil {
		return fmt.Errorf("failed to store %s: %w", domain.KeyDuration, err)
	}
	return nil
}
