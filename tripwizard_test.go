package tripwizard_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/tripwizard"
	"github.com/aretw0/tripwizard/internal/testutils"
	"github.com/aretw0/tripwizard/pkg/adapters/memory"
	"github.com/aretw0/tripwizard/pkg/aggregator"
	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/aretw0/tripwizard/pkg/navigation"
	"github.com/aretw0/tripwizard/pkg/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	wiz, err := tripwizard.New()
	require.NoError(t, err)

	assert.NotNil(t, wiz.Session())
	assert.NotNil(t, wiz.Durable())
	assert.NotNil(t, wiz.Navigator())

	dests, err := wiz.Catalog().Destinations(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, dests, "built-in catalog is used by default")
}

func TestAggregator_SingleInstance(t *testing.T) {
	wiz, err := tripwizard.New()
	require.NoError(t, err)

	first := wiz.Aggregator()
	second := wiz.Aggregator()
	assert.Same(t, first, second)
}

func TestWithAggregator(t *testing.T) {
	session := memory.NewStore()
	durable := memory.NewStore()
	agg := aggregator.New(session, durable)

	t.Run("Binds Injected Instance", func(t *testing.T) {
		wiz, err := tripwizard.New(
			tripwizard.WithSessionStore(session),
			tripwizard.WithDurableStore(durable),
			tripwizard.WithAggregator(agg),
		)
		require.NoError(t, err)
		assert.Same(t, agg, wiz.Aggregator())
	})

	t.Run("Second Binding Fails", func(t *testing.T) {
		other := aggregator.New(session, durable)
		_, err := tripwizard.New(
			tripwizard.WithAggregator(agg),
			tripwizard.WithAggregator(other),
		)
		assert.ErrorIs(t, err, domain.ErrAggregatorExists)
	})
}

func TestLoad_FullFlow(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	wiz, err := tripwizard.New(tripwizard.WithoutDelays(), tripwizard.WithClock(func() time.Time { return today }))
	require.NoError(t, err)

	page := navigation.PageHome
	page, err = wiz.Navigate(ctx, page, navigation.TriggerBookNow)
	require.NoError(t, err)
	assert.Equal(t, navigation.PagePlanner, page)

	require.NoError(t, pages.SubmitProfile(ctx, wiz.Session(), pages.Profile{
		FirstName: "Asha",
		LastName:  "Rao",
		DOB:       "1990-06-16",
		Email:     "asha@example.com",
	}))
	require.NoError(t, pages.SubmitTrip(ctx, wiz.Session(), 2, 5))

	page, err = wiz.Navigate(ctx, page, navigation.TriggerCalculatePlan)
	require.NoError(t, err)

	goa, err := wiz.Catalog().Destination(ctx, "goa")
	require.NoError(t, err)
	require.NoError(t, pages.SelectDestination(ctx, wiz.Durable(), goa.Record))

	page, err = wiz.Navigate(ctx, page, navigation.TriggerSelectDestination)
	require.NoError(t, err)
	assert.Equal(t, navigation.PageGuides, page)

	// Guard: nothing chosen yet
	_, err = wiz.Navigate(ctx, page, navigation.TriggerNextConfirmation)
	assert.ErrorIs(t, err, navigation.ErrTransitionBlocked)

	require.NoError(t, pages.ChooseHometown(ctx, wiz.Durable()))
	page, err = wiz.Navigate(ctx, page, navigation.TriggerNextConfirmation)
	require.NoError(t, err)
	assert.Equal(t, navigation.PageConfirmation, page)

	snap := wiz.Load(ctx)
	assert.Equal(t, "Asha Rao", snap.User.FullName)
	require.NotNil(t, snap.User.Age)
	assert.Equal(t, 33, *snap.User.Age)
	assert.Equal(t, "Goa Beach Escape", snap.Destination.Name)
	assert.Equal(t, domain.NotAvailable, snap.Guide.Name)
	assert.Equal(t, "₹20,000", snap.Costs.Total)
	assert.Equal(t, "₹6,600", snap.Costs.Accommodation)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	wiz, err := tripwizard.New()
	require.NoError(t, err)

	require.NoError(t, pages.SubmitTrip(ctx, wiz.Session(), 2, 5))
	require.NoError(t, pages.ChooseHometown(ctx, wiz.Durable()))
	require.NoError(t, wiz.Reset(ctx))

	keys, err := wiz.Session().Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
	keys, err = wiz.Durable().Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestWithCatalogDir(t *testing.T) {
	t.Run("Missing Directory", func(t *testing.T) {
		_, err := tripwizard.New(tripwizard.WithCatalogDir(filepath.Join(t.TempDir(), "absent")))
		assert.Error(t, err)
	})

	t.Run("Markdown Catalog", func(t *testing.T) {
		dir := testutils.WriteTree(t, map[string]string{
			"destinations/hampi.md": "---\nname: Hampi\nprice: 1500\n---\nRuins by the river.\n",
			"guides/ravi.md":        "---\nname: Ravi\n---\n",
		})

		wiz, err := tripwizard.New(tripwizard.WithCatalogDir(dir))
		require.NoError(t, err)

		d, err := wiz.Catalog().Destination(context.Background(), "hampi")
		require.NoError(t, err)
		assert.Equal(t, "Hampi", d.Record.Name)
	})
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, tripwizard.Version())
	assert.NotContains(t, tripwizard.Version(), "\n")
}
