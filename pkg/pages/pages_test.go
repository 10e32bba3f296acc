package pages_test

import (
	"context"
	"testing"

	"github.com/aretw0/tripwizard/pkg/adapters/memory"
	"github.com/aretw0/tripwizard/pkg/aggregator"
	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/aretw0/tripwizard/pkg/navigation"
	"github.com/aretw0/tripwizard/pkg/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitProfile(t *testing.T) {
	ctx := context.Background()
	session := memory.NewStore()

	err := pages.SubmitProfile(ctx, session, pages.Profile{
		FirstName: " Asha ",
		LastName:  "Rao",
		DOB:       "2000-06-15",
		Email:     "asha@example.com",
		Mobile:    "9876543210",
		Gender:    "female",
	})
	require.NoError(t, err)

	first, err := session.Get(ctx, domain.KeyFirstName)
	require.NoError(t, err)
	assert.Equal(t, "Asha", first)

	dob, err := session.Get(ctx, domain.KeyDOB)
	require.NoError(t, err)
	assert.Equal(t, "2000-06-15", dob)
}

func TestSubmitProfile_Validation(t *testing.T) {
	ctx := context.Background()
	cases := map[string]pages.Profile{
		"missing first name": {LastName: "Rao"},
		"missing last name":  {FirstName: "Asha"},
		"bad email":          {FirstName: "Asha", LastName: "Rao", Email: "not-an-email"},
		"bad dob":            {FirstName: "Asha", LastName: "Rao", DOB: "15/06/2000"},
	}

	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			session := memory.NewStore()
			err := pages.SubmitProfile(ctx, session, p)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			keys, _ := session.Keys(ctx)
			assert.Empty(t, keys, "nothing is stored on validation failure")
		})
	}
}

func TestSubmitTrip(t *testing.T) {
	ctx := context.Background()
	session := memory.NewStore()

	require.NoError(t, pages.SubmitTrip(ctx, session, 2, 5))
	val, err := session.Get(ctx, domain.KeyTravelers)
	require.NoError(t, err)
	assert.Equal(t, "2", val)

	assert.ErrorIs(t, pages.SubmitTrip(ctx, session, 0, 5), domain.ErrInvalidInput)
	assert.ErrorIs(t, pages.SubmitTrip(ctx, session, 2, -1), domain.ErrInvalidInput)
}

func TestGuideSelection_View(t *testing.T) {
	ctx := context.Background()
	durable := memory.NewStore()

	view, err := pages.CurrentView(ctx, durable)
	require.NoError(t, err)
	assert.Equal(t, navigation.View{}, view)

	require.NoError(t, pages.ChooseHometown(ctx, durable))
	view, err = pages.CurrentView(ctx, durable)
	require.NoError(t, err)
	assert.Equal(t, navigation.View{HometownVisible: true}, view)

	require.NoError(t, pages.SelectGuide(ctx, durable, domain.GuideRecord{Name: "Rahul Singh"}))
	view, err = pages.CurrentView(ctx, durable)
	require.NoError(t, err)
	assert.Equal(t, navigation.View{GuideSelected: true}, view)
}

func TestSelectDestination_RejectsNegativePrice(t *testing.T) {
	err := pages.SelectDestination(context.Background(), memory.NewStore(), domain.DestinationRecord{Name: "X", Price: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// The records written by the pages are exactly what the aggregator reads back.
func TestPages_FeedAggregator(t *testing.T) {
	ctx := context.Background()
	session, durable := memory.NewStore(), memory.NewStore()

	require.NoError(t, pages.SubmitProfile(ctx, session, pages.Profile{FirstName: "Asha", LastName: "Rao"}))
	require.NoError(t, pages.SubmitTrip(ctx, session, 2, 5))
	require.NoError(t, pages.SelectDestination(ctx, durable, domain.DestinationRecord{Name: "Goa", Price: 2000, Image: "goa.jpg"}))
	require.NoError(t, pages.SelectGuide(ctx, durable, domain.GuideRecord{
		Name: "Lakshmi", Age: 29, Rating: 4.9, Languages: []string{"Tamil", "English"},
	}))

	agg := aggregator.New(session, durable)
	agg.LoadAll(ctx)
	snap := agg.GetAll()

	assert.Equal(t, "Asha Rao", snap.User.FullName)
	assert.Equal(t, "Goa", snap.Destination.Name)
	assert.Equal(t, []string{"Tamil", "English"}, snap.Guide.Languages)
	assert.Equal(t, "N/A", snap.Guide.Gender)
	assert.Equal(t, "₹20,000", snap.Costs.Total)
}
