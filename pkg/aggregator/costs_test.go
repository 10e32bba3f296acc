package aggregator_test

import (
	"testing"

	"github.com/aretw0/tripwizard/pkg/aggregator"
	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdown_Example(t *testing.T) {
	c := aggregator.Breakdown(2000, 2, 5, nil)

	require.True(t, c.OK())
	assert.Equal(t, "₹6,600", c.Accommodation)
	assert.Equal(t, "₹4,400", c.FoodAndDining)
	assert.Equal(t, "₹3,000", c.Transportation)
	assert.Equal(t, "₹3,000", c.Activities)
	assert.Equal(t, "₹1,600", c.GuideServices)
	assert.Equal(t, "₹1,400", c.Miscellaneous)
	assert.Equal(t, "₹20,000", c.Total)
}

func TestBreakdown_BucketsSumToTotal(t *testing.T) {
	inputs := []struct {
		perDay    float64
		travelers int
		days      int
	}{
		{2000, 2, 5},
		{1, 1, 1},
		{1799.99, 3, 7},
		{3500, 6, 14},
		{123.45, 1, 3},
		{999, 9, 9},
	}

	for _, in := range inputs {
		c := aggregator.Breakdown(in.perDay, in.travelers, in.days, nil)
		require.True(t, c.OK())

		total := in.perDay * float64(in.travelers) * float64(in.days)
		assert.Equal(t, total, c.Amounts.Total)
		assert.Equal(t, c.Amounts.Total, c.Amounts.Sum(), "buckets must sum to total for %+v", in)
	}
}

func TestBreakdown_BucketRounding(t *testing.T) {
	f := aggregator.NewFormatter()
	for _, total := range []float64{20000, 12345, 999, 7, 1799.99 * 21} {
		c := aggregator.Breakdown(total, 1, 1, f)
		require.True(t, c.OK())

		assert.Equal(t, f.Format(total*0.33), c.Accommodation)
		assert.Equal(t, f.Format(total*0.22), c.FoodAndDining)
		assert.Equal(t, f.Format(total*0.15), c.Transportation)
		assert.Equal(t, c.Transportation, c.Activities)
		assert.Equal(t, f.Format(total*0.08), c.GuideServices)
	}
}

func TestBreakdown_MissingInputs(t *testing.T) {
	cases := map[string]struct {
		perDay    float64
		travelers int
		days      int
	}{
		"no cost per day": {0, 2, 5},
		"no travelers":    {2000, 0, 5},
		"no duration":     {2000, 2, 0},
		"nothing":         {0, 0, 0},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c := aggregator.Breakdown(tc.perDay, tc.travelers, tc.days, nil)
			assert.Equal(t, domain.CostBreakdown{Error: "Missing data for cost calculation."}, c)
			assert.False(t, c.OK())
		})
	}
}

func TestSplit_MiscAbsorbsRemainder(t *testing.T) {
	a := aggregator.Split(20000)
	assert.InDelta(t, 1400, a.Miscellaneous, 1e-6)
	assert.InDelta(t, 6600, a.Accommodation, 1e-6)
}
