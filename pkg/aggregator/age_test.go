package aggregator_test

import (
	"testing"
	"time"

	"github.com/aretw0/tripwizard/pkg/aggregator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAge(t *testing.T) {
	birth := day(2000, time.June, 15)

	assert.Equal(t, 23, aggregator.Age(birth, day(2024, time.June, 14)), "birthday not yet reached")
	assert.Equal(t, 24, aggregator.Age(birth, day(2024, time.June, 15)), "birthday today")
	assert.Equal(t, 24, aggregator.Age(birth, day(2024, time.June, 16)))
	assert.Equal(t, 23, aggregator.Age(birth, day(2024, time.May, 30)), "earlier month")
	assert.Equal(t, 24, aggregator.Age(birth, day(2024, time.July, 1)), "later month")
}

func TestAgeFromString(t *testing.T) {
	today := day(2024, time.June, 14)

	age := aggregator.AgeFromString("2000-06-15", today)
	require.NotNil(t, age)
	assert.Equal(t, 23, *age)

	age = aggregator.AgeFromString("2000-06-15T00:00:00Z", day(2024, time.June, 16))
	require.NotNil(t, age)
	assert.Equal(t, 24, *age)

	assert.Nil(t, aggregator.AgeFromString("", today))
	assert.Nil(t, aggregator.AgeFromString("   ", today))
	assert.Nil(t, aggregator.AgeFromString("15/06/2000", today))
}

func TestParseLeadingInt(t *testing.T) {
	cases := map[string]int{
		"2":         2,
		" 5":        5,
		"3 people":  3,
		"+7":        7,
		"-2":        -2,
		"10.9":      10,
		"":          0,
		"abc":       0,
		"-":         0,
		"007 bond":  7,
	}
	for in, want := range cases {
		assert.Equal(t, want, aggregator.ParseLeadingInt(in), "input %q", in)
	}
}
