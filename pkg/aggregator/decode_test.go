package aggregator_test

import (
	"testing"

	"github.com/aretw0/tripwizard/pkg/aggregator"
	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDestination(t *testing.T) {
	dest, err := aggregator.DecodeDestination(`{"name":"Jaipur","price":"1800"}`)
	require.NoError(t, err)
	assert.Equal(t, domain.Destination{Name: "Jaipur", CostPerDay: 1800, Image: ""}, dest)

	dest, err = aggregator.DecodeDestination(`{"price":2500}`)
	require.NoError(t, err)
	assert.Equal(t, "N/A", dest.Name)
	assert.Equal(t, 2500.0, dest.CostPerDay)

	dest, err = aggregator.DecodeDestination("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDestination(), dest)

	dest, err = aggregator.DecodeDestination("[1,2]")
	assert.Error(t, err)
	assert.Equal(t, domain.DefaultDestination(), dest)
}

func TestDecodeGuide(t *testing.T) {
	guide, err := aggregator.DecodeGuide(`{"name":"Rahul","age":"41","rating":0,"languages":["Hindi","English"]}`)
	require.NoError(t, err)
	assert.Equal(t, domain.Guide{
		Name:      "Rahul",
		Age:       "41",
		Gender:    "N/A",
		Specialty: "N/A",
		Rating:    "N/A",
		Languages: []string{"Hindi", "English"},
	}, guide)

	guide, err = aggregator.DecodeGuide(`{"name":"Solo","languages":null}`)
	require.NoError(t, err)
	assert.NotNil(t, guide.Languages)
	assert.Empty(t, guide.Languages)
}

func TestDecodeDestination_BadFieldKeepsOthers(t *testing.T) {
	dest, err := aggregator.DecodeDestination(`{"name":"Hampi","price":"abc","image":"images/hampi.jpg"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
	assert.Equal(t, domain.Destination{Name: "Hampi", CostPerDay: 0, Image: "images/hampi.jpg"}, dest)
}

func TestDecodeGuide_BadFieldKeepsOthers(t *testing.T) {
	guide, err := aggregator.DecodeGuide(`{"name":{"first":"Meera"},"gender":"Female","specialty":"Temples","languages":["Kannada"]}`)
	require.Error(t, err)
	assert.Equal(t, "N/A", guide.Name)
	assert.Equal(t, "Female", guide.Gender)
	assert.Equal(t, "Temples", guide.Specialty)
	assert.Equal(t, []string{"Kannada"}, guide.Languages)
}
