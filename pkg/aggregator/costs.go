package aggregator

import (
	"math"

	"github.com/aretw0/tripwizard/pkg/domain"
)

// Split allocates total across the six buckets. The five named shares are
// fixed percentages; miscellaneous takes whatever is left, so the buckets
// always add up to total before any display rounding.
func Split(total float64) domain.CostAmounts {
	amounts := domain.CostAmounts{
		Accommodation:  total * domain.ShareAccommodation,
		FoodAndDining:  total * domain.ShareFood,
		Transportation: total * domain.ShareTransportation,
		Activities:     total * domain.ShareActivities,
		GuideServices:  total * domain.ShareGuide,
		Total:          total,
	}
	allocated := amounts.Accommodation + amounts.FoodAndDining + amounts.Transportation + amounts.Activities + amounts.GuideServices
	amounts.Miscellaneous = total - allocated
	return amounts
}

// Breakdown computes the itemized cost of a trip.
// If any input is zero (absent), it returns the missing-data marker and no buckets.
func Breakdown(costPerDay float64, travelers, days int, f *Formatter) domain.CostBreakdown {
	if costPerDay == 0 || math.IsNaN(costPerDay) || travelers == 0 || days == 0 {
		return domain.MissingCostData()
	}
	if f == nil {
		f = NewFormatter()
	}

	amounts := Split(costPerDay * float64(travelers) * float64(days))
	return domain.CostBreakdown{
		Accommodation:  f.Format(amounts.Accommodation),
		FoodAndDining:  f.Format(amounts.FoodAndDining),
		Transportation: f.Format(amounts.Transportation),
		Activities:     f.Format(amounts.Activities),
		GuideServices:  f.Format(amounts.GuideServices),
		Miscellaneous:  f.Format(amounts.Miscellaneous),
		Total:          f.Format(amounts.Total),
		Amounts:        &amounts,
	}
}
