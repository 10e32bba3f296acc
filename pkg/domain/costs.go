package domain

// Cost split percentages. They deliberately sum to 93%; the remainder lands in
// the miscellaneous bucket.
const (
	ShareAccommodation  = 0.33
	ShareFood           = 0.22
	ShareTransportation = 0.15
	ShareActivities     = 0.15
	ShareGuide          = 0.08
)

// CostAmounts are the unrounded bucket amounts of a trip.
type CostAmounts struct {
	Accommodation  float64 `json:"accommodation" yaml:"accommodation"`
	FoodAndDining  float64 `json:"foodAndDining" yaml:"foodAndDining"`
	Transportation float64 `json:"transportation" yaml:"transportation"`
	Activities     float64 `json:"activities" yaml:"activities"`
	GuideServices  float64 `json:"guideServices" yaml:"guideServices"`
	Miscellaneous  float64 `json:"miscellaneous" yaml:"miscellaneous"`
	Total          float64 `json:"total" yaml:"total"`
}

// Sum adds the six buckets in declaration order.
func (a CostAmounts) Sum() float64 {
	return a.Accommodation + a.FoodAndDining + a.Transportation + a.Activities + a.GuideServices + a.Miscellaneous
}

// CostBreakdown is the itemized cost summary shown on the confirmation page.
// When Error is set every bucket is empty and Amounts is nil.
type CostBreakdown struct {
	Accommodation  string `json:"accommodation,omitempty" yaml:"accommodation,omitempty"`
	FoodAndDining  string `json:"foodAndDining,omitempty" yaml:"foodAndDining,omitempty"`
	Transportation string `json:"transportation,omitempty" yaml:"transportation,omitempty"`
	Activities     string `json:"activities,omitempty" yaml:"activities,omitempty"`
	GuideServices  string `json:"guideServices,omitempty" yaml:"guideServices,omitempty"`
	Miscellaneous  string `json:"miscellaneous,omitempty" yaml:"miscellaneous,omitempty"`
	Total          string `json:"total,omitempty" yaml:"total,omitempty"`

	Amounts *CostAmounts `json:"amounts,omitempty" yaml:"amounts,omitempty"`

	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// MissingCostData returns the breakdown reported when a cost input is absent.
func MissingCostData() CostBreakdown {
	return CostBreakdown{Error: MissingCostDataMessage}
}

// OK reports whether the breakdown holds amounts rather than an error.
func (c CostBreakdown) OK() bool {
	return c.Error == "" && c.Amounts != nil
}
