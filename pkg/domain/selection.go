package domain

// DestinationRecord is the serialized form of a destination selection,
// as written under KeySelectedDestination.
type DestinationRecord struct {
	Name  string  `json:"name" mapstructure:"name"`
	Price float64 `json:"price" mapstructure:"price"`
	Image string  `json:"image" mapstructure:"image"`
}

// GuideRecord is the serialized form of a guide selection,
// as written under KeySelectedGuide.
type GuideRecord struct {
	Name      string   `json:"name" mapstructure:"name"`
	Age       int      `json:"age" mapstructure:"age"`
	Gender    string   `json:"gender" mapstructure:"gender"`
	Specialty string   `json:"specialty" mapstructure:"specialty"`
	Rating    float64  `json:"rating" mapstructure:"rating"`
	Languages []string `json:"languages" mapstructure:"languages"`
}

// Destination is the chosen destination package.
type Destination struct {
	Name       string  `json:"name" yaml:"name"`
	CostPerDay float64 `json:"costPerDay" yaml:"costPerDay"`
	Image      string  `json:"image" yaml:"image"`
}

// Guide is the chosen local guide. Age and Rating are display values since
// stored records may carry them as numbers or text.
type Guide struct {
	Name      string   `json:"name" yaml:"name"`
	Age       string   `json:"age" yaml:"age"`
	Gender    string   `json:"gender" yaml:"gender"`
	Specialty string   `json:"specialty" yaml:"specialty"`
	Rating    string   `json:"rating" yaml:"rating"`
	Languages []string `json:"languages" yaml:"languages"`
}

// DefaultDestination is the destination used when nothing was selected.
func DefaultDestination() Destination {
	return Destination{Name: NotAvailable}
}

// DefaultGuide is the guide used when nothing was selected.
func DefaultGuide() Guide {
	return Guide{
		Name:      NotAvailable,
		Age:       NotAvailable,
		Gender:    NotAvailable,
		Specialty: NotAvailable,
		Rating:    NotAvailable,
		Languages: []string{},
	}
}
