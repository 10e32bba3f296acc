package loam

// DestinationMetadata is the frontmatter of a destination document.
type DestinationMetadata struct {
	ID    string  `json:"id" mapstructure:"id"`
	Name  string  `json:"name" mapstructure:"name"`
	Price float64 `json:"price" mapstructure:"price"`
	Image string  `json:"image" mapstructure:"image"`
}

// GuideMetadata is the frontmatter of a guide document.
type GuideMetadata struct {
	ID        string   `json:"id" mapstructure:"id"`
	Name      string   `json:"name" mapstructure:"name"`
	Age       int      `json:"age" mapstructure:"age"`
	Gender    string   `json:"gender" mapstructure:"gender"`
	Specialty string   `json:"specialty" mapstructure:"specialty"`
	Rating    float64  `json:"rating" mapstructure:"rating"`
	Languages []string `json:"languages" mapstructure:"languages"`
}
