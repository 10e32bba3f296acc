package domain

// UserProfile holds the traveller details captured on the profile page.
// Absent fields stay empty; Age is nil when no usable date of birth is stored.
type UserProfile struct {
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	FullName  string `json:"fullName" yaml:"fullName"`
	Email     string `json:"email" yaml:"email"`
	Mobile    string `json:"mobile" yaml:"mobile"`
	Gender    string `json:"gender" yaml:"gender"`
	DOB       string `json:"dob" yaml:"dob"`
	Age       *int   `json:"age" yaml:"age"`
}

// TripParameters holds the values captured on the planner page.
// Zero means the value was absent or not a number.
type TripParameters struct {
	TravelerCount  int `json:"travelerCount" yaml:"travelerCount"`
	DurationInDays int `json:"durationInDays" yaml:"durationInDays"`
}
