package domain

// Snapshot is the consolidated view of a session as of the last load.
type Snapshot struct {
	User        UserProfile    `json:"user" yaml:"user"`
	Trip        TripParameters `json:"trip" yaml:"trip"`
	Destination Destination    `json:"destination" yaml:"destination"`
	Guide       Guide          `json:"guide" yaml:"guide"`
	Costs       CostBreakdown  `json:"costs" yaml:"costs"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.User.Age != nil {
		age := *s.User.Age
		out.User.Age = &age
	}
	if s.Guide.Languages != nil {
		out.Guide.Languages = make([]string, len(s.Guide.Languages))
		copy(out.Guide.Languages, s.Guide.Languages)
	}
	if s.Costs.Amounts != nil {
		amounts := *s.Costs.Amounts
		out.Costs.Amounts = &amounts
	}
	return out
}
