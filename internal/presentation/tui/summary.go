package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/tripwizard/pkg/domain"
)

// SummaryMarkdown renders the confirmation page as markdown.
func SummaryMarkdown(s domain.Snapshot) string {
	var b strings.Builder

	b.WriteString("# Trip Summary\n\n")

	b.WriteString("## Traveller\n\n")
	row(&b, "Name", s.User.FullName)
	row(&b, "Email", s.User.Email)
	row(&b, "Mobile", s.User.Mobile)
	row(&b, "Gender", s.User.Gender)
	age := ""
	if s.User.Age != nil {
		age = strconv.Itoa(*s.User.Age)
	}
	row(&b, "Age", age)
	b.WriteString("\n")

	b.WriteString("## Trip\n\n")
	row(&b, "Travellers", strconv.Itoa(s.Trip.TravelerCount))
	row(&b, "Duration", fmt.Sprintf("%d days", s.Trip.DurationInDays))
	row(&b, "Destination", s.Destination.Name)
	b.WriteString("\n")

	b.WriteString("## Guide\n\n")
	row(&b, "Name", s.Guide.Name)
	row(&b, "Age", s.Guide.Age)
	row(&b, "Gender", s.Guide.Gender)
	row(&b, "Specialty", s.Guide.Specialty)
	row(&b, "Rating", s.Guide.Rating)
	row(&b, "Languages", strings.Join(s.Guide.Languages, ", "))
	b.WriteString("\n")

	b.WriteString("## Costs\n\n")
	if !s.Costs.OK() {
		fmt.Fprintf(&b, "> %s\n", s.Costs.Error)
		return b.String()
	}
	b.WriteString("| Item | Amount |\n|---|---:|\n")
	for _, c := range []struct{ label, value string }{
		{"Accommodation", s.Costs.Accommodation},
		{"Food & Dining", s.Costs.FoodAndDining},
		{"Transportation", s.Costs.Transportation},
		{"Activities", s.Costs.Activities},
		{"Guide Services", s.Costs.GuideServices},
		{"Miscellaneous", s.Costs.Miscellaneous},
	} {
		fmt.Fprintf(&b, "| %s | %s |\n", c.label, c.value)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", s.Costs.Total)
	return b.String()
}

// SummaryText renders the confirmation page as plain aligned text.
func SummaryText(s domain.Snapshot) string {
	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "%-16s %s\n", label+":", value)
	}

	age := ""
	if s.User.Age != nil {
		age = strconv.Itoa(*s.User.Age)
	}
	line("Name", s.User.FullName)
	line("Email", s.User.Email)
	line("Mobile", s.User.Mobile)
	line("Gender", s.User.Gender)
	line("Age", age)
	line("Travellers", strconv.Itoa(s.Trip.TravelerCount))
	line("Duration", fmt.Sprintf("%d days", s.Trip.DurationInDays))
	line("Destination", s.Destination.Name)
	line("Guide", s.Guide.Name)
	if len(s.Guide.Languages) > 0 {
		line("Languages", strings.Join(s.Guide.Languages, ", "))
	}
	b.WriteString("\n")

	if !s.Costs.OK() {
		b.WriteString(s.Costs.Error + "\n")
		return b.String()
	}
	line("Accommodation", s.Costs.Accommodation)
	line("Food & Dining", s.Costs.FoodAndDining)
	line("Transportation", s.Costs.Transportation)
	line("Activities", s.Costs.Activities)
	line("Guide Services", s.Costs.GuideServices)
	line("Miscellaneous", s.Costs.Miscellaneous)
	line("Total", s.Costs.Total)
	return b.String()
}

func row(b *strings.Builder, label, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(b, "- **%s:** %s\n", label, value)
}
