package aggregator

import (
	"strings"
	"time"

	"github.com/aretw0/tripwizard/pkg/domain"
)

// Age returns the age in whole years on the given day.
// The year difference is decremented when the birthday has not been reached yet.
func Age(birth, today time.Time) int {
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() || (today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age
}

// AgeFromString parses a date of birth (YYYY-MM-DD, optionally with a time part)
// and returns the age on today. Returns nil for an empty or unparseable value.
func AgeFromString(dob string, today time.Time) *int {
	dob = strings.TrimSpace(dob)
	if dob == "" {
		return nil
	}

	birth, err := time.Parse(domain.DOBLayout, dob)
	if err != nil {
		birth, err = time.Parse(time.RFC3339, dob)
		if err != nil {
			return nil
		}
	}

	age := Age(birth, today)
	return &age
}
