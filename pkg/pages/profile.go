package pages

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/aretw0/tripwizard/pkg/ports"
)

// Profile is the profile page form.
type Profile struct {
	FirstName string
	LastName  string
	DOB       string
	Email     string
	Mobile    string
	Gender    string
}

// Validate checks the form. Names are required; email and date of birth must
// be well formed when present.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("%w: last name is required", domain.ErrInvalidInput)
	}
	if p.Email != "" {
		if _, err := mail.ParseAddress(p.Email); err != nil {
			return fmt.Errorf("%w: email %q: %v", domain.ErrInvalidInput, p.Email, err)
		}
	}
	if p.DOB != "" {
		if _, err := time.Parse(domain.DOBLayout, p.DOB); err != nil {
			return fmt.Errorf("%w: date of birth must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
	}
	return nil
}

// SubmitProfile validates the form and writes it to the session store.
func SubmitProfile(ctx context.Context, session ports.Store, p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	fields := []struct{ key, value string }{
		{domain.KeyFirstName, strings.TrimSpace(p.FirstName)},
		{domain.KeyLastName, strings.TrimSpace(p.LastName)},
		{domain.KeyDOB, p.DOB},
		{domain.KeyEmail, p.Email},
		{domain.KeyMobile, p.Mobile},
		{domain.KeyGender, p.Gender},
	}
	for _, f := range fields {
		if err := session.Set(ctx, f.key, f.value); err != nil {
			return fmt.Errorf("failed to store %s: %w", f.key, err)
		}
	}
	return nil
}
