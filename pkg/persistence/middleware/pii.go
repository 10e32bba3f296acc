package middleware

import (
	"context"
	"regexp"

	"github.com/aretw0/tripwizard/pkg/ports"
)

// Mask is the value returned in place of a masked field.
const Mask = "***"

// DefaultPIIPatterns match the contact details captured on the profile page.
var DefaultPIIPatterns = []string{`(?i)email`, `(?i)mobile`, `(?i)dob`}

type piiMiddleware struct {
	next     ports.Store
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks, on read, the values of keys
// matching the patterns. Writes pass through untouched, so it is meant for
// inspection views rather than for the wizard itself.
func NewPIIMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.Store) ports.Store {
		return &piiMiddleware{next: next, patterns: patterns}
	}
}

func (m *piiMiddleware) Get(ctx context.Context, key string) (string, error) {
	val, err := m.next.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if val != "" && m.matches(key) {
		return Mask, nil
	}
	return val, nil
}

func (m *piiMiddleware) Set(ctx context.Context, key, value string) error {
	return m.next.Set(ctx, key, value)
}

func (m *piiMiddleware) Delete(ctx context.Context, key string) error {
	return m.next.Delete(ctx, key)
}

func (m *piiMiddleware) Clear(ctx context.Context) error {
	return m.next.Clear(ctx)
}

func (m *piiMiddleware) Keys(ctx context.Context) ([]string, error) {
	return m.next.Keys(ctx)
}

func (m *piiMiddleware) matches(key string) bool {
	for _, p := range m.patterns {
		if p.MatchString(key) {
			return true
		}
	}
	return false
}
