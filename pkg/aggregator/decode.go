package aggregator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/tripwizard/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// storedDestination mirrors the destination record loosely so that text
// prices ("2000") and missing fields still decode.
type storedDestination struct {
	Name  string  `mapstructure:"name"`
	Price float64 `mapstructure:"price"`
	Image string  `mapstructure:"image"`
}

// storedGuide keeps age and rating untyped: records carry them as numbers or text.
type storedGuide struct {
	Name      string   `mapstructure:"name"`
	Age       any      `mapstructure:"age"`
	Gender    string   `mapstructure:"gender"`
	Specialty string   `mapstructure:"specialty"`
	Rating    any      `mapstructure:"rating"`
	Languages []string `mapstructure:"languages"`
}

// DecodeDestination turns a stored destination record into a Destination.
// An empty or "null" record yields the defaults. A record that is not a JSON
// object yields the defaults and an error. Fields that fail to decode keep
// their defaults, the rest are kept, and the error names the bad fields.
func DecodeDestination(raw string) (domain.Destination, error) {
	dest := domain.DefaultDestination()

	var stored storedDestination
	found, err := decodeRecord(raw, &stored)
	if !found {
		return dest, err
	}

	if stored.Name != "" {
		dest.Name = stored.Name
	}
	dest.CostPerDay = stored.Price
	dest.Image = stored.Image
	return dest, err
}

// DecodeGuide turns a stored guide record into a Guide, with the same
// defaulting rules as DecodeDestination.
func DecodeGuide(raw string) (domain.Guide, error) {
	guide := domain.DefaultGuide()

	var stored storedGuide
	found, err := decodeRecord(raw, &stored)
	if !found {
		return guide, err
	}

	guide.Name = orNotAvailable(stored.Name)
	guide.Age = displayValue(stored.Age)
	guide.Gender = orNotAvailable(stored.Gender)
	guide.Specialty = orNotAvailable(stored.Specialty)
	guide.Rating = displayValue(stored.Rating)
	if len(stored.Languages) > 0 {
		guide.Languages = stored.Languages
	}
	return guide, err
}

// decodeRecord parses raw JSON into out. It reports found=false for an
// absent or unparseable record. Field decode failures leave those fields
// zero and are returned alongside found=true.
func decodeRecord(raw string, out any) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return false, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	if fields == nil {
		return false, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return false, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(fields); err != nil {
		var fieldErrs *mapstructure.Error
		if errors.As(err, &fieldErrs) {
			return true, fmt.Errorf("failed to decode fields: %w", err)
		}
		return false, fmt.Errorf("failed to decode record: %w", err)
	}
	return true, nil
}

func orNotAvailable(s string) string {
	if s == "" {
		return domain.NotAvailable
	}
	return s
}

// displayValue renders a loosely typed scalar; zero values count as absent.
func displayValue(v any) string {
	switch val := v.(type) {
	case nil:
		return domain.NotAvailable
	case string:
		return orNotAvailable(val)
	case bool:
		if !val {
			return domain.NotAvailable
		}
		return "true"
	case float64:
		if val == 0 {
			return domain.NotAvailable
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
