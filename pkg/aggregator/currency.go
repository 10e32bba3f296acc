package aggregator

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale groups digits the Indian way (1,00,000).
var DefaultLocale = language.MustParse("en-IN")

// DefaultSymbol is the Indian rupee sign.
const DefaultSymbol = "₹"

// Formatter renders amounts as whole-unit currency strings, e.g. "₹20,000".
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// FormatterOption configures a Formatter.
type FormatterOption func(*formatterConfig)

type formatterConfig struct {
	locale language.Tag
	symbol string
}

// WithLocale sets the locale used for digit grouping.
func WithLocale(tag language.Tag) FormatterOption {
	return func(c *formatterConfig) {
		c.locale = tag
	}
}

// WithSymbol sets the currency symbol prefix.
func WithSymbol(symbol string) FormatterOption {
	return func(c *formatterConfig) {
		c.symbol = symbol
	}
}

// NewFormatter creates a Formatter, defaulting to en-IN and the rupee sign.
func NewFormatter(opts ...FormatterOption) *Formatter {
	cfg := formatterConfig{locale: DefaultLocale, symbol: DefaultSymbol}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Formatter{
		symbol:  cfg.symbol,
		printer: message.NewPrinter(cfg.locale),
	}
}

// Format rounds amount to the nearest whole unit (halves round up) and
// groups its digits per the locale. Amounts beyond the int64 range are
// formatted in full.
func (f *Formatter) Format(amount float64) string {
	return f.symbol + f.printer.Sprint(number.Decimal(Round(amount), number.MaxFractionDigits(0)))
}

// Round rounds to the nearest integer, with halves rounding towards +Inf.
func Round(amount float64) float64 {
	return math.Floor(amount + 0.5)
}
