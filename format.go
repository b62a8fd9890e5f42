package calculator

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultFractionDigits is the maximum number of fractional digits rendered
// by formatters that don't set FractionDigits.
const DefaultFractionDigits = 6

// Option is an option used when creating a Brain or a Formatter.
type Option interface {
	option()
}

type (
	langopt     language.Tag
	groupopt    bool
	fractionopt int
)

func (langopt) option()     {}
func (groupopt) option()    {}
func (fractionopt) option() {}

// Lang sets the language whose digits and separators are used to format
// numbers.
func Lang(tag language.Tag) Option {
	return langopt(tag)
}

// Grouping sets whether formatted numbers include grouping separators, as in
// "1,000,000". The default is false.
func Grouping(on bool) Option {
	return groupopt(on)
}

// FractionDigits sets the maximum number of fractional digits in formatted
// numbers. Negative values are treated as zero.
func FractionDigits(n int) Option {
	if n < 0 {
		n = 0
	}
	return fractionopt(n)
}

// ScientificThreshold is the magnitude at and above which numbers are
// formatted in scientific notation, e.g. "1.5e20".
const ScientificThreshold = 1e15

// Formatter renders numbers for descriptions and displays.
type Formatter struct {
	p      *message.Printer
	opts   []number.Option
	digits int
	// tiny is the largest magnitude that rounds to zero.
	tiny float64
}

// NewFormatter creates a formatter. With no options, numbers are rendered
// with at least one integer digit, at most six fractional digits, no trailing
// zeros, and no grouping separators.
func NewFormatter(opts ...Option) *Formatter {
	tag := language.English
	group := false
	digits := DefaultFractionDigits
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil: // do nothing
		case langopt:
			tag = language.Tag(opt)
		case groupopt:
			group = bool(opt)
		case fractionopt:
			digits = int(opt)
		default:
			panic("calculator: unknown option type")
		}
	}
	f := Formatter{
		p:      message.NewPrinter(tag),
		digits: digits,
		tiny:   0.5 * math.Pow10(-digits),
		opts: []number.Option{
			number.MinIntegerDigits(1),
			number.MaxFractionDigits(digits),
		},
	}
	if !group {
		f.opts = append(f.opts, number.NoSeparator())
	}
	return &f
}

// Format renders x. NaN is rendered as "NaN" and infinities as "∞" and "-∞".
// Numbers that round to zero are rendered without a sign. Numbers with
// magnitude at least ScientificThreshold are rendered as a mantissa with the
// usual fractional digits followed by "e" and the exponent.
func (f *Formatter) Format(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	case math.Abs(x) <= f.tiny:
		// Rounding ties go to even, so the threshold itself rounds to zero.
		x = 0
	case math.Abs(x) >= ScientificThreshold:
		return f.scientific(x)
	}
	return f.p.Sprint(number.Decimal(x, f.opts...))
}

// scientific renders x as a localized mantissa and an exponent.
func (f *Formatter) scientific(x float64) string {
	// Let strconv round the mantissa so that e.g. 9.9999999e20 becomes 1e21
	// rather than 10e20.
	s := strconv.FormatFloat(x, 'e', f.digits, 64)
	k := strings.IndexByte(s, 'e')
	m, err := strconv.ParseFloat(s[:k], 64)
	if err != nil {
		panic("calculator: bad mantissa in " + s)
	}
	exp, err := strconv.Atoi(s[k+1:])
	if err != nil {
		panic("calculator: bad exponent in " + s)
	}
	return f.p.Sprint(number.Decimal(m, f.opts...)) + "e" + strconv.Itoa(exp)
}

var defaultFormatter = NewFormatter()

// FormatNumber formats x using the default formatter.
func FormatNumber(x float64) string {
	return defaultFormatter.Format(x)
}
