package notation

import (
	"fmt"
	"math"
	"strconv"
)

// Regime is the formatting path selected for a value by [Formatter.Classify].
type Regime int

const (
	RegimeInfinite  Regime = iota // |v| reaches the infinite threshold
	RegimeVerySmall               // exponent below -300
	RegimeUnder1000               // exponent below 3, formatted from a float64
	RegimeDecimal                 // everything else
)

func (r Regime) String() string {
	switch r {
	case RegimeInfinite:
		return "infinite"
	case RegimeVerySmall:
		return "very small"
	case RegimeUnder1000:
		return "under 1000"
	case RegimeDecimal:
		return "decimal"
	}
	return "Regime(" + strconv.Itoa(int(r)) + ")"
}

// Style is a notation.
// FormatDecimal is called with non-negative magnitudes in [RegimeDecimal].
// Every other hook is optional and is detected by the [Formatter] through
// the interfaces below.
type Style interface {
	Name() string
	FormatDecimal(f *Formatter, v Magnitude, places, placesExponent int) string
}

// InfiniteStyle overrides the token printed for positive infinite values.
// The default is "Infinite".
type InfiniteStyle interface {
	Infinite() string
}

// NegativeInfiniteStyle overrides the token printed for negative infinite values.
// The default is "-" followed by the positive token.
type NegativeInfiniteStyle interface {
	NegativeInfinite() string
}

// Under1000Style formats non-negative values with exponents below 3.
// The default writes x in fixed point notation.
type Under1000Style interface {
	FormatUnder1000(f *Formatter, x float64, places int) string
}

// NegativeUnder1000Style formats |x| of negative values with exponents below 3.
type NegativeUnder1000Style interface {
	FormatNegativeUnder1000(f *Formatter, x float64, places int) string
}

// VerySmallStyle formats non-negative values with exponents below -300.
// The default passes the nearest float64 to the under-1000 hook.
type VerySmallStyle interface {
	FormatVerySmall(f *Formatter, v Magnitude, places int) string
}

// NegativeVerySmallStyle formats |v| of negative values with exponents below -300.
type NegativeVerySmallStyle interface {
	FormatNegativeVerySmall(f *Formatter, v Magnitude, places int) string
}

// NegativeDecimalStyle formats |v| of negative values in [RegimeDecimal].
type NegativeDecimalStyle interface {
	FormatNegativeDecimal(f *Formatter, v Magnitude, places, placesExponent int) string
}

// DecimalOnlyStyle styles send every finite value to FormatDecimal.
type DecimalOnlyStyle interface {
	DecimalOnly() bool
}

// Places holds the precision parameters of a single formatting call.
type Places struct {
	Places    int // places of mantissas in [RegimeDecimal]
	Under1000 int // places in [RegimeUnder1000] and [RegimeVerySmall]
	Exponent  int // places of exponents that are formatted recursively
}

// NewPlaces returns p places for mantissas and exponents and 0 places
// for values under 1000.
func NewPlaces(p int) Places {
	return Places{Places: p, Exponent: p}
}

var errNegativePlaces = fmt.Errorf("negative precision: %w", ErrInvalidArgument)

// Validate returns an error if any of the precisions is negative.
func (p Places) Validate() error {
	if p.Places < 0 || p.Under1000 < 0 || p.Exponent < 0 {
		return fmt.Errorf("places %v: %w", p, errNegativePlaces)
	}
	return nil
}

// Formatter formats magnitudes with a style.
// It routes each value to the hook of its regime and supplies the default
// hooks the style does not implement.
// A formatter is immutable and safe for concurrent use by multiple
// goroutines, provided its style is.
type Formatter struct {
	style Style
	cfg   Config

	decimalOnly       bool
	infinite          InfiniteStyle
	negativeInfinite  NegativeInfiniteStyle
	under1000         Under1000Style
	negativeUnder1000 NegativeUnder1000Style
	verySmall         VerySmallStyle
	negativeVerySmall NegativeVerySmallStyle
	negativeDecimal   NegativeDecimalStyle
}

// NewFormatter returns a formatter for the style with [DefaultConfig]
// modified by the options.
//
// NewFormatter returns an error if the style is nil or the resulting
// config fails [Config.Validate].
func NewFormatter(style Style, opts ...Option) (*Formatter, error) {
	if style == nil {
		return nil, fmt.Errorf("nil style: %w", ErrInvalidArgument)
	}
	cfg := Apply(DefaultConfig(), opts...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newFormatter(style, cfg), nil
}

// MustNewFormatter is like [NewFormatter] but panics if the formatter cannot be built.
func MustNewFormatter(style Style, opts ...Option) *Formatter {
	f, err := NewFormatter(style, opts...)
	if err != nil {
		panic(fmt.Sprintf("MustNewFormatter(%v) failed: %v", styleName(style), err))
	}
	return f
}

func styleName(s Style) string {
	if s == nil {
		return "<nil>"
	}
	return s.Name()
}

func newFormatter(style Style, cfg Config) *Formatter {
	f := &Formatter{style: style, cfg: cfg}
	if s, ok := style.(DecimalOnlyStyle); ok {
		f.decimalOnly = s.DecimalOnly()
	}
	f.infinite, _ = style.(InfiniteStyle)
	f.negativeInfinite, _ = style.(NegativeInfiniteStyle)
	f.under1000, _ = style.(Under1000Style)
	f.negativeUnder1000, _ = style.(NegativeUnder1000Style)
	f.verySmall, _ = style.(VerySmallStyle)
	f.negativeVerySmall, _ = style.(NegativeVerySmallStyle)
	f.negativeDecimal, _ = style.(NegativeDecimalStyle)
	return f
}

// with returns a formatter for another style sharing the config of f.
func (f *Formatter) with(style Style) *Formatter {
	return newFormatter(style, f.cfg)
}

// Style returns the style of the formatter.
func (f *Formatter) Style() Style {
	return f.style
}

// Name returns the name of the style.
func (f *Formatter) Name() string {
	return f.style.Name()
}

// Config returns a copy of the formatter configuration.
func (f *Formatter) Config() Config {
	return f.cfg
}

// Classify returns the regime of v.
// Exactly one regime applies to every magnitude.
func (f *Formatter) Classify(v Magnitude) Regime {
	switch {
	case f.cfg.IsInfinite(v):
		return RegimeInfinite
	case f.decimalOnly:
		return RegimeDecimal
	case v.exp < -300:
		return RegimeVerySmall
	case v.exp < 3:
		return RegimeUnder1000
	}
	return RegimeDecimal
}

// Format formats v with places digits for mantissas and exponents
// and 0 digits for values under 1000.
//
// Format returns an error if places is negative.
func (f *Formatter) Format(v Magnitude, places int) (string, error) {
	return f.FormatPlaces(v, NewPlaces(places))
}

// FormatPlaces formats v with the given precisions.
//
// FormatPlaces returns an error if any of the precisions is negative.
func (f *Formatter) FormatPlaces(v Magnitude, p Places) (string, error) {
	if err := p.Validate(); err != nil {
		return "", fmt.Errorf("formatting %v with %v: %w", v, f.Name(), err)
	}
	return f.format(v, p), nil
}

// FormatFloat64 is like [Formatter.Format] for native floats.
// NaN and +Inf produce the infinite token, -Inf the negative infinite token.
func (f *Formatter) FormatFloat64(x float64, places int) (string, error) {
	if err := NewPlaces(places).Validate(); err != nil {
		return "", fmt.Errorf("formatting %v with %v: %w", x, f.Name(), err)
	}
	switch {
	case math.IsInf(x, -1):
		return f.NegativeInfinite(), nil
	case math.IsNaN(x) || math.IsInf(x, 1):
		return f.Infinite(), nil
	}
	return f.format(newMagnitude(false, x, 0), NewPlaces(places)), nil
}

// MustFormat is like [Formatter.Format] but panics if places is negative.
func (f *Formatter) MustFormat(v Magnitude, places int) string {
	s, err := f.Format(v, places)
	if err != nil {
		panic(fmt.Sprintf("MustFormat(%v, %v) failed: %v", v, places, err))
	}
	return s
}

func (f *Formatter) format(v Magnitude, p Places) string {
	switch f.Classify(v) {
	case RegimeInfinite:
		if v.IsNeg() {
			return f.NegativeInfinite()
		}
		return f.Infinite()
	case RegimeVerySmall:
		if v.IsNeg() {
			return f.FormatNegativeVerySmall(v.Abs(), p.Under1000)
		}
		return f.FormatVerySmall(v, p.Under1000)
	case RegimeUnder1000:
		x := v.Float64()
		if x < 0 {
			return f.FormatNegativeUnder1000(-x, p.Under1000)
		}
		return f.FormatUnder1000(x, p.Under1000)
	}
	if v.IsNeg() {
		return f.FormatNegativeDecimal(v.Abs(), p.Places, p.Exponent)
	}
	return f.FormatDecimal(v, p.Places, p.Exponent)
}

// Infinite returns the token of positive infinite values.
func (f *Formatter) Infinite() string {
	if f.infinite != nil {
		return f.infinite.Infinite()
	}
	return "Infinite"
}

// NegativeInfinite returns the token of negative infinite values.
func (f *Formatter) NegativeInfinite() string {
	if f.negativeInfinite != nil {
		return f.negativeInfinite.NegativeInfinite()
	}
	return "-" + f.Infinite()
}

// FormatUnder1000 calls the under-1000 hook of the style or its default.
func (f *Formatter) FormatUnder1000(x float64, places int) string {
	if f.under1000 != nil {
		return f.under1000.FormatUnder1000(f, x, places)
	}
	return fixed(x, places)
}

// FormatNegativeUnder1000 calls the negative under-1000 hook of the style or its default.
func (f *Formatter) FormatNegativeUnder1000(x float64, places int) string {
	if f.negativeUnder1000 != nil {
		return f.negativeUnder1000.FormatNegativeUnder1000(f, x, places)
	}
	return "-" + f.FormatUnder1000(x, places)
}

// FormatVerySmall calls the very-small hook of the style or its default.
func (f *Formatter) FormatVerySmall(v Magnitude, places int) string {
	if f.verySmall != nil {
		return f.verySmall.FormatVerySmall(f, v, places)
	}
	return f.FormatUnder1000(v.Float64(), places)
}

// FormatNegativeVerySmall calls the negative very-small hook of the style or its default.
func (f *Formatter) FormatNegativeVerySmall(v Magnitude, places int) string {
	if f.negativeVerySmall != nil {
		return f.negativeVerySmall.FormatNegativeVerySmall(f, v, places)
	}
	return "-" + f.FormatVerySmall(v, places)
}

// FormatDecimal calls the decimal hook of the style.
func (f *Formatter) FormatDecimal(v Magnitude, places, placesExponent int) string {
	return f.style.FormatDecimal(f, v, places, placesExponent)
}

// FormatNegativeDecimal calls the negative decimal hook of the style or its default.
func (f *Formatter) FormatNegativeDecimal(v Magnitude, places, placesExponent int) string {
	if f.negativeDecimal != nil {
		return f.negativeDecimal.FormatNegativeDecimal(f, v, places, placesExponent)
	}
	return "-" + f.FormatDecimal(v, places, placesExponent)
}

// FormatExponent writes an exponent with the default places of the config.
func (f *Formatter) FormatExponent(exp int64) string {
	return f.FormatExponentPlaces(exp, f.cfg.ExponentDefaultPlaces)
}

// FormatExponentPlaces writes an exponent following [ExponentCommas].
// Exponents too large to be written in full are formatted by the style
// itself with max(2, precision) places.
func (f *Formatter) FormatExponentPlaces(exp int64, precision int) string {
	return f.formatExponent(exp, precision, nil, max(2, precision))
}

// formatExponent is FormatExponentPlaces with a custom writer for exponents
// that are shown in full.
func (f *Formatter) formatExponent(exp int64, precision int, special func(exp int64, places int) string, largePrecision int) string {
	if special == nil {
		special = formatInt
	}
	switch {
	case f.cfg.noSpecialFormatting(exp):
		return special(exp, max(precision, 1))
	case f.cfg.showCommas(exp):
		return formatWithCommas(special(exp, 0))
	}
	return f.format(NewFromInt64(exp), Places{
		Places:    largePrecision,
		Under1000: largePrecision,
		Exponent:  largePrecision,
	})
}

func formatInt(exp int64, _ int) string {
	return strconv.FormatInt(exp, 10)
}
