package notation

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Reduce splits v into a mantissa in [1, base^steps) and an exponent that
// is a multiple of steps, such that |v| = mantissa × base^exponent.
// The sign of v is ignored, 0 reduces to (0, 0).
// Steps below 1 are treated as 1 and a base not above 1 as 2.
func Reduce(v Magnitude, base float64, steps int64) (mantissa float64, exponent int64) {
	if v.IsZero() {
		return 0, 0
	}
	if steps < 1 {
		steps = 1
	}
	if !(base > 1) || math.IsInf(base, 0) {
		base = 2
	}
	realBase := math.Pow(base, float64(steps))

	if k, ok := powerOfTen(base); ok {
		unit := k * steps
		q := floorDiv(v.exp, unit)
		exponent = q * steps
		mantissa = v.mant * math.Pow10(int(v.exp-q*unit))
	} else {
		exponent = int64(math.Floor(float64(v.exp)/math.Log10(realBase))) * steps
		mantissa = math.Pow(10, v.Log10()-float64(exponent)*math.Log10(base))
	}

	// Rounding of the logarithms can leave the mantissa one step off.
	for i := 0; i < 4 && !(1 <= mantissa && mantissa < realBase); i++ {
		adjust := math.Floor(math.Log(mantissa) / math.Log(realBase))
		if adjust == 0 || math.IsNaN(adjust) || math.IsInf(adjust, 0) {
			break
		}
		mantissa /= math.Pow(realBase, adjust)
		exponent += steps * int64(adjust)
	}
	return mantissa, exponent
}

// powerOfTen returns k if base is exactly 10^k for some k >= 1.
func powerOfTen(base float64) (int64, bool) {
	k := math.Round(math.Log10(base))
	if k < 1 || k > 22 || math.Pow10(int(k)) != base {
		return 0, false
	}
	return int64(k), true
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FixMantissaOverflow returns (1, exponent+step) if the mantissa rounded
// half up at the given number of places reaches ceiling, otherwise it
// returns the arguments unchanged.
func FixMantissaOverflow(mantissa float64, exponent int64, places int, ceiling float64, step int64) (float64, int64) {
	if places < 0 {
		places = 0
	}
	if math.IsNaN(mantissa) || math.IsInf(mantissa, 0) {
		return mantissa, exponent
	}
	m := decimal.NewFromFloat(mantissa).Round(int32(places))
	if m.GreaterThanOrEqual(decimal.NewFromFloat(ceiling)) {
		return 1, exponent + step
	}
	return mantissa, exponent
}

// toEngineering shifts the exponent of v down to a multiple of 3.
func toEngineering(v Magnitude) (float64, int64) {
	offset := v.exp % 3
	return v.mant * math.Pow10(int(offset)), v.exp - offset
}

// toLongScale shifts the exponent of v down to a multiple of 3 below 10^6
// and to a multiple of 6 above.
func toLongScale(v Magnitude) (float64, int64) {
	offset := v.exp % longScaleStep(v.exp)
	return v.mant * math.Pow10(int(offset)), v.exp - offset
}

func longScaleStep(exp int64) int64 {
	if exp < 6 {
		return 3
	}
	return 6
}

func toFixedEngineering(v Magnitude, places int) (float64, int64) {
	m, e := toEngineering(v)
	return FixMantissaOverflow(m, e, places, 1000, 3)
}

func toFixedLongScale(v Magnitude, places int) (float64, int64) {
	step := longScaleStep(v.exp)
	m, e := toLongScale(v)
	return FixMantissaOverflow(m, e, places, math.Pow10(int(step)), step)
}

// MantissaExponent renders magnitudes as a mantissa, a separator and an
// exponent of Base^Steps.
// It is the building block of every positional style.
type MantissaExponent struct {
	Base  float64
	Steps int64
	// Separator defaults to "e".
	Separator string
	// Mantissa writes the mantissa with the given places.
	Mantissa func(x float64, places int) string
	// Exponent writes the exponent with the given places.
	Exponent func(f *Formatter, exp int64, places int) string
	// MantissaIfExponentFormatted, if set, replaces Mantissa when the exponent
	// itself is too large to be written in full.
	MantissaIfExponentFormatted func(x float64, places int) string
}

// Format renders v, ignoring its sign.
// If rounding pushes the mantissa to Base^Steps, the mantissa becomes 1
// and the exponent grows by Steps.
// A zero exponent is omitted together with the separator.
func (r MantissaExponent) Format(f *Formatter, v Magnitude, places, placesExponent int) string {
	mantissa, exponent := Reduce(v, r.Base, r.Steps)
	steps := r.Steps
	if steps < 1 {
		steps = 1
	}
	realBase := math.Pow(r.Base, float64(steps))

	m := r.Mantissa(mantissa, places)
	if m == r.Mantissa(realBase, places) {
		m = r.Mantissa(1, places)
		exponent += steps
	}
	if exponent == 0 {
		return m
	}

	e := r.Exponent(f, exponent, placesExponent)
	if r.MantissaIfExponentFormatted != nil && !f.cfg.ExponentFullyShown(exponent) {
		m = r.MantissaIfExponentFormatted(mantissa, places)
	}

	sep := r.Separator
	if sep == "" {
		sep = "e"
	}
	var b strings.Builder
	b.Grow(len(m) + len(sep) + len(e))
	b.WriteString(m)
	b.WriteString(sep)
	b.WriteString(e)
	return b.String()
}

// formatMantissaBaseTen writes x in fixed point notation.
func formatMantissaBaseTen(x float64, places int) string {
	return fixed(x, places)
}

// formatExponentDefault writes an exponent with the comma rules of f.
func formatExponentDefault(f *Formatter, exp int64, places int) string {
	return f.FormatExponentPlaces(exp, places)
}
