package notation

import (
	"strconv"
	"strings"
)

// Infix writes the digits of a value one by one and embeds exponent
// markers between them, every GroupDigits places, with commas between
// smaller groups of three:
// 1234 in [InfixEngineering] is "1₃23".
// Infix styles handle every finite value in [RegimeDecimal].
type Infix struct {
	Label string
	// GroupDigits is the distance between exponent markers, 3 or 6.
	GroupDigits int64
	// HandlesZeroExponent writes a marker for exponent 0 instead of a
	// radix point.
	HandlesZeroExponent bool
	// NegativePrefix replaces "-" before negative values when set.
	NegativePrefix string
	// SwapSeparators exchanges "." and "," in the result.
	SwapSeparators bool
	Digit          func(d int) string
	Exponent       func(exp int64) string
}

// InfixEngineering writes decimal digits with subscript exponents.
func InfixEngineering() *Infix {
	return &Infix{
		Label:               "Infix engineering",
		GroupDigits:         3,
		HandlesZeroExponent: true,
		Digit:               strconv.Itoa,
		Exponent: func(exp int64) string {
			return Subscript(float64(exp))
		},
	}
}

// ReverseInfixEngineering writes subscript digits with decimal exponents.
func ReverseInfixEngineering() *Infix {
	return &Infix{
		Label:               "Reverse infix engineering",
		GroupDigits:         3,
		HandlesZeroExponent: true,
		NegativePrefix:      "₋",
		Digit:               subscriptDigit,
		Exponent: func(exp int64) string {
			return strconv.FormatInt(exp, 10)
		},
	}
}

// InfixShortScale writes subscript digits with short scale suffixes.
func InfixShortScale() *Infix {
	return &Infix{
		Label:          "Infix short scale",
		GroupDigits:    3,
		NegativePrefix: "₋",
		Digit:          subscriptDigit,
		Exponent: func(exp int64) string {
			if exp < 0 {
				return strconv.FormatInt(exp/3, 10)
			}
			return AbbreviateStandard(exp / 3)
		},
	}
}

// InfixLongScale writes subscript digits with long scale suffixes and
// decimal commas.
func InfixLongScale() *Infix {
	return &Infix{
		Label:          "Infix long scale",
		GroupDigits:    6,
		NegativePrefix: "₋",
		SwapSeparators: true,
		Digit:          subscriptDigit,
		Exponent: func(exp int64) string {
			if exp < 0 {
				return strconv.FormatInt(exp/6, 10)
			}
			return AbbreviateStandard(floorDiv(exp, 6) + 1)
		},
	}
}

func subscriptDigit(d int) string {
	return Subscript(float64(d))
}

func (in *Infix) Name() string { return in.Label }

func (in *Infix) DecimalOnly() bool { return true }

func (in *Infix) FormatDecimal(_ *Formatter, v Magnitude, places, _ int) string {
	s := in.formatInfix(v, places)
	if in.SwapSeparators {
		s = swapSeparators(s)
	}
	return s
}

func (in *Infix) FormatNegativeDecimal(f *Formatter, v Magnitude, places, placesExponent int) string {
	prefix := in.NegativePrefix
	if prefix == "" {
		prefix = "-"
	}
	return prefix + in.FormatDecimal(f, v, places, placesExponent)
}

func (in *Infix) formatInfix(v Magnitude, places int) string {
	mant, exp := FixMantissaOverflow(v.mant, v.exp, in.numberOfPlaces(v.exp, places), 10, 1)
	places = in.numberOfPlaces(exp, places)
	digits := strings.Replace(fixed(mant, places), ".", "", 1)

	var b strings.Builder
	if exp == -1 {
		if in.HandlesZeroExponent {
			b.WriteString(in.Exponent(0))
		} else {
			b.WriteByte('.')
		}
	}

	anyExponent := false
	for i := 0; i <= places && i < len(digits); i++ {
		b.WriteString(in.Digit(int(digits[i] - '0')))
		if i == places && anyExponent {
			break
		}
		cur := exp - int64(i)
		if cur == 0 && !in.HandlesZeroExponent {
			b.WriteByte('.')
			continue
		}
		sep := in.nextSeparatorExponent(cur)
		switch {
		case cur == sep:
			b.WriteString(in.Exponent(cur))
			anyExponent = true
		case (cur-sep)%3 == 0:
			b.WriteByte(',')
		}
	}
	return b.String()
}

// nextSeparatorExponent returns the largest marker exponent not above e.
// Markers sit at multiples of GroupDigits, and at multiples of 3 in [0, GroupDigits).
func (in *Infix) nextSeparatorExponent(e int64) int64 {
	modulus := in.GroupDigits
	if e >= 0 && e < in.GroupDigits {
		modulus = 3
	}
	return e - (e%modulus+modulus)%modulus
}

// numberOfPlaces returns the places needed to reach the next marker.
func (in *Infix) numberOfPlaces(exp int64, places int) int {
	var minPlaces int64
	switch {
	case exp >= 0:
		limit := in.GroupDigits - 1
		if exp < in.GroupDigits {
			limit = 3
		}
		minPlaces = min(exp, limit)
	case exp == -1:
		minPlaces = 0
	default:
		minPlaces = exp - in.nextSeparatorExponent(exp)
	}
	return max(places, int(minPlaces))
}
