package notation

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Alphabet is an ordered list of digit glyphs.
// The number of glyphs is the radix, the first glyph is the zero digit.
type Alphabet struct {
	glyphs []string
}

var errShortAlphabet = fmt.Errorf("alphabet must contain at least 2 glyphs: %w", ErrInvalidArgument)

var (
	// DecimalDigits is the alphabet of ASCII decimal digits.
	DecimalDigits = MustNewAlphabet(strings.Split("0123456789", ""))

	subscriptDigits   = MustNewAlphabet(strings.Split("₀₁₂₃₄₅₆₇₈₉", ""))
	superscriptDigits = MustNewAlphabet(strings.Split("⁰¹²³⁴⁵⁶⁷⁸⁹", ""))
)

// NewAlphabet returns an alphabet with the given glyphs.
//
// NewAlphabet returns an error if fewer than 2 glyphs are supplied.
func NewAlphabet(glyphs []string) (Alphabet, error) {
	if len(glyphs) < 2 {
		return Alphabet{}, fmt.Errorf("got %v glyph(s): %w", len(glyphs), errShortAlphabet)
	}
	g := make([]string, len(glyphs))
	copy(g, glyphs)
	return Alphabet{glyphs: g}, nil
}

// MustNewAlphabet is like [NewAlphabet] but panics if the alphabet is too short.
func MustNewAlphabet(glyphs []string) Alphabet {
	a, err := NewAlphabet(glyphs)
	if err != nil {
		panic(fmt.Sprintf("MustNewAlphabet(%q) failed: %v", glyphs, err))
	}
	return a
}

// Base returns the radix of the alphabet.
func (a Alphabet) Base() int {
	return len(a.glyphs)
}

// Glyph returns the glyph of digit i.
func (a Alphabet) Glyph(i int) string {
	return a.glyphs[i]
}

// Encode writes x in the radix and glyphs of the alphabet with exactly
// places digits after the radix point.
// The last digit is rounded half up and the carry propagates into the
// integer part, so 0.999 with 2 places becomes "1.00".
// When places is 0 no radix point is written.
// The sign of x is ignored; NaN and infinite values produce an empty string.
func Encode(x float64, a Alphabet, places int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ""
	}
	if places < 0 {
		places = 0
	}
	base := a.Base()
	scaled := math.Round(math.Abs(x) * math.Pow(float64(base), float64(places)))

	// Digits, least significant first.
	var digits []string
	if scaled < 1<<64 {
		v := fint(scaled)
		for v > 0 || len(digits) == 0 {
			q, r, _ := v.quoRem(fint(base))
			digits = append(digits, a.glyphs[r])
			v = q
		}
	} else {
		v, y, r := getBint(), getBint(), getBint()
		defer putBint(v)
		defer putBint(y)
		defer putBint(r)
		v.setFloat64(scaled)
		y.setFint(fint(base))
		for v.sign() > 0 {
			v.quoRem(v, y, r)
			digits = append(digits, a.glyphs[r.fint()])
		}
	}
	for len(digits) < places+1 {
		digits = append(digits, a.glyphs[0])
	}

	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteString(digits[i])
		if i == places && places > 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Subscript writes the rounded integer n with subscript numerals.
func Subscript(n float64) string {
	return script(n, subscriptDigits, "₋")
}

// Superscript writes the rounded integer n with superscript numerals.
func Superscript(n float64) string {
	return script(n, superscriptDigits, "⁻")
}

func script(n float64, a Alphabet, minus string) string {
	s := Encode(n, a, 0)
	if n <= -0.5 {
		return minus + s
	}
	return s
}

// AddCommas separates groups of three characters from the right with commas.
func AddCommas(s string) string {
	n := utf8.RuneCountInString(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	i := 0
	for _, r := range s {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}

// formatWithCommas adds commas to the trailing run of word characters of
// the integer part of s.
func formatWithCommas(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	start := len(intPart)
	for start > 0 && isWordByte(intPart[start-1]) {
		start--
	}
	intPart = intPart[:start] + AddCommas(intPart[start:])
	if hasFrac {
		return intPart + "." + fracPart
	}
	return intPart
}

func isWordByte(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// fixed writes x with exactly places digits after the decimal point,
// rounding half away from zero.
func fixed(x float64, places int) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	}
	if places < 0 {
		places = 0
	}
	return decimal.NewFromFloat(x).StringFixed(int32(places))
}
