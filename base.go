package notation

import (
	"fmt"
	"strings"
)

// CustomBase writes values in an arbitrary radix, with a mantissa and an
// exponent of ExponentBase both written in the digits of the radix.
type CustomBase struct {
	name         string
	digits       Alphabet
	exponentBase float64
}

// NewCustomBase returns a positional style over the given digits.
//
// NewCustomBase returns an error if:
//   - fewer than 2 digits are supplied;
//   - exponentBase is not greater than 1.
func NewCustomBase(digits []string, exponentBase float64) (*CustomBase, error) {
	a, err := NewAlphabet(digits)
	if err != nil {
		return nil, err
	}
	if !(exponentBase > 1) {
		return nil, fmt.Errorf("exponent base %v must be > 1: %w", exponentBase, ErrInvalidArgument)
	}
	return &CustomBase{name: "Custom Base", digits: a, exponentBase: exponentBase}, nil
}

// MustNewCustomBase is like [NewCustomBase] but panics if the style is invalid.
func MustNewCustomBase(digits []string, exponentBase float64) *CustomBase {
	c, err := NewCustomBase(digits, exponentBase)
	if err != nil {
		panic(fmt.Sprintf("MustNewCustomBase(%q, %v) failed: %v", digits, exponentBase, err))
	}
	return c
}

// Binary returns the base 2 style.
func Binary() *CustomBase {
	c := MustNewCustomBase(strings.Split("01", ""), 2)
	c.name = "Binary"
	return c
}

// Hexadecimal returns the base 16 style.
func Hexadecimal() *CustomBase {
	c := MustNewCustomBase(strings.Split("0123456789ABCDEF", ""), 16)
	c.name = "Hexadecimal"
	return c
}

func (c *CustomBase) Name() string { return c.name }

// Digits returns the alphabet of the style.
func (c *CustomBase) Digits() Alphabet { return c.digits }

func (c *CustomBase) FormatUnder1000(_ *Formatter, x float64, places int) string {
	return c.mantissa(x, places)
}

func (c *CustomBase) FormatDecimal(f *Formatter, v Magnitude, places, placesExponent int) string {
	layout := MantissaExponent{
		Base:     c.exponentBase,
		Steps:    1,
		Mantissa: c.mantissa,
		Exponent: func(f *Formatter, exp int64, p int) string {
			return f.formatExponent(exp, p, c.integer, max(2, p))
		},
		MantissaIfExponentFormatted: func(x float64, _ int) string {
			return c.mantissa(x, 0)
		},
	}
	return layout.Format(f, v, places, placesExponent)
}

func (c *CustomBase) mantissa(x float64, places int) string {
	return Encode(x, c.digits, places)
}

// integer writes an exponent in the digits of the style.
func (c *CustomBase) integer(n int64, _ int) string {
	if n < 0 {
		return "-" + Encode(-float64(n), c.digits, 0)
	}
	return Encode(float64(n), c.digits, 0)
}
