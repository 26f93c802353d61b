package notation

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Magnitude type is a representation of a real number as mantissa × 10^exponent,
// reaching far beyond the range of float64.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A magnitude is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the magnitude is negative.
//   - Mantissa: a float64 in the range [1, 10), or exactly 0 for the number 0.
//   - Exponent: a signed integer power of ten.
//
// Exponents are limited to [-MaxExponent, MaxExponent].
// Results above the limit saturate to ±1e[MaxExponent], which every valid
// infinite threshold classifies as infinite, and results below the limit
// collapse to 0.
// Magnitudes are immutable: every operation returns a new value.
type Magnitude struct {
	neg  bool    // indicates whether the magnitude is negative
	mant float64 // the absolute mantissa, in [1, 10) or 0
	exp  int64   // the power of ten
}

const (
	MaxExponent = 1_000_000_000_000_000_000 // maximum absolute value of the exponent
	maxFloatExp = 308                       // largest power of ten within float64 range
	minFloatExp = -324                      // smallest power of ten that does not underflow float64
	maxSafeInt  = 1<<53 - 1                 // largest integer that float64 represents exactly
)

var (
	// ErrInvalidArgument is returned for malformed configuration, negative
	// precision, short alphabets and non-finite inputs.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDomain is returned for undefined arithmetic, such as a fractional
	// power of a negative magnitude or a division by zero.
	ErrDomain = errors.New("domain error")
	// ErrUnrepresentable is returned when a value exceeds what a specific
	// decomposition can express exactly.
	ErrUnrepresentable = errors.New("unrepresentable value")
)

var (
	errNonFinite         = fmt.Errorf("non-finite number: %w", ErrInvalidArgument)
	errInvalidMagnitude  = fmt.Errorf("invalid magnitude: %w", ErrInvalidArgument)
	errExponentRange     = fmt.Errorf("exponent out of range: %w", ErrInvalidArgument)
	errDivisionByZero    = fmt.Errorf("division by zero: %w", ErrDomain)
	errNegativeBase      = fmt.Errorf("fractional power of a negative magnitude: %w", ErrDomain)
	errZeroNegativePower = fmt.Errorf("zero raised to a negative power: %w", ErrDomain)
)

func newMagnitude(neg bool, mant float64, exp int64) Magnitude {
	switch {
	case mant == 0 || math.IsNaN(mant):
		return Magnitude{}
	case math.IsInf(mant, 0):
		return saturated(neg != (mant < 0))
	}
	if mant < 0 {
		neg = !neg
		mant = -mant
	}
	if mant < 1 || mant >= 10 {
		// Subnormal mantissas cannot be scaled by a single power of ten.
		if mant < 1e-290 {
			mant *= 1e300
			exp -= 300
		}
		shift := int(math.Floor(math.Log10(mant)))
		switch {
		case shift > 0:
			mant /= math.Pow10(shift)
		case shift < 0:
			mant *= math.Pow10(-shift)
		}
		exp += int64(shift)
		// Log10 can be off by one ulp near powers of ten.
		switch {
		case mant >= 10:
			mant /= 10
			exp++
		case mant < 1:
			mant *= 10
			exp--
		}
	}
	switch {
	case exp > MaxExponent:
		return saturated(neg)
	case exp < -MaxExponent:
		return Magnitude{}
	}
	return Magnitude{neg: neg, mant: mant, exp: exp}
}

func saturated(neg bool) Magnitude {
	return Magnitude{neg: neg, mant: 1, exp: MaxExponent}
}

// New returns a magnitude equal to mantissa × 10^exponent.
// The mantissa does not need to be normalized.
// New panics if the mantissa is NaN or infinite.
func New(mantissa float64, exponent int64) Magnitude {
	if math.IsNaN(mantissa) || math.IsInf(mantissa, 0) {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", mantissa, exponent, errNonFinite))
	}
	return newMagnitude(false, mantissa, exponent)
}

// NewFromInt64 converts an integer to a magnitude.
// Integers above 2^53 lose precision.
func NewFromInt64(n int64) Magnitude {
	return newMagnitude(false, float64(n), 0)
}

// NewFromFloat64 converts a float to a magnitude.
//
// NewFromFloat64 returns an error if the float is NaN or infinite.
func NewFromFloat64(f float64) (Magnitude, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Magnitude{}, fmt.Errorf("converting %v: %w", f, errNonFinite)
	}
	return newMagnitude(false, f, 0), nil
}

// NewFromLog10 returns the positive magnitude 10^l.
// Values of l beyond [MaxExponent] saturate, values below -[MaxExponent]
// collapse to 0.
func NewFromLog10(l float64) Magnitude {
	switch {
	case math.IsNaN(l) || l < -MaxExponent:
		return Magnitude{}
	case l > MaxExponent:
		return saturated(false)
	}
	e := math.Floor(l)
	return newMagnitude(false, math.Pow(10, l-e), int64(e))
}

// NewFromPow returns base raised to the power exp.
// Powers of ten with integer exponents are exact.
//
// NewFromPow returns an error if:
//   - base or exp is NaN or infinite;
//   - base is negative and exp is not an integer;
//   - base is 0 and exp is negative.
func NewFromPow(base, exp float64) (Magnitude, error) {
	b, err := NewFromFloat64(base)
	if err != nil {
		return Magnitude{}, err
	}
	if base == 10 && exp == math.Trunc(exp) && math.Abs(exp) <= MaxExponent {
		return newMagnitude(false, 1, int64(exp)), nil
	}
	return b.Pow(exp)
}

// Parse converts a string to a (possibly rounded) magnitude.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	1e9000000000000000
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// Digits beyond the 18th significant one are truncated.
//
// Parse returns an error:
//   - if the string does not represent a valid number;
//   - if the exponent is greater than [MaxExponent] in absolute value.
func Parse(s string) (Magnitude, error) {
	var (
		pos     int
		width   int
		neg     bool
		coef    fint
		scale   int64
		hascoef bool
		eneg    bool
		exp     int64
		hasexp  bool
		hase    bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		if coef.hasPrec(maxParsePrec) {
			scale-- // dropped digit
		} else {
			coef, _ = coef.fsa(1, s[pos]-'0')
		}
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			if !coef.hasPrec(maxParsePrec) {
				coef, _ = coef.fsa(1, s[pos]-'0')
				scale++
			}
			pos++
		}
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hase = true
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			d := int64(s[pos] - '0')
			if exp > (MaxExponent-d)/10 {
				return Magnitude{}, fmt.Errorf("parsing %q: %w", s, errExponentRange)
			}
			exp = exp*10 + d
			hasexp = true
			pos++
		}
	}

	if pos != width {
		return Magnitude{}, fmt.Errorf("parsing %q: invalid character %q: %w", s, s[pos], errInvalidMagnitude)
	}
	if !hascoef {
		return Magnitude{}, fmt.Errorf("parsing %q: no coefficient: %w", s, errInvalidMagnitude)
	}
	if hase && !hasexp {
		return Magnitude{}, fmt.Errorf("parsing %q: no exponent: %w", s, errInvalidMagnitude)
	}

	if eneg {
		exp = -exp
	}
	return newMagnitude(neg, float64(coef), exp-scale), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding magnitudes.
func MustParse(s string) Magnitude {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// String method implements the [fmt.Stringer] interface.
// Magnitudes with exponents in (-7, 21) are written in plain decimal form,
// all others as mantissa "e" exponent.
// The result can be read back with [Parse].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Magnitude) String() string {
	switch {
	case d.IsZero():
		return "0"
	case -7 < d.exp && d.exp < 21:
		return strconv.FormatFloat(d.Float64(), 'f', -1, 64)
	}
	m := strconv.FormatFloat(d.mant, 'g', -1, 64)
	if d.neg {
		m = "-" + m
	}
	return m + "e" + strconv.FormatInt(d.exp, 10)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Magnitude) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Magnitude.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Magnitude) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Mantissa returns the absolute mantissa of d, in the range [1, 10),
// or 0 if d is 0.
func (d Magnitude) Mantissa() float64 {
	return d.mant
}

// Exponent returns the power of ten of d.
func (d Magnitude) Exponent() int64 {
	return d.exp
}

// Float64 returns the nearest float64 value for d.
// Magnitudes beyond the float64 range become ±Inf or 0.
func (d Magnitude) Float64() float64 {
	switch {
	case d.IsZero() || d.exp < minFloatExp:
		return 0
	case d.exp > maxFloatExp:
		if d.neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	f, _ := d.toDecimal().Float64()
	return f
}

// toDecimal returns the shortest decimal mantissa of d shifted by its exponent.
// The exponent must be within the float64 range.
func (d Magnitude) toDecimal() decimal.Decimal {
	m := decimal.NewFromFloat(d.mant).Shift(int32(d.exp))
	if d.neg {
		return m.Neg()
	}
	return m
}

// Int64 returns ⌊d⌋ as an int64.
// The boolean is false when ⌊d⌋ does not fit in an int64, in which case the
// integer result must not be used.
func (d Magnitude) Int64() (int64, bool) {
	switch {
	case d.IsZero():
		return 0, true
	case d.exp > 18:
		return 0, false
	case d.exp < 0:
		if d.neg {
			return -1, true
		}
		return 0, true
	}
	b := d.toDecimal().Floor().BigInt()
	if !b.IsInt64() {
		return 0, false
	}
	return b.Int64(), true
}

// Floor returns the greatest integer magnitude less than or equal to d.
func (d Magnitude) Floor() Magnitude {
	switch {
	case d.IsZero():
		return d
	case d.exp >= 16:
		// Every digit of the mantissa is integral.
		return d
	case d.exp < 0:
		if d.neg {
			return newMagnitude(true, 1, 0)
		}
		return Magnitude{}
	}
	f, _ := d.toDecimal().Floor().Float64()
	return newMagnitude(false, f, 0)
}

// Log10 returns log10(|d|), the value exponent + log10(mantissa).
// Log10 of 0 is -Inf.
func (d Magnitude) Log10() float64 {
	if d.IsZero() {
		return math.Inf(-1)
	}
	return float64(d.exp) + math.Log10(d.mant)
}

// Log returns the logarithm of |d| in the given base.
func (d Magnitude) Log(base float64) float64 {
	return d.Log10() / math.Log10(base)
}

// Neg returns d with opposite sign.
func (d Magnitude) Neg() Magnitude {
	if d.IsZero() {
		return d
	}
	return Magnitude{neg: !d.neg, mant: d.mant, exp: d.exp}
}

// Abs returns absolute value of d.
func (d Magnitude) Abs() Magnitude {
	return Magnitude{mant: d.mant, exp: d.exp}
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Magnitude) Sign() int {
	switch {
	case d.mant == 0:
		return 0
	case d.neg:
		return -1
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Magnitude) IsPos() bool {
	return d.mant != 0 && !d.neg
}

// IsNeg returns true if d < 0.
func (d Magnitude) IsNeg() bool {
	return d.mant != 0 && d.neg
}

// IsZero returns true if d == 0.
func (d Magnitude) IsZero() bool {
	return d.mant == 0
}

// Add returns the (possibly rounded) sum of d and e.
func (d Magnitude) Add(e Magnitude) Magnitude {
	switch {
	case d.IsZero():
		return e
	case e.IsZero():
		return d
	}
	if d.exp < e.exp {
		d, e = e, d
	}
	// e is below the precision of d.
	diff := d.exp - e.exp
	if diff > 17 {
		return d
	}
	m := e.mant / math.Pow10(int(diff))
	if d.neg != e.neg {
		m = -m
	}
	return newMagnitude(d.neg, d.mant+m, d.exp)
}

// Sub returns the (possibly rounded) difference of d and e.
func (d Magnitude) Sub(e Magnitude) Magnitude {
	return d.Add(e.Neg())
}

// Mul returns the (possibly rounded) product of d and e.
func (d Magnitude) Mul(e Magnitude) Magnitude {
	if d.IsZero() || e.IsZero() {
		return Magnitude{}
	}
	return newMagnitude(d.neg != e.neg, d.mant*e.mant, d.exp+e.exp)
}

// Quo returns the (possibly rounded) quotient of d and e.
//
// Quo returns an error if the divisor is 0.
func (d Magnitude) Quo(e Magnitude) (Magnitude, error) {
	if e.IsZero() {
		return Magnitude{}, errDivisionByZero
	}
	if d.IsZero() {
		return Magnitude{}, nil
	}
	return newMagnitude(d.neg != e.neg, d.mant/e.mant, d.exp-e.exp), nil
}

// Inv returns the (possibly rounded) reciprocal of d.
//
// Inv returns an error if d is 0.
func (d Magnitude) Inv() (Magnitude, error) {
	if d.IsZero() {
		return Magnitude{}, errDivisionByZero
	}
	return newMagnitude(d.neg, 1/d.mant, -d.exp), nil
}

// Pow returns d raised to the power p.
//
// Pow returns an error if:
//   - p is NaN or infinite;
//   - d is negative and p is not an integer;
//   - d is 0 and p is negative.
func (d Magnitude) Pow(p float64) (Magnitude, error) {
	switch {
	case math.IsNaN(p) || math.IsInf(p, 0):
		return Magnitude{}, fmt.Errorf("raising %v to %v: %w", d, p, errNonFinite)
	case d.IsZero():
		switch {
		case p < 0:
			return Magnitude{}, errZeroNegativePower
		case p == 0:
			return New(1, 0), nil
		}
		return Magnitude{}, nil
	case p == 0:
		return New(1, 0), nil
	}

	neg := false
	if d.neg {
		if p != math.Trunc(p) {
			return Magnitude{}, fmt.Errorf("raising %v to %v: %w", d, p, errNegativeBase)
		}
		neg = math.Mod(p, 2) != 0
	}

	// Fast path: the exponent stays integral and the mantissa power stays finite.
	if t := float64(d.exp) * p; t == math.Trunc(t) && math.Abs(t) < MaxExponent {
		if m := math.Pow(d.mant, p); !math.IsInf(m, 0) && m != 0 {
			return newMagnitude(neg, m, int64(t)), nil
		}
	}

	// Slow path: through the logarithm.
	f := NewFromLog10(p * d.Log10())
	if neg {
		f = f.Neg()
	}
	return f, nil
}

// Sqrt returns the square root of d.
//
// Sqrt returns an error if d is negative.
func (d Magnitude) Sqrt() (Magnitude, error) {
	if d.IsNeg() {
		return Magnitude{}, fmt.Errorf("square root of %v: %w", d, errNegativeBase)
	}
	return d.Pow(0.5)
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Magnitude) Cmp(e Magnitude) int {

	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	case d.IsZero():
		return 0
	}

	// General case
	r := cmpAbs(d, e)
	if d.neg {
		return -r
	}
	return r
}

func cmpAbs(d, e Magnitude) int {
	switch {
	case d.exp > e.exp:
		return 1
	case d.exp < e.exp:
		return -1
	case d.mant > e.mant:
		return 1
	case d.mant < e.mant:
		return -1
	}
	return 0
}

// Max returns maximum of d and e.
func (d Magnitude) Max(e Magnitude) Magnitude {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
func (d Magnitude) Min(e Magnitude) Magnitude {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}
