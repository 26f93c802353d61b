package notation

import (
	"math"
	"strings"
)

var foursTable = [...]string{
	"4-4", "4÷4", "√4", "4-4÷4", "4", "4+4÷4", "4!÷4", "(4!+4)÷4",
	"4+4", "4+4+4÷4", "4!÷4+4", "44÷4", "4!÷√4", "44÷4+√4", "4×4-√4", "4×4-4÷4",
}

var log4 = math.Log10(4)

// Fours writes values as expressions of fours.
// Integer parts below 1000 are sums of multiples of 4×4 and a table entry
// for 0 to 15, fractions are 4÷x, values with |log10(v)| of at least 3 are
// squares of their square roots and those of at least 24 are powers of 4.
type Fours struct{}

func (Fours) Name() string { return "Fours" }

func (Fours) Infinite() string { return "∞" }

func (Fours) NegativeInfinite() string { return "-∞" }

func (Fours) FormatVerySmall(_ *Formatter, v Magnitude, _ int) string {
	return fours(v)
}

func (Fours) FormatNegativeVerySmall(_ *Formatter, v Magnitude, _ int) string {
	return fours(v.Neg())
}

func (Fours) FormatUnder1000(_ *Formatter, x float64, _ int) string {
	return foursUnder1000(x)
}

func (Fours) FormatNegativeUnder1000(_ *Formatter, x float64, _ int) string {
	return "-" + bracketify(foursUnder1000(x))
}

func (Fours) FormatDecimal(_ *Formatter, v Magnitude, _, _ int) string {
	return fours(v)
}

func (Fours) FormatNegativeDecimal(_ *Formatter, v Magnitude, _, _ int) string {
	return fours(v.Neg())
}

func fours(v Magnitude) string {
	switch {
	case v.IsZero():
		return foursTable[0]
	case v.IsNeg():
		return "-" + bracketify(fours(v.Abs()))
	}
	l := v.Log10()
	switch {
	case math.Abs(l) >= 24:
		return "4^" + bracketify(fours(newMagnitude(false, l/log4, 0)))
	case math.Abs(l) >= 3:
		// v is positive, so Sqrt cannot fail.
		root, _ := v.Sqrt()
		return "(" + fours(root) + ")^" + foursTable[2]
	}
	return foursUnder1000(v.Float64())
}

func foursUnder1000(x float64) string {
	switch {
	case x == 0:
		return foursTable[0]
	case x < 1:
		return "4÷" + bracketify(fours(newMagnitude(false, 4/x, 0)))
	}
	return foursInteger(x)
}

func foursInteger(x float64) string {
	if x < 16 {
		return foursTable[int(x)]
	}
	q := math.Floor(x / 16)
	r := math.Floor(math.Max(0, math.Min(x-16*q, 15)))
	var b strings.Builder
	if r > 0 {
		b.WriteString(foursTable[int(r)] + "+")
	}
	b.WriteString("4×4")
	if q > 1 {
		b.WriteString("×" + bracketifySum(foursInteger(q)))
	}
	return b.String()
}

// bracketify parenthesizes s unless its first operator is "^" or it has none.
func bracketify(s string) string {
	i := strings.IndexAny(s, "+-×÷^")
	if i < 0 || s[i] == '^' {
		return s
	}
	return "(" + s + ")"
}

// bracketifySum parenthesizes s if it has a "+" or "-" outside parentheses.
func bracketifySum(s string) string {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case '+', '-':
			if depth == 0 {
				return "(" + s + ")"
			}
		}
	}
	return s
}
