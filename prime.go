package notation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxFactor caps trial division.
// Cofactors left after it are kept whole, prime or not.
const maxFactor = 10_000

var errCofactor = fmt.Errorf("cofactor beyond the trial division cap: %w", ErrUnrepresentable)

// Factorize returns the prime factors of n in ascending order, with
// repetitions, found by trial division by 2, 3 and then 6k±1 up to
// min(10000, √n).
// A cofactor left over after the cap is returned as the last element even
// if it is composite.
// Factorize returns nil for 0 and 1.
func Factorize(n uint64) []uint64 {
	factors, _ := factorize(n)
	return factors
}

// FactorizeExact is like [Factorize] but returns an error if the last
// factor might be composite.
func FactorizeExact(n uint64) ([]uint64, error) {
	factors, exact := factorize(n)
	if !exact {
		return factors, fmt.Errorf("factorizing %v: %w", n, errCofactor)
	}
	return factors, nil
}

func factorize(n uint64) (factors []uint64, exact bool) {
	if n < 2 {
		return nil, true
	}
	for _, k := range [...]uint64{2, 3} {
		for n%k == 0 {
			factors = append(factors, k)
			n /= k
		}
	}

	lim := min(uint64(maxFactor), uint64(fint(n).sqrt()))
	capped := lim == maxFactor
	for a := uint64(5); a <= lim && a < n; {
		for n%a == 0 {
			factors = append(factors, a)
			n /= a
		}
		a += 2
		for n%a == 0 {
			factors = append(factors, a)
			n /= a
		}
		a += 4
	}

	if n > 1 {
		factors = append(factors, n)
	}
	return factors, !capped || n <= maxFactor*maxFactor
}

// FormatFactors writes ascending prime factors as a product, collapsing
// runs of equal primes into superscript powers: [2 2 3] is "2²×3".
// An empty product is "1".
func FormatFactors(factors []uint64) string {
	if len(factors) == 0 {
		return "1"
	}
	var out []string
	last, count := factors[0], 0
	flush := func() {
		s := strconv.FormatUint(last, 10)
		if count > 1 {
			s += Superscript(float64(count))
		}
		out = append(out, s)
	}
	for _, p := range factors {
		if p == last {
			count++
			continue
		}
		flush()
		last, count = p, 1
	}
	flush()
	return strings.Join(out, "×")
}

// PrecisePrime writes values as products of primes.
// Values beyond 2^53-1 are approximated as power towers
// base^exp or base^exp^exp2 with every level factorized.
type PrecisePrime struct{}

func (PrecisePrime) Name() string { return "Precise Prime" }

func (PrecisePrime) Infinite() string { return "Primefinity?" }

func (PrecisePrime) FormatUnder1000(_ *Formatter, x float64, _ int) string {
	return primify(newMagnitude(false, x, 0))
}

func (PrecisePrime) FormatDecimal(_ *Formatter, v Magnitude, _, _ int) string {
	return primify(v)
}

var (
	maxSafe      = New(maxSafeInt, 0)
	maxSafeLog10 = math.Log10(maxSafeInt)
)

func primify(v Magnitude) string {
	if v.Cmp(maxSafe) <= 0 {
		n := math.Floor(v.Float64())
		switch n {
		case 0:
			return "0"
		case 1:
			return "1"
		}
		return FormatFactors(Factorize(uint64(n)))
	}

	exp := float64(v.exp) / maxSafeLog10
	base := math.Pow(maxSafeInt, exp/math.Ceil(exp))
	if exp <= maxSafeInt {
		return formatPowerTower([]uint64{uint64(math.Round(base)), uint64(math.Ceil(exp))})
	}

	exp2 := math.Log10(exp) / maxSafeLog10
	exp2Ceil := math.Ceil(exp2)
	exp = math.Pow(maxSafeInt, exp2/exp2Ceil)
	base = math.Pow(maxSafeInt, exp/math.Ceil(exp))
	return formatPowerTower([]uint64{uint64(math.Round(base)), uint64(math.Ceil(exp)), uint64(exp2Ceil)})
}

// formatPowerTower factorizes every level of base^exp^... .
// A level is parenthesized when it has more than one distinct prime, or
// when it precedes a last level that is a single prime written as a
// superscript.
// Trailing levels of 1 are dropped.
func formatPowerTower(levels []uint64) string {
	for len(levels) > 1 && levels[len(levels)-1] == 1 {
		levels = levels[:len(levels)-1]
	}
	if len(levels) == 1 {
		return FormatFactors(Factorize(levels[0]))
	}
	last := len(levels) - 1
	factorizations := make([][]uint64, len(levels))
	for i, x := range levels {
		factorizations[i] = Factorize(x)
	}
	superscriptLast := len(factorizations[last]) == 1

	formatted := make([]string, 0, len(levels))
	for i, x := range factorizations {
		paren := len(x) > 0 && x[0] != x[len(x)-1] ||
			i == last-1 && len(x) > 1 && superscriptLast
		var s string
		if i == last && superscriptLast {
			s = Superscript(float64(x[0]))
		} else {
			s = FormatFactors(x)
		}
		if paren {
			s = "(" + s + ")"
		}
		formatted = append(formatted, s)
	}

	if superscriptLast {
		formatted[last-1] += formatted[last]
		formatted = formatted[:last]
	}
	return strings.Join(formatted, "^")
}
