package notation

import "math"

// Bisection configures the search of [Tetrate3Root].
type Bisection struct {
	Low, High     float64 // initial bracket
	Tolerance     float64 // stop when High - Low is not above it
	MaxIterations int     // hard stop, 64 if not positive
}

// DefaultBisection brackets the root in [0, 16], which covers every value
// up to 16↑↑3 ≈ 10^(2.2×10^19).
var DefaultBisection = Bisection{Low: 0, High: 16, Tolerance: 1e-7, MaxIterations: 64}

// Tetrate3Root returns the lower bound x of the bisection bracket where
// x^(x^x) crosses v.
// Values above High↑↑3 converge to High, values not above Low↑↑3 stay at Low.
func Tetrate3Root(v Magnitude, b Bisection) float64 {
	low, high := b.Low, b.High
	maxIter := b.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultBisection.MaxIterations
	}
	for i := 0; i < maxIter && high-low > b.Tolerance; i++ {
		mid := (low + high) / 2
		if tetrate3(mid).Cmp(v) < 0 {
			low = mid
		} else {
			high = mid
		}
	}
	return low
}

// tetrate3 returns x↑↑3 = x^(x^x) for x >= 0.
func tetrate3(x float64) Magnitude {
	if x <= 0 {
		return Magnitude{}
	}
	return NewFromLog10(math.Pow(x, x) * math.Log10(x))
}

// Tritetrated writes values as x↑↑3 with 4 decimal places.
type Tritetrated struct {
	// Bisection defaults to DefaultBisection.
	Bisection Bisection
}

func (Tritetrated) Name() string { return "Tritetrated" }

func (Tritetrated) Infinite() string { return "Infinity" }

func (t Tritetrated) FormatUnder1000(_ *Formatter, x float64, _ int) string {
	return t.tritetrated(newMagnitude(false, x, 0))
}

func (t Tritetrated) FormatDecimal(_ *Formatter, v Magnitude, _, _ int) string {
	return t.tritetrated(v)
}

func (t Tritetrated) tritetrated(v Magnitude) string {
	b := t.Bisection
	if b == (Bisection{}) {
		b = DefaultBisection
	}
	return fixed(Tetrate3Root(v, b), 4) + "↑↑3"
}
