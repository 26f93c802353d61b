package notation

import (
	"math"
	"strconv"
	"strings"
)

var omegaLetters = strings.Split("βζλψΣΘΨω", "")

// omegaLog is log10 of 8000, the value of one full cycle of omega letters.
var omegaLog = math.Log10(8000)

// Omega writes values as towers of ω over the letters "βζλψΣΘΨω",
// one letter per thousand, with the remainder as a subscript:
// 5 is "β₅", 8000 is "ω^β₀" and huge values become "ω[order](...)".
type Omega struct{}

func (Omega) Name() string { return "Omega" }

func (Omega) Infinite() string { return "Ω" }

func (Omega) FormatUnder1000(_ *Formatter, x float64, _ int) string {
	return omega(newMagnitude(false, x, 0), false)
}

func (Omega) FormatDecimal(_ *Formatter, v Magnitude, _, _ int) string {
	return omega(v, false)
}

// OmegaShort is [Omega] with shorter towers and no nested ω(...) forms.
type OmegaShort struct{}

func (OmegaShort) Name() string { return "Omega (Short)" }

func (OmegaShort) Infinite() string { return "Ω" }

func (OmegaShort) FormatUnder1000(_ *Formatter, x float64, _ int) string {
	return omega(newMagnitude(false, x, 0), true)
}

func (OmegaShort) FormatDecimal(_ *Formatter, v Magnitude, _, _ int) string {
	return omega(v, true)
}

// omega decomposes v into step = ⌊round(v)/1000⌋ letters and amount = ⌊step/8⌋ omegas.
func omega(v Magnitude, short bool) string {
	step := New(v.mant, v.exp-3).Floor()
	rem := math.Mod(v.Float64(), 1000)
	if v.Cmp(maxSafe) <= 0 {
		// The remainder is written rounded, so the step follows the rounded value.
		x := math.Round(v.Float64())
		step = newMagnitude(false, math.Floor(x/1000), 0)
		rem = math.Mod(x, 1000)
	}
	amount := New(step.mant/8, step.exp).Floor()

	last := "ω"
	if n, ok := step.Int64(); ok && n <= maxSafeInt {
		last = omegaLetters[n%int64(len(omegaLetters))] + Subscript(rem)
	}

	order := (float64(v.exp) + math.Log(math.Max(v.mant, 1))) / omegaLog

	towerLimit := int64(3)
	if short {
		towerLimit = 2
	}

	n, ok := amount.Int64()
	switch {
	case amount.IsZero():
		return last
	case ok && n <= towerLimit:
		return strings.Repeat("ω^", int(n)) + last
	case ok && n < 10:
		return "ω(" + strconv.FormatInt(n, 10) + ")^" + last
	case !short && order < 3:
		return "ω(" + omega(amount, short) + ")^" + last
	case !short && order < 6:
		return "ω(" + omega(amount, short) + ")"
	}

	val := newMagnitude(false, math.Pow(8000, math.Mod(order, 1)), 0)
	var orderStr string
	if order < 100 {
		orderStr = strconv.FormatFloat(math.Floor(order), 'f', 0, 64)
	} else {
		orderStr = omega(newMagnitude(false, math.Floor(order), 0), short)
	}
	return "ω[" + orderStr + "](" + omega(val, short) + ")"
}
