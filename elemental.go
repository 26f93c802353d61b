package notation

import (
	"math"
	"strconv"
	"strings"
)

// elementPeriods lists the chemical elements by period of the periodic table.
var elementPeriods = [...][]string{
	{"H"},
	{"He", "Li", "Be", "B", "C", "N", "O", "F"},
	{"Ne", "Na", "Mg", "Al", "Si", "P", "S", "Cl"},
	{"Ar", "K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br"},
	{"Kr", "Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn", "Sb", "Te", "I"},
	{"Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi", "Po", "At"},
	{"Rn", "Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts"},
	{"Og"},
}

var logElements = math.Log(118)

// Elemental writes values as sums of chemical element symbols, each
// standing for a power of 118.
type Elemental struct{}

func (Elemental) Name() string { return "Elemental" }

func (Elemental) Infinite() string { return "Infinity" }

func (Elemental) FormatUnder1000(_ *Formatter, x float64, places int) string {
	return elemental(newMagnitude(false, x, 0), places)
}

func (Elemental) FormatDecimal(_ *Formatter, v Magnitude, places, _ int) string {
	return elemental(v, places)
}

type elementPart struct {
	symbol string
	count  float64
}

func (p elementPart) String() string {
	if p.count == 1 {
		return p.symbol
	}
	return shortNumber(p.count) + " " + p.symbol
}

// element returns the symbol of the largest element value not above x
// and that value.
func element(x float64) (string, float64) {
	u := math.Log(x) / logElements
	period := math.Floor(u)
	if period > float64(len(elementPeriods)-1) {
		period = float64(len(elementPeriods) - 1)
	}
	list := elementPeriods[int(period)]
	sub := int(math.Floor((u - period) * float64(len(list))))
	sub = min(max(sub, 0), len(list)-1)
	return list[sub], math.Pow(118, period+float64(sub)/float64(len(list)))
}

func elemental(v Magnitude, places int) string {
	l := (float64(v.exp) + math.Log(math.Max(v.mant, 1))) / logElements
	parts, rest := elementParts(l)
	if len(parts) < 4 {
		// A mantissa rounding up to 118 is one more hydrogen.
		if _, carry := FixMantissaOverflow(math.Pow(118, rest), 0, places, 118, 1); carry == 1 {
			parts, rest = elementParts(l - rest + 1)
		}
	}

	formatted := make([]string, len(parts))
	for i, p := range parts {
		formatted[i] = p.String()
	}
	if len(parts) >= 4 {
		return strings.Join(formatted, " + ")
	}

	mantissa := fixed(math.Pow(118, rest), places)
	switch len(parts) {
	case 0:
		return mantissa
	case 1:
		return mantissa + " × " + formatted[0]
	}
	return mantissa + " × (" + strings.Join(formatted, " + ") + ")"
}

// elementParts splits l into at most 4 element counts, largest element
// first, and returns the remainder below 1.
func elementParts(l float64) ([]elementPart, float64) {
	var parts []elementPart
	for l >= 1 && len(parts) < 4 {
		symbol, value := element(l)
		n := math.Floor(l / value)
		l -= n * value
		parts = append([]elementPart{{symbol: symbol, count: n}}, parts...)
	}
	return parts, l
}

// shortNumber writes x in the shortest form, switching to exponent form at 1e21.
func shortNumber(x float64) string {
	if math.Abs(x) < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
