package notation

import (
	"math"
	"strconv"
	"strings"
)

// YesNo writes "YES" for every value except 0, which is "NO".
type YesNo struct{}

func (YesNo) Name() string { return "YesNo" }

func (YesNo) Infinite() string { return "YES" }

func (YesNo) NegativeInfinite() string { return "YES" }

func yesNo(nonZero bool) string {
	if nonZero {
		return "YES"
	}
	return "NO"
}

func (YesNo) FormatVerySmall(_ *Formatter, v Magnitude, _ int) string {
	return yesNo(!v.IsZero())
}

func (YesNo) FormatNegativeVerySmall(_ *Formatter, v Magnitude, _ int) string {
	return yesNo(!v.IsZero())
}

func (YesNo) FormatUnder1000(_ *Formatter, x float64, _ int) string {
	return yesNo(x != 0)
}

func (YesNo) FormatNegativeUnder1000(_ *Formatter, x float64, _ int) string {
	return yesNo(x != 0)
}

func (YesNo) FormatDecimal(_ *Formatter, v Magnitude, _, _ int) string {
	return yesNo(!v.IsZero())
}

func (YesNo) FormatNegativeDecimal(_ *Formatter, v Magnitude, _, _ int) string {
	return yesNo(!v.IsZero())
}

var greekLetters = strings.Split("άαβγδεζηθικλμνξοπρστυφχψωΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ", "")

// GreekLetters writes exponent / 3 in base 49 over Greek letters,
// after a mantissa below 1000.
type GreekLetters struct{}

func (GreekLetters) Name() string { return "Greek Letters" }

func (GreekLetters) FormatDecimal(_ *Formatter, v Magnitude, places, _ int) string {
	mantissa := math.Pow(10, math.Mod(float64(v.exp)+math.Log(math.Max(v.mant, 1)), 3))
	mantissa, e := FixMantissaOverflow(mantissa, floorDiv(v.exp, 3), places, 1000, 1)

	n := float64(len(greekLetters))
	exp := float64(e)
	step := math.Pow(n, math.Floor(math.Log(exp)/math.Log(n)))

	var suffix strings.Builder
	for step >= 1 {
		ord := math.Floor(exp / step)
		ord = math.Max(0, math.Min(ord, n-1))
		suffix.WriteString(greekLetters[int(ord)])
		exp -= step * ord
		step /= n
	}

	return fixed(mantissa, places) + " " + suffix.String()
}

// Evil is [Scientific] except that values whose log2(log2(v)) lies near an
// integer n >= 6 are squared for even n and square rooted for odd n.
type Evil struct{}

func (Evil) Name() string { return "Evil" }

func (Evil) FormatDecimal(f *Formatter, v Magnitude, places, _ int) string {
	loglog := math.Log2((float64(v.exp) + math.Log(math.Max(v.mant, 1))) / math.Ln2)
	rounded := math.Round(loglog)
	adjusted := v
	if rounded >= 6 && math.Abs(loglog-rounded) <= 0.25 {
		p := 0.5
		if math.Mod(rounded, 2) == 0 {
			p = 2
		}
		// v is positive, so Pow cannot fail.
		adjusted, _ = v.Pow(p)
	}
	return f.with(Scientific{}).format(adjusted, Places{Places: places, Exponent: places})
}

var emojier = [...]string{"🎂", "🎄", "💀", "👪", "🌈", "💯", "🎃", "💋", "😂", "🌙"}

// Emojier is [Scientific] with repeated digits replaced by emoji.
type Emojier struct{}

func (Emojier) Name() string { return "Emojier" }

func (Emojier) FormatUnder1000(_ *Formatter, x float64, places int) string {
	return affect(fixed(x, places))
}

func (Emojier) FormatDecimal(f *Formatter, v Magnitude, places, placesExponent int) string {
	return affect(f.with(Scientific{}).FormatDecimal(v, places, placesExponent))
}

// affect replaces every digit whose residue mod 5 was already seen with
// an emoji picked by the position of the first digit with that residue
// and by the parity of its own position.
func affect(s string) string {
	var (
		b    strings.Builder
		seen []int
	)
	for i, r := range []rune(s) {
		if r < '0' || r > '9' {
			b.WriteRune(r)
			continue
		}
		d := int(r - '0')
		idx, exact := -1, false
		for j, x := range seen {
			if idx < 0 && x%5 == d%5 {
				idx = j
			}
			if x == d {
				exact = true
			}
		}
		if idx < 0 {
			seen = append(seen, d)
			b.WriteRune(r)
			continue
		}
		k := i
		if !exact {
			k++
		}
		b.WriteString(emojier[idx+5*(k%2)])
	}
	return b.String()
}

// Nice writes log69(v) with at least 2 places, with "-" replaced by "^".
type Nice struct{}

func (Nice) Name() string { return "Nice" }

func (Nice) Infinite() string { return "69420" }

func (n Nice) FormatUnder1000(f *Formatter, x float64, places int) string {
	return n.FormatDecimal(f, newMagnitude(false, x, 0), places, places)
}

func (Nice) FormatDecimal(_ *Formatter, v Magnitude, places, _ int) string {
	return strings.Replace(fixed(v.Log(69), max(2, places)), "-", "^", 1)
}

// HahaFunny writes the base 69 digits of 69²·log69(v), each plus one,
// least significant first.
type HahaFunny struct{}

func (HahaFunny) Name() string { return "Haha Funny" }

func (HahaFunny) Infinite() string { return "69420" }

func (h HahaFunny) FormatUnder1000(f *Formatter, x float64, places int) string {
	return h.FormatDecimal(f, newMagnitude(false, x, 0), places, places)
}

func (h HahaFunny) FormatDecimal(f *Formatter, v Magnitude, places, placesExponent int) string {
	if v.IsZero() {
		return "42069"
	}
	if v.Cmp(New(1, 0)) < 0 {
		inv, _ := v.Inv()
		return reverse(h.FormatDecimal(f, inv, places, placesExponent))
	}

	log69 := math.Ln10 / math.Log(69) * (float64(v.exp) + math.Log(math.Max(v.mant, 1)))
	l := math.Floor(log69 * 69 * 69)
	var parts []string
	for l > 0 || len(parts) < 3 {
		rem := math.Mod(l, 69)
		l = math.Floor(l / 69)
		parts = append(parts, strconv.FormatFloat(rem+1, 'f', -1, 64))
	}
	return strings.Join(parts, "")
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
