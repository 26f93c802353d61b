package notation

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var japaneseMyriads = [...]string{
	"", "万", "億", "兆", "京", "垓", "秭", "穣", "溝", "澗", "正", "載", "極",
	"恒河沙", "阿僧祇", "那由他", "不可思議", "無量大数",
}

// Japanese writes values in myriads, groups of four digits, naming the
// two leading groups, so 123456789 is "1億2346万".
// Values from 10^72 on are written as mantissa×10の exponent 乗.
type Japanese struct{}

func (Japanese) Name() string { return "Japanese" }

func (Japanese) Infinite() string { return "無限" }

func (Japanese) FormatDecimal(_ *Formatter, v Magnitude, places, _ int) string {
	if s, ok := japanese(v); ok {
		return s
	}
	mantissa, exp := FixMantissaOverflow(v.mant, v.exp, places, 10, 1)
	s, _ := japanese(New(float64(exp), 0))
	return fixed(mantissa, places) + "×10の" + s + "乗"
}

// japanese reports false if v has no named myriad.
func japanese(v Magnitude) (string, bool) {
	mantissa, exp := Reduce(v, 10, 4)
	mantissa, exp = FixMantissaOverflow(mantissa, exp, 4, 1e4, 4)
	i := int(exp / 4)
	if i >= len(japaneseMyriads) {
		return "", false
	}
	d := decimal.NewFromFloat(mantissa).Round(4)
	whole := d.Floor()
	s := whole.String() + japaneseMyriads[i]
	if rest := d.Sub(whole).Shift(4); i > 0 && !rest.IsZero() {
		s += rest.String() + japaneseMyriads[i-1]
	}
	return s, true
}

var (
	chineseMyriads = [...]string{"", "万", "亿", "兆", "京", "垓", "秭", "穰", "沟", "涧", "正", "载", "极"}
	chineseDigits  = strings.Split("〇一二三四五六七八九", "")
	chinesePlaces  = [...]string{"", "十", "百", "千"}
	chinesePowers  = [...]int64{1, 10, 100, 1000}
)

// Chinese writes the integer part of values in Chinese numerals grouped in
// myriads. From 10^52 on, the leading myriad gets three decimal places and
// each factor of 10^48 appends "极"; from 10^288 on, the count of
// 10^48 factors is itself written in parentheses.
type Chinese struct{}

func (Chinese) Name() string { return "Chinese" }

func (Chinese) Infinite() string { return "無窮" }

func (Chinese) FormatUnder1000(_ *Formatter, x float64, _ int) string {
	return chineseUnder10000(int64(math.Floor(x)))
}

func (Chinese) FormatDecimal(_ *Formatter, v Magnitude, _, _ int) string {
	return chinese(v)
}

func chinese(v Magnitude) string {
	switch {
	case v.exp < 4:
		return chineseUnder10000(int64(math.Floor(v.Float64())))
	case v.exp < 52:
		return chineseTwoMyriads(v)
	}
	n := v.exp / 48
	head := chineseLeadingMyriad(New(v.mant, v.exp-48*n))
	if n < 6 {
		return head + strings.Repeat(chineseMyriads[12], int(n))
	}
	return head + "(" + chinese(New(float64(n), 0)) + ")" + chineseMyriads[12]
}

// chineseTwoMyriads writes the two leading myriads of v.
// The exponent of v must be in [4, 52).
func chineseTwoMyriads(v Magnitude) string {
	exp := floorDiv(v.exp, 4) * 4
	d := v.toDecimal().Shift(-int32(exp))
	whole := d.Floor()
	next := d.Shift(4).Floor().Sub(whole.Shift(4))
	i := exp / 4
	s := chineseUnder10000(whole.IntPart()) + chineseMyriads[i]
	if next.IsPositive() {
		s += chineseUnder10000(next.IntPart()) + chineseMyriads[i-1]
	}
	return s
}

// chineseLeadingMyriad writes the leading myriad of v with three truncated
// decimal places. The exponent of v must be in [0, 52).
func chineseLeadingMyriad(v Magnitude) string {
	exp := floorDiv(v.exp, 4) * 4
	d := v.toDecimal().Shift(-int32(exp))
	ten := decimal.NewFromInt(10)
	var b strings.Builder
	b.WriteString(chineseUnder10000(d.Floor().IntPart()) + "點")
	for x := int32(1); x <= 3; x++ {
		b.WriteString(chineseDigits[d.Shift(x).Floor().Mod(ten).IntPart()])
	}
	b.WriteString(chineseMyriads[exp/4])
	return b.String()
}

// chineseUnder10000 writes n in [0, 10000) digit by digit, skipping
// zeros and writing a one in the tens as "十" alone.
func chineseUnder10000(n int64) string {
	var b strings.Builder
	for x := 3; x >= 0; x-- {
		d := n / chinesePowers[x] % 10
		switch {
		case d == 0:
		case d == 1 && x == 1:
			b.WriteString(chinesePlaces[1])
		default:
			b.WriteString(chineseDigits[d] + chinesePlaces[x])
		}
	}
	if b.Len() == 0 {
		return chineseDigits[0]
	}
	return b.String()
}
