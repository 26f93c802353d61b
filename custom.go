package notation

import (
	"fmt"
	"strings"
)

var errShortLetters = fmt.Errorf("letter sequence must contain at least 2 letters: %w", ErrInvalidArgument)

// Custom writes values as an engineering mantissa followed by the
// exponent / 3 spelled in bijective base-n over a letter sequence:
// with letters "abc", 1e3 is "1a", 1e9 is "1c" and 1e12 is "1aa".
type Custom struct {
	name    string
	letters []string
	mantSep string
	sep     string
}

// NewCustom returns a custom style.
// mantissaExponentSeparator is written between the mantissa and the letters,
// separator between consecutive letters.
//
// NewCustom returns an error if fewer than 2 letters are supplied.
func NewCustom(letters []string, mantissaExponentSeparator, separator string) (*Custom, error) {
	if len(letters) < 2 {
		return nil, fmt.Errorf("got %v letter(s): %w", len(letters), errShortLetters)
	}
	l := make([]string, len(letters))
	copy(l, letters)
	return &Custom{
		name:    "Custom",
		letters: l,
		mantSep: mantissaExponentSeparator,
		sep:     separator,
	}, nil
}

// MustNewCustom is like [NewCustom] but panics if the letter sequence is too short.
func MustNewCustom(letters []string, mantissaExponentSeparator, separator string) *Custom {
	c, err := NewCustom(letters, mantissaExponentSeparator, separator)
	if err != nil {
		panic(fmt.Sprintf("MustNewCustom(%q, %q, %q) failed: %v", letters, mantissaExponentSeparator, separator, err))
	}
	return c
}

func (c *Custom) Name() string { return c.name }

func (c *Custom) FormatDecimal(_ *Formatter, v Magnitude, places, _ int) string {
	m, e := toFixedEngineering(v, places)
	return fixed(m, places) + c.mantSep + strings.Join(c.transcribe(e), c.sep)
}

// transcribe spells exponent / 3 in bijective base len(letters),
// most significant letter first.
func (c *Custom) transcribe(exponent int64) []string {
	n := exponent / 3
	base := int64(len(c.letters))
	if n < 1 {
		return nil
	}
	if n <= base {
		return []string{c.letters[n-1]}
	}

	var letters []string
	for n > base {
		rem := n % base
		i := rem
		if rem == 0 {
			i = base
		}
		letters = append(letters, c.letters[i-1])
		n = (n - rem) / base
		if rem == 0 {
			n--
		}
	}
	letters = append(letters, c.letters[n-1])

	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return letters
}

// flagCodes are the region codes of the [Flags] style, in order.
// "AF" appears twice.
const flagCodes = `
AF AD AE AF AG AI AL AM AO AQ AR AS AT AU AW AX
AZ BA BB BD BE BF BG BH BI BJ BL BM BN BO BQ BR
BS BT BV BW BY BZ CA CC CD CF CG CH CI CK CL CM
CN CO CP CR CU CV CW CX CY CZ DE DG DJ DK DM DO
DZ EA EC EE EG EH ER ES ET EU FI FJ FK FM FO FR
GA GB GD GE GF GG GH GI GL GM GN GP GQ GR GS GT
GU GW GY HK HM HN HR HT HU IC ID IE IL IM IN IO
IQ IR IS IT JE JM JO JP KE KG KH KI KM KN KP KR
KW KY KZ LA LB LC LI LK LR LS LT LU LV LY MA MC
MD ME MF MG MH MK ML MM MN MO MP MQ MR MS MT MU
MV MW MX MY MZ NA NC NE NF NG NI NL NO NP NR NU
NZ OM PA PE PF PG PH PK PL PM PN PR PS PT PW PY
QA RE RO RS RU RW SA SB SC SD SE SG SH SI SJ SK
SL SM SN SO SR SS ST SV SX SY SZ TA TC TD TF TG
TH TJ TK TL TM TN TO TR TT TV TW TZ UA UG UM UN
US UY UZ VA VC VE VG VI VN VU WF WS XK YE YT ZA
ZM ZW
`

// regionalIndicator maps 'A'..'Z' to the regional indicator symbols.
func regionalIndicator(c byte) rune {
	return rune(0x1F1E6 + int(c-'A'))
}

// flagEmoji returns the flag of a two-letter region code.
func flagEmoji(code string) string {
	return string([]rune{regionalIndicator(code[0]), regionalIndicator(code[1])})
}

// Flags returns the [Custom] style spelling exponents with flag emoji.
func Flags() *Custom {
	codes := strings.Fields(flagCodes)
	letters := make([]string, len(codes))
	for i, code := range codes {
		letters[i] = flagEmoji(code)
	}
	c := MustNewCustom(letters, "", "")
	c.name = "Flags"
	return c
}
