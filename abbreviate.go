package notation

import (
	"regexp"
	"strings"
)

var standardAbbreviations = [...]string{"K", "M", "B", "T", "Qa", "Qt", "Sx", "Sp", "Oc", "No"}

var standardPrefixes = [3][10]string{
	{"", "U", "D", "T", "Qa", "Qt", "Sx", "Sp", "O", "N"},
	{"", "Dc", "Vg", "Tg", "Qd", "Qi", "Se", "St", "Og", "Nn"},
	{"", "Ce", "Dn", "Tc", "Qe", "Qu", "Sc", "Si", "Oe", "Ne"},
}

var standardPrefixes2 = [...]string{"", "MI-", "MC-", "NA-", "PC-", "FM-", "AT-", "ZP-", "YT-", "RN-", "QC-"}

var (
	abbrInnerGroup = regexp.MustCompile(`-[A-Z]{2}-`)
	abbrLeadingU   = regexp.MustCompile(`U([A-Z]{2}-)`)
	abbrTrailing   = regexp.MustCompile(`-$`)
)

// AbbreviateStandard returns the short scale suffix of 1000^n:
// "" for n = 0, "K" for n = 1, "M" for n = 2 and so on through the
// Latin-derived prefixes ("Dc", "UDc", "MI", "MI-QaDc"...).
func AbbreviateStandard(n int64) string {
	exp := n - 1
	switch {
	case exp < 0:
		return ""
	case exp < int64(len(standardAbbreviations)):
		return standardAbbreviations[exp]
	}

	var prefix []string
	for e := exp; e > 0; e /= 10 {
		prefix = append(prefix, standardPrefixes[len(prefix)%3][e%10])
	}
	for len(prefix)%3 != 0 {
		prefix = append(prefix, "")
	}

	var b strings.Builder
	for i := len(prefix)/3 - 1; i >= 0; i-- {
		b.WriteString(prefix[i*3])
		b.WriteString(prefix[i*3+1])
		b.WriteString(prefix[i*3+2])
		b.WriteString(standardPrefixes2[i])
	}

	s := abbrInnerGroup.ReplaceAllString(b.String(), "-")
	s = abbrLeadingU.ReplaceAllString(s, "$1")
	return abbrTrailing.ReplaceAllString(s, "")
}

// swapSeparators exchanges "." and "," in s.
func swapSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.':
			return ','
		case ',':
			return '.'
		}
		return r
	}, s)
}
