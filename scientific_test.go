package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// formatAll formats the values with places for mantissas and exponents.
func formatAll(t *testing.T, s Style, places int, values ...string) []string {
	t.Helper()
	f := MustNewFormatter(s)
	got := make([]string, len(values))
	for i, v := range values {
		got[i] = f.MustFormat(MustParse(v), places)
	}
	return got
}

var positionalValues = []string{
	"0", "5", "999.994", "1000", "1234", "123456", "999999.5", "1.5e6",
	"1e33", "1.23e100000", "1e123456789", "1e1000000000", "-1234",
}

func TestPositionalStyles(t *testing.T) {
	tests := []struct {
		style Style
		name  string
		want  []string
	}{
		{
			Scientific{}, "Scientific",
			[]string{
				"0", "5", "1000", "1.00e3", "1.23e3", "1.23e5", "1.00e6", "1.50e6",
				"1.00e33", "1.23e100,000", "1.00e123,456,789", "1e1.00e9", "-1.23e3",
			},
		},
		{
			Engineering{}, "Engineering",
			[]string{
				"0", "5", "1000", "1.00e3", "1.23e3", "123.46e3", "1.00e6", "1.50e6",
				"1.00e33", "12.30e99999", "1.00e123,456,789", "10.00e999,999,999", "-1.23e3",
			},
		},
		{
			Standard{}, "Standard",
			[]string{
				"0", "5", "1000", "1.00 K", "1.23 K", "123.46 K", "1.00 M", "1.50 M",
				"1.00 Dc", "12.30 TTgMI-DTgTc", "1.00 UQdMC-DQiCeMI-DSeDn", "10.00 TTgTcMC-TTgTcMI-DTgTc", "-1.23 K",
			},
		},
		{
			MixedScientific{}, "Mixed scientific",
			[]string{
				"0", "5", "1000", "1.00 K", "1.23 K", "123.46 K", "1.00 M", "1.50 M",
				"1.00e33", "1.23e100,000", "1.00e123,456,789", "1.00e1.00 B", "-1.23 K",
			},
		},
		{
			MixedEngineering{}, "Mixed engineering",
			[]string{
				"0", "5", "1000", "1.00 K", "1.23 K", "123.46 K", "1.00 M", "1.50 M",
				"1.00e33", "12.30e99999", "1.00e123,456,789", "10.00e999,999,999", "-1.23 K",
			},
		},
		{
			LongScale{}, "Long scale",
			[]string{
				"0", "5", "1000", "1,00 K", "1,23 K", "123,46 K", "1,00 M", "1,50 M",
				"1000,00 Qt", "12300,00 SxDcMI-SxSeSc", "1000,00 VgMC-SxStQuMI-UTgCe", "10000,00 SxSeCeMC-SxSeScMI-SxSeSc", "-1,23 K",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.style.Name())
			got := formatAll(t, tt.style, 2, positionalValues...)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMixedCutoff(t *testing.T) {
	got := formatAll(t, MixedScientific{}, 2, "9.99e32", "1e33")
	assert.Equal(t, []string{"999.00 No", "1.00e33"}, got)
}

func TestScientific_Places(t *testing.T) {
	got := formatAll(t, Scientific{}, 0, "1234", "9.6e10", "1e100")
	assert.Equal(t, []string{"1e3", "1e11", "1e100"}, got)

	got = formatAll(t, Scientific{}, 4, "1234", "9.99995e10")
	assert.Equal(t, []string{"1.2340e3", "1.0000e11"}, got)
}

func TestLongScale_Overflow(t *testing.T) {
	got := formatAll(t, LongScale{}, 0, "999999.5", "999999999999.5")
	assert.Equal(t, []string{"1 M", "1 B"}, got)
}

func TestAbbreviateStandard(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{-1, ""},
		{0, ""},
		{1, "K"},
		{2, "M"},
		{3, "B"},
		{4, "T"},
		{5, "Qa"},
		{10, "No"},
		{11, "Dc"},
		{12, "UDc"},
		{21, "Vg"},
		{33, "DTg"},
		{100, "NNn"},
		{101, "Ce"},
		{1000, "NNnNe"},
		{1001, "MI"},
		{1002, "MI-U"},
	}
	for _, tt := range tests {
		got := AbbreviateStandard(tt.n)
		assert.Equal(t, tt.want, got, "AbbreviateStandard(%v)", tt.n)
	}
}

func TestSwapSeparators(t *testing.T) {
	assert.Equal(t, "1.234,56", swapSeparators("1,234.56"))
	assert.Equal(t, "abc", swapSeparators("abc"))
}
