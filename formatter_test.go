package notation

import (
	"math"
	"testing"

	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hookStyle implements every optional hook with a fixed token.
type hookStyle struct{}

func (hookStyle) Name() string { return "Hooks" }

func (hookStyle) Infinite() string { return "I" }

func (hookStyle) NegativeInfinite() string { return "NI" }

func (hookStyle) FormatUnder1000(*Formatter, float64, int) string { return "U" }

func (hookStyle) FormatNegativeUnder1000(*Formatter, float64, int) string { return "NU" }

func (hookStyle) FormatVerySmall(*Formatter, Magnitude, int) string { return "V" }

func (hookStyle) FormatNegativeVerySmall(*Formatter, Magnitude, int) string { return "NV" }

func (hookStyle) FormatDecimal(*Formatter, Magnitude, int, int) string { return "D" }

func (hookStyle) FormatNegativeDecimal(*Formatter, Magnitude, int, int) string { return "ND" }

// bareStyle implements only the required hooks.
type bareStyle struct{}

func (bareStyle) Name() string { return "Bare" }

func (bareStyle) FormatDecimal(_ *Formatter, v Magnitude, _, _ int) string {
	return "D" + v.String()
}

// decimalOnlyStyle routes every finite value to FormatDecimal.
type decimalOnlyStyle struct{ bareStyle }

func (decimalOnlyStyle) DecimalOnly() bool { return true }

func TestNewFormatter(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f, err := NewFormatter(Scientific{}, WithExponentDefaultPlaces(1))
		require.NoError(t, err)
		assert.Equal(t, "Scientific", f.Name())
		assert.Equal(t, Scientific{}, f.Style())
		assert.Equal(t, 1, f.Config().ExponentDefaultPlaces)
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			style Style
			opts  []Option
		}{
			"nil style":       {nil, nil},
			"zero threshold":  {Scientific{}, []Option{WithInfiniteThreshold(Magnitude{})}},
			"negative places": {Scientific{}, []Option{WithExponentDefaultPlaces(-1)}},
			"inverted commas": {Scientific{}, []Option{WithExponentCommas(true, 10, 5)}},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewFormatter(tt.style, tt.opts...)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Panics(t, func() { MustNewFormatter(tt.style, tt.opts...) })
			})
		}
	})
}

func TestRegime_String(t *testing.T) {
	tests := []struct {
		r    Regime
		want string
	}{
		{RegimeInfinite, "infinite"},
		{RegimeVerySmall, "very small"},
		{RegimeUnder1000, "under 1000"},
		{RegimeDecimal, "decimal"},
		{Regime(42), "Regime(42)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.r.String())
	}
}

func TestFormatter_Classify(t *testing.T) {
	f := MustNewFormatter(bareStyle{})
	d := MustNewFormatter(decimalOnlyStyle{})

	tests := []struct {
		v           string
		want        Regime
		wantDecOnly Regime
	}{
		{"0", RegimeUnder1000, RegimeDecimal},
		{"5", RegimeUnder1000, RegimeDecimal},
		{"999.999", RegimeUnder1000, RegimeDecimal},
		{"-999", RegimeUnder1000, RegimeDecimal},
		{"1000", RegimeDecimal, RegimeDecimal},
		{"-1000", RegimeDecimal, RegimeDecimal},
		{"1e-300", RegimeUnder1000, RegimeDecimal},
		{"1e-301", RegimeVerySmall, RegimeDecimal},
		{"-1e-400", RegimeVerySmall, RegimeDecimal},
		{"9.99e8999999999999999", RegimeDecimal, RegimeDecimal},
		{"1e9000000000000000", RegimeInfinite, RegimeInfinite},
		{"-1e9000000000000000", RegimeInfinite, RegimeInfinite},
		{"1e1000000000000000000", RegimeInfinite, RegimeInfinite},
	}
	for _, tt := range tests {
		v := MustParse(tt.v)
		assert.Equal(t, tt.want, f.Classify(v), "Classify(%v)", tt.v)
		assert.Equal(t, tt.wantDecOnly, d.Classify(v), "decimal only Classify(%v)", tt.v)
	}
}

func TestFormatter_Hooks(t *testing.T) {
	f := MustNewFormatter(hookStyle{})
	tests := []struct {
		v, want string
	}{
		{"0", "U"},
		{"5", "U"},
		{"-5", "NU"},
		{"1e-400", "V"},
		{"-1e-400", "NV"},
		{"1000", "D"},
		{"-1000", "ND"},
		{"1e9000000000000000", "I"},
		{"-1e9000000000000000", "NI"},
	}
	for _, tt := range tests {
		got := f.MustFormat(MustParse(tt.v), 2)
		assert.Equal(t, tt.want, got, "Format(%v)", tt.v)
	}
}

func TestFormatter_DefaultHooks(t *testing.T) {
	f := MustNewFormatter(bareStyle{})
	tests := []struct {
		v      string
		places Places
		want   string
	}{
		{"0", NewPlaces(2), "0"},
		{"5", NewPlaces(2), "5"},
		{"2.5", NewPlaces(2), "3"},
		{"-2.5", NewPlaces(2), "-3"},
		{"1.2345", Places{Under1000: 2}, "1.23"},
		{"-1.2345", Places{Under1000: 2}, "-1.23"},
		{"999.999", Places{Under1000: 2}, "1000.00"},
		{"1.00000000001", Places{Under1000: 11}, "1.00000000001"},
		{"2.99999999999999", Places{Under1000: 14}, "2.99999999999999"},
		{"1e-301", Places{Under1000: 2}, "0.00"},
		{"-1e-301", Places{Under1000: 2}, "-0.00"},
		{"1000", NewPlaces(2), "D1000"},
		{"-1000", NewPlaces(2), "-D1000"},
		{"1e9000000000000000", NewPlaces(2), "Infinite"},
		{"-1e9000000000000000", NewPlaces(2), "-Infinite"},
	}
	for _, tt := range tests {
		got, err := f.FormatPlaces(MustParse(tt.v), tt.places)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "FormatPlaces(%v, %+v)", tt.v, tt.places)
	}
}

func TestFormatter_Format(t *testing.T) {
	f := MustNewFormatter(Scientific{})
	tests := []struct {
		v      string
		places int
		want   string
	}{
		{"0", 2, "0"},
		{"5", 2, "5"},
		{"999", 2, "999"},
		{"999.994", 2, "1000"},
		{"1000", 2, "1.00e3"},
		{"1000", 0, "1e3"},
		{"1234", 2, "1.23e3"},
		{"-1234", 2, "-1.23e3"},
		{"1.5e6", 1, "1.5e6"},
		{"9e15", 2, "9.00e15"},
		{"1e99999", 2, "1.00e99999"},
		{"1.5e123456", 2, "1.50e123,456"},
		{"1e10000000000", 2, "1e1.00e10"},
		{"1e9000000000000000", 2, "Infinite"},
		{"-1e9000000000000000", 2, "-Infinite"},
		{"1e-5", 2, "0"},
		{"1e-400", 2, "0"},
	}
	for _, tt := range tests {
		got, err := f.Format(MustParse(tt.v), tt.places)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Format(%v, %v)", tt.v, tt.places)
	}
}

func TestFormatter_Config(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		v    string
		want string
	}{
		{"no commas", []Option{WithExponentCommas(false, 100_000, 1_000_000_000)}, "1e123456789", "1e1.23e8"},
		{"no commas below min", []Option{WithExponentCommas(false, 100_000, 1_000_000_000)}, "1e99999", "1.00e99999"},
		{"commas from zero", []Option{WithExponentCommas(true, 0, 1_000_000)}, "1e1234", "1.00e1,234"},
		{"commas up to max", []Option{WithExponentCommas(true, 0, 1_000_000)}, "1e1000000", "1e1.00e6"},
		{"threshold", []Option{WithInfiniteThreshold(New(1, 308))}, "1e308", "Infinite"},
		{"below threshold", []Option{WithInfiniteThreshold(New(1, 308))}, "1e307", "1.00e307"},
		{"negative threshold", []Option{WithInfiniteThreshold(New(1, 308))}, "-1e308", "-Infinite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := MustNewFormatter(Scientific{}, tt.opts...)
			got := f.MustFormat(MustParse(tt.v), 2)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatter_FormatExponent(t *testing.T) {
	f := MustNewFormatter(Scientific{})
	tests := []struct {
		exp  int64
		want string
	}{
		{5, "5"},
		{99_999, "99999"},
		{100_000, "100,000"},
		{123_456_789, "123,456,789"},
		{1_000_000_000, "1.000e9"},
		{1_234_567_890_123, "1.235e12"},
	}
	for _, tt := range tests {
		got := f.FormatExponent(tt.exp)
		assert.Equal(t, tt.want, got, "FormatExponent(%v)", tt.exp)
	}

	assert.Equal(t, "1.23e12", f.FormatExponentPlaces(1_234_567_890_123, 1))
	assert.Equal(t, "1.2346e12", f.FormatExponentPlaces(1_234_567_890_123, 4))
}

func TestFormatter_FormatFloat64(t *testing.T) {
	f := MustNewFormatter(Scientific{})
	tests := []struct {
		x    float64
		want string
	}{
		{0, "0"},
		{12.5, "13"},
		{-12.5, "-13"},
		{1234.5, "1.23e3"},
		{-1e300, "-1.00e300"},
		{math.NaN(), "Infinite"},
		{math.Inf(1), "Infinite"},
		{math.Inf(-1), "-Infinite"},
	}
	for _, tt := range tests {
		got, err := f.FormatFloat64(tt.x, 2)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "FormatFloat64(%v)", tt.x)
	}

	got, err := MustNewFormatter(Omega{}).FormatFloat64(math.Inf(-1), 0)
	require.NoError(t, err)
	assert.Equal(t, "-Ω", got)
}

func TestFormatter_NegativePlaces(t *testing.T) {
	f := MustNewFormatter(Scientific{})
	v := MustParse("1234")

	_, err := f.Format(v, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	for _, p := range []Places{
		{Places: -1},
		{Under1000: -1},
		{Exponent: -1},
	} {
		_, err := f.FormatPlaces(v, p)
		assert.ErrorIs(t, err, ErrInvalidArgument, "FormatPlaces(%v, %+v)", v, p)
	}

	_, err = f.FormatFloat64(1234, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Panics(t, func() { f.MustFormat(v, -1) })
}

func TestFormatter_SignSymmetry(t *testing.T) {
	values := []string{"0.5", "5", "999", "1000", "1234.5678", "1e15", "1e100", "1.5e123456", "1e10000000000", "1e-400"}
	for _, s := range Styles() {
		switch s.(type) {
		case NegativeDecimalStyle, NegativeUnder1000Style, NegativeVerySmallStyle:
			continue
		}
		f := MustNewFormatter(s)
		for _, str := range values {
			v := MustParse(str)
			pos := f.MustFormat(v, 2)
			neg := f.MustFormat(v.Neg(), 2)
			assert.Equal(t, "-"+pos, neg, "%v: Format(-%v)", f.Name(), str)
		}
	}
}

func TestFormatter_AllStyles(t *testing.T) {
	values := []string{
		"0", "0.5", "5", "999", "1000", "1234.5678", "1e15", "1e100", "1e1000",
		"1.5e123456", "1e10000000000", "-1234", "1e-400", "1e8999999999999999",
	}
	for _, s := range Styles() {
		f := MustNewFormatter(s)
		for _, str := range values {
			got := f.MustFormat(MustParse(str), 2)
			assert.NotEmpty(t, got, "%v: Format(%v)", f.Name(), str)
		}
		inf := f.MustFormat(MustParse("1e9000000000000000"), 2)
		assert.Equal(t, f.Infinite(), inf, "%v: Format(1e9000000000000000)", f.Name())
	}
}

func TestFormatter_Concurrency(t *testing.T) {
	values := []string{"5", "1234", "1.5e6", "1e100", "1.5e123456", "1e10000000000", "-1234"}
	for _, s := range Styles() {
		f := MustNewFormatter(s)
		want := make([]string, len(values))
		for i, str := range values {
			want[i] = f.MustFormat(MustParse(str), 2)
		}

		got := make([][]string, 16)
		var wg conc.WaitGroup
		for g := range got {
			g := g
			wg.Go(func() {
				res := make([]string, len(values))
				for i, str := range values {
					res[i] = f.MustFormat(MustParse(str), 2)
				}
				got[g] = res
			})
		}
		wg.Wait()

		for _, res := range got {
			assert.Equal(t, want, res, "%v", f.Name())
		}
	}
}
