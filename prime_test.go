package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorize(t *testing.T) {
	tests := []struct {
		n    uint64
		want []uint64
	}{
		{0, nil},
		{1, nil},
		{2, []uint64{2}},
		{12, []uint64{2, 2, 3}},
		{97, []uint64{97}},
		{360, []uint64{2, 2, 2, 3, 3, 5}},
		{1 << 10, []uint64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}},
		{10007 * 49, []uint64{7, 7, 10007}},
		{10007 * 10009, []uint64{10007 * 10009}},
	}
	for _, tt := range tests {
		got := Factorize(tt.n)
		assert.Equal(t, tt.want, got, "Factorize(%v)", tt.n)
	}
}

func TestFactorizeExact(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := FactorizeExact(1024 * 10007)
		require.NoError(t, err)
		assert.Equal(t, []uint64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 10007}, got)
	})

	t.Run("error", func(t *testing.T) {
		got, err := FactorizeExact(10007 * 10009)
		assert.ErrorIs(t, err, ErrUnrepresentable)
		assert.Equal(t, []uint64{10007 * 10009}, got)
	})
}

func TestFormatFactors(t *testing.T) {
	tests := []struct {
		factors []uint64
		want    string
	}{
		{nil, "1"},
		{[]uint64{7}, "7"},
		{[]uint64{7, 7, 7}, "7³"},
		{[]uint64{2, 2, 3}, "2²×3"},
		{[]uint64{2, 3, 5}, "2×3×5"},
	}
	for _, tt := range tests {
		got := FormatFactors(tt.factors)
		assert.Equal(t, tt.want, got, "FormatFactors(%v)", tt.factors)
	}
}

func TestPrecisePrime(t *testing.T) {
	got := formatAll(t, PrecisePrime{}, 2,
		"0", "1", "2", "12", "360", "997", "1000", "1024", "123456",
		"1e20", "1e100", "1e1000", "-12", "0.5", "2.9", "2.99999999999999")
	want := []string{
		"0", "1", "2", "2²×3", "2³×3²×5", "997", "2³×5³", "2¹⁰", "2⁶×3×643",
		"(2¹⁰×5¹⁰)²", "(2×31×3114028594973)⁷", "(2×5²×149295208168343)^(3²×7)",
		"-2²×3", "0", "2", "2",
	}
	assert.Equal(t, want, got)

	f := MustNewFormatter(PrecisePrime{})
	assert.Equal(t, "Primefinity?", f.MustFormat(MustParse("1e9000000000000000"), 2))
}

func TestFormatPowerTower(t *testing.T) {
	tests := []struct {
		levels []uint64
		want   string
	}{
		{[]uint64{12, 1}, "2²×3"},
		{[]uint64{7, 1}, "7"},
		{[]uint64{7, 1, 1}, "7"},
		{[]uint64{12, 2}, "(2²×3)²"},
		{[]uint64{7, 3}, "7³"},
		{[]uint64{10, 6}, "(2×5)^(2×3)"},
	}
	for _, tt := range tests {
		got := formatPowerTower(tt.levels)
		assert.Equal(t, tt.want, got, "formatPowerTower(%v)", tt.levels)
	}

	got := formatAll(t, PrecisePrime{}, 2, "9.5e15")
	assert.NotContains(t, got[0], "^")
}
