package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, New(1, 9_000_000_000_000_000), cfg.InfiniteThreshold)
	assert.Equal(t, ExponentCommas{Show: true, Min: 100_000, Max: 1_000_000_000}, cfg.ExponentCommas)
	assert.Equal(t, 3, cfg.ExponentDefaultPlaces)
}

func TestParseConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		data := []byte(`
infiniteThreshold: "1.79e308"
exponentCommas:
  show: false
  min: 1000
  max: 1000000
exponentDefaultPlaces: 2
`)
		cfg, err := ParseConfig(data)
		require.NoError(t, err)
		assert.Equal(t, MustParse("1.79e308"), cfg.InfiniteThreshold)
		assert.Equal(t, ExponentCommas{Show: false, Min: 1000, Max: 1_000_000}, cfg.ExponentCommas)
		assert.Equal(t, 2, cfg.ExponentDefaultPlaces)
	})

	t.Run("partial", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("exponentDefaultPlaces: 5\n"))
		require.NoError(t, err)
		want := DefaultConfig()
		want.ExponentDefaultPlaces = 5
		assert.Equal(t, want, cfg)
	})

	t.Run("empty", func(t *testing.T) {
		cfg, err := ParseConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"malformed":          "exponentCommas: [",
			"bad threshold":      `infiniteThreshold: "abc"`,
			"zero threshold":     `infiniteThreshold: "0"`,
			"negative threshold": `infiniteThreshold: "-1e10"`,
			"negative min":       "exponentCommas: {show: true, min: -1, max: 10}",
			"max below min":      "exponentCommas: {show: true, min: 10, max: 5}",
			"negative places":    "exponentDefaultPlaces: -1",
			"wrong type":         "exponentDefaultPlaces: many",
		}
		for name, data := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseConfig([]byte(data))
				assert.ErrorIs(t, err, ErrInvalidArgument)
			})
		}
	})
}

func TestConfig_IsInfinite(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		v    string
		want bool
	}{
		{"0", false},
		{"1e308", false},
		{"8.99e15", false},
		{"9e15", false},
		{"1e9000000000000000", true},
		{"-1e9000000000000000", true},
		{"1e1000000000000000000", true},
	}
	for _, tt := range tests {
		got := cfg.IsInfinite(MustParse(tt.v))
		assert.Equal(t, tt.want, got, "IsInfinite(%v)", tt.v)
	}
}

func TestConfig_ExponentFullyShown(t *testing.T) {
	tests := []struct {
		commas ExponentCommas
		exp    int64
		want   bool
	}{
		{DefaultConfig().ExponentCommas, 5, true},
		{DefaultConfig().ExponentCommas, 99_999, true},
		{DefaultConfig().ExponentCommas, 100_000, true},
		{DefaultConfig().ExponentCommas, 999_999_999, true},
		{DefaultConfig().ExponentCommas, 1_000_000_000, false},
		{ExponentCommas{Show: false, Min: 100_000, Max: 1_000_000_000}, 99_999, true},
		{ExponentCommas{Show: false, Min: 100_000, Max: 1_000_000_000}, 100_000, false},
	}
	for _, tt := range tests {
		cfg := Apply(DefaultConfig(), WithExponentCommas(tt.commas.Show, tt.commas.Min, tt.commas.Max))
		got := cfg.ExponentFullyShown(tt.exp)
		assert.Equal(t, tt.want, got, "%+v.ExponentFullyShown(%v)", tt.commas, tt.exp)
	}
}

func TestApply(t *testing.T) {
	base := DefaultConfig()
	cfg := Apply(base,
		WithInfiniteThreshold(New(1, 308)),
		nil,
		WithExponentCommas(false, 10, 20),
		WithExponentDefaultPlaces(1),
	)
	assert.Equal(t, New(1, 308), cfg.InfiniteThreshold)
	assert.Equal(t, ExponentCommas{Show: false, Min: 10, Max: 20}, cfg.ExponentCommas)
	assert.Equal(t, 1, cfg.ExponentDefaultPlaces)
	assert.Equal(t, DefaultConfig(), base, "Apply modified its base")

	replaced := Apply(base, WithConfig(cfg))
	assert.Equal(t, cfg, replaced)
}
