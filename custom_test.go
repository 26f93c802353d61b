package notation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustom(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c, err := NewCustom([]string{"a", "b"}, "", "")
		require.NoError(t, err)
		assert.Equal(t, "Custom", c.Name())
	})

	t.Run("error", func(t *testing.T) {
		for _, letters := range [][]string{nil, {}, {"a"}} {
			_, err := NewCustom(letters, "", "")
			assert.ErrorIs(t, err, ErrInvalidArgument, "NewCustom(%q)", letters)
			assert.Panics(t, func() { MustNewCustom(letters, "", "") })
		}
	})
}

func TestCustom_Transcribe(t *testing.T) {
	c := MustNewCustom(strings.Split("abc", ""), "", "")
	tests := []struct {
		exp  int64
		want []string
	}{
		{0, nil},
		{2, nil},
		{3, []string{"a"}},
		{6, []string{"b"}},
		{9, []string{"c"}},
		{12, []string{"a", "a"}},
		{18, []string{"a", "c"}},
		{27, []string{"b", "c"}},
		{30, []string{"c", "a"}},
		{39, []string{"a", "a", "a"}},
		{42, []string{"a", "a", "b"}},
	}
	for _, tt := range tests {
		got := c.transcribe(tt.exp)
		assert.Equal(t, tt.want, got, "transcribe(%v)", tt.exp)
	}
}

func TestCustom_Format(t *testing.T) {
	t.Run("letters", func(t *testing.T) {
		got := formatAll(t, MustNewCustom(strings.Split("abc", ""), "", ""), 2,
			"0", "5", "1000", "1234", "1e6", "1e9", "1e12", "1e30", "1e100", "-1234")
		want := []string{"0", "5", "1.00a", "1.23a", "1.00b", "1.00c", "1.00aa", "1.00ca", "10.00cac", "-1.23a"}
		assert.Equal(t, want, got)
	})

	t.Run("separators", func(t *testing.T) {
		got := formatAll(t, MustNewCustom([]string{"x", "y"}, "~", "-"), 1,
			"1e3", "1e6", "1e9", "1e12", "999999.96", "-1e6")
		want := []string{"1.0~x", "1.0~y", "1.0~x-x", "1.0~x-y", "1.0~y", "-1.0~y"}
		assert.Equal(t, want, got)
	})

	t.Run("overflow", func(t *testing.T) {
		got := formatAll(t, MustNewCustom(strings.Split("abc", ""), "", ""), 0, "999999.5", "1.5e4")
		assert.Equal(t, []string{"1b", "15a"}, got)
	})

	t.Run("letters are copied", func(t *testing.T) {
		letters := []string{"a", "b"}
		c := MustNewCustom(letters, "", "")
		letters[0] = "z"
		assert.Equal(t, []string{"1.00a"}, formatAll(t, c, 2, "1e3"))
	})
}

func TestFlags(t *testing.T) {
	f := Flags()
	assert.Equal(t, "Flags", f.Name())
	assert.Len(t, f.letters, 258)
	assert.Equal(t, "🇦🇫", flagEmoji("AF"))
	assert.Equal(t, "🇿🇼", f.letters[len(f.letters)-1])

	got := formatAll(t, f, 2, "1e3", "1e6", "1.5e9", "1e777")
	want := []string{"1.00🇦🇫", "1.00🇦🇩", "1.50🇦🇪", "1.00🇦🇫🇦🇫"}
	assert.Equal(t, want, got)
}
