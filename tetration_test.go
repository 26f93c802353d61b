package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTetrate3Root(t *testing.T) {
	tests := []struct {
		v    string
		b    Bisection
		want float64
	}{
		{"0", DefaultBisection, 0},
		{"1", DefaultBisection, 1},
		{"27", DefaultBisection, 2.0720},
		{"7625597484987", DefaultBisection, 3},
		{"27", Bisection{Low: 0, High: 4, Tolerance: 1e-3}, 2.0720},
		{"27", Bisection{Low: 0, High: 16, MaxIterations: 1}, 0},
		{"27", Bisection{Low: 0, High: 16, MaxIterations: 3}, 2},
	}
	for _, tt := range tests {
		got := Tetrate3Root(MustParse(tt.v), tt.b)
		assert.InDelta(t, tt.want, got, 2e-3, "Tetrate3Root(%v, %+v)", tt.v, tt.b)
	}
}

func TestTetrate3(t *testing.T) {
	assert.True(t, tetrate3(0).IsZero())
	assert.True(t, tetrate3(-1).IsZero())
	assert.InDelta(t, 16, tetrate3(2).Float64(), 1e-9)
	assert.InDelta(t, 12.8823, tetrate3(3).Log10(), 1e-3)
}

func TestTritetrated(t *testing.T) {
	got := formatAll(t, Tritetrated{}, 2,
		"0", "1", "4", "27", "1000", "7625597484987", "1e100", "1e1000000", "-27", "1e10000000000")
	want := []string{
		"0.0000↑↑3", "1.0000↑↑3", "1.7222↑↑3", "2.0720↑↑3", "2.3849↑↑3", "3.0000↑↑3",
		"3.8305↑↑3", "7.1197↑↑3", "-2.0720↑↑3", "10.0000↑↑3",
	}
	assert.Equal(t, want, got)

	coarse := Tritetrated{Bisection: Bisection{Low: 0, High: 16, Tolerance: 0, MaxIterations: 3}}
	assert.Equal(t, []string{"2.0000↑↑3"}, formatAll(t, coarse, 2, "27"))

	f := MustNewFormatter(Tritetrated{})
	assert.Equal(t, "Infinity", f.MustFormat(MustParse("1e9000000000000000"), 2))
}
