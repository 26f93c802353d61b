package notation

import "fmt"

// MustQuo is like [Magnitude.Quo] but panics if computing error.
func (d Magnitude) MustQuo(e Magnitude) Magnitude {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustInv is like [Magnitude.Inv] but panics if computing error.
func (d Magnitude) MustInv() Magnitude {
	f, err := d.Inv()
	if err != nil {
		panic(fmt.Sprintf("MustInv(%v) failed: %v", d, err))
	}
	return f
}

// MustPow is like [Magnitude.Pow] but panics if computing error.
func (d Magnitude) MustPow(p float64) Magnitude {
	f, err := d.Pow(p)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", p, err))
	}
	return f
}

// MustSqrt is like [Magnitude.Sqrt] but panics if computing error.
func (d Magnitude) MustSqrt() Magnitude {
	f, err := d.Sqrt()
	if err != nil {
		panic(fmt.Sprintf("MustSqrt(%v) failed: %v", d, err))
	}
	return f
}

// MustNewFromFloat64 is like [NewFromFloat64] but panics if the float is
// NaN or infinite.
func MustNewFromFloat64(f float64) Magnitude {
	d, err := NewFromFloat64(f)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromFloat64(%v) failed: %v", f, err))
	}
	return d
}

// MustNewFromPow is like [NewFromPow] but panics if computing error.
func MustNewFromPow(base, exp float64) Magnitude {
	d, err := NewFromPow(base, exp)
	if err != nil {
		panic(fmt.Sprintf("MustNewFromPow(%v, %v) failed: %v", base, exp, err))
	}
	return d
}
