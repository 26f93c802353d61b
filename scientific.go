package notation

var (
	scientificLayout = MantissaExponent{
		Base:                        10,
		Steps:                       1,
		Mantissa:                    formatMantissaBaseTen,
		Exponent:                    formatExponentDefault,
		MantissaIfExponentFormatted: roundedMantissa(0),
	}
	engineeringLayout = MantissaExponent{
		Base:                        10,
		Steps:                       3,
		Mantissa:                    formatMantissaBaseTen,
		Exponent:                    formatExponentDefault,
		MantissaIfExponentFormatted: roundedMantissa(2),
	}
	mixedScientificLayout = MantissaExponent{
		Base:                        10,
		Steps:                       1,
		Mantissa:                    formatMantissaBaseTen,
		Exponent:                    formatExponentDefault,
		MantissaIfExponentFormatted: roundedMantissa(2),
	}
	standardLayout = MantissaExponent{
		Base:      1000,
		Steps:     1,
		Separator: " ",
		Mantissa:  formatMantissaBaseTen,
		Exponent: func(_ *Formatter, exp int64, _ int) string {
			return AbbreviateStandard(exp)
		},
	}
)

// roundedMantissa writes mantissas with a fixed number of places.
func roundedMantissa(places int) func(float64, int) string {
	return func(x float64, _ int) string {
		return fixed(x, places)
	}
}

// Scientific writes values as "1.23e45".
type Scientific struct{}

func (Scientific) Name() string { return "Scientific" }

func (Scientific) FormatDecimal(f *Formatter, v Magnitude, places, placesExponent int) string {
	return scientificLayout.Format(f, v, places, placesExponent)
}

// Engineering writes values as "12.3e45", with exponents divisible by 3.
type Engineering struct{}

func (Engineering) Name() string { return "Engineering" }

func (Engineering) FormatDecimal(f *Formatter, v Magnitude, places, placesExponent int) string {
	return engineeringLayout.Format(f, v, places, placesExponent)
}

// Standard writes values with short scale suffixes, as "1.23 Qa".
type Standard struct{}

func (Standard) Name() string { return "Standard" }

func (Standard) FormatDecimal(f *Formatter, v Magnitude, places, placesExponent int) string {
	return standardLayout.Format(f, v, places, placesExponent)
}

// mixedCutoff is the power of ten from which mixed styles stop using
// short scale suffixes.
const mixedCutoff = 33

func belowMixedCutoff(v Magnitude) bool {
	return v.Max(New(1, 0)).Log10() < mixedCutoff
}

// MixedScientific is [Standard] below 1e33 and [Scientific] above.
type MixedScientific struct{}

func (MixedScientific) Name() string { return "Mixed scientific" }

func (MixedScientific) FormatDecimal(f *Formatter, v Magnitude, places, placesExponent int) string {
	if belowMixedCutoff(v) {
		return Standard{}.FormatDecimal(f, v, places, placesExponent)
	}
	return mixedScientificLayout.Format(f, v, places, placesExponent)
}

// MixedEngineering is [Standard] below 1e33 and [Engineering] above.
type MixedEngineering struct{}

func (MixedEngineering) Name() string { return "Mixed engineering" }

func (MixedEngineering) FormatDecimal(f *Formatter, v Magnitude, places, placesExponent int) string {
	if belowMixedCutoff(v) {
		return Standard{}.FormatDecimal(f, v, places, placesExponent)
	}
	return engineeringLayout.Format(f, v, places, placesExponent)
}

// LongScale writes values with long scale suffixes, where "B" is 10^12,
// and decimal commas, as "1,50 M".
type LongScale struct{}

func (LongScale) Name() string { return "Long scale" }

func (LongScale) FormatDecimal(_ *Formatter, v Magnitude, places, _ int) string {
	m, e := toFixedLongScale(v, places)
	abbr := AbbreviateStandard(floorDiv(e, 6) + 1)
	return swapSeparators(fixed(m, places) + " " + abbr)
}
