/*
Package notation formats numbers of enormous magnitude into short
human-readable strings.
It is designed for games and user interfaces that display quantities
growing far beyond the range of float64, up to values that are treated
as infinite.

# Representation

[Magnitude] is a struct with three fields:

  - Sign: a boolean indicating whether the magnitude is negative.
  - Mantissa: a float64 in the range [1, 10), or exactly 0 for the number 0.
  - Exponent: a signed 64-bit power of ten.

The numerical value of a magnitude is calculated as:

  - -Mantissa × 10^Exponent, if Sign is true.
  - Mantissa × 10^Exponent, if Sign is false.

Each value has exactly one representation.
The mantissa carries about 15 significant decimal digits.

# Constraints

Exponents are limited to ±[MaxExponent] (10^18).
Results above the limit saturate to ±1e[MaxExponent], which is infinite under
every configuration, and results below it collapse to 0.
Special values such as NaN and infinities are not representable:
[NewFromFloat64] returns an error for them and [Formatter.FormatFloat64]
maps them to the infinite tokens of the style.

# Formatting

A [Formatter] pairs a [Style] with a [Config].
It classifies each value once, in this order:

	| Regime          | Condition                   | Hook                                    |
	| --------------- | --------------------------- | --------------------------------------- |
	| RegimeInfinite  | |v| >= InfiniteThreshold    | Infinite, NegativeInfinite              |
	| RegimeVerySmall | exponent < -300             | FormatVerySmall, FormatNegativeVerySmall |
	| RegimeUnder1000 | exponent < 3                | FormatUnder1000, FormatNegativeUnder1000 |
	| RegimeDecimal   | otherwise                   | FormatDecimal, FormatNegativeDecimal    |

Styles implement only FormatDecimal and may implement any of the other hooks.
Missing hooks fall back to defaults: negative hooks prefix "-" to the
positive one, very small values are formatted as floats under 1000, and
values under 1000 are written in fixed point notation.
Styles implementing [DecimalOnlyStyle] skip the very-small and under-1000
regimes.

Precision is given by [Places]:

  - Places: decimal places of mantissas.
  - Under1000: decimal places of values under 1000.
  - Exponent: decimal places of exponents that are themselves formatted.

All rounding is half away from zero, so 2.5 is "3" and 0.125 at 2 places is "0.13".

# Styles

The package provides the following styles:

  - positional:
    [Scientific], [Engineering], [Standard], [MixedScientific],
    [MixedEngineering], [LongScale], [CustomBase], [Binary], [Hexadecimal].
  - letters:
    [Custom], [Flags], [GreekLetters], [Elemental], [BlobsText],
    [BlobsShortText].
  - numerals:
    [Japanese], [Chinese], [Fours].
  - symbolic:
    [Omega], [OmegaShort], [PrecisePrime], [Tritetrated].
  - infix:
    [InfixEngineering], [ReverseInfixEngineering], [InfixShortScale],
    [InfixLongScale].
  - decorative:
    [YesNo], [Evil], [Emojier], [Nice], [HahaFunny].

The building blocks are exported for custom styles: [Encode] writes digits
in any alphabet, [Reduce] and [FixMantissaOverflow] split values into
mantissas and exponents, and [MantissaExponent] renders them.

# Errors

Formatting is pure and never fails for valid precisions.
Errors are returned in the following cases:

  - Invalid Argument.
    Malformed configuration, negative precision, short alphabets and
    non-finite inputs to constructors.

  - Domain.
    [Magnitude.Quo] and [Magnitude.Inv] return an error when dividing by 0.
    [Magnitude.Pow] returns an error if a negative magnitude is raised to a
    fractional power or 0 is raised to a negative power.

  - Unrepresentable.
    [FactorizeExact] returns an error when a cofactor exceeds the trial
    division cap.
    [PrecisePrime] keeps such cofactors instead of failing.

All errors wrap one of [ErrInvalidArgument], [ErrDomain] and [ErrUnrepresentable].
*/
package notation
