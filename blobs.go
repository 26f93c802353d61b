package notation

import "math"

var (
	blobPrefixes = [...]string{"", "big", "large", "great", "grand", "huge", "super", "ultra", "mega", "giga", "omega"}
	blobSuffixes = [...]string{"", "think", "wave", "hug", "nom", "sad", "pats", "yes", "no", "heart", "sleep"}
)

// blobIndex maps values up to 1000 to themselves and larger values to
// 1000 + log(log10(v)/3) in base 1.0002.
func blobIndex(v Magnitude) float64 {
	if v.Cmp(New(1, 3)) <= 0 {
		return v.Float64()
	}
	return (math.Log10(v.Log10())-math.Log10(3))/math.Log10(1.0002) + 1000
}

func blob(prefix, suffix string) string {
	return ":" + prefix + "blob" + suffix + ":"
}

// blobCycle returns the 1-based cycle of n over every name as a "-k" suffix,
// or "" in the first cycle.
func blobCycle(n, names float64) string {
	k := math.Floor(n / names)
	if k < 1 {
		return ""
	}
	return "-" + fixed(k+1, 0)
}

// BlobsText writes the integer part of values up to 1000, and a double
// logarithm of larger values, as blob emoji shortcodes such as
// ":bigblobthink:" over 11 prefixes and 11 suffixes.
// Each further cycle of 121 names appends "-2", "-3", and so on.
type BlobsText struct{}

func (BlobsText) Name() string { return "Blobs (Text)" }

func (BlobsText) Infinite() string { return blob("", "finity") }

func (BlobsText) NegativeInfinite() string { return blob("notlike", "finity") }

func (BlobsText) blobify(n float64, neg bool) string {
	prefix := ""
	if neg {
		prefix = "notlike"
		n = math.Max(0, n-1)
	}
	prefix += blobPrefixes[int(math.Floor(n/11))%11]
	return blob(prefix, blobSuffixes[int(math.Mod(n, 11))]+blobCycle(n, 121))
}

func (b BlobsText) FormatNegativeVerySmall(_ *Formatter, v Magnitude, _ int) string {
	return b.blobify(blobIndex(v), true)
}

func (b BlobsText) FormatUnder1000(_ *Formatter, x float64, _ int) string {
	return b.blobify(x, false)
}

func (b BlobsText) FormatNegativeUnder1000(_ *Formatter, x float64, _ int) string {
	return b.blobify(x, true)
}

func (b BlobsText) FormatDecimal(_ *Formatter, v Magnitude, _, _ int) string {
	return b.blobify(blobIndex(v), false)
}

func (b BlobsText) FormatNegativeDecimal(_ *Formatter, v Magnitude, _, _ int) string {
	return b.blobify(blobIndex(v), true)
}

// BlobsShortText is [BlobsText] with suffixes only, so each cycle has
// 11 names, and with "un" marking negative values.
type BlobsShortText struct{}

func (BlobsShortText) Name() string { return "Blobs (Short Text)" }

func (BlobsShortText) Infinite() string { return blob("", "finity") }

func (BlobsShortText) NegativeInfinite() string { return blob("un", "finity") }

func (BlobsShortText) blobify(n float64, neg bool) string {
	prefix := ""
	if neg {
		prefix = "un"
		n = math.Max(0, n-1)
	}
	return blob(prefix, blobSuffixes[int(math.Mod(n, 11))]+blobCycle(n, 11))
}

func (b BlobsShortText) FormatNegativeVerySmall(_ *Formatter, v Magnitude, _ int) string {
	return b.blobify(blobIndex(v), true)
}

func (b BlobsShortText) FormatUnder1000(_ *Formatter, x float64, _ int) string {
	return b.blobify(x, false)
}

func (b BlobsShortText) FormatNegativeUnder1000(_ *Formatter, x float64, _ int) string {
	return b.blobify(x, true)
}

func (b BlobsShortText) FormatDecimal(_ *Formatter, v Magnitude, _, _ int) string {
	return b.blobify(blobIndex(v), false)
}

func (b BlobsShortText) FormatNegativeDecimal(_ *Formatter, v Magnitude, _, _ int) string {
	return b.blobify(blobIndex(v), true)
}
