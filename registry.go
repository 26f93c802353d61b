package notation

import (
	"fmt"
	"strings"
)

// Styles returns a new instance of every built-in style that takes no
// construction parameters, in a stable order.
func Styles() []Style {
	return []Style{
		Scientific{},
		Engineering{},
		Standard{},
		MixedScientific{},
		MixedEngineering{},
		LongScale{},
		Flags(),
		Binary(),
		Hexadecimal(),
		Omega{},
		OmegaShort{},
		PrecisePrime{},
		Tritetrated{},
		InfixEngineering(),
		ReverseInfixEngineering(),
		InfixShortScale(),
		InfixLongScale(),
		YesNo{},
		GreekLetters{},
		Evil{},
		Emojier{},
		Nice{},
		HahaFunny{},
		Elemental{},
		Japanese{},
		Chinese{},
		Fours{},
		BlobsText{},
		BlobsShortText{},
	}
}

// Names returns the names of [Styles].
func Names() []string {
	styles := Styles()
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.Name()
	}
	return names
}

// Lookup returns the built-in style with the given name.
// Names are matched case-insensitively, and "-" or "_" match a space,
// so "mixed-scientific" finds "Mixed scientific".
//
// Lookup returns an error if there is no such style.
func Lookup(name string) (Style, error) {
	key := normalizeName(name)
	for _, s := range Styles() {
		if normalizeName(s.Name()) == key {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown style %q: %w", name, ErrInvalidArgument)
}

func normalizeName(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(name))
	return strings.ToLower(name)
}
