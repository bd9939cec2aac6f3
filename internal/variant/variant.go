// Package variant enumerates the Borealis payload variants and classifies
// incoming lines.
package variant

import "fmt"

// Kind identifies one of the three payload variants.
type Kind int

const (
	Spectrum Kind = iota
	Statistics
	Pgram
)

// String returns the canonical variant name.
func (k Kind) String() string {
	switch k {
	case Spectrum:
		return "spectrum"
	case Statistics:
		return "statistics"
	case Pgram:
		return "pgram"
	default:
		return fmt.Sprintf("variant(%d)", int(k))
	}
}

// Parse maps a variant name to its Kind.
func Parse(name string) (Kind, error) {
	switch name {
	case "spectrum":
		return Spectrum, nil
	case "statistics":
		return Statistics, nil
	case "pgram":
		return Pgram, nil
	default:
		return 0, fmt.Errorf("unknown data type %q (expected spectrum, statistics or pgram)", name)
	}
}

// Classify infers the variant from the encoded text length. The format
// carries no framing marker, so the thresholds are a heuristic: the chosen
// decoder may still reject the payload if the guess is wrong.
func Classify(encodedLen int) Kind {
	switch {
	case encodedLen < 100:
		return Spectrum
	case encodedLen < 200:
		return Statistics
	default:
		return Pgram
	}
}
