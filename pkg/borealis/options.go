package borealis

import (
	"fmt"

	"github.com/sofarocean/borealis-tools/internal/variant"
)

// DefaultDF is the pgram bin spacing in Hz assumed when none is given. It
// corresponds to a 31250 Hz sample rate.
const DefaultDF = 7.629

// Options configures decoding.
type Options struct {
	// DataType forces a variant ("spectrum", "statistics" or "pgram")
	// instead of inferring one from the line length.
	DataType string
	// DF is the pgram frequency bin spacing in Hz. Zero selects
	// DefaultDF.
	DF float64
}

type decodeConfig struct {
	explicit  bool
	kind      variant.Kind
	df        float64
	dfAssumed bool
}

func (opts Options) validate() (decodeConfig, error) {
	cfg := decodeConfig{df: opts.DF}
	if opts.DataType != "" {
		kind, err := variant.Parse(opts.DataType)
		if err != nil {
			return cfg, err
		}
		cfg.explicit = true
		cfg.kind = kind
	}
	switch {
	case opts.DF < 0:
		return cfg, fmt.Errorf("df must be positive, got %v", opts.DF)
	case opts.DF == 0:
		cfg.df = DefaultDF
		cfg.dfAssumed = true
	}
	return cfg, nil
}
