// Package pgram decodes high-resolution spectrogram payloads: one byte per
// bin, with hybrid linear/log frequency spacing.
package pgram

import (
	"fmt"

	"github.com/sofarocean/borealis-tools/internal/bands"
	"github.com/sofarocean/borealis-tools/internal/bitstream"
	"github.com/sofarocean/borealis-tools/internal/decoder"
	"github.com/sofarocean/borealis-tools/internal/quant"
	"github.com/sofarocean/borealis-tools/internal/variant"
)

const bitsPerSample = 8

func init() {
	decoder.Register(variant.Pgram, Decoder{})
}

// Decoder implements the pgram variant.
type Decoder struct{}

// Name returns the canonical variant name.
func (Decoder) Name() string { return "pgram" }

// Decode unpacks one SPL value per bin. The bin count is determined by the
// payload length; frequencies are generated to match it one-to-one.
func (Decoder) Decode(payload []byte, cfg decoder.Config) (decoder.Record, error) {
	if cfg.DF <= 0 {
		return nil, fmt.Errorf("pgram: bin spacing df must be positive, got %v", cfg.DF)
	}
	binCount := len(payload) * 8 / bitsPerSample
	freqs := bands.Pgram(cfg.DF, binCount)
	r := bitstream.NewReader(payload)
	rec := make(decoder.Record, 0, binCount)
	for i := 0; i < binCount; i++ {
		raw, err := r.ReadBits(bitsPerSample)
		if err != nil {
			return nil, fmt.Errorf("pgram: bin %d: %w", i, err)
		}
		rec = append(rec, decoder.Row{
			Frequency: freqs[i],
			Values:    []float64{quant.Dequantize(raw, bitsPerSample)},
		})
	}
	return rec, nil
}
