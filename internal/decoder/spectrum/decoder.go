// Package spectrum decodes single-spectrum payloads: one 12-bit sample per
// decidecade band.
package spectrum

import (
	"fmt"

	"github.com/sofarocean/borealis-tools/internal/bands"
	"github.com/sofarocean/borealis-tools/internal/bitstream"
	"github.com/sofarocean/borealis-tools/internal/decoder"
	"github.com/sofarocean/borealis-tools/internal/quant"
	"github.com/sofarocean/borealis-tools/internal/variant"
)

const bitsPerSample = 12

func init() {
	decoder.Register(variant.Spectrum, Decoder{})
}

// Decoder implements the spectrum variant.
type Decoder struct{}

// Name returns the canonical variant name.
func (Decoder) Name() string { return "spectrum" }

// Decode unpacks one SPL value per ANSI band. Trailing bits beyond the
// fixed layout are ignored.
func (Decoder) Decode(payload []byte, _ decoder.Config) (decoder.Record, error) {
	need := len(bands.ANSI) * bitsPerSample
	if len(payload)*8 < need {
		return nil, fmt.Errorf("spectrum: %w: need %d bytes, got %d",
			decoder.ErrTruncated, (need+7)/8, len(payload))
	}
	r := bitstream.NewReader(payload)
	rec := make(decoder.Record, 0, len(bands.ANSI))
	for i, freq := range bands.ANSI {
		raw, err := r.ReadBits(bitsPerSample)
		if err != nil {
			return nil, fmt.Errorf("spectrum: band %d: %w", i, err)
		}
		rec = append(rec, decoder.Row{
			Frequency: freq,
			Values:    []float64{quant.Dequantize(raw, bitsPerSample)},
		})
	}
	return rec, nil
}
