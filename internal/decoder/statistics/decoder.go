// Package statistics decodes level-statistics payloads: quartiles and mean
// per decidecade band, one byte each.
package statistics

import (
	"fmt"

	"github.com/sofarocean/borealis-tools/internal/bands"
	"github.com/sofarocean/borealis-tools/internal/bitstream"
	"github.com/sofarocean/borealis-tools/internal/decoder"
	"github.com/sofarocean/borealis-tools/internal/quant"
	"github.com/sofarocean/borealis-tools/internal/variant"
)

const (
	bitsPerSample  = 8
	samplesPerBand = 4 // Q1, Q2, Q3, Mean
)

func init() {
	decoder.Register(variant.Statistics, Decoder{})
}

// Decoder implements the statistics variant.
type Decoder struct{}

// Name returns the canonical variant name.
func (Decoder) Name() string { return "statistics" }

// Decode unpacks a (Q1, Q2, Q3, Mean) tuple per ANSI band. The quartile
// ordering within a tuple is raw device data and is not validated.
func (Decoder) Decode(payload []byte, _ decoder.Config) (decoder.Record, error) {
	need := len(bands.ANSI) * samplesPerBand * bitsPerSample
	if len(payload)*8 < need {
		return nil, fmt.Errorf("statistics: %w: need %d bytes, got %d",
			decoder.ErrTruncated, need/8, len(payload))
	}
	r := bitstream.NewReader(payload)
	rec := make(decoder.Record, 0, len(bands.ANSI))
	for i, freq := range bands.ANSI {
		values := make([]float64, 0, samplesPerBand)
		for k := 0; k < samplesPerBand; k++ {
			raw, err := r.ReadBits(bitsPerSample)
			if err != nil {
				return nil, fmt.Errorf("statistics: band %d: %w", i, err)
			}
			values = append(values, quant.Dequantize(raw, bitsPerSample))
		}
		rec = append(rec, decoder.Row{Frequency: freq, Values: values})
	}
	return rec, nil
}
