// Package borealis decodes base64-encoded telemetry payloads from the
// Borealis acoustic sensor into calibrated SPL records per frequency band.
package borealis

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/sofarocean/borealis-tools/internal/decoder"
	_ "github.com/sofarocean/borealis-tools/internal/decoder/pgram"      // register decoder
	_ "github.com/sofarocean/borealis-tools/internal/decoder/spectrum"   // register decoder
	_ "github.com/sofarocean/borealis-tools/internal/decoder/statistics" // register decoder
	"github.com/sofarocean/borealis-tools/internal/variant"
)

// ErrMalformed is returned when a line cannot be decoded from base64.
var ErrMalformed = errors.New("payload is not valid base64")

// Result captures the outcome of DecodeLine.
type Result struct {
	DataType  string
	ByteCount int
	Rows      decoder.Record
	DF        float64
	DFAssumed bool
}

// DecodeLine decodes one payload line with default options: the variant is
// inferred from the line length and pgram bins use the default spacing.
func DecodeLine(line string) (Result, error) {
	return DecodeLineWithOptions(line, Options{})
}

// DecodeLineWithOptions decodes one payload line. Decoding is pure: on any
// failure the zero Result is returned together with a typed error, never a
// partial record.
func DecodeLineWithOptions(line string, opts Options) (Result, error) {
	cfg, err := opts.validate()
	if err != nil {
		return Result{}, err
	}

	// Classification counts the encoded text as transmitted, trailing
	// whitespace aside; only the decode step ignores interior whitespace.
	trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
	kind := cfg.kind
	if !cfg.explicit {
		kind = variant.Classify(len(trimmed))
	}

	data, err := base64.StdEncoding.DecodeString(stripWhitespace(trimmed))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	dec, err := decoder.Lookup(kind)
	if err != nil {
		return Result{}, err
	}
	rows, err := dec.Decode(data, decoder.Config{DF: cfg.df})
	if err != nil {
		return Result{}, err
	}
	return Result{
		DataType:  kind.String(),
		ByteCount: len(data),
		Rows:      rows,
		DF:        cfg.df,
		DFAssumed: cfg.dfAssumed,
	}, nil
}

func stripWhitespace(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
