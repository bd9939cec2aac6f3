// Package decoder defines the record decoder contract and the registry
// through which variant decoders are selected.
package decoder

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sofarocean/borealis-tools/internal/variant"
)

// ErrTruncated is returned when a payload is shorter than the variant's
// field layout requires. A decoder never returns a partial record.
var ErrTruncated = errors.New("payload truncated")

// Row pairs one frequency band with its decoded SPL values.
type Row struct {
	Frequency float64
	Values    []float64
}

// Record is the ordered sequence of rows produced by one decode call.
// It is owned by the caller and never mutated after being returned.
type Record []Row

// Config carries per-decode parameters.
type Config struct {
	// DF is the pgram bin spacing in Hz. Decoders of fixed-layout
	// variants ignore it.
	DF float64
}

// Decoder turns a decoded payload buffer into a Record.
type Decoder interface {
	Name() string
	Decode(payload []byte, cfg Config) (Record, error)
}

var (
	regMu    sync.RWMutex
	registry = map[variant.Kind]Decoder{}
)

// Register stores the decoder for a variant. Decoder packages call it
// from init.
func Register(kind variant.Kind, dec Decoder) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[kind] = dec
}

// Lookup returns the decoder registered for the variant.
func Lookup(kind variant.Kind) (Decoder, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	dec, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("no decoder registered for variant %s", kind)
	}
	return dec, nil
}
