package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/sofarocean/borealis-tools/internal/decoder"
	"github.com/sofarocean/borealis-tools/internal/testutil"
)

func TestDecode(t *testing.T) {
	payload := testutil.LoadBytes(t, "spectrum/example1.b64")
	rec, err := (Decoder{}).Decode(payload, decoder.Config{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rec) != 28 {
		t.Fatalf("row count: got %d want 28", len(rec))
	}
	if rec[0].Frequency != 40 || rec[27].Frequency != 20000 {
		t.Fatalf("frequency range: got %v..%v", rec[0].Frequency, rec[27].Frequency)
	}
	if math.Abs(rec[0].Values[0]-130.19) > 0.005 {
		t.Fatalf("first SPL: got %v want 130.19", rec[0].Values[0])
	}
	if math.Abs(rec[27].Values[0]-96.49) > 0.005 {
		t.Fatalf("last SPL: got %v want 96.49", rec[27].Values[0])
	}
}

func TestDecodeTruncated(t *testing.T) {
	payload := testutil.LoadBytes(t, "spectrum/short.b64")
	if len(payload) >= 42 {
		t.Fatalf("fixture must be shorter than 42 bytes, got %d", len(payload))
	}
	rec, err := (Decoder{}).Decode(payload, decoder.Config{})
	if !errors.Is(err, decoder.ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if rec != nil {
		t.Fatal("truncated decode must not return a partial record")
	}
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	payload := testutil.LoadBytes(t, "spectrum/example1.b64")
	padded := append(append([]byte{}, payload...), 0xFF, 0xFF)
	rec, err := (Decoder{}).Decode(padded, decoder.Config{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rec) != 28 {
		t.Fatalf("row count: got %d want 28", len(rec))
	}
}
