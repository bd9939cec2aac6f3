package testutil

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// LoadText returns a trimmed payload fixture from testdata relative to the
// repo root.
func LoadText(t *testing.T, rel string) string {
	t.Helper()
	return strings.TrimSpace(string(readTestdata(t, rel)))
}

// LoadBytes base64-decodes a payload fixture.
func LoadBytes(t *testing.T, rel string) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(LoadText(t, rel))
	if err != nil {
		t.Fatalf("decode %s: %v", rel, err)
	}
	return data
}

// LoadGolden returns the raw expected-output fixture.
func LoadGolden(t *testing.T, rel string) string {
	t.Helper()
	return string(readTestdata(t, rel))
}

func readTestdata(t *testing.T, rel string) []byte {
	t.Helper()
	candidates := []string{
		filepath.Join("testdata", rel),
		filepath.Join("..", "testdata", rel),
		filepath.Join("..", "..", "testdata", rel),
		filepath.Join("..", "..", "..", "testdata", rel),
	}
	for _, path := range candidates {
		if data, err := os.ReadFile(path); err == nil {
			return data
		}
	}
	t.Fatalf("unable to locate testdata file %s", rel)
	return nil
}
