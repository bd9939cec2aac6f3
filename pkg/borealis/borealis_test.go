package borealis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sofarocean/borealis-tools/internal/decoder"
	"github.com/sofarocean/borealis-tools/internal/testutil"
)

func TestDecodeLineStripsWhitespace(t *testing.T) {
	line := testutil.LoadText(t, "spectrum/example1.b64")
	spaced := " " + line[:10] + "\t" + line[10:] + " \n"
	result, err := DecodeLineWithOptions(spaced, Options{DataType: "spectrum"})
	require.NoError(t, err)
	require.Equal(t, 42, result.ByteCount)
	require.Len(t, result.Rows, 28)
}

func TestClassifyCountsRawLineLength(t *testing.T) {
	// Interior whitespace counts toward the variant thresholds even
	// though the decode step ignores it: a 42-byte spectrum payload
	// padded past 100 characters lands in the statistics layout, which
	// it is too short for.
	line := testutil.LoadText(t, "spectrum/example1.b64")
	padded := line[:28] + strings.Repeat(" ", 50) + line[28:]
	require.GreaterOrEqual(t, len(padded), 100)
	_, err := DecodeLine(padded)
	require.ErrorIs(t, err, decoder.ErrTruncated)

	// Trailing whitespace does not count.
	result, err := DecodeLine(line + "  \t")
	require.NoError(t, err)
	require.Equal(t, "spectrum", result.DataType)
}

func TestDecodeLineMalformed(t *testing.T) {
	for _, dataType := range []string{"spectrum", "statistics", "pgram"} {
		_, err := DecodeLineWithOptions("!!!not base64!!!", Options{DataType: dataType})
		require.ErrorIs(t, err, ErrMalformed)
	}
}

func TestDecodeLineExplicitVariantWins(t *testing.T) {
	// A 42-byte spectrum payload forced through the statistics layout is
	// too short for 28 four-byte tuples.
	line := testutil.LoadText(t, "spectrum/example1.b64")
	require.Less(t, len(line), 100)
	_, err := DecodeLineWithOptions(line, Options{DataType: "statistics"})
	require.ErrorIs(t, err, decoder.ErrTruncated)
}

func TestDecodeLineUnknownDataType(t *testing.T) {
	_, err := DecodeLineWithOptions("QUJD", Options{DataType: "waveform"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown data type")
}

func TestDecodeLineNegativeDF(t *testing.T) {
	_, err := DecodeLineWithOptions("QUJD", Options{DF: -1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "df must be positive")
}

func TestPgramDFDefaulting(t *testing.T) {
	line := testutil.LoadText(t, "pgram/example1.b64")

	assumed, err := DecodeLine(line)
	require.NoError(t, err)
	require.True(t, assumed.DFAssumed)
	require.Equal(t, DefaultDF, assumed.DF)
	require.True(t, strings.HasPrefix(assumed.String(), "# Assuming default sample rate"))

	explicit, err := DecodeLineWithOptions(line, Options{DF: DefaultDF})
	require.NoError(t, err)
	require.False(t, explicit.DFAssumed)
	require.True(t, strings.HasPrefix(explicit.String(), "Frequency,"))
	require.Equal(t, assumed.Rows, explicit.Rows)
}

func TestResultStringHeader(t *testing.T) {
	line := testutil.LoadText(t, "statistics/example1.b64")
	result, err := DecodeLine(line)
	require.NoError(t, err)
	require.Equal(t, "statistics", result.DataType)
	require.True(t, strings.HasPrefix(result.String(), "Frequency,Q1,Q2,Q3,Mean\n"))
}
