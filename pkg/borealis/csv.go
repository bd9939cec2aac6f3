package borealis

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteCSV renders the result as one header line followed by one row per
// band. Fixed-table frequencies are printed with no decimals, generated
// pgram frequencies with two; SPL values always carry two decimals. For
// pgram results decoded with the assumed default bin spacing an advisory
// comment precedes the header.
func (r Result) WriteCSV(w io.Writer) error {
	if r.DataType == "pgram" && r.DFAssumed {
		advisory := fmt.Sprintf("# Assuming default sample rate (31250 Hz) and df (%g Hz)\n", DefaultDF)
		if _, err := io.WriteString(w, advisory); err != nil {
			return err
		}
	}

	header := []string{"Frequency", "SPL (dB)"}
	freqDecimals := 0
	switch r.DataType {
	case "statistics":
		header = []string{"Frequency", "Q1", "Q2", "Q3", "Mean"}
	case "pgram":
		freqDecimals = 2
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range r.Rows {
		fields := make([]string, 0, len(row.Values)+1)
		fields = append(fields, strconv.FormatFloat(row.Frequency, 'f', freqDecimals, 64))
		for _, v := range row.Values {
			fields = append(fields, strconv.FormatFloat(v, 'f', 2, 64))
		}
		if err := cw.Write(fields); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// String renders the result as CSV.
func (r Result) String() string {
	var builder strings.Builder
	if err := r.WriteCSV(&builder); err != nil {
		return fmt.Sprintf("%s record of %d rows (render error: %v)", r.DataType, len(r.Rows), err)
	}
	return builder.String()
}
