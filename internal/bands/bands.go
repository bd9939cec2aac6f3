// Package bands provides the frequency tables that decoded samples are
// paired with: the fixed ANSI S1.11 nominal midband sequence for decidecade
// records and the hybrid linear/log bin generator for pgram records.
package bands

import "math"

// ANSI holds the nominal midband frequencies in Hz of the 28 decidecade
// bands reported by the sensor, in ascending order.
var ANSI = [...]float64{
	40, 50, 63, 80, 100, 125, 160, 200, 250, 315,
	400, 500, 630, 800, 1000, 1250, 1600, 2000, 2500, 3150,
	4000, 5000, 6300, 8000, 10000, 12500, 16000, 20000,
}

// BandsPerOctave is the log-region resolution of the pgram bin layout.
const BandsPerOctave = 24

// linearCount is the FFT bin index at which the layout switches from
// linear to logarithmic spacing.
var linearCount = int(math.Ceil(BandsPerOctave / math.Ln2))

// Pgram returns count bin frequencies in Hz for a pgram record with bin
// spacing df. The first bins are linearly spaced at i*df starting from
// i=2 (the two DC-adjacent bins are not transmitted); from linearCount*df
// upward each bin is a factor 2^(1/BandsPerOctave) above the previous one.
func Pgram(df float64, count int) []float64 {
	freqs := make([]float64, 0, count)
	for i := 2; i < linearCount && len(freqs) < count; i++ {
		freqs = append(freqs, float64(i)*df)
	}
	start := float64(linearCount) * df
	for n := 0; len(freqs) < count; n++ {
		freqs = append(freqs, start*math.Pow(2, float64(n)/BandsPerOctave))
	}
	return freqs
}
