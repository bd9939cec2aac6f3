// Package quant maps raw quantized samples to calibrated sound pressure
// levels in dB.
package quant

// DynamicRangeDB is the total span a quantized field can represent.
const DynamicRangeDB = 192.0

// MinSPLDB is the calibration floor. The 185.642 constant is specific to
// the first Borealis hardware revision and may change in future revisions.
const MinSPLDB = -192 + 185.642

// Step returns the dB value of one least-significant bit at the given
// field width.
func Step(bits int) float64 {
	return DynamicRangeDB / float64(uint64(1)<<uint(bits))
}

// Dequantize converts a raw sample extracted at the given field width
// into an SPL value in dB.
func Dequantize(raw uint64, bits int) float64 {
	return MinSPLDB + float64(raw)*Step(bits)
}
