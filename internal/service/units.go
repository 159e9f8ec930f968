package service

import "strconv"

const absoluteZeroCelsius = 273.15

// KelvinToCelsius converts and rounds to two fractional digits through the
// formatted decimal representation, so 300 K yields exactly 26.85.
func KelvinToCelsius(kelvin float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(kelvin-absoluteZeroCelsius, 'f', 2, 64), 64)
	if rounded == 0 {
		// "-0.00" parses to negative zero, which encodes as -0.
		return 0
	}
	return rounded
}
