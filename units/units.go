// Package units formats survey quantities for display: stationing in the
// conventional NN+NN.NN form and angles as degrees-minutes-seconds.
package units

import (
	"fmt"
	"math"
)

// FormatStation renders a station distance as stations of 100 length units,
// e.g. 1234.56 becomes "12+34.56". The remainder is zero-padded to two
// integer digits and rounding that carries into the next station is applied
// before splitting.
func FormatStation(station float64) string {
	sign := ""
	abs := station
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	abs = math.Round(abs*100) / 100
	whole := math.Floor(abs / 100)
	rem := abs - whole*100
	if rem >= 100 {
		whole++
		rem -= 100
	}
	return fmt.Sprintf("%s%d+%05.2f", sign, int(whole), rem)
}

// FormatDMS renders decimal degrees as degrees, minutes and whole seconds,
// e.g. 123.7516667 becomes 123°45'6". Seconds are rounded; carries propagate
// through minutes and degrees. Negative angles keep a leading minus even at
// zero degrees.
func FormatDMS(degrees float64) string {
	sign := ""
	abs := degrees
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	d := int(abs)
	minutes := (abs - float64(d)) * 60
	m := int(minutes)
	s := int(math.Round((minutes - float64(m)) * 60))
	if s == 60 {
		s = 0
		m++
	}
	if m == 60 {
		m = 0
		d++
	}
	return fmt.Sprintf("%s%d°%d'%d\"", sign, d, m, s)
}

// Degrees converts radians to decimal degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Radians converts decimal degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
