package core

import "math"

// Round1 rounds to one decimal place, the precision every reported
// score and percentage carries.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Pct returns part/whole*100, or 0 when whole is 0.
func Pct(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
