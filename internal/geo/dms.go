package geo

import (
	"fmt"
	"math"
)

// DMS is a decimal-degree value decomposed into degrees, minutes and
// seconds. The sign of the source value is folded into Degrees; the
// compass letter is chosen at format time.
type DMS struct {
	Degrees int
	Minutes int
	Seconds float64
}

// ToDMS decomposes a decimal-degree value into DMS components using
// total seconds.
//
// Seconds at or above 59.9995 (which would display as "60.00" at
// two-decimal precision) are rolled over into minutes first, then a
// full minute count of 60 is rolled over into degrees, so the
// displayed value always keeps minutes in [0,59] and seconds in [0,60).
func ToDMS(dd float64) DMS {
	sign := 1
	if dd < 0 {
		sign = -1
	}

	total := math.Abs(dd) * 3600.0
	deg := int(total / 3600.0)
	rem := total - float64(deg)*3600.0
	minutes := int(rem / 60.0)
	seconds := rem - float64(minutes)*60.0

	if seconds >= 59.9995 {
		seconds = 0.0
		minutes++
	}
	if minutes == 60 {
		minutes = 0
		deg++
	}

	return DMS{Degrees: deg * sign, Minutes: minutes, Seconds: seconds}
}

// Format renders the value as {deg}°{MM}'{SS.SS}" with a compass
// letter, N/S for latitudes and E/W for longitudes. Non-negative
// degrees map to N and E.
func (d DMS) Format(isLat bool) string {
	var dir string
	if isLat {
		dir = "N"
		if d.Degrees < 0 {
			dir = "S"
		}
	} else {
		dir = "E"
		if d.Degrees < 0 {
			dir = "W"
		}
	}

	deg := d.Degrees
	if deg < 0 {
		deg = -deg
	}

	return fmt.Sprintf(`%d°%02d'%05.2f" %s`, deg, d.Minutes, d.Seconds, dir)
}
