package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDMS(t *testing.T) {
	t.Run("whole degrees", func(t *testing.T) {
		d := ToDMS(45.0)
		assert.Equal(t, 45, d.Degrees)
		assert.Equal(t, 0, d.Minutes)
		assert.InDelta(t, 0.0, d.Seconds, 1e-9)
	})

	t.Run("half degree", func(t *testing.T) {
		d := ToDMS(45.5)
		assert.Equal(t, 45, d.Degrees)
		assert.Equal(t, 30, d.Minutes)
		assert.InDelta(t, 0.0, d.Seconds, 1e-9)
	})

	t.Run("negative sign folded into degrees", func(t *testing.T) {
		d := ToDMS(-79.982195)
		assert.Equal(t, -79, d.Degrees)
		assert.Equal(t, 58, d.Minutes)
		assert.InDelta(t, 55.902, d.Seconds, 1e-6)
	})

	t.Run("seconds rollover into minutes", func(t *testing.T) {
		// Raw seconds 59.9996 would display as "60.00" at two decimals.
		d := ToDMS(10.0 + 30.0/60.0 + 59.9996/3600.0)
		assert.Equal(t, 10, d.Degrees)
		assert.Equal(t, 31, d.Minutes)
		assert.Equal(t, 0.0, d.Seconds)
	})

	t.Run("cascading rollover into degrees", func(t *testing.T) {
		d := ToDMS(10.0 + 59.0/60.0 + 59.9996/3600.0)
		assert.Equal(t, 11, d.Degrees)
		assert.Equal(t, 0, d.Minutes)
		assert.Equal(t, 0.0, d.Seconds)
	})

	t.Run("seconds below threshold stay", func(t *testing.T) {
		d := ToDMS(10.0 + 30.0/60.0 + 59.9990/3600.0)
		assert.Equal(t, 10, d.Degrees)
		assert.Equal(t, 30, d.Minutes)
		assert.InDelta(t, 59.999, d.Seconds, 1e-6)
	})

	t.Run("round trip within half a displayed second", func(t *testing.T) {
		const tolerance = 1.0 / 7200.0

		for dd := -180.0; dd <= 180.0; dd += 0.37 {
			d := ToDMS(dd)

			deg := d.Degrees
			if deg < 0 {
				deg = -deg
			}
			back := float64(deg) + float64(d.Minutes)/60.0 + d.Seconds/3600.0
			assert.InDelta(t, math.Abs(dd), back, tolerance, "dd=%v", dd)
		}
	})
}

func TestDMSFormat(t *testing.T) {
	t.Run("latitude north", func(t *testing.T) {
		assert.Equal(t, `45°30'00.00" N`, ToDMS(45.5).Format(true))
	})

	t.Run("latitude south", func(t *testing.T) {
		assert.Equal(t, `33°52'04.80" S`, ToDMS(-33.868).Format(true))
	})

	t.Run("longitude east", func(t *testing.T) {
		assert.Equal(t, `151°12'25.20" E`, ToDMS(151.207).Format(false))
	})

	t.Run("longitude west", func(t *testing.T) {
		assert.Equal(t, `79°58'55.90" W`, ToDMS(-79.982195).Format(false))
	})

	t.Run("fractional negative loses sign at zero degrees", func(t *testing.T) {
		// Degrees truncate to 0, so the stored sign is gone and the
		// direction letter falls back to N.
		assert.Equal(t, `0°18'00.00" N`, ToDMS(-0.3).Format(true))
	})
}
