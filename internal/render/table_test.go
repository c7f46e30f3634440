package render

import (
	"testing"

	"github.com/sounny/geoaiagents/internal/geo"

	"github.com/stretchr/testify/assert"
)

func TestPointTable(t *testing.T) {
	t.Run("header only", func(t *testing.T) {
		want := "| Latitude | Longitude |\n" +
			"|---------:|----------:|"
		assert.Equal(t, want, PointTable(nil))
	})

	t.Run("rows in shortest decimal form", func(t *testing.T) {
		got := PointTable([]geo.Point{
			{Lat: 44.9778, Lon: -93.265},
			{Lat: 45, Lon: -93},
		})
		want := "| Latitude | Longitude |\n" +
			"|---------:|----------:|\n" +
			"| 44.9778 | -93.265 |\n" +
			"| 45 | -93 |"
		assert.Equal(t, want, got)
	})
}

func TestDMSTable(t *testing.T) {
	t.Run("fixed width row", func(t *testing.T) {
		got := DMSTable([]geo.Point{{Lat: 45.0, Lon: -93.0}}, nil)
		want := "| Latitude (DD) | Longitude (DD) | Latitude (DMS) | Longitude (DMS) |\n" +
			"|--------------:|---------------:|---------------|---------------|\n" +
			"|      45.000000 |      -93.000000 | 45°00'00.00\" N | 93°00'00.00\" W |"
		assert.Equal(t, want, got)
	})

	t.Run("footer lists invalid entries", func(t *testing.T) {
		got := DMSTable(nil, []geo.InvalidEntry{
			{Raw: "91,0", Reason: "Out of range (-90 <= lat <= 90, -180 <= lon <= 180)"},
			{Raw: "abc", Reason: "Missing latitude/longitude pair"},
		})
		want := "| Latitude (DD) | Longitude (DD) | Latitude (DMS) | Longitude (DMS) |\n" +
			"|--------------:|---------------:|---------------|---------------|\n" +
			"\n_Skipped invalid inputs:_\n" +
			"- `91,0` (Out of range (-90 <= lat <= 90, -180 <= lon <= 180))\n" +
			"- `abc` (Missing latitude/longitude pair)"
		assert.Equal(t, want, got)
	})
}

func TestDistanceTable(t *testing.T) {
	t.Run("row with km and miles", func(t *testing.T) {
		got := DistanceTable([]geo.Pair{{
			A: geo.Point{Lat: 0, Lon: 0},
			B: geo.Point{Lat: 0, Lon: 1},
		}}, nil)
		want := "| Point A Lat | Point A Lon | Point B Lat | Point B Lon | Distance (km) | Distance (mi) |\n" +
			"| --- | --- | --- | --- | --- | --- |\n" +
			"| 0.000000 | 0.000000 | 0.000000 | 1.000000 | 111.19 | 69.09 |"
		assert.Equal(t, want, got)
	})

	t.Run("no valid pairs", func(t *testing.T) {
		assert.Equal(t, "No valid coordinate pairs provided.", DistanceTable(nil, nil))
	})

	t.Run("no valid pairs with footer", func(t *testing.T) {
		got := DistanceTable(nil, []geo.InvalidEntry{{Raw: "1,2", Reason: "Expected lat1, lon1, lat2, lon2"}})
		want := "No valid coordinate pairs provided.\n" +
			"\n_Skipped invalid inputs:_\n" +
			"- `1,2` (Expected lat1, lon1, lat2, lon2)"
		assert.Equal(t, want, got)
	})
}

func TestGeocodeTable(t *testing.T) {
	got := GeocodeTable([]GeocodeRow{
		{Input: "Minneapolis", Address: "Minneapolis, Minnesota, USA", Lat: 44.9778, Lon: -93.265, Found: true},
		{Input: "Atlantis"},
	})
	want := "| Input | Matched Address | Latitude | Longitude |\n" +
		"|-------|-----------------|----------|-----------|\n" +
		"| Minneapolis | Minneapolis, Minnesota, USA | 44.9778 | -93.265 |\n" +
		"| Atlantis | Not found |  |  |"
	assert.Equal(t, want, got)
}

func TestReverseTable(t *testing.T) {
	got := ReverseTable([]ReverseRow{
		{Point: geo.Point{Lat: 44.98, Lon: -93.27}, Place: "Minneapolis", DistanceKm: 0.42, Found: true},
		{Point: geo.Point{Lat: 0, Lon: 0}},
	}, []geo.InvalidEntry{{Raw: "x", Reason: "Missing latitude/longitude pair"}})
	want := "| Latitude | Longitude | Nearest Place | Distance (km) |\n" +
		"|---------:|----------:|---------------|--------------:|\n" +
		"| 44.980000 | -93.270000 | Minneapolis | 0.42 |\n" +
		"| 0.000000 | 0.000000 | Not found |  |\n" +
		"\n_Skipped invalid inputs:_\n" +
		"- `x` (Missing latitude/longitude pair)"
	assert.Equal(t, want, got)
}

func TestInvalidNotes(t *testing.T) {
	t.Run("empty for clean input", func(t *testing.T) {
		assert.Equal(t, "", InvalidNotes(nil))
	})

	t.Run("one bullet per entry", func(t *testing.T) {
		got := InvalidNotes([]geo.InvalidEntry{
			{Raw: "a", Reason: "r1"},
			{Raw: "b", Reason: "r2"},
		})
		assert.Equal(t, "\n\n_Skipped invalid inputs:_\n- `a` (r1)\n- `b` (r2)", got)
	})
}
