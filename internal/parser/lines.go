// Package parser extracts coordinate points from raw text in several
// formats. The line parsers account for every rejected record; the
// document parsers (GeoJSON, KML, CSV) extract best-effort and skip
// malformed records silently.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sounny/geoaiagents/internal/geo"
)

// Rejection reasons surfaced to the caller, one per failed record.
const (
	reasonMissingPair = "Missing latitude/longitude pair"
	reasonMissingQuad = "Expected lat1, lon1, lat2, lon2"
	reasonNotANumber  = "Not a number"
	reasonOutOfRange  = "Out of range (-90 <= lat <= 90, -180 <= lon <= 180)"
	reasonAOutOfRange = "Point A out of range (-90 <= lat <= 90, -180 <= lon <= 180)"
	reasonBOutOfRange = "Point B out of range (-90 <= lat <= 90, -180 <= lon <= 180)"
)

var (
	recordSep = regexp.MustCompile(`[\n;]`)
	fieldSep  = regexp.MustCompile(`[,\s]+`)
)

// Segments splits raw text into trimmed, non-empty records on newlines
// and semicolons.
func Segments(text string) []string {
	var out []string
	for _, s := range recordSep.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}

	return out
}

// Points parses "lat, lon" records into validated points. Every record
// maps to exactly one outcome: a point or an invalid entry with the
// rejection reason. Fields beyond the first two are ignored.
func Points(text string) ([]geo.Point, []geo.InvalidEntry) {
	var points []geo.Point
	var invalid []geo.InvalidEntry

	for _, line := range Segments(text) {
		parts := fieldSep.Split(line, -1)
		if len(parts) < 2 {
			invalid = append(invalid, geo.InvalidEntry{Raw: line, Reason: reasonMissingPair})
			continue
		}

		lat, errLat := strconv.ParseFloat(parts[0], 64)
		lon, errLon := strconv.ParseFloat(parts[1], 64)
		if errLat != nil || errLon != nil {
			invalid = append(invalid, geo.InvalidEntry{Raw: line, Reason: reasonNotANumber})
			continue
		}

		if !geo.ValidLatLon(lat, lon) {
			invalid = append(invalid, geo.InvalidEntry{Raw: line, Reason: reasonOutOfRange})
			continue
		}

		points = append(points, geo.Point{Lat: lat, Lon: lon})
	}

	return points, invalid
}

// Pairs parses "lat1, lon1, lat2, lon2" records into validated point
// pairs with the same accounting contract as Points. Both points must
// be in range; point A is checked first.
func Pairs(text string) ([]geo.Pair, []geo.InvalidEntry) {
	var pairs []geo.Pair
	var invalid []geo.InvalidEntry

	for _, line := range Segments(text) {
		parts := fieldSep.Split(line, -1)
		if len(parts) < 4 {
			invalid = append(invalid, geo.InvalidEntry{Raw: line, Reason: reasonMissingQuad})
			continue
		}

		nums := make([]float64, 4)
		ok := true
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseFloat(parts[i], 64)
			if err != nil {
				ok = false
				break
			}
			nums[i] = v
		}
		if !ok {
			invalid = append(invalid, geo.InvalidEntry{Raw: line, Reason: reasonNotANumber})
			continue
		}

		if !geo.ValidLatLon(nums[0], nums[1]) {
			invalid = append(invalid, geo.InvalidEntry{Raw: line, Reason: reasonAOutOfRange})
			continue
		}
		if !geo.ValidLatLon(nums[2], nums[3]) {
			invalid = append(invalid, geo.InvalidEntry{Raw: line, Reason: reasonBOutOfRange})
			continue
		}

		pairs = append(pairs, geo.Pair{
			A: geo.Point{Lat: nums[0], Lon: nums[1]},
			B: geo.Point{Lat: nums[2], Lon: nums[3]},
		})
	}

	return pairs, invalid
}
