// Package pipeline exposes the text-in, markdown-out coordinate
// operations. Every function accepts raw UTF-8 text, never returns an
// error and performs no I/O; malformed input ends up as an empty table
// or a skipped-inputs footer.
package pipeline

import (
	"github.com/sounny/geoaiagents/internal/gazetteer"
	"github.com/sounny/geoaiagents/internal/parser"
	"github.com/sounny/geoaiagents/internal/render"
)

// ConvertPointsToDMS converts newline- or semicolon-delimited "lat, lon"
// pairs to a table of decimal-degree and DMS notation. Rejected records
// are listed in the footer.
func ConvertPointsToDMS(text string) string {
	points, invalid := parser.Points(text)
	return render.DMSTable(points, invalid)
}

// ComputeDistances computes great-circle distances for "lat1, lon1,
// lat2, lon2" records. Rejected records are listed in the footer.
func ComputeDistances(text string) string {
	pairs, invalid := parser.Pairs(text)
	return render.DistanceTable(pairs, invalid)
}

// ParseGeoJSON extracts point coordinates from GeoJSON text.
func ParseGeoJSON(text string) string {
	return render.PointTable(parser.GeoJSONPoints(text))
}

// ParseKML extracts point coordinates from KML text.
func ParseKML(text string) string {
	return render.PointTable(parser.KMLPoints(text))
}

// ParseCSV extracts point coordinates from CSV text with latitude and
// longitude columns.
func ParseCSV(text string) string {
	return render.PointTable(parser.CSVPoints(text))
}

// GeocodeLocations resolves newline- or semicolon-delimited place names
// against the gazetteer. Unknown names render a Not found row.
func GeocodeLocations(idx *gazetteer.Index, text string) string {
	names := parser.Segments(text)

	rows := make([]render.GeocodeRow, 0, len(names))
	for _, name := range names {
		place, ok := idx.Resolve(name)
		if !ok {
			rows = append(rows, render.GeocodeRow{Input: name})
			continue
		}
		rows = append(rows, render.GeocodeRow{
			Input:   name,
			Address: place.Address,
			Lat:     place.Coord.Lat,
			Lon:     place.Coord.Lon,
			Found:   true,
		})
	}

	return render.GeocodeTable(rows)
}

// ReverseGeocodeCoordinates finds the nearest gazetteer place for each
// parsed "lat, lon" record. A maxKm above zero discards matches farther
// away; rejected records are listed in the footer.
func ReverseGeocodeCoordinates(idx *gazetteer.Index, maxKm float64, text string) string {
	points, invalid := parser.Points(text)

	rows := make([]render.ReverseRow, 0, len(points))
	for _, p := range points {
		place, km, ok := idx.Nearest(p)
		if !ok || (maxKm > 0 && km > maxKm) {
			rows = append(rows, render.ReverseRow{Point: p})
			continue
		}
		rows = append(rows, render.ReverseRow{Point: p, Place: place.Name, DistanceKm: km, Found: true})
	}

	return render.ReverseTable(rows, invalid)
}
