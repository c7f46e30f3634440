// Package render formats coordinate results as markdown tables with a
// footer listing skipped inputs. Output uses \n separators and carries
// no trailing newline.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sounny/geoaiagents/internal/geo"
)

// Fixed table schemas used by the pipeline operations.
const (
	pointHeader    = "| Latitude | Longitude |"
	pointSeparator = "|---------:|----------:|"

	dmsHeader    = "| Latitude (DD) | Longitude (DD) | Latitude (DMS) | Longitude (DMS) |"
	dmsSeparator = "|--------------:|---------------:|---------------|---------------|"

	distanceHeader    = "| Point A Lat | Point A Lon | Point B Lat | Point B Lon | Distance (km) | Distance (mi) |"
	distanceSeparator = "| --- | --- | --- | --- | --- | --- |"

	geocodeHeader    = "| Input | Matched Address | Latitude | Longitude |"
	geocodeSeparator = "|-------|-----------------|----------|-----------|"

	reverseHeader    = "| Latitude | Longitude | Nearest Place | Distance (km) |"
	reverseSeparator = "|---------:|----------:|---------------|--------------:|"

	noPairsMessage = "No valid coordinate pairs provided."
	notFound       = "Not found"
)

// PointTable renders extracted points with coordinates in their
// shortest round-trip decimal form.
func PointTable(points []geo.Point) string {
	lines := []string{pointHeader, pointSeparator}
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("| %s | %s |", coord(p.Lat), coord(p.Lon)))
	}

	return strings.Join(lines, "\n")
}

// DMSTable renders points in both decimal-degree and DMS notation.
func DMSTable(points []geo.Point, invalid []geo.InvalidEntry) string {
	lines := []string{dmsHeader, dmsSeparator}
	for _, p := range points {
		lines = append(lines, fmt.Sprintf("| %14.6f | %15.6f | %-13s | %-13s |",
			p.Lat, p.Lon, geo.ToDMS(p.Lat).Format(true), geo.ToDMS(p.Lon).Format(false)))
	}

	return strings.Join(lines, "\n") + InvalidNotes(invalid)
}

// DistanceTable renders the great-circle distance for each pair of
// points. With no valid pairs it renders a note instead of an empty
// table.
func DistanceTable(pairs []geo.Pair, invalid []geo.InvalidEntry) string {
	if len(pairs) == 0 {
		return noPairsMessage + InvalidNotes(invalid)
	}

	lines := []string{distanceHeader, distanceSeparator}
	for _, pair := range pairs {
		km := geo.HaversineKm(pair.A, pair.B)
		lines = append(lines, fmt.Sprintf("| %.6f | %.6f | %.6f | %.6f | %.2f | %.2f |",
			pair.A.Lat, pair.A.Lon, pair.B.Lat, pair.B.Lon, km, km*geo.MilesPerKm))
	}

	return strings.Join(lines, "\n") + InvalidNotes(invalid)
}

// GeocodeRow is one resolved location for the geocode table.
type GeocodeRow struct {
	Input   string
	Address string
	Lat     float64
	Lon     float64
	Found   bool
}

// GeocodeTable renders gazetteer lookups, with a Not found placeholder
// and empty coordinate cells for unresolved names.
func GeocodeTable(rows []GeocodeRow) string {
	lines := []string{geocodeHeader, geocodeSeparator}
	for _, r := range rows {
		if !r.Found {
			lines = append(lines, fmt.Sprintf("| %s | %s |  |  |", r.Input, notFound))
			continue
		}
		lines = append(lines, fmt.Sprintf("| %s | %s | %s | %s |",
			r.Input, r.Address, coord(r.Lat), coord(r.Lon)))
	}

	return strings.Join(lines, "\n")
}

// ReverseRow is one reverse-geocoded point for the nearest-place table.
type ReverseRow struct {
	Point      geo.Point
	Place      string
	DistanceKm float64
	Found      bool
}

// ReverseTable renders the nearest gazetteer place for each parsed
// point, with an empty distance cell when no place qualifies.
func ReverseTable(rows []ReverseRow, invalid []geo.InvalidEntry) string {
	lines := []string{reverseHeader, reverseSeparator}
	for _, r := range rows {
		if !r.Found {
			lines = append(lines, fmt.Sprintf("| %.6f | %.6f | %s |  |", r.Point.Lat, r.Point.Lon, notFound))
			continue
		}
		lines = append(lines, fmt.Sprintf("| %.6f | %.6f | %s | %.2f |",
			r.Point.Lat, r.Point.Lon, r.Place, r.DistanceKm))
	}

	return strings.Join(lines, "\n") + InvalidNotes(invalid)
}

// InvalidNotes renders the skipped-inputs footer: a blank line, a
// header and one bullet per entry. It is empty when every input parsed.
func InvalidNotes(invalid []geo.InvalidEntry) string {
	if len(invalid) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n_Skipped invalid inputs:_")
	for _, e := range invalid {
		fmt.Fprintf(&b, "\n- `%s` (%s)", e.Raw, e.Reason)
	}

	return b.String()
}

// coord formats a coordinate with the fewest digits that round-trip.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
