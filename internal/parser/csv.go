package parser

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/sounny/geoaiagents/internal/geo"
)

// CSVPoints extracts point coordinates from CSV text with a header
// row. The latitude column is the first header matching lat, latitude
// or y and the longitude column the first matching lon, lng, longitude
// or x, case-insensitively. Without both columns the result is empty.
// Rows with missing, non-numeric or out-of-range values are skipped.
func CSVPoints(text string) []geo.Point {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := r.Read()
	if err != nil {
		return nil
	}

	latCol, lonCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(name) {
		case "lat", "latitude", "y":
			if latCol < 0 {
				latCol = i
			}
		case "lon", "lng", "longitude", "x":
			if lonCol < 0 {
				lonCol = i
			}
		}
	}
	if latCol < 0 || lonCol < 0 {
		return nil
	}

	var points []geo.Point
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if latCol >= len(record) || lonCol >= len(record) {
			continue
		}

		lat, errLat := strconv.ParseFloat(strings.TrimSpace(record[latCol]), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(record[lonCol]), 64)
		if errLat != nil || errLon != nil {
			continue
		}
		if !geo.ValidLatLon(lat, lon) {
			continue
		}

		points = append(points, geo.Point{Lat: lat, Lon: lon})
	}

	return points
}
