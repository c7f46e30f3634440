package parser

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/sounny/geoaiagents/internal/geo"
)

const kmlNamespace = "http://www.opengis.net/kml/2.2"

// KMLPoints extracts point coordinates from KML 2.2 text. The content
// of every namespaced <coordinates> element is tokenized on whitespace
// and each "lon,lat[,alt]" tuple becomes one point. Tuples with a bad
// numeric component are skipped individually; any XML error discards
// the whole document and yields nil.
func KMLPoints(text string) []geo.Point {
	dec := xml.NewDecoder(strings.NewReader(text))

	var points []geo.Point
	var buf strings.Builder
	inCoordinates := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space == kmlNamespace && t.Name.Local == "coordinates" {
				inCoordinates = true
				buf.Reset()
			}
		case xml.CharData:
			if inCoordinates {
				buf.Write(t)
			}
		case xml.EndElement:
			if inCoordinates && t.Name.Space == kmlNamespace && t.Name.Local == "coordinates" {
				inCoordinates = false
				points = append(points, coordinateTuples(buf.String())...)
			}
		}
	}

	return points
}

// coordinateTuples parses whitespace-separated "lon,lat[,alt]" tuples,
// keeping the in-range pairs.
func coordinateTuples(content string) []geo.Point {
	var points []geo.Point

	for _, tuple := range strings.Fields(content) {
		parts := strings.Split(tuple, ",")
		if len(parts) < 2 {
			continue
		}

		lon, errLon := strconv.ParseFloat(parts[0], 64)
		lat, errLat := strconv.ParseFloat(parts[1], 64)
		if errLon != nil || errLat != nil {
			continue
		}
		if !geo.ValidLatLon(lat, lon) {
			continue
		}

		points = append(points, geo.Point{Lat: lat, Lon: lon})
	}

	return points
}
