package parser

import (
	"encoding/json"

	"github.com/sounny/geoaiagents/internal/geo"
)

// maxDescent bounds the recursive walk over unknown GeoJSON shapes so
// adversarially nested documents cannot exhaust the stack.
const maxDescent = 32

// GeoJSONPoints extracts point coordinates from GeoJSON text. Point
// geometries, Features and FeatureCollections are handled directly;
// unknown objects are searched recursively, and a bare array whose
// leading elements are numeric is taken as one lon,lat pair.
// Out-of-range pairs are dropped and a malformed document yields nil.
func GeoJSONPoints(text string) []geo.Point {
	var doc interface{}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil
	}

	var points []geo.Point
	var walk func(node interface{}, depth int)
	walk = func(node interface{}, depth int) {
		if depth > maxDescent {
			return
		}

		switch v := node.(type) {
		case map[string]interface{}:
			switch v["type"] {
			case "Point":
				coords, _ := v["coordinates"].([]interface{})
				if lon, lat, ok := leadingPair(coords); ok && geo.ValidLatLon(lat, lon) {
					points = append(points, geo.Point{Lat: lat, Lon: lon})
				}
			case "Feature":
				walk(v["geometry"], depth+1)
			case "FeatureCollection":
				features, _ := v["features"].([]interface{})
				for _, f := range features {
					walk(f, depth+1)
				}
			default:
				for _, value := range v {
					walk(value, depth+1)
				}
			}
		case []interface{}:
			if lon, lat, ok := leadingPair(v); ok {
				if geo.ValidLatLon(lat, lon) {
					points = append(points, geo.Point{Lat: lat, Lon: lon})
				}
				return
			}
			for _, item := range v {
				walk(item, depth+1)
			}
		}
	}
	walk(doc, 0)

	return points
}

// leadingPair reads the first two elements of a coordinate array in
// GeoJSON lon,lat order. Extra elements (altitude etc.) are ignored.
func leadingPair(values []interface{}) (lon, lat float64, ok bool) {
	if len(values) < 2 {
		return 0, 0, false
	}

	lon, lonOK := values[0].(float64)
	lat, latOK := values[1].(float64)
	if !lonOK || !latOK {
		return 0, 0, false
	}

	return lon, lat, true
}
