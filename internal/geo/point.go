package geo

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Pair bundles two points for pairwise distance computation.
type Pair struct {
	A Point
	B Point
}

// InvalidEntry records an input segment that failed parsing or
// validation, with a human-readable reason.
type InvalidEntry struct {
	Raw    string
	Reason string
}

// ValidLatLon reports whether the coordinates fall within WGS84 bounds.
// Bounds are inclusive; NaN is rejected.
func ValidLatLon(lat, lon float64) bool {
	return lat >= -90.0 && lat <= 90.0 && lon >= -180.0 && lon <= 180.0
}
