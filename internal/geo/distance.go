package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for the spherical
// great-circle approximation.
const EarthRadiusKm = 6371.0088

// MilesPerKm is the number of statute miles in one kilometre.
const MilesPerKm = 0.621371

// HaversineKm computes the great-circle distance between two points in
// kilometres on a sphere of radius EarthRadiusKm.
func HaversineKm(a, b Point) float64 {
	phi1 := toRad(a.Lat)
	phi2 := toRad(b.Lat)
	dPhi := toRad(b.Lat - a.Lat)
	dLambda := toRad(b.Lon - a.Lon)

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(dLambda/2)*math.Sin(dLambda/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
