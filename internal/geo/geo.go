// Package geo holds the great-circle math shared by matching, policy
// distance checks and the live projections.
package geo

import "math"

const earthRadiusKM = 6371.0

// MilesToKM converts statute miles to kilometers.
func MilesToKM(miles float64) float64 { return miles * 1.60934 }

// DistanceKM returns the haversine great-circle distance in kilometers
// between two points given in decimal degrees.
func DistanceKM(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
