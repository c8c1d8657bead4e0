// Package geo implements the coordinate displacement used to perturb the
// session's true position into synthetic location fixes.
package geo

import "math"

// EarthRadiusMeters is the WGS-84 mean earth radius.
const EarthRadiusMeters = 6371009.0

// Destination returns the point reached by travelling distanceMeters from
// (lat, lng) along the initial bearing bearingDeg (degrees clockwise from
// north), on a spherical earth. Deterministic: identical inputs always yield
// identical outputs.
func Destination(lat, lng, distanceMeters, bearingDeg float64) (float64, float64) {
	phi := radians(lat)
	lambda := radians(lng)
	theta := radians(bearingDeg)
	delta := distanceMeters / EarthRadiusMeters

	phi2 := math.Asin(math.Sin(phi)*math.Cos(delta) + math.Cos(phi)*math.Sin(delta)*math.Cos(theta))
	lambda2 := lambda + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(phi),
		math.Cos(delta)-math.Sin(phi)*math.Sin(phi2),
	)

	return degrees(phi2), normalizeLng(degrees(lambda2))
}

// DistanceMeters returns the great-circle distance between two points.
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lng2 - lng1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	return EarthRadiusMeters * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func normalizeLng(lng float64) float64 {
	for lng > 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}
	return lng
}
