package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371

// Distance returns the great-circle distance in kilometers between two
// coordinate pairs, using the haversine formula. Inputs are degrees.
func Distance(lat0, lon0, lat1, lon1 float64) float64 {
	dLat := (lat1 - lat0) * math.Pi / 180
	dLon := (lon1 - lon0) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat0*math.Pi/180)*math.Cos(lat1*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}
