package geo

// Point represents a geographic coordinate in decimal degrees (WGS 84)
type Point struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// GeoUtils interface defines geographic calculation utilities.
// All distances are in METERS; callers convert with Kilometers/MetersFromKm
// at their own boundary and never mix units internally.
type GeoUtils interface {
	// Calculate great-circle distance between two points in meters
	PointToPoint(p1, p2 Point) (float64, error)

	// Calculate distance between coordinate pairs (convenience method)
	DistanceFromCoords(lat1, lon1, lat2, lon2 float64) (float64, error)

	// Filter points to those within specified distance of center point
	FilterPointsByDistance(points []Point, center Point, maxDistanceMeters float64) ([]Point, error)

	// Find index of the point closest to the reference, -1 if points is empty
	NearestPointIndex(reference Point, points []Point) (int, float64, error)
}

// NewGeoUtils is implemented in geo.go
