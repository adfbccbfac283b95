package geo

import (
	"errors"
	"math"
)

// Earth's radius in meters
const earthRadius = 6371000

// geoUtils implements the GeoUtils interface
type geoUtils struct{}

// NewGeoUtils creates a new GeoUtils implementation
func NewGeoUtils() GeoUtils {
	return &geoUtils{}
}

// PointToPoint calculates great-circle distance between two points using Haversine formula
func (g *geoUtils) PointToPoint(p1, p2 Point) (float64, error) {
	// Validate coordinates
	if !IsValidCoordinate(p1) || !IsValidCoordinate(p2) {
		return 0, errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")
	}

	// If points are the same, distance is 0
	if p1.Latitude == p2.Latitude && p1.Longitude == p2.Longitude {
		return 0, nil
	}

	// Convert degrees to radians
	lat1 := p1.Latitude * math.Pi / 180
	lon1 := p1.Longitude * math.Pi / 180
	lat2 := p2.Latitude * math.Pi / 180
	lon2 := p2.Longitude * math.Pi / 180

	// Haversine formula
	dlat := lat2 - lat1
	dlon := lon2 - lon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c, nil
}

// DistanceFromCoords calculates distance between two coordinate pairs
// Convenience method for raw latitude/longitude values
func (g *geoUtils) DistanceFromCoords(lat1, lon1, lat2, lon2 float64) (float64, error) {
	point1 := Point{Latitude: lat1, Longitude: lon1}
	point2 := Point{Latitude: lat2, Longitude: lon2}

	return g.PointToPoint(point1, point2)
}

// FilterPointsByDistance filters points to those within specified distance of center point
func (g *geoUtils) FilterPointsByDistance(points []Point, center Point, maxDistanceMeters float64) ([]Point, error) {
	if !IsValidCoordinate(center) {
		return nil, errors.New("invalid center point coordinates")
	}

	var filteredPoints []Point

	for _, point := range points {
		if !IsValidCoordinate(point) {
			continue // Skip invalid points
		}

		distance, err := g.PointToPoint(center, point)
		if err != nil {
			continue // Skip points that cause calculation errors
		}

		if distance <= maxDistanceMeters {
			filteredPoints = append(filteredPoints, point)
		}
	}

	return filteredPoints, nil
}

// NearestPointIndex finds the point closest to the reference.
// Ties are broken by iteration order: the first closest point wins.
func (g *geoUtils) NearestPointIndex(reference Point, points []Point) (int, float64, error) {
	if !IsValidCoordinate(reference) {
		return -1, 0, errors.New("invalid reference point coordinates")
	}

	nearest := -1
	minDistance := math.Inf(1)

	for i, point := range points {
		distance, err := g.PointToPoint(reference, point)
		if err != nil {
			return -1, 0, err
		}
		if distance < minDistance {
			minDistance = distance
			nearest = i
		}
	}

	if nearest == -1 {
		return -1, 0, nil
	}
	return nearest, minDistance, nil
}

// Coordinate Conversion Utilities

// NewPoint creates a Point from latitude and longitude values with validation
func NewPoint(latitude, longitude float64) (Point, error) {
	point := Point{Latitude: latitude, Longitude: longitude}
	if !IsValidCoordinate(point) {
		return Point{}, errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")
	}
	return point, nil
}

// Kilometers converts a distance in meters to kilometers
func Kilometers(meters float64) float64 {
	return meters / 1000
}

// MetersFromKm converts a distance in kilometers to meters
func MetersFromKm(km float64) float64 {
	return km * 1000
}

// IsValidCoordinate validates latitude and longitude values
func IsValidCoordinate(point Point) bool {
	return point.Latitude >= -90 && point.Latitude <= 90 &&
		point.Longitude >= -180 && point.Longitude <= 180
}

// IsValidLatLon validates raw latitude and longitude values
func IsValidLatLon(lat, lon float64) bool {
	return IsValidCoordinate(Point{Latitude: lat, Longitude: lon})
}
