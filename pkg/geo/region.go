package geo

import (
	"errors"
	"math"

	"go.mongodb.org/mongo-driver/bson"
)

// EarthRadiusMiles is the radius used to turn a distance into radians.
const EarthRadiusMiles = 3963

type Point struct {
	Latitude  float64
	Longitude float64
}

// GeoJSON stores coordinates in [longitude, latitude] order.
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewGeoJSON(point Point) GeoJSON {
	return GeoJSON{
		Type:        "Point",
		Coordinates: []float64{point.Longitude, point.Latitude},
	}
}

func (g GeoJSON) Point() Point {
	if len(g.Coordinates) != 2 {
		return Point{}
	}

	return Point{Longitude: g.Coordinates[0], Latitude: g.Coordinates[1]}
}

type Region struct {
	Center        Point
	DistanceMiles float64
}

var ErrInvalidDistance = errors.New("distance must be a positive number")

func ValidateDistance(distanceMiles float64) error {
	if distanceMiles <= 0 || math.IsNaN(distanceMiles) || math.IsInf(distanceMiles, 0) {
		return ErrInvalidDistance
	}

	return nil
}

func NewRegion(center Point, distanceMiles float64) (*Region, error) {
	if err := ValidateDistance(distanceMiles); err != nil {
		return nil, err
	}

	return &Region{Center: center, DistanceMiles: distanceMiles}, nil
}

func (r *Region) Radians() float64 {
	return r.DistanceMiles / EarthRadiusMiles
}

// Filter matches documents whose point at field lies inside the region.
func (r *Region) Filter(field string) bson.D {
	return bson.D{{Key: field, Value: bson.D{{Key: "$geoWithin", Value: bson.D{
		{Key: "$centerSphere", Value: bson.A{
			bson.A{r.Center.Longitude, r.Center.Latitude},
			r.Radians(),
		}},
	}}}}}
}

// Contains uses the same spherical model as the store.
func (r *Region) Contains(point Point) bool {
	return Distance(r.Center, point) <= r.DistanceMiles
}

// Distance returns the great circle distance in miles.
func Distance(from, to Point) float64 {
	lat1 := toRadians(from.Latitude)
	lat2 := toRadians(to.Latitude)
	deltaLat := toRadians(to.Latitude - from.Latitude)
	deltaLng := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	return 2 * EarthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(a)))
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
