package location

import "context"

// Coordinates is a bare lat/lng pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is the structured result of a reverse geocode. Any subset of fields
// may be empty; the zero value means "nothing resolved".
type Place struct {
	Name       string
	Street     string
	District   string
	City       string
	Region     string
	PostalCode string
}

// IsZero reports whether the reverse geocode resolved nothing.
func (p Place) IsZero() bool {
	return p == Place{}
}

// Geocoder is the provider port. Both lookups are fallible and best-effort;
// callers fall back to coordinate display on failure.
type Geocoder interface {
	// Geocode resolves a free-text query to candidate coordinates.
	Geocode(ctx context.Context, query string) ([]Coordinates, error)
	// ReverseGeocode resolves coordinates to a structured place.
	ReverseGeocode(ctx context.Context, coords Coordinates) (Place, error)
}
