package location

import "sync"

// Region is a map viewport centered on the delivery point.
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
}

// DefaultDelta is the zoom level used when centering on a picked point.
const DefaultDelta = 0.005

// Store holds the confirmed delivery location: the map region and its
// formatted address. Both are unset until the shopper confirms a location.
type Store struct {
	mu      sync.RWMutex
	region  *Region
	address string
}

func NewStore() *Store { return &Store{} }

func (s *Store) SetLocation(region Region, address string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := region
	s.region = &r
	s.address = address
}

func (s *Store) Region() *Region {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.region == nil {
		return nil
	}
	r := *s.region
	return &r
}

func (s *Store) Address() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.address
}
