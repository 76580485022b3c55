package location

import (
	"context"
	"strings"
	"sync"
	"time"
)

const (
	// MinQueryLength is the shortest query worth geocoding.
	MinQueryLength = 3
	// DefaultDebounce matches the keystroke settle delay of the client.
	DefaultDebounce = 450 * time.Millisecond
	maxSuggestions  = 6
	maxRecent       = 6
)

// Suggestion is one labeled address candidate.
type Suggestion struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Suggester turns free-text queries into address suggestions. Query is
// debounced and carries a monotonically increasing sequence number: a
// response belonging to a superseded query is discarded, so the guarantee
// is "last request issued wins", not "last response received wins".
type Suggester struct {
	mu       sync.Mutex
	geocoder Geocoder
	debounce time.Duration
	seq      uint64
	timer    *time.Timer
	closed   bool
}

func NewSuggester(g Geocoder, debounce time.Duration) *Suggester {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Suggester{geocoder: g, debounce: debounce}
}

// Query schedules a debounced lookup for q and delivers the suggestions to
// the callback once the debounce window elapses without a newer query.
// Queries shorter than MinQueryLength deliver an empty result immediately.
// A later Query or Close supersedes any pending one.
func (s *Suggester) Query(q string, deliver func([]Suggestion)) {
	q = strings.TrimSpace(q)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.seq++
	id := s.seq
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if len(q) < MinQueryLength {
		s.mu.Unlock()
		deliver(nil)
		return
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		suggestions, err := s.Lookup(context.Background(), q)
		if err != nil {
			suggestions = nil
		}
		s.mu.Lock()
		stale := s.closed || s.seq != id
		s.mu.Unlock()
		if stale {
			return
		}
		deliver(suggestions)
	})
	s.mu.Unlock()
}

// Close cancels any pending lookup. No callback fires after Close returns.
func (s *Suggester) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Lookup resolves q synchronously: forward geocode, cap at six candidates,
// reverse geocode each into a short label (falling back to the coordinate
// string per candidate), then de-dupe by label.
func (s *Suggester) Lookup(ctx context.Context, q string) ([]Suggestion, error) {
	matches, err := s.geocoder.Geocode(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	var out []Suggestion
	seen := make(map[string]bool)
	for _, m := range matches {
		label := CoordinateLabel(m)
		if place, err := s.geocoder.ReverseGeocode(ctx, m); err == nil {
			label = FormatAddress(place, m, FormatOptions{MaxParts: 3})
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, Suggestion{
			ID:        CoordinateLabel(m),
			Label:     label,
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
		})
	}
	return out, nil
}

// RecentSearches keeps the shopper's last picked suggestions, newest first,
// de-duped by label and capped.
type RecentSearches struct {
	mu      sync.Mutex
	entries []Suggestion
}

func (r *RecentSearches) Add(s Suggestion) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := make([]Suggestion, 0, len(r.entries)+1)
	kept = append(kept, s)
	for _, e := range r.entries {
		if e.Label == s.Label {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > maxRecent {
		kept = kept[:maxRecent]
	}
	r.entries = kept
}

func (r *RecentSearches) List() []Suggestion {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Suggestion, len(r.entries))
	copy(out, r.entries)
	return out
}
