package location

import (
	"fmt"
	"strings"
)

// FormatOptions tunes FormatAddress. MaxParts of 0 means no cap.
type FormatOptions struct {
	MaxParts                 int
	IncludeCoordsIfLowDetail bool
}

// CoordinateLabel renders coordinates the way they appear wherever an
// address cannot be resolved.
func CoordinateLabel(c Coordinates) string {
	return fmt.Sprintf("%.5f, %.5f", c.Latitude, c.Longitude)
}

// FormatAddress builds a display address from a reverse-geocoded place,
// falling back to the raw coordinates when nothing resolved. Duplicate
// parts are dropped while preserving order; with
// IncludeCoordsIfLowDetail set, addresses of two or fewer parts get the
// coordinates appended so the label stays unambiguous.
func FormatAddress(place Place, fallback Coordinates, opts FormatOptions) string {
	if place.IsZero() {
		return CoordinateLabel(fallback)
	}

	raw := []string{place.Name, place.Street, place.District, place.City, place.Region, place.PostalCode}
	var parts []string
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" || contains(parts, p) {
			continue
		}
		parts = append(parts, p)
	}

	used := parts
	if opts.MaxParts > 0 && len(used) > opts.MaxParts {
		used = used[:opts.MaxParts]
	}

	label := strings.Join(used, ", ")
	if label == "" {
		return CoordinateLabel(fallback)
	}
	if opts.IncludeCoordsIfLowDetail && len(parts) <= 2 {
		label = fmt.Sprintf("%s (%s)", label, CoordinateLabel(fallback))
	}
	return label
}

func contains(parts []string, s string) bool {
	for _, p := range parts {
		if p == s {
			return true
		}
	}
	return false
}
