package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/metrics"
)

// HTTPGeocoder talks to a Nominatim-compatible geocoding service. Outbound
// calls run through a circuit breaker so a degraded provider degrades to
// the normal coordinate-fallback path instead of piling up requests.
type HTTPGeocoder struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	baseURL string
}

func NewHTTPGeocoder(baseURL string) *HTTPGeocoder {
	return &HTTPGeocoder{
		client: resty.New().
			SetTimeout(5 * time.Second).
			SetHeader("User-Agent", "kiranna-mart-storefront"),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "Geocoder",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 3 && failureRatio >= 0.6
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.WithFields(log.Fields{
					"circuit": name,
					"from":    from.String(),
					"to":      to.String(),
				}).Info("Circuit breaker state changed")
			},
		}),
		baseURL: baseURL,
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Address     struct {
		Road          string `json:"road"`
		Neighbourhood string `json:"neighbourhood"`
		Suburb        string `json:"suburb"`
		City          string `json:"city"`
		Town          string `json:"town"`
		State         string `json:"state"`
		Postcode      string `json:"postcode"`
	} `json:"address"`
}

func (g *HTTPGeocoder) Geocode(ctx context.Context, query string) ([]Coordinates, error) {
	body, err := g.call(ctx, "forward", g.baseURL+"/search", map[string]string{
		"q":      query,
		"format": "json",
		"limit":  "6",
	})
	if err != nil {
		return nil, err
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to parse geocode response: %w", err)
	}

	coords := make([]Coordinates, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		coords = append(coords, Coordinates{Latitude: lat, Longitude: lon})
	}
	return coords, nil
}

func (g *HTTPGeocoder) ReverseGeocode(ctx context.Context, c Coordinates) (Place, error) {
	body, err := g.call(ctx, "reverse", g.baseURL+"/reverse", map[string]string{
		"lat":    strconv.FormatFloat(c.Latitude, 'f', -1, 64),
		"lon":    strconv.FormatFloat(c.Longitude, 'f', -1, 64),
		"format": "json",
	})
	if err != nil {
		return Place{}, err
	}

	var r nominatimResult
	if err := json.Unmarshal(body, &r); err != nil {
		return Place{}, fmt.Errorf("failed to parse reverse geocode response: %w", err)
	}

	district := r.Address.Neighbourhood
	if district == "" {
		district = r.Address.Suburb
	}
	city := r.Address.City
	if city == "" {
		city = r.Address.Town
	}
	return Place{
		Name:       r.Name,
		Street:     r.Address.Road,
		District:   district,
		City:       city,
		Region:     r.Address.State,
		PostalCode: r.Address.Postcode,
	}, nil
}

func (g *HTTPGeocoder) call(ctx context.Context, kind, url string, params map[string]string) ([]byte, error) {
	result, err := g.breaker.Execute(func() (interface{}, error) {
		resp, httpErr := g.client.R().
			SetContext(ctx).
			SetQueryParams(params).
			Get(url)
		if httpErr != nil {
			return nil, fmt.Errorf("HTTP error: %w", httpErr)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode())
		}
		return resp.Body(), nil
	})
	if err != nil {
		metrics.GeocodeRequests.WithLabelValues(kind, "error").Inc()
		if err == gobreaker.ErrOpenState {
			return nil, fmt.Errorf("geocoder circuit open: %w", err)
		}
		return nil, err
	}
	metrics.GeocodeRequests.WithLabelValues(kind, "ok").Inc()
	return result.([]byte), nil
}
