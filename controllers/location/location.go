package locationControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/location"
)

type SetLocationInput struct {
	Latitude       float64 `json:"latitude" binding:"required"`
	Longitude      float64 `json:"longitude" binding:"required"`
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
	Address        string  `json:"address"`
}

// GET /location/suggest?q=...
func Suggest(suggester *location.Suggester) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if len(q) < location.MinQueryLength {
			c.JSON(http.StatusOK, gin.H{"suggestions": []location.Suggestion{}})
			return
		}

		suggestions, err := suggester.Lookup(c.Request.Context(), q)
		if err != nil {
			// Lookup failures degrade to an empty list, never an error page.
			c.JSON(http.StatusOK, gin.H{"suggestions": []location.Suggestion{}})
			return
		}
		if suggestions == nil {
			suggestions = []location.Suggestion{}
		}
		c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
	}
}

// GET /location/reverse?lat=...&lng=...
func Reverse(geocoder location.Geocoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required"})
			return
		}

		coords := location.Coordinates{Latitude: lat, Longitude: lng}
		address := location.CoordinateLabel(coords)
		if place, err := geocoder.ReverseGeocode(c.Request.Context(), coords); err == nil {
			address = location.FormatAddress(place, coords, location.FormatOptions{IncludeCoordsIfLowDetail: true})
		}
		c.JSON(http.StatusOK, gin.H{"address": address})
	}
}

// POST /user/location
func SetLocation(loc *location.Store, geocoder location.Geocoder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetLocationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		region := location.Region{
			Latitude:       input.Latitude,
			Longitude:      input.Longitude,
			LatitudeDelta:  input.LatitudeDelta,
			LongitudeDelta: input.LongitudeDelta,
		}
		if region.LatitudeDelta == 0 {
			region.LatitudeDelta = location.DefaultDelta
		}
		if region.LongitudeDelta == 0 {
			region.LongitudeDelta = location.DefaultDelta
		}

		address := input.Address
		if address == "" {
			coords := location.Coordinates{Latitude: input.Latitude, Longitude: input.Longitude}
			address = location.CoordinateLabel(coords)
			if place, err := geocoder.ReverseGeocode(c.Request.Context(), coords); err == nil {
				address = location.FormatAddress(place, coords, location.FormatOptions{IncludeCoordsIfLowDetail: true})
			}
		}

		loc.SetLocation(region, address)
		c.JSON(http.StatusOK, gin.H{"region": region, "address": address})
	}
}

// GET /user/location
func GetLocation(loc *location.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"region":  loc.Region(),
			"address": loc.Address(),
		})
	}
}

// POST /location/recent
func AddRecentSearch(recent *location.RecentSearches) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s location.Suggestion
		if err := c.ShouldBindJSON(&s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		recent.Add(s)
		c.JSON(http.StatusOK, gin.H{"recent": recent.List()})
	}
}

// GET /location/recent
func GetRecentSearches(recent *location.RecentSearches) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"recent": recent.List()})
	}
}
