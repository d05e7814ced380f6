package mappane

import (
	"math"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
)

// inRange reports whether a coordinate can be used to position the camera.
// Pins themselves are never rejected.
func inRange(p models.LatLng) bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// CenterOf averages the usable pin positions, falling back when there are none.
func CenterOf(pins []models.Pin, fallback models.LatLng) models.LatLng {
	var latSum, lngSum float64
	n := 0
	for _, pin := range pins {
		pos := pin.Position()
		if !inRange(pos) {
			continue
		}
		latSum += pos.Lat
		lngSum += pos.Lng
		n++
	}
	if n == 0 {
		return fallback
	}
	return models.LatLng{Lat: latSum / float64(n), Lng: lngSum / float64(n)}
}

// Bounds returns the south-west and north-east corners of the usable pins.
// ok is false when no pin is usable.
func Bounds(pins []models.Pin) (sw, ne models.LatLng, ok bool) {
	minLat, maxLat := math.MaxFloat64, -math.MaxFloat64
	minLng, maxLng := math.MaxFloat64, -math.MaxFloat64
	for _, pin := range pins {
		pos := pin.Position()
		if !inRange(pos) {
			continue
		}
		ok = true
		minLat = math.Min(minLat, pos.Lat)
		maxLat = math.Max(maxLat, pos.Lat)
		minLng = math.Min(minLng, pos.Lng)
		maxLng = math.Max(maxLng, pos.Lng)
	}
	if !ok {
		return models.LatLng{}, models.LatLng{}, false
	}
	return models.LatLng{Lat: minLat, Lng: minLng}, models.LatLng{Lat: maxLat, Lng: maxLng}, true
}
