package llmchat

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
)

var (
	latKeys   = []string{"lat", "latitude"}
	lngKeys   = []string{"lng", "longitude"}
	labelKeys = []string{"label", "name"}
)

var knownKeys = map[string]bool{
	"lat": true, "latitude": true,
	"lng": true, "longitude": true,
	"label": true, "name": true,
	"icon": true, "description": true,
}

// NormalizePins maps heterogeneous records onto Pin. Elements that are not
// objects are skipped; nothing else is validated.
func NormalizePins(records []any) []models.Pin {
	pins := make([]models.Pin, 0, len(records))
	for _, r := range records {
		obj, ok := r.(map[string]any)
		if !ok {
			continue
		}
		pins = append(pins, normalizePin(obj))
	}
	return pins
}

func normalizePin(obj map[string]any) models.Pin {
	pin := models.Pin{
		Lat:   firstNumber(obj, latKeys),
		Lng:   firstNumber(obj, lngKeys),
		Label: firstString(obj, labelKeys),
	}
	if icon, ok := obj["icon"].(string); ok {
		pin.Icon = icon
	}
	if desc, ok := obj["description"].(string); ok {
		pin.Description = desc
	}
	for k, v := range obj {
		if knownKeys[k] {
			continue
		}
		if pin.Extra == nil {
			pin.Extra = make(map[string]any)
		}
		pin.Extra[k] = v
	}
	return pin
}

func hasAnyKey(obj map[string]any, keys []string) bool {
	for _, k := range keys {
		if _, ok := obj[k]; ok {
			return true
		}
	}
	return false
}

func firstNumber(obj map[string]any, keys []string) float64 {
	for _, k := range keys {
		if v, ok := toFloat(obj[k]); ok {
			return v
		}
	}
	return 0
}

func firstString(obj map[string]any, keys []string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
