package models

// Pin is a labeled coordinate rendered as a map marker.
// Coordinates are not range-checked.
type Pin struct {
	Lat         float64        `json:"lat"`
	Lng         float64        `json:"lng"`
	Label       string         `json:"label,omitempty"`
	Icon        string         `json:"icon,omitempty"`
	Description string         `json:"description,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`
}

// LatLng is a plain coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Pin) Position() LatLng {
	return LatLng{Lat: p.Lat, Lng: p.Lng}
}

// ClonePins returns a copy of pins that shares no backing array with the input.
func ClonePins(pins []Pin) []Pin {
	if pins == nil {
		return nil
	}
	out := make([]Pin, len(pins))
	copy(out, pins)
	return out
}
