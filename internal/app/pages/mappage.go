package pages

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/domain/mappane"
	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
)

// MapData is what the map screen shows.
type MapData struct {
	Enabled   bool
	SDKFailed bool
	Pins      []models.Pin
	View      mappane.View
}

// MapPage is the map screen. The widget itself lives in the layout's
// #map-pane; this fragment carries the instance settings and the pin list.
func MapPage(data MapData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section id="map-screen" data-screen="map" class="flex flex-col gap-4"`)
		if inst := data.View.Instance; inst != nil {
			h.attr("data-instance-id", inst.ID.String())
			h.attr("data-center-lat", formatCoord(inst.Center.Lat))
			h.attr("data-center-lng", formatCoord(inst.Center.Lng))
			h.attr("data-zoom", formatCoord(inst.Zoom))
		}
		h.raw(`>`)

		h.raw(`<div class="flex items-center justify-between"><h1 class="text-2xl font-semibold">Map</h1>`,
			`<button type="button" hx-post="/pins/clear" hx-target="#pin-list" hx-swap="outerHTML" class="`,
			secondaryButton, `">Clear pins</button></div>`)

		if !data.Enabled {
			h.raw(`<p id="map-disabled" class="rounded-md bg-amber-50 p-3 text-sm text-amber-800">`,
				`The map is unavailable because no maps API key is configured.</p>`)
		} else if data.SDKFailed {
			h.raw(`<p id="map-failed" class="rounded-md bg-red-50 p-3 text-sm text-red-700">`,
				`The map could not be loaded. The places below are still available.</p>`)
		}

		h.component(ctx, PinList(data.Pins))

		payload, err := pinsJSON(data.Pins)
		if err != nil {
			return err
		}
		h.raw(`<script type="application/json" id="map-pins">`, payload, `</script>`)
		h.raw(`</section>`)
		return h.err
	})
}

// PinList renders the side list of the current pins.
func PinList(pins []models.Pin) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		if len(pins) == 0 {
			h.raw(`<ul id="pin-list" class="text-sm text-slate-500"><li class="pin-empty">No places yet. Ask the assistant for suggestions.</li></ul>`)
			return h.err
		}

		h.raw(`<ul id="pin-list" class="divide-y rounded-md border bg-white text-sm">`)
		for _, pin := range pins {
			h.raw(`<li class="pin p-3"`)
			h.attr("data-lat", formatCoord(pin.Lat))
			h.attr("data-lng", formatCoord(pin.Lng))
			h.raw(`>`)
			if pin.Icon != "" {
				h.raw(`<span class="pin-icon mr-1">`)
				h.text(pin.Icon)
				h.raw(`</span>`)
			}
			h.raw(`<strong class="pin-label">`)
			if pin.Label != "" {
				h.text(pin.Label)
			} else {
				h.text("Unnamed place")
			}
			h.raw(`</strong> <span class="pin-coords text-slate-500">(`, formatCoord(pin.Lat), `, `, formatCoord(pin.Lng), `)</span>`)
			if pin.Description != "" {
				h.raw(`<p class="pin-description mt-1 text-slate-600">`)
				h.text(pin.Description)
				h.raw(`</p>`)
			}
			h.raw(`</li>`)
		}
		h.raw(`</ul>`)
		return h.err
	})
}

// pinsJSON encodes pins for an inline script tag. json.Marshal escapes <, >
// and & so the payload cannot close the tag.
func pinsJSON(pins []models.Pin) (string, error) {
	if pins == nil {
		pins = []models.Pin{}
	}
	b, err := json.Marshal(pins)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
