package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	twmerge "github.com/Oudwins/tailwind-merge-go"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
)

const (
	navLinkBase   = "px-3 py-2 rounded-md text-sm font-medium text-slate-600 hover:bg-slate-100"
	navLinkActive = "bg-sky-600 text-white hover:bg-sky-700"
)

func navLinkClass(active bool) string {
	if active {
		return twmerge.Merge(navLinkBase, navLinkActive)
	}
	return navLinkBase
}

// LayoutPage renders the full document. Screens are swapped into #screen,
// which is also the htmx history element. The map pane lives outside it so
// neither screen switches nor Back/Forward restores replace the live widget.
func LayoutPage(data models.LayoutTempl) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		h.text(data.Title)
		h.raw(`</title>`,
			`<script src="https://cdn.tailwindcss.com"></script>`,
			`<script src="https://unpkg.com/htmx.org@2.0.4"></script>`,
			`<link rel="stylesheet" href="/assets/css/app.css">`,
			`<script src="/assets/js/map.js" defer></script>`,
			`</head>`)

		h.raw(`<body class="min-h-screen bg-slate-50 text-slate-900"`)
		h.attr("data-screen", string(data.ActiveNav))
		h.raw(`>`)

		h.raw(`<header class="border-b bg-white"><nav id="main-nav" class="mx-auto flex max-w-5xl gap-2 p-3">`)
		for _, item := range data.Nav.Items {
			h.raw(`<a`)
			h.attr("href", item.URL)
			h.attr("hx-get", item.URL)
			h.raw(` hx-target="#screen" hx-push-url="true"`)
			h.attr("data-screen", string(item.Screen))
			h.attr("class", navLinkClass(item.Screen == data.ActiveNav))
			if item.Screen == data.ActiveNav {
				h.raw(` aria-current="page"`)
			}
			h.raw(`>`)
			h.text(item.Name)
			h.raw(`</a>`)
		}
		h.raw(`</nav></header>`)

		h.raw(`<main id="screen" class="mx-auto max-w-5xl p-4" hx-history-elt>`)
		h.component(ctx, data.Content)
		h.raw(`</main>`)

		if data.Map.Enabled {
			h.raw(`<section id="map-pane" class="mx-auto max-w-5xl px-4 pb-4"`)
			h.attr("data-sdk-url", data.Map.SDKURL)
			h.attr("data-pins-url", data.Map.PinsURL)
			if !data.Map.Visible {
				h.raw(` hidden`)
			}
			h.raw(`><div id="map-canvas" class="h-[28rem] w-full rounded-lg border"></div></section>`)
		}

		h.raw(`</body></html>`)
		return h.err
	})
}
