package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func HomePage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section id="home-screen" data-screen="home" class="py-12 text-center">`+
			`<h1 class="text-3xl font-bold">Plan your next trip</h1>`+
			`<p class="mt-3 text-slate-600">Ask the travel assistant for ideas and see the places it suggests on the map.</p>`+
			`<div class="mt-6 flex justify-center gap-3">`+
			`<a href="/chat" hx-get="/chat" hx-target="#screen" hx-push-url="true" class="`+primaryButton+`">Start chatting</a>`+
			`<a href="/map" hx-get="/map" hx-target="#screen" hx-push-url="true" class="`+secondaryButton+`">Open the map</a>`+
			`</div></section>`)
		return err
	})
}

func PlannerPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section id="planner-screen" data-screen="planner" class="py-12 text-center">`+
			`<h1 class="text-2xl font-semibold">Trip planner</h1>`+
			`<p class="mt-3 text-slate-600">Itinerary planning is coming soon.</p>`+
			`</section>`)
		return err
	})
}
