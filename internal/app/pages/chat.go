package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	twmerge "github.com/Oudwins/tailwind-merge-go"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
	"github.com/FACorreiaa/go-travel-assistant/internal/pkg/markdown"
)

const (
	buttonBase      = "inline-flex items-center rounded-md px-4 py-2 text-sm font-medium"
	primaryButton   = buttonBase + " bg-sky-600 text-white hover:bg-sky-700"
	secondaryButton = buttonBase + " border border-slate-300 bg-white text-slate-700 hover:bg-slate-100"

	bubbleBase      = "max-w-[80%] rounded-lg px-4 py-2 text-sm whitespace-pre-wrap"
	bubbleUser      = "ml-auto bg-sky-600 text-white"
	bubbleAssistant = "mr-auto bg-white border border-slate-200"
	bubbleMarkdown  = "whitespace-normal prose prose-sm"
)

func bubbleClass(msg models.ChatMessage) string {
	if msg.IsUser() {
		return twmerge.Merge(bubbleBase, bubbleUser)
	}
	if msg.Markdown {
		return twmerge.Merge(bubbleBase, bubbleAssistant, bubbleMarkdown)
	}
	return twmerge.Merge(bubbleBase, bubbleAssistant)
}

// ChatPage is the chat screen: the transcript, the input form and the clear action.
func ChatPage(transcript []models.ChatMessage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section id="chat-screen" data-screen="chat" class="flex flex-col gap-4">`,
			`<div class="flex items-center justify-between"><h1 class="text-2xl font-semibold">Travel assistant</h1>`,
			`<button type="button" hx-post="/chat/clear" hx-target="#chat-transcript" hx-swap="innerHTML" class="`,
			secondaryButton, `">Clear chat</button></div>`)

		h.raw(`<div id="chat-transcript" class="flex flex-col gap-3" aria-live="polite">`)
		h.component(ctx, ChatMessages(transcript))
		h.raw(`</div>`)

		h.raw(`<form id="chat-form" class="flex gap-2" hx-post="/chat/messages" hx-target="#chat-transcript" hx-swap="beforeend" `,
			`hx-disabled-elt="find button" hx-on::after-request="if(event.detail.successful) this.reset()">`,
			`<input type="text" name="message" autocomplete="off" required pattern=".*\S.*" `,
			`placeholder="Where would you like to go?" class="flex-1 rounded-md border border-slate-300 px-3 py-2">`,
			`<button type="submit" class="`, primaryButton, `">Send</button></form>`)

		h.raw(`</section>`)
		return h.err
	})
}

// ChatMessages renders transcript entries in order. Used for the full
// transcript and for the messages appended by one turn.
func ChatMessages(msgs []models.ChatMessage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, msg := range msgs {
			if err := ChatMessage(msg).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func ChatMessage(msg models.ChatMessage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div`)
		h.attr("id", "msg-"+msg.ID.String())
		h.attr("data-role", string(msg.Role))
		h.attr("class", bubbleClass(msg))
		h.raw(`>`)

		if msg.Markdown {
			rendered, err := markdown.ToHTML(msg.Content)
			if err != nil {
				h.text(msg.Content)
			} else {
				h.component(ctx, templ.Raw(rendered))
			}
		} else {
			h.text(msg.Content)
		}

		h.raw(`</div>`)
		return h.err
	})
}
