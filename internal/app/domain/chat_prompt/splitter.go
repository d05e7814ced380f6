package llmchat

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/FACorreiaa/go-travel-assistant/internal/app/models"
)

// jsonFence matches a fenced block tagged json. Only the first match is used.
var jsonFence = regexp.MustCompile("(?is)```json\\b[ \\t]*\\r?\\n?(.*?)```")

// Split is a reply separated into what the user reads and the optional pins payload.
type Split struct {
	Narrative  string
	Payload    string
	HasPayload bool
}

// SplitResponse locates the first ```json block. When found, the narrative is
// the text without that block, trimmed; otherwise the whole text is narrative.
func SplitResponse(text string) Split {
	loc := jsonFence.FindStringSubmatchIndex(text)
	if loc == nil {
		return Split{Narrative: text}
	}
	return Split{
		Narrative:  strings.TrimSpace(text[:loc[0]] + text[loc[1]:]),
		Payload:    strings.TrimSpace(text[loc[2]:loc[3]]),
		HasPayload: true,
	}
}

// Extraction is the result of running a reply through the splitter and the
// normalizer. PinsFound is false when the payload was absent or unusable.
type Extraction struct {
	Split
	Pins      []models.Pin
	PinsFound bool
}

// ExtractPins splits text and parses the payload. A payload that is not a
// JSON array, is empty, or whose first element lacks a latitude-like or a
// longitude-like key is dropped without error.
func ExtractPins(text string) Extraction {
	ext := Extraction{Split: SplitResponse(text)}
	if !ext.HasPayload {
		return ext
	}

	records, ok := decodeArray(ext.Payload)
	if !ok || len(records) == 0 {
		return ext
	}
	first, ok := records[0].(map[string]any)
	if !ok || !hasAnyKey(first, latKeys) || !hasAnyKey(first, lngKeys) {
		return ext
	}

	ext.Pins = NormalizePins(records)
	ext.PinsFound = true
	return ext
}

func decodeArray(payload string) ([]any, bool) {
	dec := json.NewDecoder(bytes.NewReader([]byte(payload)))
	dec.UseNumber()
	var records []any
	if err := dec.Decode(&records); err != nil {
		return nil, false
	}
	if dec.More() {
		return nil, false
	}
	return records, true
}
