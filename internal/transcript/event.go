package transcript

import (
	"encoding/json"
	"time"
)

// Kind identifies the wire-level event type. Append is the only kind
// today; consumers are expected to treat unknown kinds as opaque.
type Kind string

// Append is the sole event kind the capture engine emits.
const Append Kind = "append"

// Source identifies which half of the capture engine's strategy
// produced an event: committed scrollback, or a screen row that held
// its content unchanged for the configured stability window.
type Source string

const (
	Scrollback   Source = "SCROLLBACK"
	ScreenStable Source = "SCREEN_STABLE"
)

// Event is a single appended line of transcript text.
type Event struct {
	Kind      Kind
	Text      string
	Timestamp time.Time
	Source    Source
}

// NewAppend builds an append Event. text should already carry its
// trailing newline; callers normalize and trim before constructing one.
func NewAppend(text string, ts time.Time, src Source) Event {
	return Event{Kind: Append, Text: text, Timestamp: ts, Source: src}
}

type wireMeta struct {
	TimestampUTC string `json:"timestampUtc"`
	Source       Source `json:"source"`
}

type wireEvent struct {
	Type string   `json:"type"`
	Text string   `json:"text"`
	Meta wireMeta `json:"meta"`
}

// MarshalJSON renders e in the wire shape:
//
//	{"type":"append","text":"<line>\n","meta":{"timestampUtc":"<RFC3339>","source":"SCROLLBACK"}}
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireEvent{
		Type: string(e.Kind),
		Text: e.Text,
		Meta: wireMeta{
			TimestampUTC: e.Timestamp.UTC().Format(time.RFC3339Nano),
			Source:       e.Source,
		},
	})
}
