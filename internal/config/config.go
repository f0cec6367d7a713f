package config

import (
	"time"

	"github.com/dshills/captty/internal/capture"
	"github.com/dshills/captty/internal/term"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Config holds every tunable that shapes the terminal model and
// capture engine.
type Config struct {
	MaxHistory              int
	VolatileRowCount        int
	StabilityWindow         time.Duration
	SuppressAlternateScreen bool
}

// Default returns spec.md's documented defaults.
func Default() Config {
	return Config{
		MaxHistory:              50000,
		VolatileRowCount:        2,
		StabilityWindow:         350 * time.Millisecond,
		SuppressAlternateScreen: true,
	}
}

// ToTermOptions produces the term.Options fields this Config governs.
// Cols, Rows, and Logger are the caller's concern and are left zero.
func (c Config) ToTermOptions() term.Options {
	return term.Options{Scrollback: c.MaxHistory}
}

// ToCaptureConfig produces the capture.Config this Config governs.
func (c Config) ToCaptureConfig() capture.Config {
	return capture.Config{
		VolatileRowCount:        c.VolatileRowCount,
		StabilityWindow:         c.StabilityWindow,
		SuppressAlternateScreen: c.SuppressAlternateScreen,
	}
}

// FromJSON parses a JSON document into a Config, starting from
// Default() and overriding any field present in doc. Unknown fields
// are ignored. Field names are maxHistory, volatileRowCount,
// stabilityWindowMs, suppressAlternateScreen.
func FromJSON(doc string) Config {
	c := Default()
	if v := gjson.Get(doc, "maxHistory"); v.Exists() {
		c.MaxHistory = int(v.Int())
	}
	if v := gjson.Get(doc, "volatileRowCount"); v.Exists() {
		c.VolatileRowCount = int(v.Int())
	}
	if v := gjson.Get(doc, "stabilityWindowMs"); v.Exists() {
		c.StabilityWindow = time.Duration(v.Int()) * time.Millisecond
	}
	if v := gjson.Get(doc, "suppressAlternateScreen"); v.Exists() {
		c.SuppressAlternateScreen = v.Bool()
	}
	return c
}

// Patch applies c onto the JSON document doc, returning the updated
// document. Used to persist a running session's effective config
// alongside whatever other settings a caller's JSON blob carries.
func (c Config) Patch(doc string) (string, error) {
	var err error
	doc, err = sjson.Set(doc, "maxHistory", c.MaxHistory)
	if err != nil {
		return doc, err
	}
	doc, err = sjson.Set(doc, "volatileRowCount", c.VolatileRowCount)
	if err != nil {
		return doc, err
	}
	doc, err = sjson.Set(doc, "stabilityWindowMs", c.StabilityWindow.Milliseconds())
	if err != nil {
		return doc, err
	}
	doc, err = sjson.Set(doc, "suppressAlternateScreen", c.SuppressAlternateScreen)
	if err != nil {
		return doc, err
	}
	return doc, nil
}
