package config

import (
	"testing"
	"time"
)

func TestDefaultMatchesDocumentedValues(t *testing.T) {
	c := Default()
	if c.MaxHistory != 50000 {
		t.Errorf("MaxHistory = %d, want 50000", c.MaxHistory)
	}
	if c.VolatileRowCount != 2 {
		t.Errorf("VolatileRowCount = %d, want 2", c.VolatileRowCount)
	}
	if c.StabilityWindow != 350*time.Millisecond {
		t.Errorf("StabilityWindow = %v, want 350ms", c.StabilityWindow)
	}
	if !c.SuppressAlternateScreen {
		t.Errorf("SuppressAlternateScreen = false, want true")
	}
}

func TestFromJSONOverridesOnlyPresentFields(t *testing.T) {
	c := FromJSON(`{"volatileRowCount": 5}`)
	if c.VolatileRowCount != 5 {
		t.Errorf("VolatileRowCount = %d, want 5", c.VolatileRowCount)
	}
	if c.MaxHistory != Default().MaxHistory {
		t.Errorf("MaxHistory = %d, want untouched default %d", c.MaxHistory, Default().MaxHistory)
	}
}

func TestFromJSONStabilityWindowMilliseconds(t *testing.T) {
	c := FromJSON(`{"stabilityWindowMs": 500}`)
	if c.StabilityWindow != 500*time.Millisecond {
		t.Errorf("StabilityWindow = %v, want 500ms", c.StabilityWindow)
	}
}

func TestPatchRoundTripsThroughFromJSON(t *testing.T) {
	c := Config{MaxHistory: 100, VolatileRowCount: 3, StabilityWindow: 250 * time.Millisecond, SuppressAlternateScreen: false}
	doc, err := c.Patch("{}")
	if err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}
	got := FromJSON(doc)
	if got != c {
		t.Errorf("round-tripped Config = %+v, want %+v", got, c)
	}
}

func TestToCaptureConfigMapsFields(t *testing.T) {
	c := Default()
	cc := c.ToCaptureConfig()
	if cc.VolatileRowCount != c.VolatileRowCount || cc.StabilityWindow != c.StabilityWindow || cc.SuppressAlternateScreen != c.SuppressAlternateScreen {
		t.Errorf("ToCaptureConfig() = %+v, mismatched from %+v", cc, c)
	}
}

func TestToTermOptionsMapsScrollback(t *testing.T) {
	c := Default()
	opts := c.ToTermOptions()
	if opts.Scrollback != c.MaxHistory {
		t.Errorf("ToTermOptions().Scrollback = %d, want %d", opts.Scrollback, c.MaxHistory)
	}
}
