package transcript

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMarshalJSONWireShape(t *testing.T) {
	ts := time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC)
	e := NewAppend("hello\n", ts, Scrollback)

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if got["type"] != "append" {
		t.Errorf("type = %v, want append", got["type"])
	}
	if got["text"] != "hello\n" {
		t.Errorf("text = %v, want %q", got["text"], "hello\n")
	}
	meta, ok := got["meta"].(map[string]any)
	if !ok {
		t.Fatalf("meta field missing or wrong type: %v", got["meta"])
	}
	if meta["source"] != "SCROLLBACK" {
		t.Errorf("meta.source = %v, want SCROLLBACK", meta["source"])
	}
	if meta["timestampUtc"] != "2026-08-03T12:00:00Z" {
		t.Errorf("meta.timestampUtc = %v, want 2026-08-03T12:00:00Z", meta["timestampUtc"])
	}
}

func TestMarshalJSONScreenStableSource(t *testing.T) {
	e := NewAppend("x\n", time.Now(), ScreenStable)
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	var got map[string]any
	_ = json.Unmarshal(b, &got)
	meta := got["meta"].(map[string]any)
	if meta["source"] != "SCREEN_STABLE" {
		t.Errorf("meta.source = %v, want SCREEN_STABLE", meta["source"])
	}
}
