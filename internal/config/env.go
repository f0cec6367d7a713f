package config

import (
	"os"
	"strconv"
	"time"
)

// FromEnv overlays environment variables onto Default(), using
// prefix_MAX_HISTORY, prefix_VOLATILE_ROW_COUNT,
// prefix_STABILITY_WINDOW_MS, and prefix_SUPPRESS_ALTERNATE_SCREEN.
// A variable that is unset or fails to parse is left at its default.
func FromEnv(prefix string) Config {
	c := Default()

	if v, ok := lookupInt(prefix + "_MAX_HISTORY"); ok {
		c.MaxHistory = v
	}
	if v, ok := lookupInt(prefix + "_VOLATILE_ROW_COUNT"); ok {
		c.VolatileRowCount = v
	}
	if v, ok := lookupInt(prefix + "_STABILITY_WINDOW_MS"); ok {
		c.StabilityWindow = time.Duration(v) * time.Millisecond
	}
	if v, ok := lookupBool(prefix + "_SUPPRESS_ALTERNATE_SCREEN"); ok {
		c.SuppressAlternateScreen = v
	}
	return c
}

func lookupInt(name string) (int, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func lookupBool(name string) (bool, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return b, true
}
