package capture

import "errors"

// ErrInvalidConfig is returned by NewEngine when a Config value is
// internally inconsistent (negative durations or row counts).
var ErrInvalidConfig = errors.New("capture: invalid config")
