package assist

import "errors"

// ErrNoAPIKey is returned by New when no Anthropic API key was supplied.
var ErrNoAPIKey = errors.New("assist: no API key configured")
