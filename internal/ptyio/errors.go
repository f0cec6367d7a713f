package ptyio

import "errors"

// ErrClosed is returned by Session.Close when the session is already
// closed.
var ErrClosed = errors.New("ptyio: closed")
