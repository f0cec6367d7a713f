package ptyio

import (
	"io"
	"log"
	"os/exec"
	"sync"

	"github.com/dshills/captty/internal/term"
)

// Session pairs a PTY with the term.Model it feeds. Read runs on its
// own goroutine; Close stops that goroutine and releases the PTY.
type Session struct {
	pty    PTY
	model  *term.Model
	cmd    *exec.Cmd
	logger *log.Logger

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// Spawn starts cmd attached to a new PTY of the given size and begins
// streaming its output into model on a background goroutine.
func Spawn(cmd *exec.Cmd, cols, rows uint16, model *term.Model, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.Default()
	}
	p, err := Start(cmd, cols, rows)
	if err != nil {
		return nil, err
	}
	s := &Session{pty: p, model: model, cmd: cmd, logger: logger, done: make(chan struct{})}
	go s.readLoop()
	return s, nil
}

func (s *Session) readLoop() {
	defer close(s.done)
	buf := make([]byte, 4096)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			s.model.Feed(buf[:n])
		}
		if err != nil {
			if err != io.EOF {
				s.logger.Printf("ptyio: read error, stopping session: %v", err)
			}
			return
		}
	}
}

// Write sends input to the child process.
func (s *Session) Write(p []byte) (int, error) {
	return s.pty.Write(p)
}

// Resize updates both the PTY's kernel-level window size and the
// term.Model's geometry.
func (s *Session) Resize(cols, rows uint16) error {
	if err := s.pty.Resize(cols, rows); err != nil {
		return err
	}
	return s.model.Resize(int(cols), int(rows))
}

// Wait blocks until the child process exits.
func (s *Session) Wait() error {
	return s.cmd.Wait()
}

// Done returns a channel closed once the read loop has exited
// (the child closed its end of the PTY, or Close was called).
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Close closes the PTY, which unblocks the read loop.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	return s.pty.Close()
}
