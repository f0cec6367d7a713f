package assist

import (
	"context"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/dshills/captty/internal/ptyio"
	"github.com/dshills/captty/internal/queue"
)

// Wrapper drives a PTY-attached command and consults an Anthropic
// model over the transcript it accumulates, the same "send text, read
// what comes back" loop ClaudeSession's Java counterpart uses, minus
// the direct model call which that wrapper leaves to its own caller.
type Wrapper struct {
	session *ptyio.Session
	events  *queue.Queue
	client  anthropic.Client
	model   anthropic.Model

	transcript strings.Builder
}

// Options configures a Wrapper.
type Options struct {
	APIKey string
	Model  anthropic.Model // defaults to "claude-sonnet-4-20250514" if empty
}

// New constructs a Wrapper around an already-spawned session and the
// queue its capture engine feeds.
func New(session *ptyio.Session, events *queue.Queue, opts Options) (*Wrapper, error) {
	if opts.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	model := opts.Model
	if model == "" {
		model = anthropic.Model("claude-sonnet-4-20250514")
	}
	return &Wrapper{
		session: session,
		events:  events,
		client:  anthropic.NewClient(option.WithAPIKey(opts.APIKey)),
		model:   model,
	}, nil
}

// SendPrompt writes prompt to the driven command's input, optionally
// appending a trailing newline.
func (w *Wrapper) SendPrompt(prompt string, appendNewline bool) error {
	if appendNewline {
		prompt += "\n"
	}
	_, err := w.session.Write([]byte(prompt))
	return err
}

// DrainTranscript pulls every currently queued transcript event into
// the wrapper's running transcript buffer and returns the newly
// appended text.
func (w *Wrapper) DrainTranscript() string {
	var sb strings.Builder
	for {
		e, ok := w.events.Pop()
		if !ok {
			break
		}
		sb.WriteString(e.Text)
	}
	delta := sb.String()
	w.transcript.WriteString(delta)
	return delta
}

// Ask sends the transcript accumulated so far plus an instruction to
// the configured model and returns its reply text.
func (w *Wrapper) Ask(ctx context.Context, instruction string) (string, error) {
	msg, err := w.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     w.model,
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(
				"Transcript so far:\n" + w.transcript.String() + "\n\nInstruction: " + instruction,
			)),
		},
	})
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}

// WaitForQuiescence blocks until no new transcript event has arrived
// for quietFor, or ctx is done, whichever comes first. It is a
// coarse proxy for "the driven command is waiting on input again".
func (w *Wrapper) WaitForQuiescence(ctx context.Context, quietFor time.Duration) {
	timer := time.NewTimer(quietFor)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			if w.events.Len() == 0 {
				return
			}
			w.DrainTranscript()
			timer.Reset(quietFor)
		}
	}
}
