package sse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Writer emits stream frames as SSE events, one `data: <json>` line per
// frame followed by a blank line.
type Writer struct {
	dest io.Writer

	// wordDelay, when non-zero, makes WriteText emit one chunk frame per
	// word with the given pause between them. This is the typing
	// simulation used by the quote agent's canned prompts; it is a
	// presentation option on the channel, not an agent-identity branch.
	wordDelay time.Duration
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithWordDelay enables the per-word typing simulation.
func WithWordDelay(d time.Duration) WriterOption {
	return func(w *Writer) {
		w.wordDelay = d
	}
}

// NewWriter returns a Writer emitting to dest.
// When dest backs an io.Pipe connected to the HTTP response, each frame is
// flushed to the client as it is written.
func NewWriter(dest io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{dest: dest}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteFrame emits a single frame.
func (w *Writer) WriteFrame(frame Frame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("marshal frame: %w", err)
	}
	if _, err := fmt.Fprintf(w.dest, "data: %s\n\n", data); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// WriteText streams reply text as chunk frames. Without a word delay the
// whole text goes out as one chunk; with one, each word is its own frame
// separated by the configured pause. The context cancels the simulation
// mid-stream.
func (w *Writer) WriteText(ctx context.Context, text string) error {
	if w.wordDelay <= 0 {
		return w.WriteFrame(Frame{Type: FrameChunk, Content: text})
	}

	words := strings.Fields(text)
	for i, word := range words {
		chunk := word
		if i < len(words)-1 {
			chunk += " "
		}
		if err := w.WriteFrame(Frame{Type: FrameChunk, Content: chunk}); err != nil {
			return err
		}
		if i < len(words)-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(w.wordDelay):
			}
		}
	}
	return nil
}

// WriteMetadata emits a metadata frame.
func (w *Writer) WriteMetadata(metadata map[string]any) error {
	return w.WriteFrame(Frame{Type: FrameMetadata, Metadata: metadata})
}

// WriteSources emits a sources frame.
func (w *Writer) WriteSources(sources []Source) error {
	return w.WriteFrame(Frame{Type: FrameSources, Sources: sources})
}
