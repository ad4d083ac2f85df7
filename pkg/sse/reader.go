package sse

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Reader incrementally reassembles stream frames from an SSE byte stream.
// It buffers on the blank-line event delimiter, so arbitrary chunk
// boundaries in the transport — including boundaries that split a frame —
// are handled transparently.
type Reader struct {
	scanner *bufio.Scanner

	// data accumulates "data:" field contents for the event being built.
	data    strings.Builder
	hasData bool
}

// NewReader returns a Reader parsing frames from src.
func NewReader(src io.Reader) *Reader {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	return &Reader{scanner: scanner}
}

// Next returns the next complete frame. It blocks until an event is
// terminated by a blank line in the stream. Next returns nil, nil when the
// source is exhausted.
func (r *Reader) Next() (*Frame, error) {
	for r.scanner.Scan() {
		raw := r.scanner.Text()

		// A blank line signals the end of the current event.
		if raw == "" {
			if r.hasData {
				return r.finish()
			}
			// Leading blank lines or keep-alive newlines.
			continue
		}

		// Lines starting with ':' are comments per the SSE spec.
		if strings.HasPrefix(raw, ":") {
			continue
		}

		field, value, ok := strings.Cut(raw, ":")
		if !ok || field != "data" {
			continue
		}
		// Strip a single leading space after the colon, per spec.
		value = strings.TrimPrefix(value, " ")

		if r.hasData {
			// Multiple data fields are joined with "\n".
			r.data.WriteString("\n")
		}
		r.data.WriteString(value)
		r.hasData = true
	}

	if err := r.scanner.Err(); err != nil {
		return nil, err
	}

	// Stream ended without a trailing blank line: yield the in-progress
	// event if there is one.
	if r.hasData {
		return r.finish()
	}

	return nil, nil
}

// ReadAll drains the stream, concatenating chunk text and collecting the
// last metadata and sources frames. Convenience for clients and tests.
func (r *Reader) ReadAll() (text string, metadata map[string]any, sources []Source, err error) {
	var sb strings.Builder
	for {
		frame, err := r.Next()
		if err != nil {
			return "", nil, nil, err
		}
		if frame == nil {
			return sb.String(), metadata, sources, nil
		}

		switch frame.Type {
		case FrameChunk:
			sb.WriteString(frame.Content)
		case FrameMetadata:
			metadata = frame.Metadata
		case FrameSources:
			sources = frame.Sources
		}
	}
}

func (r *Reader) finish() (*Frame, error) {
	payload := r.data.String()
	r.data.Reset()
	r.hasData = false

	var frame Frame
	if err := json.Unmarshal([]byte(payload), &frame); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	return &frame, nil
}
