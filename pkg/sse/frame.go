// Package sse implements the streaming response channel between the agent
// pipeline and the chat client: server-side frame emission as SSE
// `data: <json>` events, and client-side incremental reassembly that
// tolerates arbitrary chunk boundaries.
//
// See the SSE specification:
// https://html.spec.whatwg.org/multipage/server-sent-events.html
package sse

// FrameType discriminates the JSON payload of a stream frame.
type FrameType string

const (
	// FrameChunk carries an incremental text fragment of the reply.
	FrameChunk FrameType = "chunk"

	// FrameMetadata carries side-channel info: routed agent, escalation
	// flag, updated quote state.
	FrameMetadata FrameType = "metadata"

	// FrameSources carries the knowledge-base documents a reply was
	// grounded on.
	FrameSources FrameType = "sources"

	// FrameDebug carries diagnostic text, only emitted in debug mode.
	FrameDebug FrameType = "debug"
)

// Source identifies one knowledge-base document behind a grounded reply.
type Source struct {
	ID    string  `json:"id"`
	Title string  `json:"title,omitempty"`
	Score float32 `json:"score"`
}

// Frame is one unit of the streamed response. Exactly one of the payload
// fields is populated, per Type.
type Frame struct {
	Type FrameType `json:"type"`

	// Content is the text fragment (type="chunk") or diagnostic text
	// (type="debug").
	Content string `json:"content,omitempty"`

	// Metadata payload (type="metadata").
	Metadata map[string]any `json:"metadata,omitempty"`

	// Sources payload (type="sources").
	Sources []Source `json:"sources,omitempty"`
}
