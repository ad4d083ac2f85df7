package sse

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Writer", func() {
	It("emits a data line and blank line per frame", func() {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		Expect(w.WriteFrame(Frame{Type: FrameChunk, Content: "hello"})).To(Succeed())
		Expect(buf.String()).To(Equal("data: {\"type\":\"chunk\",\"content\":\"hello\"}\n\n"))
	})

	It("writes text as a single chunk without a word delay", func() {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		Expect(w.WriteText(context.Background(), "two words")).To(Succeed())
		Expect(strings.Count(buf.String(), "data:")).To(Equal(1))
	})

	It("emits one frame per word with a word delay", func() {
		var buf bytes.Buffer
		w := NewWriter(&buf, WithWordDelay(time.Microsecond))
		Expect(w.WriteText(context.Background(), "please confirm your quote")).To(Succeed())
		Expect(strings.Count(buf.String(), "data:")).To(Equal(4))
	})

	It("stops the typing simulation when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var buf bytes.Buffer
		w := NewWriter(&buf, WithWordDelay(time.Hour))
		err := w.WriteText(ctx, "a b c")
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Reader", func() {
	It("round-trips frames emitted by the Writer", func() {
		var buf bytes.Buffer
		w := NewWriter(&buf)
		Expect(w.WriteText(context.Background(), "your quote is ready")).To(Succeed())
		Expect(w.WriteSources([]Source{{ID: "doc-1", Title: "Customs", Score: 0.83}})).To(Succeed())
		Expect(w.WriteMetadata(map[string]any{"agent": "docs"})).To(Succeed())

		text, metadata, sources, err := NewReader(&buf).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal("your quote is ready"))
		Expect(metadata).To(HaveKeyWithValue("agent", "docs"))
		Expect(sources).To(HaveLen(1))
		Expect(sources[0].ID).To(Equal("doc-1"))
	})

	It("reassembles a typing-simulated stream into the original text", func() {
		var buf bytes.Buffer
		w := NewWriter(&buf, WithWordDelay(time.Microsecond))
		Expect(w.WriteText(context.Background(), "please confirm your quote")).To(Succeed())

		text, _, _, err := NewReader(&buf).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal("please confirm your quote"))
	})

	It("tolerates arbitrary transport chunk boundaries", func() {
		payload := "data: {\"type\":\"chunk\",\"content\":\"split \"}\n\ndata: {\"type\":\"chunk\",\"content\":\"frame\"}\n\n"

		// Deliver the stream in 3-byte reads, splitting lines and frames.
		reader := NewReader(iotest3(payload))
		text, _, _, err := reader.ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(text).To(Equal("split frame"))
	})

	It("skips comment lines and keep-alive blank lines", func() {
		payload := ": ping\n\n\ndata: {\"type\":\"chunk\",\"content\":\"ok\"}\n\n"
		frame, err := NewReader(strings.NewReader(payload)).Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(frame).NotTo(BeNil())
		Expect(frame.Content).To(Equal("ok"))
	})

	It("yields a trailing frame when the stream ends without a blank line", func() {
		payload := "data: {\"type\":\"chunk\",\"content\":\"tail\"}"
		frame, err := NewReader(strings.NewReader(payload)).Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(frame).NotTo(BeNil())
		Expect(frame.Content).To(Equal("tail"))
	})

	It("returns nil, nil on an exhausted stream", func() {
		reader := NewReader(strings.NewReader(""))
		frame, err := reader.Next()
		Expect(err).NotTo(HaveOccurred())
		Expect(frame).To(BeNil())
	})

	It("errors on malformed frame JSON", func() {
		payload := "data: not-json\n\n"
		_, err := NewReader(strings.NewReader(payload)).Next()
		Expect(err).To(HaveOccurred())
	})
})

// iotest3 returns a reader that yields the payload three bytes at a time.
func iotest3(payload string) io.Reader {
	return &threeByteReader{data: []byte(payload)}
}

type threeByteReader struct {
	data []byte
	pos  int
}

func (r *threeByteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := min(3, len(r.data)-r.pos, len(p))
	copy(p, r.data[r.pos:r.pos+n])
	r.pos += n
	return n, nil
}
