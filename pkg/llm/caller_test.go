package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewCaller", func() {
	It("rejects unknown providers", func() {
		_, err := NewCaller(CallerConfig{Provider: "mainframe"})
		Expect(err).To(HaveOccurred())
	})

	Context("with an ollama-compatible server", func() {
		var (
			server   *httptest.Server
			captured ollamaRequest
		)

		BeforeEach(func() {
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/api/chat"))
				Expect(json.NewDecoder(r.Body).Decode(&captured)).To(Succeed())
				resp := ollamaResponse{}
				resp.Message.Content = `{"agent":"docs"}`
				Expect(json.NewEncoder(w).Encode(resp)).To(Succeed())
			}))
		})

		AfterEach(func() {
			server.Close()
		})

		It("sends the system prompt and window, and returns the content", func() {
			call, err := NewCaller(CallerConfig{Provider: "ollama", Model: "llama3.2", BaseURL: server.URL})
			Expect(err).NotTo(HaveOccurred())

			out, err := call(context.Background(), CallRequest{
				System:     "You are a router.",
				Messages:   []Message{NewUserMessage("I need a quote")},
				JSONObject: true,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(`{"agent":"docs"}`))

			Expect(captured.Messages).To(HaveLen(2))
			Expect(captured.Messages[0].Role).To(Equal(RoleSystem))
			Expect(captured.Messages[1].Content).To(Equal("I need a quote"))
			Expect(captured.Format).To(Equal("json"))
			Expect(captured.Stream).To(BeFalse())
		})

		It("surfaces provider errors", func() {
			server.Close()
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))

			call, err := NewCaller(CallerConfig{Provider: "ollama", BaseURL: server.URL})
			Expect(err).NotTo(HaveOccurred())

			_, err = call(context.Background(), CallRequest{Messages: []Message{NewUserMessage("hi")}})
			Expect(err).To(HaveOccurred())
		})
	})
})
