package llm

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LastUserMessage", func() {
	It("returns the most recent user message", func() {
		history := []Message{
			NewUserMessage("first"),
			NewAssistantMessage("reply"),
			NewUserMessage("second"),
		}
		Expect(LastUserMessage(history)).To(Equal("second"))
	})

	It("skips trailing assistant messages", func() {
		history := []Message{
			NewUserMessage("question"),
			NewAssistantMessage("answer"),
		}
		Expect(LastUserMessage(history)).To(Equal("question"))
	})

	It("returns empty string for empty history", func() {
		Expect(LastUserMessage(nil)).To(Equal(""))
	})

	It("returns empty string when no user messages exist", func() {
		history := []Message{NewAssistantMessage("hello")}
		Expect(LastUserMessage(history)).To(Equal(""))
	})
})

var _ = Describe("RecentWindow", func() {
	It("returns short histories unchanged", func() {
		history := []Message{NewUserMessage("a"), NewAssistantMessage("b")}
		Expect(RecentWindow(history)).To(HaveLen(2))
	})

	It("truncates to the trailing window", func() {
		var history []Message
		for i := range 25 {
			history = append(history, NewUserMessage(fmt.Sprintf("msg %d", i)))
		}
		window := RecentWindow(history)
		Expect(window).To(HaveLen(10))
		Expect(window[0].Content).To(Equal("msg 15"))
		Expect(window[9].Content).To(Equal("msg 24"))
	})

	It("returns nil for nil history", func() {
		Expect(RecentWindow(nil)).To(BeNil())
	})
})
