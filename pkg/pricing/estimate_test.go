package pricing

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EstimateDelivery", func() {
	rates := DefaultRates()

	It("reports same day delivery for very short express routes", func() {
		est := EstimateDelivery(rates[ExpressFreight], 20)
		// 20/80*0.8 + 2 = 2.2 hours
		Expect(est.TotalHours).To(BeNumerically("~", 2.2, 0.01))
		Expect(est.BusinessDays).To(Equal(1))
		Expect(est.Text).To(Equal("Same day delivery"))
	})

	It("reports next business day when over the same-day cutoff", func() {
		est := EstimateDelivery(rates[ExpressFreight], 500)
		// 500/80*0.8 + 2 = 7 hours
		Expect(est.BusinessDays).To(Equal(1))
		Expect(est.Text).To(Equal("Next business day"))
	})

	It("reports 2 business days", func() {
		est := EstimateDelivery(rates[StandardFreight], 600)
		// 600/80 + 8 = 15.5 hours -> 2 days
		Expect(est.BusinessDays).To(Equal(2))
		Expect(est.Text).To(Equal("2 business days"))
	})

	It("formats longer estimates as N business days", func() {
		est := EstimateDelivery(rates[EcoFreight], 2000)
		// 2000/80*1.3 + 16 = 48.5 hours -> 7 days
		Expect(est.BusinessDays).To(Equal(7))
		Expect(est.Text).To(Equal("7 business days"))
	})

	It("never reports fewer than one business day", func() {
		est := EstimateDelivery(rates[ExpressFreight], 0)
		Expect(est.BusinessDays).To(Equal(1))
	})
})

var _ = Describe("AddBusinessDays", func() {
	// 2026-08-28 is a Friday.
	friday := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

	It("skips weekends", func() {
		got := AddBusinessDays(friday, 1)
		Expect(got.Weekday()).To(Equal(time.Monday))
		Expect(got.Day()).To(Equal(31))
	})

	It("adds multiple business days across a weekend", func() {
		got := AddBusinessDays(friday, 3)
		Expect(got.Weekday()).To(Equal(time.Wednesday))
		Expect(got.Day()).To(Equal(2))
	})

	It("returns the start for zero days", func() {
		Expect(AddBusinessDays(friday, 0)).To(Equal(friday))
	})
})
