package pricing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Price", func() {
	rates := DefaultRates()

	base := Input{
		Service:     StandardFreight,
		DistanceKm:  500,
		VolumeM3:    40,
		WeightTons:  12,
		PalletCount: 4,
	}

	It("rejects unknown service types", func() {
		_, err := Price(rates, Input{Service: "overnight_drone"})
		Expect(err).To(HaveOccurred())
	})

	It("rejects negative inputs", func() {
		in := base
		in.WeightTons = -1
		_, err := Price(rates, in)
		Expect(err).To(HaveOccurred())
	})

	It("rounds long-distance quotes up to the nearest 1000", func() {
		price, err := Price(rates, base)
		Expect(err).NotTo(HaveOccurred())
		Expect(price % 1000).To(BeZero())
		Expect(price).To(BeNumerically(">", 0))
	})

	It("rounds short-distance quotes up to the nearest 100", func() {
		in := base
		in.DistanceKm = 30
		price, err := Price(rates, in)
		Expect(err).NotTo(HaveOccurred())
		Expect(price % 100).To(BeZero())
	})

	It("waives the per-km component at exactly the band boundary", func() {
		at := base
		at.DistanceKm = 50
		just := base
		just.DistanceKm = 50.1

		atPrice, err := Price(rates, at)
		Expect(err).NotTo(HaveOccurred())
		justPrice, err := Price(rates, just)
		Expect(err).NotTo(HaveOccurred())

		// Crossing the boundary picks up ~500 km-component units at once.
		Expect(justPrice).To(BeNumerically(">", atPrice))
	})

	It("is non-decreasing in distance", func() {
		prev := int64(0)
		for _, km := range []float64{10, 50, 60, 200, 800, 3000} {
			in := base
			in.DistanceKm = km
			price, err := Price(rates, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(price).To(BeNumerically(">=", prev))
			prev = price
		}
	})

	It("is non-decreasing in volume, weight and pallet count", func() {
		for _, tier := range []ServiceType{ExpressFreight, StandardFreight, EcoFreight} {
			in := base
			in.Service = tier

			low, err := Price(rates, in)
			Expect(err).NotTo(HaveOccurred())

			in.VolumeM3 += 15
			in.WeightTons += 5
			in.PalletCount += 3
			high, err := Price(rates, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(high).To(BeNumerically(">=", low))
		}
	})

	It("increases the price for rush on tiers with rush factor above 1", func() {
		for _, tier := range []ServiceType{ExpressFreight, StandardFreight} {
			in := base
			in.Service = tier
			normal, err := Price(rates, in)
			Expect(err).NotTo(HaveOccurred())

			in.IsRush = true
			rush, err := Price(rates, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(rush).To(BeNumerically(">=", normal))
		}
	})

	It("discounts rush on the eco tier", func() {
		in := base
		in.Service = EcoFreight
		normal, err := Price(rates, in)
		Expect(err).NotTo(HaveOccurred())

		in.IsRush = true
		rush, err := Price(rates, in)
		Expect(err).NotTo(HaveOccurred())
		Expect(rush).To(BeNumerically("<=", normal))
	})
})

var _ = Describe("ParseServiceType", func() {
	It("accepts the three known tiers", func() {
		for _, v := range []string{"express_freight", "standard_freight", "eco_freight"} {
			tier, ok := ParseServiceType(v)
			Expect(ok).To(BeTrue())
			Expect(string(tier)).To(Equal(v))
		}
	})

	It("rejects unknown values", func() {
		_, ok := ParseServiceType("premium")
		Expect(ok).To(BeFalse())
	})
})
