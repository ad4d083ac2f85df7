package extract

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PackageDetailsFromText", func() {
	It("extracts a full truckload with weight and volume", func() {
		details := PackageDetailsFromText("full truckload, 12 tons, 40 cubic meters, no hazardous materials")
		Expect(details).NotTo(BeNil())
		Expect(details.Type).To(Equal(FullTruckload))
		Expect(details.Weight).To(Equal("12"))
		Expect(details.Volume).To(Equal("40"))
		Expect(details.Hazardous).To(BeFalse())
	})

	It("classifies LTL from the abbreviation", func() {
		details := PackageDetailsFromText("LTL shipment, 3.5 tons, 8 m3")
		Expect(details).NotTo(BeNil())
		Expect(details.Type).To(Equal(LessThanTruckload))
		Expect(details.Weight).To(Equal("3.5"))
	})

	It("classifies sea containers", func() {
		details := PackageDetailsFromText("one 40ft container, 20 tons, 60 cbm")
		Expect(details).NotTo(BeNil())
		Expect(details.Type).To(Equal(SeaContainer))
	})

	It("classifies bulk freight", func() {
		details := PackageDetailsFromText("bulk grain, 25 tons, 35 cubic meters")
		Expect(details).NotTo(BeNil())
		Expect(details.Type).To(Equal(BulkFreight))
	})

	It("returns nil when volume is missing", func() {
		Expect(PackageDetailsFromText("full truckload, 5 tons")).To(BeNil())
	})

	It("returns nil when weight is missing", func() {
		Expect(PackageDetailsFromText("full truckload, 40 cubic meters")).To(BeNil())
	})

	It("returns nil when no package type matches", func() {
		Expect(PackageDetailsFromText("12 tons, 40 cubic meters")).To(BeNil())
	})

	It("flags hazardous cargo", func() {
		details := PackageDetailsFromText("full truckload of dangerous chemicals, 5 tons, 10 m3")
		Expect(details).NotTo(BeNil())
		Expect(details.Hazardous).To(BeTrue())
	})

	It("suppresses the hazard flag on any negation word in the message", func() {
		// The negation check is whole-message, not scoped to the hazard
		// clause, so an unrelated negation suppresses the flag too.
		details := PackageDetailsFromText("no issues, but hazardous material inside, full truckload, 5 tons, 10 m3")
		Expect(details).NotTo(BeNil())
		Expect(details.Hazardous).To(BeFalse())
	})

	It("extracts an optional pallet count", func() {
		details := PackageDetailsFromText("full truckload, 12 tons, 40 cubic meters on 8 pallets")
		Expect(details).NotTo(BeNil())
		Expect(details.PalletCount).To(Equal("8"))
	})
})

var _ = Describe("ServiceLevelFromText", func() {
	It("matches express", func() {
		Expect(ServiceLevelFromText("express please")).To(Equal("express_freight"))
	})

	It("matches standard", func() {
		Expect(ServiceLevelFromText("Standard is fine")).To(Equal("standard_freight"))
	})

	It("matches eco and economy", func() {
		Expect(ServiceLevelFromText("the eco option")).To(Equal("eco_freight"))
		Expect(ServiceLevelFromText("economy")).To(Equal("eco_freight"))
	})

	It("returns empty for no match", func() {
		Expect(ServiceLevelFromText("whichever is cheapest")).To(Equal(""))
	})
})
