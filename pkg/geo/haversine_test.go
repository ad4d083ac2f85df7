package geo

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var (
	losAngeles = Coordinates{Lat: 34.0522, Lon: -118.2437}
	newYork    = Coordinates{Lat: 40.7128, Lon: -74.0060}
)

var _ = Describe("Haversine", func() {
	It("computes Los Angeles to New York within 1 percent", func() {
		km := Haversine(losAngeles, newYork)
		Expect(km).To(BeNumerically("~", 3936, 3936*0.01))
	})

	It("is symmetric", func() {
		Expect(Haversine(losAngeles, newYork)).To(BeNumerically("~", Haversine(newYork, losAngeles), 0.001))
	})

	It("returns zero for identical points", func() {
		Expect(Haversine(losAngeles, losAngeles)).To(BeNumerically("~", 0, 0.001))
	})
})

var _ = Describe("FallbackRoute", func() {
	It("assumes 60 km/h travel", func() {
		route := FallbackRoute(losAngeles, newYork)
		Expect(route.Approximate).To(BeTrue())
		Expect(route.Distance.Kilometers).To(BeNumerically("~", 3936, 40))
		// duration minutes = km / 60 * 60 = km
		Expect(route.Duration.Minutes).To(BeNumerically("~", route.Distance.Kilometers, 1))
	})

	It("rounds distance to one decimal and minutes to integers", func() {
		route := FallbackRoute(Coordinates{Lat: 52.52, Lon: 13.405}, Coordinates{Lat: 53.5511, Lon: 9.9937})
		Expect(route.Distance.Kilometers).To(Equal(float64(int(route.Distance.Kilometers*10)) / 10))
		Expect(route.Duration.Minutes).To(Equal(float64(int(route.Duration.Minutes))))
	})
})

var _ = Describe("Coordinates validation", func() {
	It("accepts in-range pairs", func() {
		Expect(losAngeles.Valid()).To(BeTrue())
		Expect(Coordinates{Lat: -90, Lon: 180}.Valid()).To(BeTrue())
	})

	It("rejects out-of-range pairs", func() {
		Expect(Coordinates{Lat: 91, Lon: 0}.Valid()).To(BeFalse())
		Expect(Coordinates{Lat: 0, Lon: -181}.Valid()).To(BeFalse())
	})
})
