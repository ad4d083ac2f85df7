package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	Describe("Geocode", func() {
		It("returns the top match", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/search"))
				Expect(r.URL.Query().Get("q")).To(Equal("Los Angeles, CA"))
				Expect(r.URL.Query().Get("limit")).To(Equal("1"))
				fmt.Fprint(w, `[{"lat":"34.0522","lon":"-118.2437","display_name":"Los Angeles, California, USA","address":{"city":"Los Angeles","state":"California","country":"United States","postcode":"90012"}}]`)
			}))
			defer server.Close()

			client := NewClient(ClientConfig{GeocodeURL: server.URL})
			place, err := client.Geocode(context.Background(), "Los Angeles, CA")
			Expect(err).NotTo(HaveOccurred())
			Expect(place).NotTo(BeNil())
			Expect(place.Coordinates.Lat).To(BeNumerically("~", 34.0522, 0.0001))
			Expect(place.City).To(Equal("Los Angeles"))
			Expect(place.FormattedAddress).To(ContainSubstring("California"))
		})

		It("returns nil, nil when there is no match", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `[]`)
			}))
			defer server.Close()

			client := NewClient(ClientConfig{GeocodeURL: server.URL})
			place, err := client.Geocode(context.Background(), "nowhere at all")
			Expect(err).NotTo(HaveOccurred())
			Expect(place).To(BeNil())
		})

		It("returns an error on provider failure", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			}))
			defer server.Close()

			client := NewClient(ClientConfig{GeocodeURL: server.URL})
			_, err := client.Geocode(context.Background(), "Los Angeles")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Route", func() {
		It("converts meters and seconds to rounded km and minutes", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `{"code":"Ok","routes":[{"distance":4488123,"duration":144300}]}`)
			}))
			defer server.Close()

			client := NewClient(ClientConfig{RouteURL: server.URL})
			route, err := client.Route(context.Background(), losAngeles, newYork)
			Expect(err).NotTo(HaveOccurred())
			Expect(route.Distance.Kilometers).To(Equal(4488.1))
			Expect(route.Duration.Minutes).To(Equal(2405.0))
			Expect(route.Approximate).To(BeFalse())
		})

		It("rejects out-of-range coordinates before calling the provider", func() {
			client := NewClient(ClientConfig{RouteURL: "http://127.0.0.1:0"})
			_, err := client.Route(context.Background(), Coordinates{Lat: 99, Lon: 0}, newYork)
			Expect(err).To(MatchError(ErrInvalidCoordinates))
		})

		It("errors on a non-Ok provider code", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `{"code":"NoRoute","routes":[]}`)
			}))
			defer server.Close()

			client := NewClient(ClientConfig{RouteURL: server.URL})
			_, err := client.Route(context.Background(), losAngeles, newYork)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RouteOrFallback", func() {
		It("degrades to the great-circle approximation on provider failure", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer server.Close()

			client := NewClient(ClientConfig{RouteURL: server.URL})
			route := RouteOrFallback(context.Background(), client, losAngeles, newYork)
			Expect(route).NotTo(BeNil())
			Expect(route.Approximate).To(BeTrue())
			Expect(route.Distance.Kilometers).To(BeNumerically("~", 3936, 40))
		})

		It("uses the fallback when no router is configured", func() {
			route := RouteOrFallback(context.Background(), nil, losAngeles, newYork)
			Expect(route.Approximate).To(BeTrue())
		})
	})
})
