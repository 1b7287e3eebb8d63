package services

import (
	"strings"
	"testing"
)

func TestLinksEmptyWithoutAPIKey(t *testing.T) {
	maps := NewMapsService("")

	if maps.PlaceLink("Temple") != "" {
		t.Error("PlaceLink without key should be empty")
	}
	if maps.SearchLink("atm") != "" {
		t.Error("SearchLink without key should be empty")
	}
	if maps.DirectionsLink("8.49,78.12", "8.50,78.13") != "" {
		t.Error("DirectionsLink without key should be empty")
	}
}

func TestLinkShapes(t *testing.T) {
	maps := NewMapsService("test-key")

	place := maps.PlaceLink("Murugan Temple, Tiruchendur")
	if !strings.HasPrefix(place, "https://www.google.com/maps/embed/v1/place?key=test-key&q=") {
		t.Errorf("PlaceLink = %q", place)
	}
	if !strings.Contains(place, "Murugan+Temple%2C+Tiruchendur") {
		t.Errorf("PlaceLink query not escaped: %q", place)
	}

	search := maps.SearchLink("atm in Tiruchendur")
	if !strings.Contains(search, "/search?key=test-key&q=atm+in+Tiruchendur") {
		t.Errorf("SearchLink = %q", search)
	}

	directions := maps.DirectionsLink("8.49,78.12", "8.50,78.13")
	if !strings.Contains(directions, "origin=8.49,78.12") || !strings.Contains(directions, "destination=8.50,78.13") {
		t.Errorf("DirectionsLink = %q", directions)
	}
}

func TestOverviewLinkPerRoute(t *testing.T) {
	maps := NewMapsService("")

	for _, route := range []string{"thoothukudi", "tirunelveli", "nagercoil"} {
		link := maps.OverviewLink(route)
		if !strings.HasPrefix(link, "https://www.google.com/maps/d/embed?mid=") {
			t.Errorf("OverviewLink(%q) = %q", route, link)
		}
	}

	if maps.OverviewLink("any") != "" {
		t.Error("Unknown route should have no overview map")
	}
}

func TestEmbedAnchor(t *testing.T) {
	got := EmbedAnchor("https://example.com/map", "View Map", "Map not available")
	want := `<a href="https://example.com/map" data-embed="true">View Map</a>`
	if got != want {
		t.Errorf("EmbedAnchor = %q, want %q", got, want)
	}

	if EmbedAnchor("", "View Map", "Map not available") != "Map not available" {
		t.Error("Empty URL should render the unavailable text")
	}
}
