package services

import (
	"fmt"
	"net/url"
)

// Overview My Maps identifiers per arrival route.
var routeOverviewMaps = map[string]string{
	"thoothukudi": "1RTKvzXANpeJXI5wsW28WGclXkO2T7kw",
	"tirunelveli": "1cROpQnVd_Jk7B6KPDyhreS98ek1GDrQ",
	"nagercoil":   "17GYGNfx6r8bO7ORC7QfYgQHyF1gT2_4",
}

// MapsService builds Google Maps embed URLs. An empty API key produces
// empty links, which callers render as "map not available".
type MapsService struct {
	apiKey string
}

// NewMapsService creates a maps link builder.
func NewMapsService(apiKey string) *MapsService {
	return &MapsService{apiKey: apiKey}
}

const embedBaseURL = "https://www.google.com/maps/embed/v1/"

// PlaceLink returns an embed URL for a named place query.
func (m *MapsService) PlaceLink(query string) string {
	if m.apiKey == "" {
		return ""
	}
	return fmt.Sprintf("%splace?key=%s&q=%s", embedBaseURL, m.apiKey, url.QueryEscape(query))
}

// SearchLink returns an embed URL for a free-text search.
func (m *MapsService) SearchLink(query string) string {
	if m.apiKey == "" {
		return ""
	}
	return fmt.Sprintf("%ssearch?key=%s&q=%s", embedBaseURL, m.apiKey, url.QueryEscape(query))
}

// DirectionsLink returns an embed URL for directions between two
// "lat,lon" points.
func (m *MapsService) DirectionsLink(origin, destination string) string {
	if m.apiKey == "" {
		return ""
	}
	return fmt.Sprintf("%sdirections?key=%s&origin=%s&destination=%s", embedBaseURL, m.apiKey, origin, destination)
}

// OverviewLink returns the My Maps embed URL for a route's aggregate
// parking map, or "" if the route has none.
func (m *MapsService) OverviewLink(route string) string {
	mapID, ok := routeOverviewMaps[route]
	if !ok {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/maps/d/embed?mid=%s", mapID)
}

// EmbedAnchor wraps an embed URL in the anchor markup the chat frontend
// renders inline, or returns unavailable when the URL is empty.
func EmbedAnchor(embedURL, linkText, unavailable string) string {
	if embedURL == "" {
		return unavailable
	}
	return fmt.Sprintf("<a href=%q data-embed=\"true\">%s</a>", embedURL, linkText)
}
