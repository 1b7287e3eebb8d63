package services

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Narayanansankar/tirubot/internal/models"
)

// Tiruchendur temple coordinates, the reference origin for distances.
const (
	TiruchendurLat = 8.4967
	TiruchendurLon = 78.1245
)

// ParkingFullThresholdPercent is the percent-full cutoff above which a
// lot is excluded from recommendations.
const ParkingFullThresholdPercent = 70.0

const (
	earthRadiusKm   = 6371
	defaultPriority = 99
)

// ParkingService ranks parking lots for a route preference: filter by
// route, join live status, drop full or unparsable lots, sort by
// (priority, distance).
type ParkingService struct {
	datasets *DatasetGateway
	texts    *TextProvider
	maps     *MapsService

	// maxResults caps the rendered list; 0 shows every eligible lot.
	maxResults int
}

// NewParkingService creates a parking ranking service.
func NewParkingService(datasets *DatasetGateway, texts *TextProvider, maps *MapsService, maxResults int) *ParkingService {
	return &ParkingService{
		datasets:   datasets,
		texts:      texts,
		maps:       maps,
		maxResults: maxResults,
	}
}

// Haversine returns the great-circle distance in kilometers.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// FindAvailableParking returns the formatted recommendation list for
// lots matching routePreference ("" or "any" means all routes), ranked
// by (priority, distance) from the origin point.
func (p *ParkingService) FindAvailableParking(originLat, originLon float64, userID, routePreference string) string {
	lots := p.datasets.ParkingLots()
	status := p.datasets.LiveStatus()
	if len(lots) == 0 || len(status) == 0 {
		log.Println("Parking data not available from gateway")
		return p.texts.Resolve(userID, "fetching_data_error", nil)
	}

	candidates := filterByRoute(lots, routePreference)
	if len(candidates) == 0 {
		log.Printf("No parking lots matched route preference: %s", routePreference)
		return p.texts.Resolve(userID, "no_parking_available", nil)
	}

	ranked := rankLots(candidates, status, originLat, originLon)
	if len(ranked) == 0 {
		log.Printf("All lots for route %q are full or unavailable", routePreference)
		return p.texts.Resolve(userID, "no_parking_available", nil)
	}

	if p.maxResults > 0 && len(ranked) > p.maxResults {
		ranked = ranked[:p.maxResults]
	}

	return p.render(userID, routePreference, originLat, originLon, ranked)
}

func filterByRoute(lots []*models.ParkingLot, routePreference string) []*models.ParkingLot {
	pref := strings.ToLower(strings.TrimSpace(routePreference))
	if pref == "" || pref == "any" {
		return lots
	}

	var matched []*models.ParkingLot
	for _, lot := range lots {
		route := strings.ToLower(strings.TrimSpace(lot.RouteEn))
		if strings.Contains(route, pref) {
			matched = append(matched, lot)
		}
	}
	return matched
}

// rankLots joins static metadata with live status, drops ineligible
// lots and sorts the survivors by (priority, distance).
func rankLots(lots []*models.ParkingLot, status map[string]*models.ParkingStatus, originLat, originLon float64) []*models.RankedLot {
	var ranked []*models.RankedLot

	for _, lot := range lots {
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(lot.Latitude), 64)
		lon, lonErr := strconv.ParseFloat(strings.TrimSpace(lot.Longitude), 64)
		capacity, capErr := strconv.Atoi(strings.TrimSpace(lot.TotalCapacity))
		if latErr != nil || lonErr != nil || capErr != nil || capacity <= 0 {
			log.Printf("Skipping lot with invalid Lat/Lon/Capacity: %s", lot.NameEn)
			continue
		}

		availability := lotAvailability(status[lot.LotID], capacity)
		percentFull := float64(capacity-availability) / float64(capacity) * 100

		if availability <= 0 || percentFull >= ParkingFullThresholdPercent {
			continue
		}

		priority := defaultPriority
		if v, err := strconv.Atoi(strings.TrimSpace(lot.Priority)); err == nil {
			priority = v
		}

		ranked = append(ranked, &models.RankedLot{
			Lot:          lot,
			Latitude:     lat,
			Longitude:    lon,
			Capacity:     capacity,
			Availability: availability,
			PercentFull:  percentFull,
			DistanceKm:   Haversine(originLat, originLon, lat, lon),
			Priority:     priority,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Priority != ranked[j].Priority {
			return ranked[i].Priority < ranked[j].Priority
		}
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}

// lotAvailability resolves the current availability: the explicit count
// when reported, otherwise derived from the in/out counters. The
// counter delta is clamped at zero so availability never exceeds
// capacity or goes negative from counter drift.
func lotAvailability(status *models.ParkingStatus, capacity int) int {
	if status == nil {
		return capacity
	}
	if status.CurrentAvailability >= 0 {
		return status.CurrentAvailability
	}

	occupied := status.CurrentIn - status.CurrentOut
	if occupied < 0 {
		occupied = 0
	}
	return capacity - occupied
}

func (p *ParkingService) render(userID, routePreference string, originLat, originLon float64, ranked []*models.RankedLot) string {
	lang := p.texts.UserLanguage(userID)

	var title string
	if routePreference != "" && routePreference != "any" {
		title = p.texts.Resolve(userID, "parking_for_route_title", map[string]string{
			"RouteName": capitalize(routePreference),
		})
	} else {
		title = p.texts.Resolve(userID, "parking_info_title", nil)
	}

	details := make([]string, 0, len(ranked))
	origin := fmt.Sprintf("%f,%f", originLat, originLon)
	for _, lot := range ranked {
		destination := fmt.Sprintf("%f,%f", lot.Latitude, lot.Longitude)
		mapsLink := EmbedAnchor(p.maps.DirectionsLink(origin, destination), "Get Directions", "Directions unavailable")

		details = append(details, p.texts.Resolve(userID, "parking_lot_details_format", map[string]string{
			"ParkingName":    lot.Lot.Name(lang),
			"MapsLink":       mapsLink,
			"Distance":       fmt.Sprintf("%.1f", lot.DistanceKm),
			"Availability":   strconv.Itoa(lot.Availability),
			"TotalCapacity":  strconv.Itoa(lot.Capacity),
			"PercentageFull": fmt.Sprintf("%.0f", lot.PercentFull),
		}))
	}

	response := title + "\n" + strings.Join(details, "\n")

	if overview := p.maps.OverviewLink(routePreference); overview != "" {
		response += p.texts.Resolve(userID, "overall_parking_map_link_text", map[string]string{
			"overall_map_url": overview,
			"RouteName":       capitalize(routePreference),
		})
	}

	return response
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
