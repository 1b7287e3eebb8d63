package services

import (
	"strings"
	"testing"

	"github.com/Narayanansankar/tirubot/internal/models"
)

func newTestParking(store *fakeStore, maxResults int) *ParkingService {
	texts := NewTextProvider(nil)
	maps := NewMapsService("")
	return NewParkingService(NewDatasetGateway(store), texts, maps, maxResults)
}

func TestHaversineOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is ~111.2 km everywhere on the globe.
	dist := Haversine(8.0, 78.0, 9.0, 78.0)
	if dist < 111.0 || dist > 111.4 {
		t.Errorf("Haversine(8,78 -> 9,78) = %.2f km, want ~111.2", dist)
	}
}

func TestNearlyFullLotExcludedDespiteDistance(t *testing.T) {
	store := &fakeStore{
		lots: []*models.ParkingLot{
			// Farther away but only 20% full
			testLot("1", "Anna Nagar Ground", "8.5500", "78.1245", "100", "Tirunelveli Road", "1"),
			// Closer but 90% full, above the 70% threshold
			testLot("2", "Temple East Lot", "8.4970", "78.1250", "100", "Tirunelveli Road", "2"),
		},
		status: []*models.ParkingStatus{
			{LotID: "1", CurrentAvailability: 80},
			{LotID: "2", CurrentAvailability: 10},
		},
	}
	parking := newTestParking(store, 0)

	reply := parking.FindAvailableParking(TiruchendurLat, TiruchendurLon, "en", "tirunelveli")

	if !strings.Contains(reply, "Anna Nagar Ground") {
		t.Errorf("Expected eligible lot in reply, got: %s", reply)
	}
	if strings.Contains(reply, "Temple East Lot") {
		t.Errorf("Nearly full lot should be excluded, got: %s", reply)
	}
}

func TestEqualPrioritySortsByDistance(t *testing.T) {
	store := &fakeStore{
		lots: []*models.ParkingLot{
			testLot("1", "Far Ground", "8.6000", "78.1245", "100", "Tirunelveli Road", "1"),
			testLot("2", "Near Ground", "8.5000", "78.1245", "100", "Tirunelveli Road", "1"),
		},
		status: []*models.ParkingStatus{
			{LotID: "1", CurrentAvailability: 90},
			{LotID: "2", CurrentAvailability: 90},
		},
	}
	parking := newTestParking(store, 0)

	reply := parking.FindAvailableParking(TiruchendurLat, TiruchendurLon, "en", "tirunelveli")

	nearIdx := strings.Index(reply, "Near Ground")
	farIdx := strings.Index(reply, "Far Ground")
	if nearIdx < 0 || farIdx < 0 {
		t.Fatalf("Expected both lots in reply, got: %s", reply)
	}
	if nearIdx > farIdx {
		t.Errorf("Nearer lot should sort first at equal priority, got: %s", reply)
	}
}

func TestLowerPriorityNumberWinsOverDistance(t *testing.T) {
	store := &fakeStore{
		lots: []*models.ParkingLot{
			testLot("1", "Far Priority Ground", "8.6000", "78.1245", "100", "Tirunelveli Road", "1"),
			testLot("2", "Near Secondary Ground", "8.5000", "78.1245", "100", "Tirunelveli Road", "2"),
		},
		status: []*models.ParkingStatus{
			{LotID: "1", CurrentAvailability: 90},
			{LotID: "2", CurrentAvailability: 90},
		},
	}
	parking := newTestParking(store, 0)

	reply := parking.FindAvailableParking(TiruchendurLat, TiruchendurLon, "en", "tirunelveli")

	priIdx := strings.Index(reply, "Far Priority Ground")
	secIdx := strings.Index(reply, "Near Secondary Ground")
	if priIdx < 0 || secIdx < 0 {
		t.Fatalf("Expected both lots in reply, got: %s", reply)
	}
	if priIdx > secIdx {
		t.Errorf("Priority 1 lot should sort before priority 2, got: %s", reply)
	}
}

func TestAvailabilityDerivationClampsCounterDrift(t *testing.T) {
	// More outs than ins must clamp at zero occupied, not inflate
	// availability past capacity.
	store := &fakeStore{
		lots: []*models.ParkingLot{
			testLot("1", "Counter Lot", "8.5000", "78.1245", "100", "Tirunelveli Road", "1"),
		},
		status: []*models.ParkingStatus{
			{LotID: "1", CurrentAvailability: -1, CurrentIn: 50, CurrentOut: 60},
		},
	}
	parking := newTestParking(store, 0)

	reply := parking.FindAvailableParking(TiruchendurLat, TiruchendurLon, "en", "tirunelveli")

	if !strings.Contains(reply, "100/100") {
		t.Errorf("Expected clamped availability 100/100, got: %s", reply)
	}
	if !strings.Contains(reply, "(0% full)") {
		t.Errorf("Expected 0%% full after clamping, got: %s", reply)
	}
}

func TestAvailabilityDerivedFromCounters(t *testing.T) {
	store := &fakeStore{
		lots: []*models.ParkingLot{
			testLot("1", "Counter Lot", "8.5000", "78.1245", "200", "Tirunelveli Road", "1"),
		},
		status: []*models.ParkingStatus{
			{LotID: "1", CurrentAvailability: -1, CurrentIn: 120, CurrentOut: 20},
		},
	}
	parking := newTestParking(store, 0)

	reply := parking.FindAvailableParking(TiruchendurLat, TiruchendurLon, "en", "tirunelveli")

	if !strings.Contains(reply, "100/200") {
		t.Errorf("Expected derived availability 100/200, got: %s", reply)
	}
	if !strings.Contains(reply, "(50% full)") {
		t.Errorf("Expected 50%% full, got: %s", reply)
	}
}

func TestRouteFilterCaseInsensitiveSubstring(t *testing.T) {
	store := &fakeStore{
		lots: []*models.ParkingLot{
			testLot("1", "Tirunelveli Side Lot", "8.5000", "78.1245", "100", "TIRUNELVELI Main Road", "1"),
			testLot("2", "Nagercoil Side Lot", "8.5000", "78.1100", "100", "Nagercoil Road", "1"),
		},
		status: []*models.ParkingStatus{
			{LotID: "1", CurrentAvailability: 80},
			{LotID: "2", CurrentAvailability: 80},
		},
	}
	parking := newTestParking(store, 0)

	reply := parking.FindAvailableParking(TiruchendurLat, TiruchendurLon, "en", "tirunelveli")
	if !strings.Contains(reply, "Tirunelveli Side Lot") || strings.Contains(reply, "Nagercoil Side Lot") {
		t.Errorf("Route filter should match case-insensitively, got: %s", reply)
	}

	all := parking.FindAvailableParking(TiruchendurLat, TiruchendurLon, "en", "any")
	if !strings.Contains(all, "Tirunelveli Side Lot") || !strings.Contains(all, "Nagercoil Side Lot") {
		t.Errorf("Route 'any' should include all lots, got: %s", all)
	}
}

func TestUnparsableLotExcludedSilently(t *testing.T) {
	store := &fakeStore{
		lots: []*models.ParkingLot{
			testLot("1", "Broken Lot", "not-a-number", "78.1245", "100", "Tirunelveli Road", "1"),
			testLot("2", "Zero Capacity Lot", "8.5000", "78.1245", "0", "Tirunelveli Road", "1"),
		},
		status: []*models.ParkingStatus{
			{LotID: "1", CurrentAvailability: 80},
			{LotID: "2", CurrentAvailability: 80},
		},
	}
	parking := newTestParking(store, 0)

	reply := parking.FindAvailableParking(TiruchendurLat, TiruchendurLon, "en", "tirunelveli")
	if !strings.Contains(reply, "no suitable parking") {
		t.Errorf("All-unparsable lots should yield the no-parking message, got: %s", reply)
	}
}

func TestEmptyDatasetsReturnFetchError(t *testing.T) {
	parking := newTestParking(&fakeStore{}, 0)

	reply := parking.FindAvailableParking(TiruchendurLat, TiruchendurLon, "en", "tirunelveli")
	if !strings.Contains(reply, "couldn't fetch") {
		t.Errorf("Empty datasets should yield the data-unavailable message, got: %s", reply)
	}
}

func TestMaxResultsCapsList(t *testing.T) {
	store := &fakeStore{
		lots: []*models.ParkingLot{
			testLot("1", "First Ground", "8.5000", "78.1245", "100", "Tirunelveli Road", "1"),
			testLot("2", "Second Ground", "8.5100", "78.1245", "100", "Tirunelveli Road", "2"),
			testLot("3", "Third Ground", "8.5200", "78.1245", "100", "Tirunelveli Road", "3"),
		},
		status: []*models.ParkingStatus{
			{LotID: "1", CurrentAvailability: 80},
			{LotID: "2", CurrentAvailability: 80},
			{LotID: "3", CurrentAvailability: 80},
		},
	}
	parking := newTestParking(store, 1)

	reply := parking.FindAvailableParking(TiruchendurLat, TiruchendurLon, "en", "tirunelveli")
	if !strings.Contains(reply, "First Ground") {
		t.Errorf("Top ranked lot missing from capped reply: %s", reply)
	}
	if strings.Contains(reply, "Second Ground") || strings.Contains(reply, "Third Ground") {
		t.Errorf("Capped reply should only contain the top lot, got: %s", reply)
	}
}

func TestOverviewMapLinkAppendedForKnownRoute(t *testing.T) {
	store := &fakeStore{
		lots: []*models.ParkingLot{
			testLot("1", "Anna Nagar Ground", "8.5000", "78.1245", "100", "Tirunelveli Road", "1"),
		},
		status: []*models.ParkingStatus{
			{LotID: "1", CurrentAvailability: 80},
		},
	}
	parking := newTestParking(store, 0)

	reply := parking.FindAvailableParking(TiruchendurLat, TiruchendurLon, "en", "tirunelveli")
	if !strings.Contains(reply, "google.com/maps/d/embed") {
		t.Errorf("Expected route overview map link, got: %s", reply)
	}
	if !strings.Contains(reply, "Parking Options for Tirunelveli Route") {
		t.Errorf("Expected route-specific title, got: %s", reply)
	}
}
