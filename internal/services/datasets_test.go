package services

import (
	"fmt"
	"testing"

	"github.com/Narayanansankar/tirubot/internal/models"
)

// fakeStore is a controllable storage.Store for gateway tests.
type fakeStore struct {
	lots   []*models.ParkingLot
	status []*models.ParkingStatus
	local  map[string][]*models.LocalInfoRecord

	failNext bool

	lotCalls    int
	statusCalls int
	localCalls  int
}

func (f *fakeStore) GetLocalInfo(category string) ([]*models.LocalInfoRecord, error) {
	f.localCalls++
	if f.failNext {
		return nil, fmt.Errorf("upstream unavailable")
	}
	return f.local[category], nil
}

func (f *fakeStore) GetParkingLots() ([]*models.ParkingLot, error) {
	f.lotCalls++
	if f.failNext {
		return nil, fmt.Errorf("upstream unavailable")
	}
	return f.lots, nil
}

func (f *fakeStore) GetParkingStatus() ([]*models.ParkingStatus, error) {
	f.statusCalls++
	if f.failNext {
		return nil, fmt.Errorf("upstream unavailable")
	}
	return f.status, nil
}

func (f *fakeStore) CreateFeedback(fb *models.Feedback) (*models.Feedback, error) {
	if f.failNext {
		return nil, fmt.Errorf("upstream unavailable")
	}
	return fb, nil
}

func testLot(id, name, lat, lon, capacity, route, priority string) *models.ParkingLot {
	return &models.ParkingLot{
		LotID:         id,
		NameEn:        name,
		Latitude:      lat,
		Longitude:     lon,
		TotalCapacity: capacity,
		RouteEn:       route,
		Priority:      priority,
	}
}

func TestGatewayCachesWithinTTL(t *testing.T) {
	store := &fakeStore{
		lots: []*models.ParkingLot{testLot("1", "Lot A", "8.49", "78.11", "100", "Tirunelveli Road", "1")},
	}
	gateway := NewDatasetGateway(store)

	first := gateway.ParkingLots()
	second := gateway.ParkingLots()

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("Expected 1 lot from both reads, got %d and %d", len(first), len(second))
	}
	if store.lotCalls != 1 {
		t.Errorf("Expected 1 store call within TTL, got %d", store.lotCalls)
	}
}

func TestGatewayForceRefresh(t *testing.T) {
	store := &fakeStore{
		lots: []*models.ParkingLot{testLot("1", "Lot A", "8.49", "78.11", "100", "Tirunelveli Road", "1")},
	}
	gateway := NewDatasetGateway(store)

	gateway.ParkingLots()
	gateway.ForceRefresh()
	gateway.ParkingLots()

	if store.lotCalls != 2 {
		t.Errorf("Expected 2 store calls after forced refresh, got %d", store.lotCalls)
	}
}

func TestGatewayServesStaleOnFailure(t *testing.T) {
	store := &fakeStore{
		lots: []*models.ParkingLot{testLot("1", "Lot A", "8.49", "78.11", "100", "Tirunelveli Road", "1")},
	}
	gateway := NewDatasetGateway(store)

	if got := gateway.ParkingLots(); len(got) != 1 {
		t.Fatalf("Expected 1 lot on first read, got %d", len(got))
	}

	store.failNext = true
	gateway.ForceRefresh()

	stale := gateway.ParkingLots()
	if len(stale) != 1 || stale[0].NameEn != "Lot A" {
		t.Errorf("Expected stale cached lot on fetch failure, got %v", stale)
	}
}

func TestGatewayLiveStatusKeyedByLotID(t *testing.T) {
	store := &fakeStore{
		status: []*models.ParkingStatus{
			{LotID: "1", CurrentAvailability: 50},
			{LotID: "2", CurrentAvailability: -1, CurrentIn: 30, CurrentOut: 5},
		},
	}
	gateway := NewDatasetGateway(store)

	status := gateway.LiveStatus()
	if len(status) != 2 {
		t.Fatalf("Expected 2 status entries, got %d", len(status))
	}
	if status["1"].CurrentAvailability != 50 {
		t.Errorf("Lot 1 availability = %d, want 50", status["1"].CurrentAvailability)
	}
	if status["2"].CurrentIn != 30 {
		t.Errorf("Lot 2 CurrentIn = %d, want 30", status["2"].CurrentIn)
	}
}

func TestGatewayLocalInfoPerCategory(t *testing.T) {
	store := &fakeStore{
		local: map[string][]*models.LocalInfoRecord{
			models.CategoryFirstAid: {
				{Category: models.CategoryFirstAid, Fields: map[string]string{"Name_en": "East Gate First Aid"}},
			},
		},
	}
	gateway := NewDatasetGateway(store)

	if got := gateway.LocalInfo(models.CategoryFirstAid); len(got) != 1 {
		t.Errorf("Expected 1 first aid record, got %d", len(got))
	}
	if got := gateway.LocalInfo(models.CategoryToilets); len(got) != 0 {
		t.Errorf("Expected no toilet records, got %d", len(got))
	}
	if store.localCalls != 2 {
		t.Errorf("Expected 2 store calls (one per category), got %d", store.localCalls)
	}
}
