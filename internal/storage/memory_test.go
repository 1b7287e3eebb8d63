package storage

import (
	"testing"

	"github.com/Narayanansankar/tirubot/internal/models"
)

func TestMemoryStoreEmptyDefaults(t *testing.T) {
	store := NewMemoryStore()

	records, err := store.GetLocalInfo(models.CategoryHelpCentres)
	if err != nil {
		t.Fatalf("GetLocalInfo: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Empty store returned %d records", len(records))
	}

	lots, err := store.GetParkingLots()
	if err != nil {
		t.Fatalf("GetParkingLots: %v", err)
	}
	if len(lots) != 0 {
		t.Errorf("Empty store returned %d lots", len(lots))
	}
}

func TestSeededStoreHasConsistentParkingData(t *testing.T) {
	store := NewSeededMemoryStore()

	lots, _ := store.GetParkingLots()
	status, _ := store.GetParkingStatus()
	if len(lots) == 0 || len(status) == 0 {
		t.Fatal("Seeded store must carry parking data")
	}

	// Every status row must reference a seeded lot.
	known := make(map[string]bool)
	for _, lot := range lots {
		known[lot.LotID] = true
		if lot.NameEn == "" || lot.NameTa == "" {
			t.Errorf("Lot %s is missing a bilingual name", lot.LotID)
		}
	}
	for _, s := range status {
		if !known[s.LotID] {
			t.Errorf("Status row references unknown lot %s", s.LotID)
		}
	}
}

func TestSeededStoreCoversMenuCategories(t *testing.T) {
	store := NewSeededMemoryStore()

	for _, category := range []string{
		models.CategoryHelpCentres,
		models.CategoryFirstAid,
		models.CategoryTempBusStands,
		models.CategoryToilets,
		models.CategoryAnnadhanam,
	} {
		records, err := store.GetLocalInfo(category)
		if err != nil {
			t.Fatalf("GetLocalInfo(%s): %v", category, err)
		}
		if len(records) == 0 {
			t.Errorf("Seeded store has no records for %s", category)
			continue
		}
		for _, r := range records {
			if r.Field("Name", "en") == "" {
				t.Errorf("Record in %s has no English name", category)
			}
		}
	}
}

func TestCreateFeedbackAssignsIDs(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.CreateFeedback(&models.Feedback{UserID: "u1", Message: "great"})
	if err != nil {
		t.Fatalf("CreateFeedback: %v", err)
	}
	second, _ := store.CreateFeedback(&models.Feedback{UserID: "u2", Message: "ok"})

	if first.ID == 0 || second.ID <= first.ID {
		t.Errorf("Feedback IDs not increasing: %d, %d", first.ID, second.ID)
	}
	if len(store.GetFeedback()) != 2 {
		t.Errorf("Expected 2 feedback entries, got %d", len(store.GetFeedback()))
	}
}
