package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/Narayanansankar/tirubot/internal/models"
)

// MemoryStore holds all datasets in memory, for tests and local runs.
type MemoryStore struct {
	localInfo map[string][]*models.LocalInfoRecord
	lots      []*models.ParkingLot
	status    []*models.ParkingStatus
	feedback  []*models.Feedback

	localMu    sync.RWMutex
	parkingMu  sync.RWMutex
	feedbackMu sync.RWMutex

	feedbackCounter int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		localInfo: make(map[string][]*models.LocalInfoRecord),
	}
}

// NewSeededMemoryStore creates an in-memory store pre-filled with a
// representative Tiruchendur dataset, so the bot answers something
// useful without a database.
func NewSeededMemoryStore() *MemoryStore {
	m := NewMemoryStore()
	m.SetParkingLots(seedParkingLots())
	m.SetParkingStatus(seedParkingStatus())
	for category, records := range seedLocalInfo() {
		m.SetLocalInfo(category, records)
	}
	return m
}

func (m *MemoryStore) GetLocalInfo(category string) ([]*models.LocalInfoRecord, error) {
	m.localMu.RLock()
	defer m.localMu.RUnlock()

	records, exists := m.localInfo[category]
	if !exists {
		return []*models.LocalInfoRecord{}, nil
	}
	return records, nil
}

func (m *MemoryStore) GetParkingLots() ([]*models.ParkingLot, error) {
	m.parkingMu.RLock()
	defer m.parkingMu.RUnlock()
	return m.lots, nil
}

func (m *MemoryStore) GetParkingStatus() ([]*models.ParkingStatus, error) {
	m.parkingMu.RLock()
	defer m.parkingMu.RUnlock()
	return m.status, nil
}

func (m *MemoryStore) CreateFeedback(fb *models.Feedback) (*models.Feedback, error) {
	m.feedbackMu.Lock()
	defer m.feedbackMu.Unlock()

	m.feedbackCounter++
	fb.ID = uint(m.feedbackCounter)
	fb.CreatedAt = time.Now()
	m.feedback = append(m.feedback, fb)
	return fb, nil
}

// SetLocalInfo replaces the records for one category.
func (m *MemoryStore) SetLocalInfo(category string, records []*models.LocalInfoRecord) {
	m.localMu.Lock()
	defer m.localMu.Unlock()
	m.localInfo[category] = records
}

// SetParkingLots replaces the static lot metadata.
func (m *MemoryStore) SetParkingLots(lots []*models.ParkingLot) {
	m.parkingMu.Lock()
	defer m.parkingMu.Unlock()
	m.lots = lots
}

// SetParkingStatus replaces the live status records.
func (m *MemoryStore) SetParkingStatus(status []*models.ParkingStatus) {
	m.parkingMu.Lock()
	defer m.parkingMu.Unlock()
	m.status = status
}

// GetFeedback returns all stored feedback (for the admin surface).
func (m *MemoryStore) GetFeedback() []*models.Feedback {
	m.feedbackMu.RLock()
	defer m.feedbackMu.RUnlock()
	return m.feedback
}

func seedParkingLots() []*models.ParkingLot {
	return []*models.ParkingLot{
		{
			LotID:         "1",
			NameEn:        "Anna Nagar Ground",
			NameTa:        "அண்ணா நகர் மைதானம்",
			Latitude:      "8.4890",
			Longitude:     "78.1105",
			TotalCapacity: "400",
			RouteEn:       "Tirunelveli Road",
			Priority:      "1",
		},
		{
			LotID:         "2",
			NameEn:        "Bus Stand Overflow Lot",
			NameTa:        "பேருந்து நிலைய கூடுதல் நிறுத்தம்",
			Latitude:      "8.4935",
			Longitude:     "78.1180",
			TotalCapacity: "250",
			RouteEn:       "Thoothukudi Road",
			Priority:      "1",
		},
		{
			LotID:         "3",
			NameEn:        "Nagercoil Road Open Ground",
			NameTa:        "நாகர்கோவில் சாலை திறந்தவெளி மைதானம்",
			Latitude:      "8.4810",
			Longitude:     "78.1022",
			TotalCapacity: "300",
			RouteEn:       "Nagercoil Road",
			Priority:      "2",
		},
	}
}

func seedParkingStatus() []*models.ParkingStatus {
	now := time.Now()
	return []*models.ParkingStatus{
		{LotID: "1", CurrentAvailability: 320, ReportedAt: now},
		{LotID: "2", CurrentAvailability: -1, CurrentIn: 180, CurrentOut: 40, ReportedAt: now},
		{LotID: "3", CurrentAvailability: 120, ReportedAt: now},
	}
}

func seedLocalInfo() map[string][]*models.LocalInfoRecord {
	mk := func(fields map[string]string) *models.LocalInfoRecord {
		return &models.LocalInfoRecord{Fields: fields}
	}

	return map[string][]*models.LocalInfoRecord{
		models.CategoryHelpCentres: {
			mk(map[string]string{
				"Name_en":  "Main Rath Veethi Help Centre",
				"Name_ta":  "முக்கிய ரத வீதி உதவி மையம்",
				"Notes_en": "Open 24 hours during festival days",
				"Notes_ta": "திருவிழா நாட்களில் 24 மணி நேரமும் திறந்திருக்கும்",
			}),
		},
		models.CategoryFirstAid: {
			mk(map[string]string{
				"Name_en":  "Temple East Gate First Aid",
				"Name_ta":  "கோவில் கிழக்கு வாசல் முதலுதவி",
				"Notes_en": "Staffed by government medical team",
				"Notes_ta": "அரசு மருத்துவக் குழுவால் இயக்கப்படுகிறது",
			}),
		},
		models.CategoryTempBusStands: {
			mk(map[string]string{
				"Name_en":         "Tirunelveli Route Temporary Stand",
				"Name_ta":         "திருநெல்வேலி வழி தற்காலிக நிலையம்",
				"RouteInfo_en":    "Buses from Tirunelveli and Palayamkottai",
				"RouteInfo_ta":    "திருநெல்வேலி மற்றும் பாளையங்கோட்டை பேருந்துகள்",
				"ActiveDuring_en": "Festival season only",
				"ActiveDuring_ta": "திருவிழா காலத்தில் மட்டும்",
				"Notes_en":        "Free shuttle to temple every 15 minutes",
				"Notes_ta":        "ஒவ்வொரு 15 நிமிடத்திற்கும் இலவச சிறப்பு பேருந்து",
			}),
		},
		models.CategoryToilets: {
			mk(map[string]string{
				"Name_en":  "Shanmuga Vilasam Public Toilet",
				"Name_ta":  "சண்முக விலாசம் பொது கழிப்பறை",
				"Notes_en": "Near the west entrance",
				"Notes_ta": "மேற்கு நுழைவாயில் அருகில்",
			}),
		},
		models.CategoryAnnadhanam: {
			mk(map[string]string{
				"Name_en":        "Temple Annadhanam Hall",
				"Name_ta":        "கோவில் அன்னதான மண்டபம்",
				"Timings_en":     "11:30 AM - 2:30 PM",
				"Timings_ta":     "காலை 11:30 - மதியம் 2:30",
				"ContactInfo_en": "04639-242221",
				"Notes_en":       "Free meals for all pilgrims",
				"Notes_ta":       "அனைத்து பக்தர்களுக்கும் இலவச உணவு",
			}),
		},
	}
}

var _ Store = (*MemoryStore)(nil)

// String implements a readable description for logs.
func (m *MemoryStore) String() string {
	m.parkingMu.RLock()
	defer m.parkingMu.RUnlock()
	return fmt.Sprintf("MemoryStore(lots=%d, status=%d)", len(m.lots), len(m.status))
}
