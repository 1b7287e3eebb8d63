package storage

import (
	"github.com/Narayanansankar/tirubot/internal/models"
)

var storeInstance Store

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	return storeInstance
}

// Store defines the interface for dataset access. The three read
// operations back the dataset gateway; callers go through the gateway's
// caches, never through Store directly.
type Store interface {
	// Local info datasets, one list per category tab
	GetLocalInfo(category string) ([]*models.LocalInfoRecord, error)

	// Parking datasets
	GetParkingLots() ([]*models.ParkingLot, error)
	GetParkingStatus() ([]*models.ParkingStatus, error)

	// Feedback left through the web surface
	CreateFeedback(fb *models.Feedback) (*models.Feedback, error)
}
