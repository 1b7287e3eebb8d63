package storage

import (
	"gorm.io/gorm"

	"github.com/Narayanansankar/tirubot/internal/models"
)

// DatabaseStore backs the datasets with PostgreSQL via GORM.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a database-backed store.
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (d *DatabaseStore) GetLocalInfo(category string) ([]*models.LocalInfoRecord, error) {
	// Non-nil even when empty: callers distinguish "no rows" from a
	// failed fetch.
	records := []*models.LocalInfoRecord{}
	if err := d.db.Where("category = ?", category).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (d *DatabaseStore) GetParkingLots() ([]*models.ParkingLot, error) {
	var lots []*models.ParkingLot
	if err := d.db.Find(&lots).Error; err != nil {
		return nil, err
	}
	return lots, nil
}

func (d *DatabaseStore) GetParkingStatus() ([]*models.ParkingStatus, error) {
	var status []*models.ParkingStatus
	if err := d.db.Find(&status).Error; err != nil {
		return nil, err
	}
	return status, nil
}

func (d *DatabaseStore) CreateFeedback(fb *models.Feedback) (*models.Feedback, error) {
	if err := d.db.Create(fb).Error; err != nil {
		return nil, err
	}
	return fb, nil
}

var _ Store = (*DatabaseStore)(nil)
