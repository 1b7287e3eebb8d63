package models

import (
	"time"

	"gorm.io/gorm"
)

// ParkingLot is the static metadata for one physical parking lot.
// Latitude, Longitude, TotalCapacity and Priority arrive as free-form
// text from the upstream sheets, so they are stored as strings and
// parsed defensively by the ranking engine.
type ParkingLot struct {
	gorm.Model
	LotID         string `json:"ParkingLotID" gorm:"uniqueIndex"`
	NameEn        string `json:"Parking_name_en"`
	NameTa        string `json:"Parking_name_ta"`
	Latitude      string `json:"Latitude"`
	Longitude     string `json:"Longitude"`
	TotalCapacity string `json:"TotalCapacity"`
	RouteEn       string `json:"Route_en"` // free-text route association, e.g. "Tirunelveli Road"
	Priority      string `json:"Priority"` // lower sorts first; blank defaults to 99
}

// Name returns the display name for the given language code.
func (p *ParkingLot) Name(lang string) string {
	if lang == "ta" && p.NameTa != "" {
		return p.NameTa
	}
	return p.NameEn
}

// ParkingStatus is the live occupancy record for one lot.
// CurrentAvailability of -1 means "not reported" and the availability
// is derived from the in/out counters instead.
type ParkingStatus struct {
	gorm.Model
	LotID               string    `json:"ParkingLotID" gorm:"uniqueIndex"`
	CurrentAvailability int       `json:"CurrentAvailability" gorm:"default:-1"`
	CurrentIn           int       `json:"CurrentIn"`
	CurrentOut          int       `json:"CurrentOut"`
	ReportedAt          time.Time `json:"reported_at"`
}

// RankedLot is a parking lot joined with its live status and derived
// fields, ready for rendering.
type RankedLot struct {
	Lot          *ParkingLot
	Latitude     float64
	Longitude    float64
	Capacity     int
	Availability int
	PercentFull  float64
	DistanceKm   float64
	Priority     int
}
