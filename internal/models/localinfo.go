package models

import "gorm.io/gorm"

// Local info categories, named after the worksheet tabs they came from.
const (
	CategoryHelpCentres   = "Help_Centres"
	CategoryFirstAid      = "First_Aid_Stations"
	CategoryTempBusStands = "Temp_Bus_Stands"
	CategoryToilets       = "Toilets_Near_Temple"
	CategoryPublicParking = "Designated_Public_Parking"
	CategoryAnnadhanam    = "Annadhanam_Details"
)

// LocalInfoRecord is one facility entry (help centre, first aid station,
// toilet, bus stand, annadhanam site). Fields is an open mapping of
// language-suffixed columns (Name_en, Name_ta, Notes_en, ...) plus
// category-specific columns; the formatter resolves them per language.
type LocalInfoRecord struct {
	gorm.Model
	Category string            `json:"category" gorm:"index"`
	Fields   map[string]string `json:"fields" gorm:"serializer:json"`
}

// Field returns the value for key, preferring the lang-suffixed variant
// and falling back to the English one. Empty string means absent.
func (r *LocalInfoRecord) Field(key, lang string) string {
	if v, ok := r.Fields[key+"_"+lang]; ok && v != "" {
		return v
	}
	return r.Fields[key+"_en"]
}
