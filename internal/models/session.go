package models

import "time"

// MenuLevel is the user's current position in the menu hierarchy.
type MenuLevel string

const (
	LevelLanguageSelect       MenuLevel = "language_select"
	LevelMainMenu             MenuLevel = "main_menu"
	LevelTempleInfoMenu       MenuLevel = "temple_info_menu"
	LevelParkingAwaitingRoute MenuLevel = "parking_awaiting_route"
	LevelNearbySearch         MenuLevel = "nearby_search"
)

// Session holds the conversation state for one active user.
type Session struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Language    string    `json:"language"` // empty until selected
	MenuLevel   MenuLevel `json:"menu_level"`
	CreatedAt   time.Time `json:"created_at"`
	LastActive  time.Time `json:"last_active"`
}
