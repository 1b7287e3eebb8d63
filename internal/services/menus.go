package services

import (
	"strings"

	"github.com/Narayanansankar/tirubot/internal/models"
)

// menuKeys lists the template keys composing each rendered menu, in
// display order.
var menuKeys = map[models.MenuLevel][]string{
	models.LevelMainMenu: {
		"main_menu_prompt",
		"option_parking_availability",
		"option_temple_info",
		"option_help_centres",
		"option_first_aid",
		"option_temp_bus_stands",
		"option_toilets_temple",
		"option_annadhanam",
		"option_emergency_contacts",
		"option_nearby_facilities",
		"option_change_language",
		"option_feedback",
		"option_end_conversation_text",
	},
	models.LevelTempleInfoMenu: {
		"temple_info_menu_prompt",
		"temple_timings_menu_item",
		"temple_dress_code_menu_item",
		"temple_seva_tickets_menu_item",
		"option_go_back_text",
	},
}

// MenuText renders the full menu for a level in the user's language.
func (t *TextProvider) MenuText(level models.MenuLevel, userID string) string {
	keys, exists := menuKeys[level]
	if !exists {
		return ""
	}

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, t.Resolve(userID, key, nil))
	}
	return strings.Join(lines, "\n")
}
