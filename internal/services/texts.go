package services

import (
	"fmt"
	"log"
	"regexp"
)

// Language is one selectable interface language.
type Language struct {
	Code string
	Name string
}

// SupportedLanguages lists the selectable languages in button order.
// The first entry is the primary language used for fallback.
var SupportedLanguages = []Language{
	{Code: "en", Name: "English"},
	{Code: "ta", Name: "தமிழ் (Tamil)"},
}

// IsSupportedLanguage reports whether code is a selectable language.
func IsSupportedLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// LanguageName returns the display name for a language code.
func LanguageName(code string) string {
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

// TextProvider resolves (language, key, params) to a formatted string
// from the bilingual template tables. The first argument to Resolve may
// also be a user id, in which case the session's stored language is
// used (default English).
type TextProvider struct {
	sessions SessionStore
}

// NewTextProvider creates a text provider backed by the given session
// store for user-id language lookups.
func NewTextProvider(sessions SessionStore) *TextProvider {
	return &TextProvider{sessions: sessions}
}

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Resolve looks up key in the resolved language's table (falling back
// to English, then to a visibly-marked placeholder) and substitutes the
// named parameters. A placeholder missing from params yields a
// diagnostic string instead of an error.
func (t *TextProvider) Resolve(langOrUserID, key string, params map[string]string) string {
	template, ok := t.lookup(langOrUserID, key)
	if !ok {
		return fmt.Sprintf("<%s_MISSING>", key)
	}

	if len(params) == 0 {
		return template
	}

	missing := ""
	out := placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		if v, exists := params[name]; exists {
			return v
		}
		if missing == "" {
			missing = name
		}
		return m
	})

	if missing != "" {
		log.Printf("Formatting failed for key '%s'. Missing placeholder: %s", key, missing)
		return fmt.Sprintf("Error: Data for '%s' is missing.", missing)
	}
	return out
}

// ResolveLenient is Resolve but fills placeholders absent from params
// with fallback instead of failing. Used for the open-schema local info
// templates where sheets routinely omit columns.
func (t *TextProvider) ResolveLenient(langOrUserID, key string, params map[string]string, fallback string) string {
	template, ok := t.lookup(langOrUserID, key)
	if !ok {
		return fmt.Sprintf("<%s_MISSING>", key)
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(m string) string {
		name := m[1 : len(m)-1]
		if v, exists := params[name]; exists && v != "" {
			return v
		}
		return fallback
	})
}

// UserLanguage resolves the effective language for a user id.
func (t *TextProvider) UserLanguage(userID string) string {
	if IsSupportedLanguage(userID) {
		return userID
	}
	if t.sessions != nil {
		if session, ok := t.sessions.Get(userID); ok && session.Language != "" {
			return session.Language
		}
	}
	return "en"
}

func (t *TextProvider) lookup(langOrUserID, key string) (string, bool) {
	lang := t.UserLanguage(langOrUserID)

	if template, ok := menuTexts[lang][key]; ok {
		return template, true
	}
	template, ok := menuTexts["en"][key]
	return template, ok
}

// menuTexts holds the full bilingual template tables. Placeholders use
// {Name} markers substituted by Resolve.
var menuTexts = map[string]map[string]string{
	"en": {
		"welcome_tiruchendur":               "Vanakkam {user_name}! I'm your Tiruchendur Assistant. 😊",
		"select_language_prompt":            "Please select your preferred language.",
		"invalid_language_selection":        "Invalid selection. Please click one of the buttons.",
		"language_selected":                 "You have selected {language_name}.",
		"main_menu_prompt":                  "Tiruchendur Main Menu - Type the number for your choice:",
		"option_parking_availability":       "1. 🅿️ Live Parking Availability",
		"option_temple_info":                "2. Murugan Temple Info",
		"option_help_centres":               "3. 'May I Help You?' Centres",
		"option_first_aid":                  "4. First Aid Stations",
		"option_temp_bus_stands":            "5. Temporary Bus Stands",
		"option_toilets_temple":             "6. Toilets Near Temple",
		"option_annadhanam":                 "7. Annadhanam Details",
		"option_emergency_contacts":         "8. Emergency Helpline Numbers",
		"option_nearby_facilities":          "9. Search Nearby (ATM, Hotel etc.)",
		"option_change_language":            "10. Change Language",
		"option_feedback":                   "11. Feedback",
		"option_end_conversation_text":      "\nType 'X' to End Conversation.",
		"feedback_response":                 "Thank you for helping us improve! 🙏\nPlease share your valuable feedback using the link below:\n\n<a href=\"{feedback_link}\" target=\"_blank\" rel=\"noopener noreferrer\">Open Feedback Form</a>",
		"invalid_menu_option":               "Invalid option. Please type a number from the menu or 'X' to end.",
		"temple_info_menu_prompt":           "Murugan Temple Information - Type the number:",
		"temple_timings_menu_item":          "1. Nada Open/Close & Pooja Times",
		"temple_dress_code_menu_item":       "2. Dress Code",
		"temple_seva_tickets_menu_item":     "3. Seva & Ticket Details",
		"option_go_back_text":               "0. Go Back to Main Menu",
		"freestyle_query_prompt":            "Okay, what would you like to search for nearby (e.g., 'ATM', 'hotels', 'restaurants')?",
		"emergency_contacts_info":           "Tiruchendur Emergency Contacts:\nPolice: 100\nFire: 101\nAmbulance: 108\nTemple Office: 04639-242221",
		"local_info_title_format":           "--- {category_name} in Tiruchendur ---",
		"local_info_item_format":            "\n➡️ {ItemName}\n📍 Location: {LocationLink}\n📝 Notes: {Notes}",
		"local_info_item_format_bus":        "\n➡️ {ItemName}\n🛣️ Route: {RouteInfo}\n📍 Location: {LocationLink}\n🕒 Active: {ActiveDuring}\n📝 Notes: {Notes}",
		"local_info_item_format_parking":    "\n🅿️ {ItemName}\n🛣️ Access from: {RouteDirection}\n📍 Location: {LocationLink}\n🕒 Operation: {OperationDuring}\n📝 Notes: {Notes}",
		"local_info_item_format_annadhanam": "\n🍚 Annadhanam at: {ItemName}\n🗺️ Map: {MapsLink}\n🕒 Timings: {Timings}\n📞 Contact: {ContactInfo}\n📝 Notes: {Notes}",
		"no_local_info_found":               "No information currently available for {category_name} in Tiruchendur.",
		"fetching_data_error":               "Sorry, I couldn't fetch the latest information.",
		"parking_route_prompt":              "Which route are you primarily arriving from for parking?\n(Type the number or name)\n1. Tirunelveli Route\n2. Thoothukudi Route\n3. Nagercoil Route\n4. Other/Already in Tiruchendur",
		"parking_for_route_title":           "--- Parking Options for {RouteName} Route ---",
		"parking_info_title":                "--- Tiruchendur Parking Availability ---",
		"no_parking_available":              "Sorry, no suitable parking spots are currently available or all are nearly full.",
		"parking_lot_details_format":        "\n🅿️ {ParkingName}\n🗺️ Directions: {MapsLink}\n📍 Approx. {Distance} km away\n📦 Availability: {Availability}/{TotalCapacity} slots ({PercentageFull}% full)",
		"overall_parking_map_link_text":     "\n\n<a href=\"{overall_map_url}\" data-embed=\"true\">🗺️ View All Parking Lots for the {RouteName} Route</a>",
		"temple_timings_details":            "Tiruchendur Murugan Temple General Timings:",
		"temple_dress_code_details":         "Dress Code: Traditional Indian attire is recommended. Men: Dhoti/Pants. Women: Saree/Salwar Kameez.",
		"temple_seva_details_intro":         "--- Seva & Ticket Details (Rates subject to change) ---",
		"goodbye_message":                   "Nandri! Vanakkam!",
		"nearest_place_intro":               "📍 Here are results for {place_type_display_name} in the Tiruchendur area:",
		"place_details_maps":                "\n{name}\nAddress: {address}\n🗺️ {maps_url}",
	},
	"ta": {
		"welcome_tiruchendur":               "வணக்கம் {user_name}! நான் உங்கள் திருச்செந்தூர் உதவியாளர். 😊",
		"select_language_prompt":            "தயவுசெய்து உங்கள் விருப்ப மொழியைத் தேர்ந்தெடுக்கவும்.",
		"invalid_language_selection":        "தவறான தேர்வு. பொத்தான்களில் ஒன்றை அழுத்தவும்.",
		"language_selected":                 "நீங்கள் {language_name} தேர்ந்தெடுத்துள்ளீர்கள்.",
		"main_menu_prompt":                  "திருச்செந்தூர் முதன்மை பட்டியல் - உங்கள் தேர்வின் எண்ணை உள்ளிடவும்:",
		"option_parking_availability":       "1. 🅿️ நேரடி வாகன நிறுத்த நிலவரம்",
		"option_temple_info":                "2. முருகன் கோவில் தகவல்",
		"option_help_centres":               "3. 'உதவி வேண்டுமா?' மையங்கள்",
		"option_first_aid":                  "4. முதலுதவி நிலையங்கள்",
		"option_temp_bus_stands":            "5. தற்காலிக பேருந்து நிலையங்கள்",
		"option_toilets_temple":             "6. கோவில் அருகே கழிப்பறைகள்",
		"option_annadhanam":                 "7. அன்னதான விவரங்கள்",
		"option_emergency_contacts":         "8. அவசர உதவி எண்கள்",
		"option_nearby_facilities":          "9. அருகில் தேடுங்கள் (ATM, ஹோட்டல் போன்றவை)",
		"option_change_language":            "10. மொழியை மாற்றவும்",
		"option_feedback":                   "11. கருத்து தெரிவிக்கவும்",
		"option_end_conversation_text":      "\nஉரையாடலை முடிக்க 'X' என உள்ளிடவும்.",
		"feedback_response":                 "எங்களை மேம்படுத்த உதவியதற்கு நன்றி! 🙏\nகீழே உள்ள இணைப்பின் மூலம் உங்கள் மதிப்புமிக்க கருத்தைப் பகிரவும்:\n\n<a href=\"{feedback_link}\" target=\"_blank\" rel=\"noopener noreferrer\">கருத்துப் படிவத்தைத் திறக்க</a>",
		"invalid_menu_option":               "தவறான தேர்வு. பட்டியலில் உள்ள எண்ணை உள்ளிடவும் அல்லது முடிக்க 'X' என உள்ளிடவும்.",
		"temple_info_menu_prompt":           "முருகன் கோவில் தகவல் - எண்ணை உள்ளிடவும்:",
		"temple_timings_menu_item":          "1. நடை திறப்பு/அடைப்பு & பூஜை நேரங்கள்",
		"temple_dress_code_menu_item":       "2. ஆடை கட்டுப்பாடு",
		"temple_seva_tickets_menu_item":     "3. சேவை & டிக்கெட் விவரங்கள்",
		"option_go_back_text":               "0. முதன்மை பட்டியலுக்குத் திரும்ப",
		"freestyle_query_prompt":            "சரி, அருகில் எதைத் தேட விரும்புகிறீர்கள் (எ.கா. 'ATM', 'ஹோட்டல்கள்', 'உணவகங்கள்')?",
		"emergency_contacts_info":           "திருச்செந்தூர் அவசர தொடர்புகள்:\nகாவல்துறை: 100\nதீயணைப்பு: 101\nஆம்புலன்ஸ்: 108\nகோவில் அலுவலகம்: 04639-242221",
		"local_info_title_format":           "--- திருச்செந்தூரில் {category_name} ---",
		"local_info_item_format":            "\n➡️ {ItemName}\n📍 இடம்: {LocationLink}\n📝 குறிப்புகள்: {Notes}",
		"local_info_item_format_bus":        "\n➡️ {ItemName}\n🛣️ வழித்தடம்: {RouteInfo}\n📍 இடம்: {LocationLink}\n🕒 இயங்கும் காலம்: {ActiveDuring}\n📝 குறிப்புகள்: {Notes}",
		"local_info_item_format_parking":    "\n🅿️ {ItemName}\n🛣️ அணுகும் வழி: {RouteDirection}\n📍 இடம்: {LocationLink}\n🕒 இயக்க நேரம்: {OperationDuring}\n📝 குறிப்புகள்: {Notes}",
		"local_info_item_format_annadhanam": "\n🍚 அன்னதானம்: {ItemName}\n🗺️ வரைபடம்: {MapsLink}\n🕒 நேரங்கள்: {Timings}\n📞 தொடர்பு: {ContactInfo}\n📝 குறிப்புகள்: {Notes}",
		"no_local_info_found":               "திருச்செந்தூரில் {category_name} குறித்த தகவல் தற்போது இல்லை.",
		"fetching_data_error":               "மன்னிக்கவும், சமீபத்திய தகவலைப் பெற முடியவில்லை.",
		"parking_route_prompt":              "வாகன நிறுத்தத்திற்காக நீங்கள் முக்கியமாக எந்த வழியில் வருகிறீர்கள்?\n(எண்ணை அல்லது பெயரை உள்ளிடவும்)\n1. திருநெல்வேலி வழி\n2. தூத்துக்குடி வழி\n3. நாகர்கோவில் வழி\n4. வேறு/ஏற்கனவே திருச்செந்தூரில்",
		"parking_for_route_title":           "--- {RouteName} வழிக்கான வாகன நிறுத்த வசதிகள் ---",
		"parking_info_title":                "--- திருச்செந்தூர் வாகன நிறுத்த நிலவரம் ---",
		"no_parking_available":              "மன்னிக்கவும், தற்போது பொருத்தமான வாகன நிறுத்த இடங்கள் இல்லை அல்லது அனைத்தும் கிட்டத்தட்ட நிரம்பிவிட்டன.",
		"parking_lot_details_format":        "\n🅿️ {ParkingName}\n🗺️ வழிகள்: {MapsLink}\n📍 சுமார் {Distance} கி.மீ தொலைவில்\n📦 காலி இடங்கள்: {Availability}/{TotalCapacity} ({PercentageFull}% நிரம்பியுள்ளது)",
		"overall_parking_map_link_text":     "\n\n<a href=\"{overall_map_url}\" data-embed=\"true\">🗺️ {RouteName} வழியின் அனைத்து வாகன நிறுத்தங்களையும் காண</a>",
		"temple_timings_details":            "திருச்செந்தூர் முருகன் கோவில் பொது நேரங்கள்:",
		"temple_dress_code_details":         "ஆடை கட்டுப்பாடு: பாரம்பரிய இந்திய உடை பரிந்துரைக்கப்படுகிறது. ஆண்கள்: வேட்டி/பேன்ட். பெண்கள்: புடவை/சல்வார் கமீஸ்.",
		"temple_seva_details_intro":         "--- சேவை & டிக்கெட் விவரங்கள் (கட்டணங்கள் மாறலாம்) ---",
		"goodbye_message":                   "நன்றி! வணக்கம்!",
		"nearest_place_intro":               "📍 திருச்செந்தூர் பகுதியில் {place_type_display_name} தேடல் முடிவுகள்:",
		"place_details_maps":                "\n{name}\nமுகவரி: {address}\n🗺️ {maps_url}",
	},
}
