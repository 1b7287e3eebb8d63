package services

import (
	"log"
	"strings"

	"github.com/Narayanansankar/tirubot/internal/models"
)

// categoryFormat describes how one local info category is rendered.
type categoryFormat struct {
	titleKey string
	itemKey  string
	linkText string
}

var categoryFormats = map[string]categoryFormat{
	models.CategoryHelpCentres:   {"option_help_centres", "local_info_item_format", "View Map"},
	models.CategoryFirstAid:      {"option_first_aid", "local_info_item_format", "View Map"},
	models.CategoryTempBusStands: {"option_temp_bus_stands", "local_info_item_format_bus", "View Map"},
	models.CategoryToilets:       {"option_toilets_temple", "local_info_item_format", "View Map"},
	models.CategoryPublicParking: {"option_parking_availability", "local_info_item_format_parking", "View Location"},
	models.CategoryAnnadhanam:    {"option_annadhanam", "local_info_item_format_annadhanam", "View Map"},
}

// LocalInfoService renders facility listings (help centres, first aid,
// bus stands, toilets, annadhanam) and the nearby free-text search.
type LocalInfoService struct {
	datasets *DatasetGateway
	texts    *TextProvider
	maps     *MapsService
}

// NewLocalInfoService creates a local info formatter.
func NewLocalInfoService(datasets *DatasetGateway, texts *TextProvider, maps *MapsService) *LocalInfoService {
	return &LocalInfoService{
		datasets: datasets,
		texts:    texts,
		maps:     maps,
	}
}

// FormattedCategory returns the localized listing for one category, or
// the data-unavailable message when the gateway has nothing.
func (s *LocalInfoService) FormattedCategory(userID, category string) string {
	format, known := categoryFormats[category]
	if !known {
		log.Printf("Unknown local info category requested: %s", category)
		return s.texts.Resolve(userID, "fetching_data_error", nil)
	}

	records := s.datasets.LocalInfo(category)
	if records == nil {
		log.Printf("Local info unavailable for %s", category)
		return s.texts.Resolve(userID, "fetching_data_error", nil)
	}

	lang := s.texts.UserLanguage(userID)
	categoryName := stripMenuNumber(s.texts.Resolve(userID, format.titleKey, nil))

	// A fetched-but-empty category is distinct from a failed fetch.
	if len(records) == 0 {
		return s.texts.Resolve(userID, "no_local_info_found", map[string]string{
			"category_name": categoryName,
		})
	}

	parts := []string{s.texts.Resolve(userID, "local_info_title_format", map[string]string{
		"category_name": categoryName,
	})}

	for _, record := range records {
		params := make(map[string]string)
		for key := range record.Fields {
			if strings.HasSuffix(key, "_en") {
				base := strings.TrimSuffix(key, "_en")
				params[base] = record.Field(base, lang)
			}
		}

		itemName := record.Field("Name", lang)
		params["ItemName"] = itemName

		link := EmbedAnchor(s.maps.PlaceLink(itemName+", Tiruchendur"), format.linkText, "Map not available")
		params["LocationLink"] = link
		params["MapsLink"] = link

		parts = append(parts, s.texts.ResolveLenient(userID, format.itemKey, params, "N/A"))
	}

	return strings.Join(parts, "")
}

// FindNearbyPlace renders a maps search reply for a free-text query
// around the given origin.
func (s *LocalInfoService) FindNearbyPlace(lat, lon float64, query, userID string) string {
	display := titleCaseWords(strings.ReplaceAll(query, "_", " "))

	link := EmbedAnchor(s.maps.SearchLink(query+" in Tiruchendur"), "View on Map", "Map not available")

	intro := s.texts.Resolve(userID, "nearest_place_intro", map[string]string{
		"place_type_display_name": display,
	})
	details := s.texts.Resolve(userID, "place_details_maps", map[string]string{
		"name":     "Results for " + display,
		"address":  "Click the link below to see locations on the map.",
		"maps_url": link,
	})

	return intro + details
}

// stripMenuNumber drops the "3. " menu prefix from an option label so
// it reads as a plain category name.
func stripMenuNumber(label string) string {
	if idx := strings.Index(label, ". "); idx >= 0 {
		return label[idx+2:]
	}
	return label
}

func titleCaseWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}
