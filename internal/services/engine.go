package services

import (
	"log"
	"strings"

	"github.com/Narayanansankar/tirubot/internal/models"
	"github.com/Narayanansankar/tirubot/internal/storage"
)

// Input kinds accepted by ProcessInput.
const (
	InputKindStart = "start"
	InputKindText  = "text"
)

// exitKeyword ends the conversation from any state, case-insensitive.
const exitKeyword = "x"

// Photo assets attached to temple info details.
var (
	templeTimingsPhotos = []string{"assets/nadai_thirappu_neram.png", "assets/pooja_vivaram.png"}
	templeSevaPhotos    = []string{"assets/sevai_kattanam.png"}
)

// mainMenuCategories maps main menu choices to local info categories.
var mainMenuCategories = map[string]string{
	"3": models.CategoryHelpCentres,
	"4": models.CategoryFirstAid,
	"5": models.CategoryTempBusStands,
	"6": models.CategoryToilets,
	"7": models.CategoryAnnadhanam,
}

// Engine is the conversation state machine. It owns per-user session
// transitions and dispatches menu choices to the parking ranker, the
// local info formatter and the text provider.
type Engine struct {
	sessions  SessionStore
	texts     *TextProvider
	parking   *ParkingService
	localInfo *LocalInfoService
	store     storage.Store

	feedbackURL string
}

// NewEngine creates the conversation engine with its collaborators
// injected.
func NewEngine(sessions SessionStore, texts *TextProvider, parking *ParkingService, localInfo *LocalInfoService, store storage.Store, feedbackURL string) *Engine {
	return &Engine{
		sessions:    sessions,
		texts:       texts,
		parking:     parking,
		localInfo:   localInfo,
		store:       store,
		feedbackURL: feedbackURL,
	}
}

// ProcessInput handles one inbound message: load or create the user's
// session, transition its menu level and produce the response payload.
// Every failure degrades to a textual response.
func (e *Engine) ProcessInput(userID, kind, text, displayName string) *models.Response {
	session, exists := e.sessions.Get(userID)
	if kind == InputKindStart || !exists {
		session = e.sessions.Create(userID, displayName)
		return e.promptLanguage(session, true)
	}

	if session.MenuLevel == models.LevelLanguageSelect {
		return e.handleLanguageSelect(session, text)
	}

	input := strings.TrimSpace(text)
	if strings.EqualFold(input, exitKeyword) {
		lang := session.Language
		if lang == "" {
			lang = "en"
		}
		e.sessions.Delete(userID)
		return models.NewResponse(e.texts.Resolve(lang, "goodbye_message", nil))
	}

	switch session.MenuLevel {
	case models.LevelMainMenu:
		return e.handleMainMenu(session, input)
	case models.LevelTempleInfoMenu:
		return e.handleTempleInfoMenu(session, input)
	case models.LevelParkingAwaitingRoute:
		return e.handleParkingRoute(session, input)
	case models.LevelNearbySearch:
		return e.handleNearbySearch(session, input)
	default:
		return e.handleInvalidState(session)
	}
}

// SaveFeedback stores a visitor's free-text feedback message.
func (e *Engine) SaveFeedback(userID, message string) error {
	lang := ""
	if session, ok := e.sessions.Get(userID); ok {
		lang = session.Language
	}
	_, err := e.store.CreateFeedback(&models.Feedback{
		UserID:   userID,
		Language: lang,
		Message:  message,
	})
	return err
}

// promptLanguage moves the session to language selection and emits the
// welcome (on first contact) plus the language buttons. The prompt
// itself is always in the primary language since none is chosen yet.
func (e *Engine) promptLanguage(session *models.Session, isInitial bool) *models.Response {
	session.MenuLevel = models.LevelLanguageSelect

	text := ""
	if isInitial {
		name := session.DisplayName
		if name == "" {
			name = "Visitor"
		}
		text = e.texts.Resolve("en", "welcome_tiruchendur", map[string]string{"user_name": name}) + "\n"
	}
	text += e.texts.Resolve("en", "select_language_prompt", nil)

	response := models.NewResponse(text)
	for _, lang := range SupportedLanguages {
		response.Buttons = append(response.Buttons, models.Button{Text: lang.Name, Payload: lang.Code})
	}
	return response
}

func (e *Engine) handleLanguageSelect(session *models.Session, text string) *models.Response {
	choice := strings.ToLower(strings.TrimSpace(text))
	if !IsSupportedLanguage(choice) {
		return e.promptLanguage(session, false)
	}

	session.Language = choice
	session.MenuLevel = models.LevelMainMenu

	confirmation := e.texts.Resolve(session.UserID, "language_selected", map[string]string{
		"language_name": LanguageName(choice),
	})
	return models.NewResponse(confirmation + "\n\n" + e.texts.MenuText(models.LevelMainMenu, session.UserID))
}

func (e *Engine) handleMainMenu(session *models.Session, choice string) *models.Response {
	userID := session.UserID

	switch choice {
	case "1":
		session.MenuLevel = models.LevelParkingAwaitingRoute
		return models.NewResponse(e.texts.Resolve(userID, "parking_route_prompt", nil))

	case "2":
		session.MenuLevel = models.LevelTempleInfoMenu
		return models.NewResponse(e.texts.Resolve(userID, "temple_info_menu_prompt", nil))

	case "3", "4", "5", "6", "7":
		listing := e.localInfo.FormattedCategory(userID, mainMenuCategories[choice])
		return e.withMainMenu(userID, listing)

	case "8":
		return e.withMainMenu(userID, e.texts.Resolve(userID, "emergency_contacts_info", nil))

	case "9":
		session.MenuLevel = models.LevelNearbySearch
		return models.NewResponse(e.texts.Resolve(userID, "freestyle_query_prompt", nil))

	case "10":
		return e.promptLanguage(session, false)

	case "11":
		feedback := e.texts.Resolve(userID, "feedback_response", map[string]string{
			"feedback_link": e.feedbackURL,
		})
		return e.withMainMenu(userID, feedback)

	default:
		return e.handleInvalidState(session)
	}
}

func (e *Engine) handleTempleInfoMenu(session *models.Session, choice string) *models.Response {
	userID := session.UserID

	if choice == "0" {
		session.MenuLevel = models.LevelMainMenu
		return models.NewResponse(e.texts.MenuText(models.LevelMainMenu, userID))
	}

	var response *models.Response
	switch choice {
	case "1":
		response = models.NewResponse(e.texts.Resolve(userID, "temple_timings_details", nil))
		response.Photos = append(response.Photos, templeTimingsPhotos...)
	case "2":
		response = models.NewResponse(e.texts.Resolve(userID, "temple_dress_code_details", nil))
	case "3":
		response = models.NewResponse(e.texts.Resolve(userID, "temple_seva_details_intro", nil))
		response.Photos = append(response.Photos, templeSevaPhotos...)
	default:
		response = models.NewResponse(e.texts.Resolve(userID, "invalid_menu_option", nil))
	}

	response.Text += "\n\n" + e.texts.MenuText(models.LevelTempleInfoMenu, userID)
	return response
}

func (e *Engine) handleParkingRoute(session *models.Session, input string) *models.Response {
	session.MenuLevel = models.LevelMainMenu

	reply := e.parking.FindAvailableParking(TiruchendurLat, TiruchendurLon, session.UserID, resolveRoutePreference(input))
	return e.withMainMenu(session.UserID, reply)
}

func (e *Engine) handleNearbySearch(session *models.Session, query string) *models.Response {
	session.MenuLevel = models.LevelMainMenu

	reply := e.localInfo.FindNearbyPlace(TiruchendurLat, TiruchendurLon, query, session.UserID)
	return e.withMainMenu(session.UserID, reply)
}

// handleInvalidState recovers from an unrecognized choice or menu level
// by resetting to the main menu.
func (e *Engine) handleInvalidState(session *models.Session) *models.Response {
	if session.MenuLevel != models.LevelMainMenu {
		log.Printf("Resetting session %s from level %q to main menu", session.UserID, session.MenuLevel)
	}
	session.MenuLevel = models.LevelMainMenu
	return e.withMainMenu(session.UserID, e.texts.Resolve(session.UserID, "invalid_menu_option", nil))
}

func (e *Engine) withMainMenu(userID, text string) *models.Response {
	return models.NewResponse(text + "\n\n" + e.texts.MenuText(models.LevelMainMenu, userID))
}

// resolveRoutePreference maps the route prompt reply (number or name)
// to a route filter; anything unrecognized means "any".
func resolveRoutePreference(input string) string {
	choice := strings.ToLower(input)
	switch {
	case strings.Contains(choice, "1") || strings.Contains(choice, "tirunelveli"):
		return "tirunelveli"
	case strings.Contains(choice, "2") || strings.Contains(choice, "thoothukudi"):
		return "thoothukudi"
	case strings.Contains(choice, "3") || strings.Contains(choice, "nagercoil"):
		return "nagercoil"
	default:
		return "any"
	}
}
