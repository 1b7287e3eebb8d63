package models

// Button is a quick-reply choice shown during language selection.
type Button struct {
	Text    string `json:"text"`
	Payload string `json:"payload"`
}

// Response is the payload returned for every processed message.
// Photos are relative asset paths; Buttons are populated only during
// language selection.
type Response struct {
	Text    string   `json:"text"`
	Photos  []string `json:"photos"`
	Buttons []Button `json:"buttons"`
}

// NewResponse builds a Response with non-nil slices so the JSON layer
// always emits arrays.
func NewResponse(text string) *Response {
	return &Response{
		Text:    text,
		Photos:  []string{},
		Buttons: []Button{},
	}
}
