package models

import "gorm.io/gorm"

// Feedback is a free-text feedback message left by a visitor.
type Feedback struct {
	gorm.Model
	UserID   string `json:"user_id"`
	Language string `json:"language"`
	Message  string `json:"message"`
}
