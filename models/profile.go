package models

import "time"

// Profile holds non-sensitive user preferences. It is stored as plaintext
// JSON next to the vault and is never encrypted.
type Profile struct {
	DisplayName string            `json:"displayName,omitempty"`
	Email       string            `json:"email,omitempty"`
	Locale      string            `json:"locale,omitempty"`
	Theme       string            `json:"theme,omitempty"`
	HomeRegion  string            `json:"homeRegion,omitempty"`
	Preferences map[string]string `json:"preferences,omitempty"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
