package models

import "time"

// Override is a persisted key/value pair pinning a configuration value
// across process restarts.
type Override struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
