// Package model defines the records exchanged with the Edge Lab API.
package model

// System is a trading strategy family. Systems own variants via the
// strategy_id back-reference on Variant.
type System struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Asset       string `json:"asset"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Label returns the preferred human-readable name for display.
func (s System) Label() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Name
}

// CreateSystem is the payload for POST /systems.
type CreateSystem struct {
	Name        string `json:"name" validate:"required"`
	DisplayName string `json:"display_name" validate:"required"`
	Asset       string `json:"asset" validate:"required"`
	Description string `json:"description,omitempty"`
}
