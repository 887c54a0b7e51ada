package dto

import "time"

// ModuleResponse addon del catálogo y su estado en la empresa.
type ModuleResponse struct {
	Name        string     `json:"name"`
	Summary     string     `json:"summary"`
	Depends     []string   `json:"depends"`
	Installable bool       `json:"installable"`
	Active      bool       `json:"active"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}
