package dto

import "time"

// CreateOperatingUnitRequest entrada para crear una unidad operativa.
type CreateOperatingUnitRequest struct {
	Code string `json:"code" validate:"required,min=1,max=20"`
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// OperatingUnitResponse salida de una unidad operativa.
type OperatingUnitResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OperatingUnitListResponse lista paginada de unidades operativas.
type OperatingUnitListResponse struct {
	Items []OperatingUnitResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
