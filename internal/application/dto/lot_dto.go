package dto

import "github.com/shopspring/decimal"

// ListLotsRequest filtros de lotes disponibles.
type ListLotsRequest struct {
	ProductID  string `query:"product_id" validate:"required,uuid"`
	LocationID string `query:"location_id" validate:"required,uuid"`
}

// LotResponse lote con su cantidad en la ubicación consultada.
type LotResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	LocationID string          `json:"location_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}
