package dto

import "time"

// AddressDTO dirección postal de una bodega.
type AddressDTO struct {
	Street  string `json:"street" validate:"omitempty,max=200"`
	Street2 string `json:"street2" validate:"omitempty,max=200"`
	City    string `json:"city" validate:"omitempty,max=100"`
	State   string `json:"state" validate:"omitempty,max=100"`
	Zip     string `json:"zip" validate:"omitempty,max=20"`
	Country string `json:"country" validate:"omitempty,max=100"`
}

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Code            string      `json:"code" validate:"required,min=1,max=10"`
	Name            string      `json:"name" validate:"required,min=1,max=200"`
	OperatingUnitID *string     `json:"operating_unit_id" validate:"omitempty,uuid"`
	Address         *AddressDTO `json:"address"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega.
type UpdateWarehouseRequest struct {
	Name            *string     `json:"name" validate:"omitempty,min=1,max=200"`
	OperatingUnitID *string     `json:"operating_unit_id" validate:"omitempty,uuid"`
	Address         *AddressDTO `json:"address"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID              string     `json:"id"`
	CompanyID       string     `json:"company_id"`
	OperatingUnitID *string    `json:"operating_unit_id"`
	Code            string     `json:"code"`
	Name            string     `json:"name"`
	Address         AddressDTO `json:"address"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// PickingTypeAddressResponse dirección de la bodega de un tipo de operación.
type PickingTypeAddressResponse struct {
	PickingTypeID string     `json:"picking_type_id"`
	WarehouseID   *string    `json:"warehouse_id"`
	Address       AddressDTO `json:"address"`
	Lines         []string   `json:"lines"`
}
