package entity

// Códigos de tipo de operación.
const (
	PickingTypeIncoming = "incoming"
	PickingTypeOutgoing = "outgoing"
	PickingTypeInternal = "internal"
)

// PickingType tipo de operación (recepción, entrega, traslado interno) ligado a una bodega.
type PickingType struct {
	ID          string
	CompanyID   string
	WarehouseID OptionalID // vacío en dropship
	Code        string
	Name        string
}

// Picking transferencia que agrupa movimientos de stock.
type Picking struct {
	ID              string
	CompanyID       string
	Name            string // referencia, ej. WH/IN/00012
	PickingTypeID   string
	OperatingUnitID OptionalID
	PartnerID       OptionalID
	State           string
}
