package entity

// LocationUsage tipo de ubicación de inventario.
type LocationUsage string

const (
	UsageSupplier   LocationUsage = "supplier"
	UsageView       LocationUsage = "view"
	UsageInternal   LocationUsage = "internal"
	UsageCustomer   LocationUsage = "customer"
	UsageInventory  LocationUsage = "inventory"
	UsageProduction LocationUsage = "production"
	UsageTransit    LocationUsage = "transit"
)

// IsValid informa si el uso es uno de los conocidos.
func (u LocationUsage) IsValid() bool {
	switch u {
	case UsageSupplier, UsageView, UsageInternal, UsageCustomer,
		UsageInventory, UsageProduction, UsageTransit:
		return true
	}
	return false
}

// Location ubicación de stock. Las ubicaciones de proveedor/cliente pueden no tener empresa.
type Location struct {
	ID              string
	CompanyID       OptionalID
	OperatingUnitID OptionalID
	Name            string
	Usage           LocationUsage
}

// ShouldBeValued: el stock en esta ubicación forma parte de la valoración de la empresa.
func (l Location) ShouldBeValued() bool {
	return l.Usage == UsageInternal || (l.Usage == UsageTransit && l.CompanyID.IsSet())
}

// IsInternalOrTransit ubicaciones entre las que se permite un traslado entre unidades operativas.
func (l Location) IsInternalOrTransit() bool {
	return l.Usage == UsageInternal || l.Usage == UsageTransit
}
