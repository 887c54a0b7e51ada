package entity

import "time"

// Company representa una empresa (tenant). Las unidades operativas cuelgan de ella.
type Company struct {
	ID        string
	Name      string
	NIT       string // NIT colombiano (con o sin dígito de verificación)
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Addons disponibles (deben coincidir con el CHECK de la tabla company_modules).
const (
	ModuleStockAccountOperatingUnit = "stock_account_operating_unit"
	ModuleStockWarehouseAddress     = "stock_warehouse_address"
	ModuleStockFilterProdlotQty     = "stock_filter_prodlot_qty"
)

// ModuleInfo entrada del catálogo de addons.
type ModuleInfo struct {
	Name        string
	Summary     string
	Depends     []string
	Installable bool
}

// ModuleCatalogue addons conocidos por la aplicación.
var ModuleCatalogue = []ModuleInfo{
	{
		Name:        ModuleStockAccountOperatingUnit,
		Summary:     "Asientos de valoración de stock por unidad operativa",
		Depends:     []string{"stock_account", "operating_unit"},
		Installable: true,
	},
	{
		Name:        ModuleStockWarehouseAddress,
		Summary:     "Dirección postal en bodegas",
		Depends:     []string{"stock"},
		Installable: true,
	},
	{
		Name:        ModuleStockFilterProdlotQty,
		Summary:     "Filtra lotes por disponibilidad en la ubicación",
		Depends:     []string{"mrp"},
		Installable: false,
	},
}

// FindModule busca un addon en el catálogo.
func FindModule(name string) (ModuleInfo, bool) {
	for _, m := range ModuleCatalogue {
		if m.Name == name {
			return m, true
		}
	}
	return ModuleInfo{}, false
}

// CompanyModule representa la activación de un addon en una empresa.
type CompanyModule struct {
	ID          string
	CompanyID   string
	ModuleName  string    // ver constantes Module*
	IsActive    bool
	ActivatedAt time.Time
	ExpiresAt   *time.Time // nil = sin vencimiento
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
