package entity

import "time"

// OperatingUnit partición organizativa dentro de una empresa (sucursal, línea de negocio).
// Ubicaciones, pickings y apuntes contables se etiquetan con ella.
type OperatingUnit struct {
	ID        string
	CompanyID string
	Code      string // código corto único por empresa
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
