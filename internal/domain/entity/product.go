package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto almacenable. StandardPrice es el costo estándar usado para valorar.
type Product struct {
	ID                 string
	CompanyID          string
	CategoryID         string
	SKU                string
	Name               string
	StandardPrice      decimal.Decimal
	PriceDiffAccountID OptionalID // si vacío se usa el de la categoría
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DisplayName nombre con referencia interna, ej. "[CAB-01] Cable UTP".
func (p Product) DisplayName() string {
	if p.SKU == "" {
		return p.Name
	}
	return "[" + p.SKU + "] " + p.Name
}
