package repository

import (
	"context"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// LotRepository consultas de lotes.
type LotRepository interface {
	// ListAvailableInLocation lotes del producto con cantidad positiva en la ubicación.
	ListAvailableInLocation(ctx context.Context, companyID, productID, locationID string) ([]*entity.LotAvailability, error)
}
