package repository

import (
	"context"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// LocationRepository lectura de ubicaciones de stock.
type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Location, error)
}
