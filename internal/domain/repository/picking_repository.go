package repository

import (
	"context"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// PickingRepository lectura de transferencias.
type PickingRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Picking, error)
}

// PickingTypeRepository lectura de tipos de operación.
type PickingTypeRepository interface {
	GetByID(ctx context.Context, id string) (*entity.PickingType, error)
}
