package repository

import (
	"context"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para ProductCategory (DIP).
type CategoryRepository interface {
	GetByID(ctx context.Context, id string) (*entity.ProductCategory, error)
}
