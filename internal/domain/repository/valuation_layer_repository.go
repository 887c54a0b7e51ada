package repository

import (
	"context"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// ValuationLayerRepository persistencia de capas de valoración.
type ValuationLayerRepository interface {
	Create(ctx context.Context, layer *entity.StockValuationLayer) error
	ListByMove(ctx context.Context, stockMoveID string) ([]*entity.StockValuationLayer, error)
}
