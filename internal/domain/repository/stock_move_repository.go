package repository

import (
	"context"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// StockMoveRepository define el puerto de persistencia para movimientos de stock (DIP).
type StockMoveRepository interface {
	Create(ctx context.Context, move *entity.StockMove) error
	GetByID(ctx context.Context, id string) (*entity.StockMove, error)
	// GetForUpdate obtiene el movimiento de la empresa y bloquea la fila (SELECT FOR UPDATE).
	// Devuelve nil, nil si no existe.
	GetForUpdate(ctx context.Context, companyID, id string) (*entity.StockMove, error)
	// Update persiste cantidades y estado.
	Update(ctx context.Context, move *entity.StockMove) error
}
