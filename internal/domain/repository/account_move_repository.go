package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// AccountMoveRepository persistencia de asientos contables y sus apuntes.
type AccountMoveRepository interface {
	// Create inserta el asiento con todos sus apuntes.
	Create(ctx context.Context, move *entity.AccountMove) error
	// GetByID devuelve el asiento con sus apuntes, o nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.AccountMove, error)
	// NextName siguiente número del diario para el año de date (p. ej. "STJ/2024/00012").
	NextName(ctx context.Context, journalID string, date time.Time) (string, error)
}
