package repository

import (
	"context"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// OperatingUnitRepository define el puerto de persistencia para unidades operativas.
type OperatingUnitRepository interface {
	Create(ctx context.Context, ou *entity.OperatingUnit) error
	GetByID(ctx context.Context, id string) (*entity.OperatingUnit, error)
	GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.OperatingUnit, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.OperatingUnit, error)
}
