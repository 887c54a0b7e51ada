package repository

import (
	"context"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByNIT(ctx context.Context, nit string) (*entity.Company, error)

	// HasActiveModule informa si la empresa tiene el addon activo y sin vencer.
	HasActiveModule(ctx context.Context, companyID, moduleName string) (bool, error)
	// ListModules devuelve las activaciones de addons de la empresa.
	ListModules(ctx context.Context, companyID string) ([]*entity.CompanyModule, error)
	// UpsertModule activa (o reactiva) un addon para la empresa.
	UpsertModule(ctx context.Context, module *entity.CompanyModule) error
}
