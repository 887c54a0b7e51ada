package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-ou-api/internal/application/dto"
	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/repository"
)

// OperatingUnitUseCase alta y consulta de unidades operativas.
type OperatingUnitUseCase struct {
	repo repository.OperatingUnitRepository
}

// NewOperatingUnitUseCase construye el caso de uso.
func NewOperatingUnitUseCase(repo repository.OperatingUnitRepository) *OperatingUnitUseCase {
	return &OperatingUnitUseCase{repo: repo}
}

// Create crea una unidad operativa. El código es único por empresa (ErrDuplicate).
func (uc *OperatingUnitUseCase) Create(ctx context.Context, companyID string, in dto.CreateOperatingUnitRequest) (*dto.OperatingUnitResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCompanyAndCode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	ou := &entity.OperatingUnit{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Code:      code,
		Name:      strings.TrimSpace(in.Name),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, ou); err != nil {
		return nil, err
	}
	return toOperatingUnitResponse(ou), nil
}

// GetByID obtiene una unidad operativa de la empresa.
func (uc *OperatingUnitUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.OperatingUnitResponse, error) {
	ou, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ou == nil {
		return nil, domain.ErrNotFound
	}
	if ou.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toOperatingUnitResponse(ou), nil
}

// List lista las unidades operativas de la empresa.
func (uc *OperatingUnitUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.OperatingUnitListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OperatingUnitResponse, 0, len(list))
	for _, ou := range list {
		items = append(items, *toOperatingUnitResponse(ou))
	}
	return &dto.OperatingUnitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toOperatingUnitResponse(ou *entity.OperatingUnit) *dto.OperatingUnitResponse {
	return &dto.OperatingUnitResponse{
		ID:        ou.ID,
		CompanyID: ou.CompanyID,
		Code:      ou.Code,
		Name:      ou.Name,
		Active:    ou.Active,
		CreatedAt: ou.CreatedAt,
		UpdatedAt: ou.UpdatedAt,
	}
}
