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

// WarehouseUseCase casos de uso CRUD para bodegas y dirección de tipos de operación.
type WarehouseUseCase struct {
	repo         repository.WarehouseRepository
	ouRepo       repository.OperatingUnitRepository
	pickingTypes repository.PickingTypeRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(
	repo repository.WarehouseRepository,
	ouRepo repository.OperatingUnitRepository,
	pickingTypes repository.PickingTypeRepository,
) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, ouRepo: ouRepo, pickingTypes: pickingTypes}
}

// Create crea una nueva bodega. La unidad operativa, si viene, debe ser de la empresa.
func (uc *WarehouseUseCase) Create(ctx context.Context, companyID string, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	ou, err := uc.operatingUnit(ctx, companyID, in.OperatingUnitID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		OperatingUnitID: ou,
		Code:            strings.ToUpper(strings.TrimSpace(in.Code)),
		Name:            in.Name,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if in.Address != nil {
		warehouse.Address = fromAddressDTO(*in.Address)
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega de la empresa.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Update actualiza nombre, unidad operativa y dirección.
func (uc *WarehouseUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	if in.OperatingUnitID != nil {
		ou, err := uc.operatingUnit(ctx, companyID, in.OperatingUnitID)
		if err != nil {
			return nil, err
		}
		warehouse.OperatingUnitID = ou
	}
	if in.Address != nil {
		warehouse.Address = fromAddressDTO(*in.Address)
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List lista bodegas por empresa con paginación.
func (uc *WarehouseUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una bodega de la empresa.
func (uc *WarehouseUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.load(ctx, companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// PickingTypeAddress dirección de la bodega del tipo de operación. Un tipo sin bodega
// (dropship) devuelve una dirección vacía.
func (uc *WarehouseUseCase) PickingTypeAddress(ctx context.Context, companyID, pickingTypeID string) (*dto.PickingTypeAddressResponse, error) {
	pt, err := uc.pickingTypes.GetByID(ctx, pickingTypeID)
	if err != nil {
		return nil, err
	}
	if pt == nil {
		return nil, domain.ErrNotFound
	}
	if pt.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	resp := &dto.PickingTypeAddressResponse{PickingTypeID: pt.ID, Lines: []string{}}
	warehouseID, ok := pt.WarehouseID.Value()
	if !ok {
		return resp, nil
	}
	warehouse, err := uc.load(ctx, companyID, warehouseID)
	if err != nil {
		return nil, err
	}
	resp.WarehouseID = &warehouse.ID
	resp.Address = toAddressDTO(warehouse.Address)
	resp.Lines = warehouse.Address.Lines()
	return resp, nil
}

func (uc *WarehouseUseCase) load(ctx context.Context, companyID, id string) (*entity.Warehouse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if warehouse.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return warehouse, nil
}

// operatingUnit valida que la unidad operativa exista y sea de la empresa. nil o "" la quita.
func (uc *WarehouseUseCase) operatingUnit(ctx context.Context, companyID string, id *string) (entity.OptionalID, error) {
	ouID := entity.OptionalIDFrom(id)
	value, ok := ouID.Value()
	if !ok {
		return entity.NoID, nil
	}
	ou, err := uc.ouRepo.GetByID(ctx, value)
	if err != nil {
		return entity.NoID, err
	}
	if ou == nil || ou.CompanyID != companyID {
		return entity.NoID, domain.ErrInvalidInput
	}
	return ouID, nil
}

func fromAddressDTO(a dto.AddressDTO) entity.PostalAddress {
	return entity.PostalAddress{
		Street:  strings.TrimSpace(a.Street),
		Street2: strings.TrimSpace(a.Street2),
		City:    strings.TrimSpace(a.City),
		State:   strings.TrimSpace(a.State),
		Zip:     strings.TrimSpace(a.Zip),
		Country: strings.TrimSpace(a.Country),
	}
}

func toAddressDTO(a entity.PostalAddress) dto.AddressDTO {
	return dto.AddressDTO{
		Street:  a.Street,
		Street2: a.Street2,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Country: a.Country,
	}
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:              w.ID,
		CompanyID:       w.CompanyID,
		OperatingUnitID: w.OperatingUnitID.Ptr(),
		Code:            w.Code,
		Name:            w.Name,
		Address:         toAddressDTO(w.Address),
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}
