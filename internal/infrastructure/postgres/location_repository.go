package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/repository"
)

var (
	_ repository.LocationRepository    = (*LocationRepo)(nil)
	_ repository.PickingRepository     = (*PickingRepo)(nil)
	_ repository.PickingTypeRepository = (*PickingTypeRepo)(nil)
)

// LocationRepo lectura de ubicaciones sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	const query = `
		SELECT id, company_id, operating_unit_id, name, usage
		FROM stock_locations WHERE id = $1`
	var (
		l           entity.Location
		company, ou *string
		usage       string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(&l.ID, &company, &ou, &l.Name, &usage)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	l.CompanyID = entity.OptionalIDFrom(company)
	l.OperatingUnitID = entity.OptionalIDFrom(ou)
	l.Usage = entity.LocationUsage(usage)
	return &l, nil
}

// PickingRepo lectura de transferencias sobre PostgreSQL.
type PickingRepo struct {
	q Querier
}

// NewPickingRepository construye el adaptador.
func NewPickingRepository(q Querier) *PickingRepo {
	return &PickingRepo{q: q}
}

// GetByID obtiene un picking por ID.
func (r *PickingRepo) GetByID(ctx context.Context, id string) (*entity.Picking, error) {
	const query = `
		SELECT id, company_id, name, picking_type_id, operating_unit_id, partner_id, state
		FROM pickings WHERE id = $1`
	var (
		p           entity.Picking
		ou, partner *string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.CompanyID, &p.Name, &p.PickingTypeID, &ou, &partner, &p.State)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get picking: %w", err)
	}
	p.OperatingUnitID = entity.OptionalIDFrom(ou)
	p.PartnerID = entity.OptionalIDFrom(partner)
	return &p, nil
}

// PickingTypeRepo lectura de tipos de operación sobre PostgreSQL.
type PickingTypeRepo struct {
	q Querier
}

// NewPickingTypeRepository construye el adaptador.
func NewPickingTypeRepository(q Querier) *PickingTypeRepo {
	return &PickingTypeRepo{q: q}
}

// GetByID obtiene un tipo de operación por ID.
func (r *PickingTypeRepo) GetByID(ctx context.Context, id string) (*entity.PickingType, error) {
	const query = `
		SELECT id, company_id, warehouse_id, code, name
		FROM picking_types WHERE id = $1`
	var (
		pt        entity.PickingType
		warehouse *string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(&pt.ID, &pt.CompanyID, &warehouse, &pt.Code, &pt.Name)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get picking type: %w", err)
	}
	pt.WarehouseID = entity.OptionalIDFrom(warehouse)
	return &pt, nil
}
