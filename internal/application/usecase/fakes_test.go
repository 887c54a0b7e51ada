package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

type memOperatingUnits struct {
	items map[string]*entity.OperatingUnit
}

func newMemOperatingUnits(units ...*entity.OperatingUnit) *memOperatingUnits {
	r := &memOperatingUnits{items: map[string]*entity.OperatingUnit{}}
	for _, ou := range units {
		r.items[ou.ID] = ou
	}
	return r
}

func (r *memOperatingUnits) Create(_ context.Context, ou *entity.OperatingUnit) error {
	r.items[ou.ID] = ou
	return nil
}

func (r *memOperatingUnits) GetByID(_ context.Context, id string) (*entity.OperatingUnit, error) {
	return r.items[id], nil
}

func (r *memOperatingUnits) GetByCompanyAndCode(_ context.Context, companyID, code string) (*entity.OperatingUnit, error) {
	for _, ou := range r.items {
		if ou.CompanyID == companyID && ou.Code == code {
			return ou, nil
		}
	}
	return nil, nil
}

func (r *memOperatingUnits) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.OperatingUnit, error) {
	var out []*entity.OperatingUnit
	for _, ou := range r.items {
		if ou.CompanyID == companyID {
			out = append(out, ou)
		}
	}
	return out, nil
}

type memWarehouses struct {
	items map[string]*entity.Warehouse
}

func (r *memWarehouses) Create(_ context.Context, w *entity.Warehouse) error {
	r.items[w.ID] = w
	return nil
}

func (r *memWarehouses) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	w, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *memWarehouses) Update(_ context.Context, w *entity.Warehouse) error {
	r.items[w.ID] = w
	return nil
}

func (r *memWarehouses) ListByCompany(_ context.Context, companyID string, _, _ int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.items {
		if w.CompanyID == companyID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *memWarehouses) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type memPickingTypes map[string]*entity.PickingType

func (r memPickingTypes) GetByID(_ context.Context, id string) (*entity.PickingType, error) {
	return r[id], nil
}

type memLots []*entity.LotAvailability

func (r memLots) ListAvailableInLocation(_ context.Context, companyID, productID, locationID string) ([]*entity.LotAvailability, error) {
	var out []*entity.LotAvailability
	for _, l := range r {
		if l.CompanyID == companyID && l.ProductID == productID && l.LocationID == locationID {
			out = append(out, l)
		}
	}
	return out, nil
}

// memCompanies solo implementa lo que usa ModuleService.
type memCompanies struct {
	modules map[string]*entity.CompanyModule
}

func (r *memCompanies) Create(context.Context, *entity.Company) error { return nil }

func (r *memCompanies) GetByID(context.Context, string) (*entity.Company, error) { return nil, nil }

func (r *memCompanies) GetByNIT(context.Context, string) (*entity.Company, error) { return nil, nil }

func (r *memCompanies) HasActiveModule(_ context.Context, companyID, moduleName string) (bool, error) {
	m, ok := r.modules[companyID+"/"+moduleName]
	if !ok {
		return false, nil
	}
	return m.IsActive && (m.ExpiresAt == nil || m.ExpiresAt.After(time.Now())), nil
}

func (r *memCompanies) ListModules(_ context.Context, companyID string) ([]*entity.CompanyModule, error) {
	var out []*entity.CompanyModule
	for _, m := range r.modules {
		if m.CompanyID == companyID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memCompanies) UpsertModule(_ context.Context, m *entity.CompanyModule) error {
	r.modules[m.CompanyID+"/"+m.ModuleName] = m
	return nil
}
