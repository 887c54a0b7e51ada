package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ou-api/internal/application/usecase"
	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
)

func TestModuleService_Activate(t *testing.T) {
	repo := &memCompanies{modules: map[string]*entity.CompanyModule{}}
	svc := usecase.NewModuleService(repo)
	ctx := context.Background()

	resp, err := svc.Activate(ctx, companyID, entity.ModuleStockAccountOperatingUnit)
	require.NoError(t, err)
	assert.True(t, resp.Active)

	active, err := svc.HasActiveModule(ctx, companyID, entity.ModuleStockAccountOperatingUnit)
	require.NoError(t, err)
	assert.True(t, active)

	_, err = svc.Activate(ctx, companyID, entity.ModuleStockFilterProdlotQty)
	assert.ErrorIs(t, err, domain.ErrModuleNotInstallable)
	assert.True(t, domain.IsUserError(err))

	_, err = svc.Activate(ctx, companyID, "sale_stock")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.HasActiveModule(ctx, "", entity.ModuleStockWarehouseAddress)
	assert.Error(t, err)
}

func TestModuleService_List(t *testing.T) {
	repo := &memCompanies{modules: map[string]*entity.CompanyModule{}}
	svc := usecase.NewModuleService(repo)
	ctx := context.Background()
	_, err := svc.Activate(ctx, companyID, entity.ModuleStockWarehouseAddress)
	require.NoError(t, err)

	list, err := svc.List(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, list, len(entity.ModuleCatalogue))

	byName := map[string]bool{}
	installable := map[string]bool{}
	for _, m := range list {
		byName[m.Name] = m.Active
		installable[m.Name] = m.Installable
	}
	assert.True(t, byName[entity.ModuleStockWarehouseAddress])
	assert.False(t, byName[entity.ModuleStockAccountOperatingUnit])
	assert.False(t, installable[entity.ModuleStockFilterProdlotQty])
}
