package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-ou-api/internal/application/dto"
	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/repository"
)

// ModuleService verifica qué addons tiene activos una empresa y gestiona su activación.
// Es el único punto de la aplicación que conoce la lógica de activación de módulos.
type ModuleService struct {
	companyRepo repository.CompanyRepository
}

// NewModuleService construye el servicio de módulos.
func NewModuleService(companyRepo repository.CompanyRepository) *ModuleService {
	return &ModuleService{companyRepo: companyRepo}
}

// HasActiveModule informa si la empresa tiene el módulo activo y sin vencer.
// Devuelve false (sin error) si la empresa no tiene el módulo contratado.
// Devuelve error solo ante fallos de infraestructura (DB caída, timeout, etc.).
func (s *ModuleService) HasActiveModule(ctx context.Context, companyID, moduleName string) (bool, error) {
	if companyID == "" || moduleName == "" {
		return false, fmt.Errorf("module: companyID y moduleName son obligatorios")
	}
	return s.companyRepo.HasActiveModule(ctx, companyID, moduleName)
}

// List catálogo de addons con su estado en la empresa.
func (s *ModuleService) List(ctx context.Context, companyID string) ([]dto.ModuleResponse, error) {
	active, err := s.companyRepo.ListModules(ctx, companyID)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*entity.CompanyModule, len(active))
	for _, m := range active {
		byName[m.ModuleName] = m
	}
	now := time.Now()
	out := make([]dto.ModuleResponse, 0, len(entity.ModuleCatalogue))
	for _, info := range entity.ModuleCatalogue {
		resp := dto.ModuleResponse{
			Name:        info.Name,
			Summary:     info.Summary,
			Depends:     info.Depends,
			Installable: info.Installable,
		}
		if cm, ok := byName[info.Name]; ok {
			resp.Active = cm.IsActive && (cm.ExpiresAt == nil || cm.ExpiresAt.After(now))
			activated := cm.ActivatedAt
			resp.ActivatedAt = &activated
			resp.ExpiresAt = cm.ExpiresAt
		}
		out = append(out, resp)
	}
	return out, nil
}

// Activate activa un addon del catálogo para la empresa.
// Un addon marcado como no instalable devuelve ErrModuleNotInstallable.
func (s *ModuleService) Activate(ctx context.Context, companyID, moduleName string) (*dto.ModuleResponse, error) {
	info, ok := entity.FindModule(moduleName)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !info.Installable {
		return nil, domain.NewUserError(domain.ErrModuleNotInstallable, moduleName)
	}
	now := time.Now()
	cm := &entity.CompanyModule{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		ModuleName:  info.Name,
		IsActive:    true,
		ActivatedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.companyRepo.UpsertModule(ctx, cm); err != nil {
		return nil, err
	}
	return &dto.ModuleResponse{
		Name:        info.Name,
		Summary:     info.Summary,
		Depends:     info.Depends,
		Installable: info.Installable,
		Active:      true,
		ActivatedAt: &now,
	}, nil
}
