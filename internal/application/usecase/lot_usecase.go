package usecase

import (
	"context"

	"github.com/jhoicas/stock-ou-api/internal/application/dto"
	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/repository"
)

// LotUseCase consulta de lotes disponibles por ubicación.
type LotUseCase struct {
	repo repository.LotRepository
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(repo repository.LotRepository) *LotUseCase {
	return &LotUseCase{repo: repo}
}

// ListForLocation lotes del producto con cantidad positiva en la ubicación.
func (uc *LotUseCase) ListForLocation(ctx context.Context, companyID, productID, locationID string) ([]dto.LotResponse, error) {
	if productID == "" || locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	lots, err := uc.repo.ListAvailableInLocation(ctx, companyID, productID, locationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		if !l.Quantity.IsPositive() {
			continue
		}
		out = append(out, dto.LotResponse{
			ID:         l.ID,
			ProductID:  l.ProductID,
			Name:       l.Name,
			LocationID: l.LocationID,
			Quantity:   l.Quantity,
		})
	}
	return out, nil
}
