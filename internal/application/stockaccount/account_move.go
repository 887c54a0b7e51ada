package stockaccount

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stock-ou-api/internal/application/dto"
	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/repository"
)

// AccountMoveUseCase consulta de asientos contables y su comprobante PDF.
type AccountMoveUseCase struct {
	accountMoves repository.AccountMoveRepository
	companies    repository.CompanyRepository
	pdf          AccountMovePDFGenerator
}

// NewAccountMoveUseCase construye el caso de uso. pdf puede ser nil si no se sirven comprobantes.
func NewAccountMoveUseCase(
	accountMoves repository.AccountMoveRepository,
	companies repository.CompanyRepository,
	pdf AccountMovePDFGenerator,
) *AccountMoveUseCase {
	return &AccountMoveUseCase{accountMoves: accountMoves, companies: companies, pdf: pdf}
}

// GetByID devuelve el asiento si pertenece a la empresa.
func (uc *AccountMoveUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.AccountMoveResponse, error) {
	am, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toAccountMoveResponse(am), nil
}

// GeneratePDF renderiza el comprobante del asiento. Devuelve los bytes y el nombre sugerido del archivo.
func (uc *AccountMoveUseCase) GeneratePDF(ctx context.Context, companyID, id string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("generador PDF no configurado")
	}
	am, err := uc.load(ctx, companyID, id)
	if err != nil {
		return nil, "", err
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, "", err
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.pdf.GenerateAccountMovePDF(ctx, am, company)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de %s: %w", am.Name, err)
	}
	return pdf, fileName(am), nil
}

func (uc *AccountMoveUseCase) load(ctx context.Context, companyID, id string) (*entity.AccountMove, error) {
	am, err := uc.accountMoves.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if am == nil {
		return nil, domain.ErrNotFound
	}
	if am.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return am, nil
}

func fileName(am *entity.AccountMove) string {
	name := am.Name
	if name == "" {
		name = am.ID
	}
	return strings.NewReplacer("/", "_", " ", "_").Replace(name) + ".pdf"
}
