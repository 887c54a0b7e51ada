package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/repository"
)

var _ repository.OperatingUnitRepository = (*OperatingUnitRepo)(nil)

const operatingUnitColumns = `id, company_id, code, name, active, created_at, updated_at`

// OperatingUnitRepo implementación de OperatingUnitRepository sobre PostgreSQL.
type OperatingUnitRepo struct {
	q Querier
}

// NewOperatingUnitRepository construye el adaptador.
func NewOperatingUnitRepository(q Querier) *OperatingUnitRepo {
	return &OperatingUnitRepo{q: q}
}

// Create persiste una unidad operativa. Código repetido en la empresa → ErrDuplicate.
func (r *OperatingUnitRepo) Create(ctx context.Context, ou *entity.OperatingUnit) error {
	const query = `
		INSERT INTO operating_units (` + operatingUnitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, ou.ID, ou.CompanyID, ou.Code, ou.Name, ou.Active, ou.CreatedAt, ou.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert operating unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad operativa por ID.
func (r *OperatingUnitRepo) GetByID(ctx context.Context, id string) (*entity.OperatingUnit, error) {
	const query = `SELECT ` + operatingUnitColumns + ` FROM operating_units WHERE id = $1`
	ou, err := scanOperatingUnit(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operating unit: %w", err)
	}
	return ou, nil
}

// GetByCompanyAndCode busca por código dentro de la empresa.
func (r *OperatingUnitRepo) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.OperatingUnit, error) {
	const query = `SELECT ` + operatingUnitColumns + ` FROM operating_units WHERE company_id = $1 AND code = $2`
	ou, err := scanOperatingUnit(r.q.QueryRow(ctx, query, companyID, code))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operating unit by code: %w", err)
	}
	return ou, nil
}

// ListByCompany lista unidades operativas por empresa con paginación.
func (r *OperatingUnitRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.OperatingUnit, error) {
	const query = `
		SELECT ` + operatingUnitColumns + `
		FROM operating_units WHERE company_id = $1 ORDER BY code LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list operating units: %w", err)
	}
	defer rows.Close()
	var list []*entity.OperatingUnit
	for rows.Next() {
		ou, err := scanOperatingUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan operating unit: %w", err)
		}
		list = append(list, ou)
	}
	return list, rows.Err()
}

func scanOperatingUnit(row pgxScanner) (*entity.OperatingUnit, error) {
	var ou entity.OperatingUnit
	if err := row.Scan(&ou.ID, &ou.CompanyID, &ou.Code, &ou.Name, &ou.Active, &ou.CreatedAt, &ou.UpdatedAt); err != nil {
		return nil, err
	}
	return &ou, nil
}
