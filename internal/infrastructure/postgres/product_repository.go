package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ou-api/internal/domain"
	"github.com/jhoicas/stock-ou-api/internal/domain/entity"
	"github.com/jhoicas/stock-ou-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	const query = `
		SELECT id, company_id, category_id, sku, name, standard_price, price_diff_account_id, created_at, updated_at
		FROM products WHERE id = $1`
	var (
		p        entity.Product
		priceAcc *string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CompanyID, &p.CategoryID, &p.SKU, &p.Name, &p.StandardPrice, &priceAcc,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.PriceDiffAccountID = entity.OptionalIDFrom(priceAcc)
	return &p, nil
}

// UpdateStandardPrice actualiza el costo estándar del producto.
func (r *ProductRepo) UpdateStandardPrice(ctx context.Context, id string, price decimal.Decimal) error {
	const query = `UPDATE products SET standard_price = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, price)
	if err != nil {
		return fmt.Errorf("update product standard price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update product standard price %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// GetByID obtiene una categoría con su configuración contable.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.ProductCategory, error) {
	const query = `
		SELECT id, company_id, name, valuation, cost_method,
		       stock_journal_id, stock_input_account_id, stock_output_account_id,
		       stock_valuation_account_id, price_diff_account_id,
		       created_at, updated_at
		FROM product_categories WHERE id = $1`
	var (
		c                                     entity.ProductCategory
		journal, input, output, val, priceAcc *string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.CompanyID, &c.Name, &c.Valuation, &c.CostMethod,
		&journal, &input, &output, &val, &priceAcc,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product category: %w", err)
	}
	c.StockJournalID = entity.OptionalIDFrom(journal)
	c.StockInputAccountID = entity.OptionalIDFrom(input)
	c.StockOutputAccountID = entity.OptionalIDFrom(output)
	c.StockValuationAccountID = entity.OptionalIDFrom(val)
	c.PriceDiffAccountID = entity.OptionalIDFrom(priceAcc)
	return &c, nil
}
