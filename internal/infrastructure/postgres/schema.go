package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

// Schema DDL completo de la base de datos.
//
//go:embed schema.sql
var Schema string

// ApplySchema ejecuta el DDL embebido. Las sentencias son idempotentes.
func ApplySchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
