// Comando migrate aplica el esquema embebido sobre la base configurada.
//
// Uso:
//
//	go run ./cmd/migrate
//
// Lee .env del directorio actual si existe; las variables de entorno tienen prioridad.
package main

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/jhoicas/stock-ou-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-ou-api/pkg/config"
	"github.com/jhoicas/stock-ou-api/pkg/logger"
)

func main() {
	// godotenv no pisa variables ya definidas en el entorno.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer conn.Close(context.Background())

	if err := postgres.RegisterTypes(ctx, conn); err != nil {
		log.Fatal().Err(err).Msg("registrar tipos")
	}
	if err := postgres.ApplySchema(ctx, conn); err != nil {
		log.Fatal().Err(err).Msg("migración")
	}
	log.Info().Str("db", cfg.DB.DBName).Msg("esquema aplicado")
}
