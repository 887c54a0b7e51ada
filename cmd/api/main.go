package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stock-ou-api/internal/application/auth"
	"github.com/jhoicas/stock-ou-api/internal/application/stockaccount"
	"github.com/jhoicas/stock-ou-api/internal/application/usecase"
	"github.com/jhoicas/stock-ou-api/internal/infrastructure/events"
	infrapdf "github.com/jhoicas/stock-ou-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-ou-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stock-ou-api/internal/interfaces/http"
	"github.com/jhoicas/stock-ou-api/pkg/config"
	"github.com/jhoicas/stock-ou-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	ouRepo := postgres.NewOperatingUnitRepository(pool)
	repos := postgres.NewRepos(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Eventos de asientos contabilizados: Kafka si hay brokers, si no se descartan.
	var publisher stockaccount.EventPublisher = events.NoopPublisher{}
	if cfg.Kafka.Enabled() {
		kp := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() {
			if err := kp.Close(); err != nil {
				log.Error().Err(err).Msg("cerrar writer de Kafka")
			}
		}()
		publisher = kp
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("publicación de asientos habilitada")
	}

	actionDoneUC := stockaccount.NewActionDoneUseCase(txRunner, publisher, log)
	previewUC := stockaccount.NewPreviewLinesUseCase(repos)
	accountMoveUC := stockaccount.NewAccountMoveUseCase(repos.AccountMoves, companyRepo, infrapdf.NewMarotoPDFGenerator())

	ouUC := usecase.NewOperatingUnitUseCase(ouRepo)
	warehouseUC := usecase.NewWarehouseUseCase(repos.Warehouses, ouRepo, repos.PickingTypes)
	lotUC := usecase.NewLotUseCase(postgres.NewLotRepository(pool))
	moduleSvc := usecase.NewModuleService(companyRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs (solo si SWAGGER_FILE apunta a un swagger.json)
	if cfg.HTTP.SwaggerFile != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Stock OU API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ActionDone:      actionDoneUC,
		PreviewLines:    previewUC,
		AccountMoveUC:   accountMoveUC,
		OperatingUnitUC: ouUC,
		WarehouseUC:     warehouseUC,
		LotUC:           lotUC,
		ModuleService:   moduleSvc,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
