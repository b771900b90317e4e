package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/facturacion-api/docs"
	"github.com/jhoicas/facturacion-api/internal/application/analytics"
	"github.com/jhoicas/facturacion-api/internal/application/auth"
	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/application/ports"
	"github.com/jhoicas/facturacion-api/internal/application/tenant"
	"github.com/jhoicas/facturacion-api/internal/application/usecase"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/cache"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/mail"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/facturacion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/facturacion-api/internal/interfaces/http"
	"github.com/jhoicas/facturacion-api/pkg/config"
	"github.com/jhoicas/facturacion-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title                       Facturación API
// @version                     1.0
// @description                 API de facturación multiempresa: usuarios, empresas, clientes, ítems y facturas.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	// Importes como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()

	// ── Almacén ───────────────────────────────────────────────────────────────
	var (
		store    repository.Store
		txRunner repository.TxRunner
	)
	switch cfg.DB.Driver {
	case "memory":
		mem := memory.NewStore()
		store, txRunner = mem, mem
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.Migrate {
			if err := postgres.RunMigrations(pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("migraciones aplicadas")
		}
		store, txRunner = postgres.NewStore(pool), postgres.NewTxRunner(pool)
	}

	// ── Caché de listados ─────────────────────────────────────────────────────
	var listCache ports.ListCache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, caché deshabilitada")
		} else {
			defer rc.Close()
			listCache = rc
			log.Info().Str("addr", cfg.Redis.Addr).Msg("caché redis habilitada")
		}
	}

	// ── Casos de uso ──────────────────────────────────────────────────────────
	scope := tenant.NewScope(store, listCache, log.Component("tenant"))
	mailer := mail.New(cfg.Mail, log.Component("mail"))

	authUC := auth.NewAuthUseCase(store.Users(), mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auth.Links{
		VerifyEmailURL:   cfg.Mail.VerifyEmailURL,
		ResetPasswordURL: cfg.Mail.ResetPasswordURL,
	}, log.Component("auth"))
	companyUC := usecase.NewCompanyUseCase(scope, txRunner)
	itemUC := usecase.NewItemUseCase(scope)
	customerUC := billing.NewCustomerUseCase(scope)
	invoiceUC := billing.NewInvoiceUseCase(scope, txRunner)
	documentUC := billing.NewDocumentUseCase(invoiceUC, infrapdf.NewMarotoPDFGenerator(), xmlexport.NewRenderer())
	reportUC := analytics.NewReportUseCase(scope)

	// ── HTTP ──────────────────────────────────────────────────────────────────
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.HTTP.CORSOrigin,
		AllowHeaders:     "Accept, Content-Type, Authorization",
		AllowMethods:     "GET,HEAD,PUT,PATCH,POST,DELETE,OPTIONS",
		AllowCredentials: cfg.HTTP.CORSOrigin != "*",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Facturación API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  companyUC,
		ItemUC:     itemUC,
		CustomerUC: customerUC,
		InvoiceUC:  invoiceUC,
		DocumentUC: documentUC,
		ReportUC:   reportUC,
		Metrics:    httpRouter.NewMetrics("facturacion"),
		JWTSecret:  cfg.JWT.Secret,
		AppName:    cfg.App.Name,
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
	authUC.Wait()

	log.Info().Msg("aplicación detenida")
}
