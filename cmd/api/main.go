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

	"github.com/jhoicas/Parqueadero-api/internal/application/auth"
	"github.com/jhoicas/Parqueadero-api/internal/application/ports"
	"github.com/jhoicas/Parqueadero-api/internal/application/usecase"
	"github.com/jhoicas/Parqueadero-api/internal/domain/billing"
	"github.com/jhoicas/Parqueadero-api/internal/domain/repository"
	"github.com/jhoicas/Parqueadero-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Parqueadero-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Parqueadero-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Parqueadero-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/Parqueadero-api/internal/interfaces/http"
	"github.com/jhoicas/Parqueadero-api/pkg/config"
	"github.com/jhoicas/Parqueadero-api/pkg/logger"
	"github.com/jhoicas/Parqueadero-api/pkg/money"
)

const swaggerFile = "./docs/swagger.json"

type repositories struct {
	categories repository.CategoryRepository
	sessions   repository.SessionRepository
	operators  repository.OperatorRepository
	close      func()
}

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

	ctx := context.Background()
	repos := openRepositories(ctx, cfg, log)
	defer repos.close()

	// Cache de categorías: opcional, sin REDIS_ADDR queda desactivado.
	var categoryCache ports.CategoryCache = ports.NopCategoryCache{}
	if cfg.Redis.Enabled() {
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, se continúa sin cache")
		} else {
			defer client.Close()
			categoryCache = infraredis.NewCategoryCache(client, cfg.Redis.CategoryTTL)
		}
	}

	formatter, err := money.NewFormatter(cfg.Billing.Locale, cfg.Billing.Currency)
	if err != nil {
		log.Fatal().Err(err).Msg("formato de moneda")
	}
	loc, err := cfg.Billing.Location()
	if err != nil {
		log.Fatal().Err(err).Str("tz", cfg.Billing.TimeZone).Msg("zona horaria")
	}
	policy := billing.Policy{GraceMinutes: cfg.Billing.GraceMinutes, MinMinutes: cfg.Billing.MinMinutes}

	categoryUC := usecase.NewCategoryUseCase(repos.categories, repos.sessions, categoryCache, log)
	sessionUC := usecase.NewSessionUseCase(repos.sessions, repos.categories, policy, formatter, loc, log)
	reportUC := usecase.NewShiftReportUseCase(repos.sessions, formatter, infrapdf.NewShiftReportGenerator(loc))
	deletionUC := usecase.NewDeletionUseCase(categoryUC, sessionUC, cfg.Billing.ConfirmTTL, log)
	authUC := auth.NewAuthUseCase(repos.operators, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Parqueadero API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":                "ok",
			"service":               cfg.App.Name,
			"pending_confirmations": deletionUC.Pending(),
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: categoryUC,
		SessionUC:  sessionUC,
		ReportUC:   reportUC,
		DeletionUC: deletionUC,
		JWTSecret:  cfg.JWT.Secret,
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

// openRepositories conecta PostgreSQL (aplicando migraciones) o, con DB_DRIVER=memory,
// usa repositorios en memoria que se pierden al reiniciar.
func openRepositories(ctx context.Context, cfg *config.Config, log *logger.Logger) repositories {
	if cfg.DB.Driver == "memory" {
		log.Warn().Msg("DB_DRIVER=memory: los datos no se persisten")
		sessions := memory.NewSessionRepo()
		return repositories{
			categories: memory.NewCategoryRepo(sessions),
			sessions:   sessions,
			operators:  memory.NewOperatorRepo(),
			close:      func() {},
		}
	}

	pool, dsn, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	if err := postgres.RunMigrations(dsn, cfg.DB.MigrationsPath, log.Component("migrations")); err != nil {
		pool.Close()
		log.Fatal().Err(err).Msg("migraciones")
	}
	return repositories{
		categories: postgres.NewCategoryRepository(pool),
		sessions:   postgres.NewSessionRepository(pool),
		operators:  postgres.NewOperatorRepository(pool),
		close:      pool.Close,
	}
}
