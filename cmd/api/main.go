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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/restaurante-api/internal/app"
	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/pagina"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/memoria"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/metrics"
	"github.com/jhoicas/restaurante-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/restaurante-api/internal/interfaces/http"
	"github.com/jhoicas/restaurante-api/pkg/clock"
	"github.com/jhoicas/restaurante-api/pkg/config"
	"github.com/jhoicas/restaurante-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var repos app.Repositorios
	switch cfg.Storage.Driver {
	case config.StorageMemoria:
		repos = app.Memoria(memoria.NewStore())
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
	default:
		if cfg.Storage.AutoMigrate {
			migrar(ctx, cfg, log)
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repos = app.Postgres(pool)
	}

	var met *metrics.Metricas
	var obs pagina.Observador
	if cfg.Metrics.Enabled {
		met = metrics.New()
		obs = met
	}

	cont := app.Nuevo(repos, app.Opciones{
		JWT: auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
		Clock:      clock.NewRealClock(),
		Observador: obs,
		Log:        log,
	})

	if cfg.Storage.SeedFile != "" {
		sembrar(ctx, cont, cfg.Storage.SeedFile, log)
	}

	fiberApp := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New())
	fiberApp.Use(httpRouter.RequestLog(log))
	if met != nil {
		fiberApp.Use(met.Middleware())
		fiberApp.Get(cfg.Metrics.Path, met.Handler())
	}

	// Swagger UI: http://localhost:<port>/docs
	if cfg.App.SwaggerFile != "" {
		if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
			fiberApp.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.App.SwaggerFile,
				Path:     "docs",
				Title:    "Restaurante API",
			}))
		} else {
			log.Warn().Str("archivo", cfg.App.SwaggerFile).Msg("SWAGGER_FILE no existe; /docs deshabilitado")
		}
	}

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.Storage.Driver})
	})

	httpRouter.Router(fiberApp, cont.RouterDeps(cfg.JWT.Secret, log))

	go func() {
		if err := fiberApp.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func migrar(ctx context.Context, cfg *config.Config, log *logger.Logger) {
	m, err := postgres.NewMigrador(cfg.DB.ConnectionString())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir conexión de migraciones")
	}
	defer m.Close()
	if err := m.Up(ctx); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Str("dir", cfg.Storage.MigrationsDir).Msg("migraciones aplicadas")
}

func sembrar(ctx context.Context, cont *app.Contenedor, archivo string, log *logger.Logger) {
	f, err := os.Open(archivo)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir SEED_FILE")
	}
	defer f.Close()
	s, err := app.LeerSemilla(f)
	if err != nil {
		log.Fatal().Err(err).Msg("leer SEED_FILE")
	}
	res, err := cont.Sembrar(ctx, s, log)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar catálogos")
	}
	log.Info().Int("creados", res.Creados).Int("omitidos", res.Omitidos).Msg("semilla aplicada")
}
