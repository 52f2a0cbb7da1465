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
	"github.com/google/uuid"
	"github.com/jhoicas/gapc-api/internal/application/auth"
	"github.com/jhoicas/gapc-api/internal/application/usecase"
	"github.com/jhoicas/gapc-api/internal/infrastructure/metrics"
	"github.com/jhoicas/gapc-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gapc-api/internal/interfaces/http"
	"github.com/jhoicas/gapc-api/pkg/config"
	"github.com/jhoicas/gapc-api/pkg/logger"
	"github.com/jhoicas/gapc-api/pkg/password"
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
		Str("app", cfg.App.Name).
		Dur("session_ttl", cfg.Session.TTL).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	userRepo := postgres.NewUserRepository(pool)
	rolePermRepo := postgres.NewRolePermissionRepository(pool)
	districtRepo := postgres.NewDistrictRepository(pool)
	groupRepo := postgres.NewGroupRepository(pool)
	directiveRepo := postgres.NewDirectiveRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	hasher := password.NewBcrypt(cfg.Security.BcryptCost)

	decoy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		log.Fatal().Err(err).Msg("hash señuelo para login")
	}
	authenticator := auth.NewAuthenticator(userRepo, rolePermRepo, hasher, auth.WithDecoyHash(decoy))
	authUC := auth.NewAuthUseCase(authenticator, auth.NewSessionRegistry(), auth.TokenConfig{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		TTL:    cfg.Session.TTL,
	}, log, m)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestObserver(m, log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.App.DocsPath != "" {
		if _, err := os.Stat(cfg.App.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.App.DocsPath,
				Path:     "docs",
				Title:    "GAPC API",
			}))
		} else {
			log.Warn().Str("path", cfg.App.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if m != nil {
		app.Get(cfg.Metrics.Path, httpRouter.MetricsHandler(m))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DistrictUC:  usecase.NewDistrictUseCase(districtRepo),
		GroupUC:     usecase.NewGroupUseCase(txRunner, groupRepo, districtRepo),
		DirectiveUC: usecase.NewDirectiveUseCase(directiveRepo, groupRepo),
		UserUC:      usecase.NewUserUseCase(userRepo, hasher),
		RoleUC:      usecase.NewRoleUseCase(rolePermRepo),
		Decisions:   m,
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
