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

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/approval"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/auth"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/application/usecase"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/infrastructure/postgres"
	httpRouter "github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/interfaces/http"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/pkg/config"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	pillarRepo := postgres.NewPillarRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	claimRepo := postgres.NewClaimRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	registrationUC := approval.NewRegistrationUseCase(userRepo)
	claimUC := approval.NewClaimUseCase(claimRepo, userRepo, projectRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, pillarRepo, userRepo, txRunner)
	taskUC := usecase.NewTaskUseCase(taskRepo, projectRepo, pillarRepo, userRepo)
	teamUC := usecase.NewTeamUseCase(userRepo)
	dashboardUC := usecase.NewDashboardUseCase(projectRepo, taskRepo, userRepo, registrationUC, claimUC)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI at http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "LCP Project Management API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		RegistrationUC: registrationUC,
		ClaimUC:        claimUC,
		ProjectUC:      projectUC,
		TaskUC:         taskUC,
		TeamUC:         teamUC,
		DashboardUC:    dashboardUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}
