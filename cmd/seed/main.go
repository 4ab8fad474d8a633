// seed bootstraps the first accounts so a fresh database has someone able to
// approve registrations: one Super User plus a small set of active managers.
// Re-running is safe; accounts that already exist are left untouched.
//
// Usage: go run ./cmd/seed
// Reads the same environment as the API (DATABASE_URL or DB_* variables).
// SEED_SUPERUSER_EMAIL and SEED_SUPERUSER_PASSWORD override the defaults.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/domain/entity"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/internal/infrastructure/postgres"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/pkg/config"
	"github.com/tahnimmahir-pm/LCP-Project-Management-Application/pkg/logger"
)

type seedAccount struct {
	Email      string
	Password   string
	FullName   string
	Role       string
	Department string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

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

	superEmail := envOr("SEED_SUPERUSER_EMAIL", "admin@lcp.example")
	superPassword := envOr("SEED_SUPERUSER_PASSWORD", "ChangeMe@123")

	accounts := []seedAccount{
		{Email: superEmail, Password: superPassword, FullName: "LCP Administrator", Role: entity.RoleSuperUser, Department: "Management"},
		{Email: "ops.manager@lcp.example", Password: superPassword, FullName: "Operations Manager", Role: entity.RoleManager, Department: "Operations"},
		{Email: "finance.manager@lcp.example", Password: superPassword, FullName: "Finance Manager", Role: entity.RoleManager, Department: entity.DepartmentFinance},
	}

	created := 0
	for _, acc := range accounts {
		existing, err := userRepo.GetByEmail(ctx, acc.Email)
		if err != nil {
			log.Fatal().Err(err).Str("email", acc.Email).Msg("lookup account")
		}
		if existing != nil {
			log.Info().Str("email", acc.Email).Msg("account already exists, skipping")
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash password")
		}
		now := time.Now().UTC()
		u := &entity.User{
			ID:           uuid.NewString(),
			Email:        acc.Email,
			PasswordHash: string(hash),
			FullName:     acc.FullName,
			Role:         acc.Role,
			Department:   acc.Department,
			Status:       entity.UserStatusActive,
			CreatedAt:    now,
		}
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatal().Err(err).Str("email", acc.Email).Msg("create account")
		}
		log.Info().Str("email", acc.Email).Str("role", acc.Role).Msg("account created")
		created++
	}

	log.Info().Int("created", created).Msg("seed complete")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
