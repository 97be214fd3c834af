package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tokoku/store-api/internal/core/domain"
	"github.com/tokoku/store-api/internal/core/ports"
	"github.com/tokoku/store-api/internal/core/service"
)

const seedUserEmail = "user1@example.com"

// Seed provisions the demo accounts and the starter catalog. It is
// idempotent: seeding is skipped entirely when the demo user already exists.
func Seed(ctx context.Context, users ports.UserRepository, items ports.ItemRepository, log zerolog.Logger) error {
	if _, err := users.FindByEmail(ctx, seedUserEmail); err == nil {
		log.Info().Msg("demo data already present, skipping seed")
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("seed precheck: %w", err)
	}

	demoAccounts := []struct {
		email, name, password, role string
	}{
		{seedUserEmail, "User Satu", "pass123", domain.RoleUser},
		{"admin1@example.com", "Admin Satu", "admin123", domain.RoleAdmin},
	}

	for _, acc := range demoAccounts {
		hash, err := service.HashPassword(acc.password)
		if err != nil {
			return fmt.Errorf("seed hash password: %w", err)
		}
		created, err := users.Create(ctx, &domain.User{
			Email:        acc.email,
			Name:         acc.name,
			PasswordHash: hash,
			Role:         acc.role,
		})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", acc.email, err)
		}
		log.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("seeded demo user")
	}

	demoItems := []domain.Item{
		{Name: "Lonovo Ligion 5i", Price: 15000000},
		{Name: "Ligotech R25", Price: 750000},
	}
	for _, item := range demoItems {
		created, err := items.Create(ctx, &item)
		if err != nil {
			return fmt.Errorf("seed item %s: %w", item.Name, err)
		}
		log.Info().Int64("item_id", created.ID).Str("name", created.Name).Msg("seeded demo item")
	}

	return nil
}
