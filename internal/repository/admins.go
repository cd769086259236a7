package repository

import (
	"context"
	"errors"
	"fmt"

	"solottery/internal/db"

	"github.com/google/uuid"
)

var ErrAdminNotFound error = errors.New("admin not found")

type AdminRepository struct {
	db Storage
}

func NewAdminRepository(storage Storage) *AdminRepository {
	return &AdminRepository{
		db: storage,
	}
}

func (r *AdminRepository) MigrateAndSeed(ctx context.Context) error {
	err := r.db.MigrateModels(&Round{}, &Entry{}, &Admin{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	admins := []Admin{
		{
			ID:       uuid.NewString(),
			Username: "admin",
			// bcrypt hash of "password", replace for real deployments
			PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		},
	}
	if err := r.db.Seed(ctx, &admins); err != nil {
		return fmt.Errorf("seed admins: %w", err)
	}

	return nil
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (Admin, error) {
	var admin Admin
	err := r.db.GetOneBy(ctx, "username", username, &admin)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Admin{}, ErrAdminNotFound
		}
		return Admin{}, fmt.Errorf("get admin by username: %w", err)
	}

	return admin, nil
}
