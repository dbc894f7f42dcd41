package users

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"assurance_backend/internals/constants"
	authModel "assurance_backend/internals/features/users/auth/model"
	authService "assurance_backend/internals/features/users/auth/service"
)

// BootstrapAdmin describes the first administrator account.
type BootstrapAdmin struct {
	Email      string
	Password   string
	SchoolName string
}

// SeedBootstrapAdmin creates a verified administrator when none exists with
// that email. An empty email or password is a no-op.
func SeedBootstrapAdmin(ctx context.Context, db *gorm.DB, in BootstrapAdmin) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return false, nil
	}

	var existing authModel.UserModel
	err := db.WithContext(ctx).Where("email = ?", email).Take(&existing).Error
	switch {
	case err == nil:
		log.Printf("[SEED] admin %s already present, skipped", email)
		return false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return false, fmt.Errorf("lookup admin: %w", err)
	}

	hashed, err := authService.HashPassword(in.Password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	admin := authModel.UserModel{
		FullName:    "Administrator",
		Email:       email,
		Password:    hashed,
		SchoolName:  in.SchoolName,
		AccountType: constants.AccountAdministrator,
		IsVerified:  true,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	log.Printf("[SEED] admin %s created", email)
	return true, nil
}
