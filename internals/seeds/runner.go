package seeds

import (
	"context"

	"gorm.io/gorm"

	"assurance_backend/internals/configs"
	"assurance_backend/internals/seeds/subjects"
	"assurance_backend/internals/seeds/users"
)

// RunAllSeeds is idempotent and runs after migrations on every boot.
func RunAllSeeds(ctx context.Context, db *gorm.DB, cfg configs.Config) error {
	//* Subjects
	if _, err := subjects.SeedDefaultSubjects(ctx, db); err != nil {
		return err
	}

	//* Users
	_, err := users.SeedBootstrapAdmin(ctx, db, users.BootstrapAdmin{
		Email:      cfg.SeedAdminEmail,
		Password:   cfg.SeedAdminPassword,
		SchoolName: cfg.SchoolName,
	})
	return err
}
