package seeds

import (
	"context"
	"testing"

	"assurance_backend/internals/configs"
	"assurance_backend/internals/databases/dbtest"
	authService "assurance_backend/internals/features/users/auth/service"
)

func TestRunAllSeedsIsIdempotent(t *testing.T) {
	store := dbtest.Open(t)
	ctx := context.Background()
	cfg := configs.Config{
		SchoolName:        "Assurance Remedial School",
		SeedAdminEmail:    " Admin@School.test ",
		SeedAdminPassword: "changeme123",
	}

	for i := 0; i < 2; i++ {
		if err := RunAllSeeds(ctx, store.DB, cfg); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	var subjects int64
	if err := store.DB.Table("subjects").Count(&subjects).Error; err != nil {
		t.Fatal(err)
	}
	if subjects != 5 {
		t.Fatalf("expected 5 subjects, got %d", subjects)
	}

	var admin struct {
		Email       string
		Password    string
		AccountType string
		IsVerified  bool
	}
	err := store.DB.Table("users").
		Select("email, password, account_type, is_verified").
		Where("email = ?", "admin@school.test").
		Take(&admin).Error
	if err != nil {
		t.Fatalf("admin missing: %v", err)
	}
	if admin.AccountType != "Administrator" || !admin.IsVerified {
		t.Fatalf("unexpected admin row: %+v", admin)
	}
	if !authService.CheckPassword(admin.Password, "changeme123") {
		t.Fatal("admin password not hashed with bcrypt")
	}

	var users int64
	store.DB.Table("users").Count(&users)
	if users != 1 {
		t.Fatalf("expected a single user, got %d", users)
	}
}

func TestRunAllSeedsWithoutAdmin(t *testing.T) {
	store := dbtest.Open(t)
	if err := RunAllSeeds(context.Background(), store.DB, configs.Config{}); err != nil {
		t.Fatal(err)
	}
	var users int64
	store.DB.Table("users").Count(&users)
	if users != 0 {
		t.Fatalf("no admin expected, got %d users", users)
	}
}
