package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"assurance_backend/internals/configs"
	database "assurance_backend/internals/databases"
	"assurance_backend/internals/features/users/auth/dto"
	authModel "assurance_backend/internals/features/users/auth/model"
	authRepo "assurance_backend/internals/features/users/auth/repository"
	helper "assurance_backend/internals/helpers"
	helperAuth "assurance_backend/internals/helpers/auth"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrNotVerified         = errors.New("email not verified")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidVerification = errors.New("invalid or expired verification link")
)

type AuthService struct {
	Store  *database.Store
	Config configs.Config
}

func NewAuthService(store *database.Store, cfg configs.Config) *AuthService {
	return &AuthService{Store: store, Config: cfg}
}

// Signup creates an unverified account and logs the verification link
// (no mail is sent).
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*authModel.UserModel, string, error) {
	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	token := uuid.NewString()

	user := &authModel.UserModel{
		FullName:          req.FullName,
		Email:             req.Email,
		Password:          hashed,
		SchoolName:        req.SchoolName,
		AccountType:       req.AccountType,
		VerificationToken: &token,
	}
	if err := authRepo.CreateUser(s.Store.Conn(ctx), user); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	link := s.VerificationLink(token)
	log.Printf("[INFO] verification link for %s: %s", user.Email, link)
	return user, link, nil
}

func (s *AuthService) VerificationLink(token string) string {
	return strings.TrimRight(s.Config.AppURL, "/") + "/api/auth/verify/" + token
}

func (s *AuthService) Verify(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidVerification
	}
	_, err := authRepo.VerifyUserByToken(s.Store.Conn(ctx), token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidVerification
	}
	return err
}

// Login checks the password first so an unverified account is only revealed
// to someone who knows it.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := authRepo.FindUserByEmail(s.Store.Conn(ctx), req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, ErrNotVerified
	}

	token, exp, err := helperAuth.IssueToken(s.Config.JWTSecret, s.Config.JWTIssuer, s.Config.TokenTTL, helperAuth.Claims{
		ID:          user.ID,
		Email:       user.Email,
		AccountType: user.AccountType,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      dto.ToUserResponse(user),
	}, nil
}

// Logout blacklists a still-valid token. Invalid or expired tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	claims, err := helperAuth.ParseToken(s.Config.JWTSecret, rawToken)
	if err != nil {
		return nil
	}
	return helperAuth.Revoke(ctx, s.Store.DB, rawToken, s.Config.JWTSecret, claims.ExpiresAt.Time)
}

func (s *AuthService) IsRevoked(ctx context.Context, rawToken string) (bool, error) {
	return helperAuth.IsBlacklisted(ctx, s.Store.DB, rawToken, s.Config.JWTSecret)
}

func (s *AuthService) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := authRepo.FindUserByID(s.Store.Conn(ctx), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// CleanupBlacklist removes blacklist rows whose token has expired anyway.
func (s *AuthService) CleanupBlacklist(ctx context.Context) (int64, error) {
	return authRepo.CleanupExpiredBlacklist(s.Store.Conn(ctx), time.Now())
}
