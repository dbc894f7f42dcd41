package dto

import (
	"strings"
	"time"

	"assurance_backend/internals/constants"
	"assurance_backend/internals/features/users/auth/model"
)

type SignupRequest struct {
	FullName    string                `json:"full_name" validate:"required,max=255"`
	Email       string                `json:"email" validate:"required,email,max=255"`
	Password    string                `json:"password" validate:"required,min=6,max=72"`
	SchoolName  string                `json:"school_name" validate:"required,max=255"`
	AccountType constants.AccountType `json:"account_type" validate:"required,enum"`
}

func (r *SignupRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.SchoolName = strings.TrimSpace(r.SchoolName)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type UserResponse struct {
	ID          int64                 `json:"id"`
	FullName    string                `json:"full_name"`
	Email       string                `json:"email"`
	SchoolName  string                `json:"school_name"`
	AccountType constants.AccountType `json:"account_type"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		SchoolName:  u.SchoolName,
		AccountType: u.AccountType,
	}
}

type SignupResponse struct {
	UserID int64 `json:"user_id"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
