package model

import (
	"time"

	"assurance_backend/internals/constants"
)

type UserModel struct {
	ID                int64                 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FullName          string                `gorm:"column:full_name;size:255;not null" json:"full_name"`
	Email             string                `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Password          string                `gorm:"column:password;size:255;not null" json:"-"`
	SchoolName        string                `gorm:"column:school_name;size:255;not null" json:"school_name"`
	AccountType       constants.AccountType `gorm:"column:account_type;size:50;not null" json:"account_type"`
	IsVerified        bool                  `gorm:"column:is_verified;not null;default:false" json:"is_verified"`
	VerificationToken *string               `gorm:"column:verification_token;size:255" json:"-"`
	CreatedAt         time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time             `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
