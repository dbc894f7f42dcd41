package model

import "time"

// TokenBlacklist holds revoked access tokens (HMAC hash only) until they expire.
type TokenBlacklist struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	TokenHash string    `gorm:"column:token_hash;type:char(64);not null;unique" json:"-"`
	ExpiredAt time.Time `gorm:"column:expired_at;not null" json:"expired_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
