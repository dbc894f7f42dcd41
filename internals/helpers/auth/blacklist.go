package helper

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"gorm.io/gorm"
)

// TokenHash is what token_blacklist stores: HMAC-SHA256(raw token) in hex.
func TokenHash(rawAccessToken, jwtSecret string) string {
	m := hmac.New(sha256.New, []byte(jwtSecret))
	_, _ = m.Write([]byte(rawAccessToken))
	return hex.EncodeToString(m.Sum(nil))
}

// Revoke blacklists a token until its own expiry.
func Revoke(ctx context.Context, db *gorm.DB, rawAccessToken, jwtSecret string, expiresAt time.Time) error {
	if strings.TrimSpace(rawAccessToken) == "" {
		return nil
	}
	return db.WithContext(ctx).Exec(`
		INSERT INTO token_blacklist (token_hash, expired_at)
		VALUES (?, ?)
		ON CONFLICT (token_hash) DO UPDATE
		SET expired_at = EXCLUDED.expired_at
	`, TokenHash(rawAccessToken, jwtSecret), expiresAt).Error
}

// IsBlacklisted: a live (not yet expired) blacklist row exists.
func IsBlacklisted(ctx context.Context, db *gorm.DB, rawAccessToken, jwtSecret string) (bool, error) {
	if strings.TrimSpace(rawAccessToken) == "" {
		return false, nil
	}
	var exists bool
	err := db.WithContext(ctx).Raw(`
		SELECT EXISTS (
		  SELECT 1
		  FROM token_blacklist
		  WHERE token_hash = ?
		    AND expired_at > NOW()
		)
	`, TokenHash(rawAccessToken, jwtSecret)).Scan(&exists).Error
	return exists, err
}
