// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "assurance_backend/internals/features/users/auth/model"
)

/* ====================== USER ====================== */

func FindUserByEmail(db *gorm.DB, email string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id int64) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *authModel.UserModel) error {
	return db.Create(user).Error
}

// VerifyUserByToken flips is_verified and consumes the token. Returns
// gorm.ErrRecordNotFound when no user holds that token.
func VerifyUserByToken(db *gorm.DB, token string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	res := db.Model(&user).
		Clauses(clause.Returning{}).
		Where("verification_token = ?", token).
		Updates(map[string]any{
			"is_verified":        true,
			"verification_token": nil,
			"updated_at":         time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

/* ====================== BLACKLIST TOKEN ====================== */

func CleanupExpiredBlacklist(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Where("expired_at <= ?", now).Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
