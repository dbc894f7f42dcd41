package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"assurance_backend/internals/features/dashboard/dto"
	helper "assurance_backend/internals/helpers"
)

func CountActive(db *gorm.DB, table string) (int64, error) {
	var n int64
	err := db.Table(table).Where("status = ?", "Active").Count(&n).Error
	return n, err
}

// RevenueForMonth sums payments dated in the calendar month containing at.
func RevenueForMonth(db *gorm.DB, at time.Time) (decimal.Decimal, error) {
	start := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var total decimal.Decimal
	err := db.Table("fees").
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_date >= ? AND payment_date < ?", start.Format(helper.DateLayout), end.Format(helper.DateLayout)).
		Row().Scan(&total)
	return total, err
}

// PendingBalances sums outstanding balances; credits (negative balances) are ignored.
func PendingBalances(db *gorm.DB) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := db.Table("fee_structure").
		Select("COALESCE(SUM(balance), 0)").
		Where("balance > 0").
		Row().Scan(&total)
	return total, err
}

func EnrollmentDistribution(db *gorm.DB) ([]dto.EnrollmentBucket, error) {
	rows := []dto.EnrollmentBucket{}
	err := db.Table("students").
		Select("enrollment_category, COUNT(*) AS count").
		Where("status = ?", "Active").
		Group("enrollment_category").
		Order("enrollment_category").
		Scan(&rows).Error
	return rows, err
}
