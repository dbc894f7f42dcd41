package dto

import "github.com/shopspring/decimal"

type EnrollmentBucket struct {
	EnrollmentCategory *string `json:"enrollment_category" gorm:"column:enrollment_category"`
	Count              int64   `json:"count" gorm:"column:count"`
}

type StatsResponse struct {
	TotalStudents          int64              `json:"total_students"`
	TotalStaff             int64              `json:"total_staff"`
	MonthlyRevenue         decimal.Decimal    `json:"monthly_revenue"`
	PendingBalances        decimal.Decimal    `json:"pending_balances"`
	EnrollmentDistribution []EnrollmentBucket `json:"enrollment_distribution"`
	AttendanceToday        map[string]int64   `json:"attendance_today"`
}
