// file: internals/features/finance/fees/model/fee_model.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

/* =========================================================
   ENUM: payment_method
========================================================= */

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodMobileMoney  PaymentMethod = "Mobile Money"
	MethodCheque       PaymentMethod = "Cheque"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodMobileMoney, MethodCheque:
		return true
	}
	return false
}

// ReceiptNumberConstraint is the unique constraint on fees.receipt_number.
const ReceiptNumberConstraint = "fees_receipt_number_key"

/* =========================================================
   fees: one immutable row per payment event
========================================================= */

type FeePaymentModel struct {
	ID            int64           `gorm:"column:id;primaryKey;autoIncrement"`
	StudentID     int64           `gorm:"column:student_id;not null"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(10,2);not null"`
	PaymentDate   datatypes.Date  `gorm:"column:payment_date;type:date;not null"`
	PaymentMethod PaymentMethod   `gorm:"column:payment_method;size:50;not null"`
	ReceiptNumber string          `gorm:"column:receipt_number;size:100;not null;unique"`
	AcademicYear  string          `gorm:"column:academic_year;size:20;not null"`
	Term          string          `gorm:"column:term;size:20;not null"`
	Description   *string         `gorm:"column:description;type:text"`
	RecordedBy    int64           `gorm:"column:recorded_by;not null"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (FeePaymentModel) TableName() string { return "fees" }

/* =========================================================
   fee_structure: one row per (student, academic_year, term)
   invariant: balance = total_fees - amount_paid
========================================================= */

type FeeStructureModel struct {
	ID           int64           `gorm:"column:id;primaryKey;autoIncrement"`
	StudentID    int64           `gorm:"column:student_id;not null"`
	TotalFees    decimal.Decimal `gorm:"column:total_fees;type:numeric(10,2);not null"`
	AmountPaid   decimal.Decimal `gorm:"column:amount_paid;type:numeric(10,2);not null"`
	Balance      decimal.Decimal `gorm:"column:balance;type:numeric(10,2);not null"`
	AcademicYear string          `gorm:"column:academic_year;size:20;not null"`
	Term         string          `gorm:"column:term;size:20;not null"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (FeeStructureModel) TableName() string { return "fee_structure" }

// PaymentRow is a payment joined with student and recorder names.
type PaymentRow struct {
	FeePaymentModel
	StudentName        string  `gorm:"column:student_name"`
	StudentNumber      string  `gorm:"column:student_number"`
	EnrollmentCategory *string `gorm:"column:enrollment_category"`
	RecordedByName     string  `gorm:"column:recorded_by_name"`
}
