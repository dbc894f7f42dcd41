package repository

import (
	"gorm.io/gorm"

	"assurance_backend/internals/features/finance/fees/dto"
	"assurance_backend/internals/features/finance/fees/model"
	helper "assurance_backend/internals/helpers"
)

const paymentSelect = `f.*, s.full_name AS student_name, s.student_id AS student_number,
	s.enrollment_category, u.full_name AS recorded_by_name`

func paymentsBase(db *gorm.DB) *gorm.DB {
	return db.Table("fees AS f").
		Joins("JOIN students s ON s.id = f.student_id").
		Joins("JOIN users u ON u.id = f.recorded_by")
}

// ListPayments returns payments newest first. Dates in f are YYYY-MM-DD.
func ListPayments(db *gorm.DB, f dto.ListPaymentsQuery, paging *helper.Paging) ([]model.PaymentRow, int64, error) {
	q := paymentsBase(db)
	if f.StudentID > 0 {
		q = q.Where("f.student_id = ?", f.StudentID)
	}
	if f.AcademicYear != "" {
		q = q.Where("f.academic_year = ?", f.AcademicYear)
	}
	if f.Term != "" {
		q = q.Where("f.term = ?", f.Term)
	}
	if f.PaymentMethod != "" {
		q = q.Where("f.payment_method = ?", f.PaymentMethod)
	}
	if f.DateFrom != "" {
		q = q.Where("f.payment_date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("f.payment_date <= ?", f.DateTo)
	}

	var total int64
	if paging != nil {
		if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			return nil, 0, err
		}
	}

	list := q.Session(&gorm.Session{}).Select(paymentSelect).Order("f.payment_date DESC, f.id DESC")
	if paging != nil {
		list = list.Offset(paging.Offset).Limit(paging.Limit)
	}
	var rows []model.PaymentRow
	if err := list.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	if paging == nil {
		total = int64(len(rows))
	}
	return rows, total, nil
}

// FindReceipt: gorm.ErrRecordNotFound when no payment carries the number.
func FindReceipt(db *gorm.DB, receiptNumber string) (*model.PaymentRow, error) {
	var rows []model.PaymentRow
	err := paymentsBase(db).
		Select(paymentSelect).
		Where("f.receipt_number = ?", receiptNumber).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func StructuresOfStudent(db *gorm.DB, studentID int64) ([]model.FeeStructureModel, error) {
	var rows []model.FeeStructureModel
	err := db.Where("student_id = ?", studentID).
		Order("academic_year DESC, term").
		Find(&rows).Error
	return rows, err
}

func StudentExists(db *gorm.DB, studentID int64) (bool, error) {
	var n int64
	err := db.Table("students").Where("id = ?", studentID).Count(&n).Error
	return n > 0, err
}
