package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"assurance_backend/internals/features/finance/fees/model"
	helper "assurance_backend/internals/helpers"
)

/* =========================================================
   REQUEST
========================================================= */

type RecordPaymentRequest struct {
	StudentID     int64               `json:"student_id" validate:"required,gt=0"`
	Amount        decimal.Decimal     `json:"amount" validate:"gt=0,money"`
	PaymentDate   string              `json:"payment_date" validate:"required,date"`
	PaymentMethod model.PaymentMethod `json:"payment_method" validate:"required,enum"`
	AcademicYear  string              `json:"academic_year" validate:"required,max=20"`
	Term          string              `json:"term" validate:"required,max=20"`
	Description   *string             `json:"description"`
}

func (r *RecordPaymentRequest) Normalize() {
	r.PaymentDate = strings.TrimSpace(r.PaymentDate)
	r.AcademicYear = strings.TrimSpace(r.AcademicYear)
	r.Term = strings.TrimSpace(r.Term)
	r.Description = helper.TrimPtr(r.Description)
}

type SetStructureRequest struct {
	StudentID    int64           `json:"student_id" validate:"required,gt=0"`
	TotalFees    decimal.Decimal `json:"total_fees" validate:"gte=0,money"`
	AcademicYear string          `json:"academic_year" validate:"required,max=20"`
	Term         string          `json:"term" validate:"required,max=20"`
}

func (r *SetStructureRequest) Normalize() {
	r.AcademicYear = strings.TrimSpace(r.AcademicYear)
	r.Term = strings.TrimSpace(r.Term)
}

type ListPaymentsQuery struct {
	StudentID     int64
	AcademicYear  string
	Term          string
	PaymentMethod string
	DateFrom      string
	DateTo        string
}

/* =========================================================
   RESPONSE
========================================================= */

type PaymentResponse struct {
	ID             int64               `json:"id"`
	StudentID      int64               `json:"student_id"`
	StudentName    string              `json:"student_name,omitempty"`
	StudentNumber  string              `json:"student_number,omitempty"`
	Amount         decimal.Decimal     `json:"amount"`
	PaymentDate    string              `json:"payment_date"`
	PaymentMethod  model.PaymentMethod `json:"payment_method"`
	ReceiptNumber  string              `json:"receipt_number"`
	AcademicYear   string              `json:"academic_year"`
	Term           string              `json:"term"`
	Description    *string             `json:"description"`
	RecordedBy     int64               `json:"recorded_by"`
	RecordedByName string              `json:"recorded_by_name,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

func FromPayment(m *model.FeePaymentModel) PaymentResponse {
	return PaymentResponse{
		ID:            m.ID,
		StudentID:     m.StudentID,
		Amount:        m.Amount,
		PaymentDate:   helper.FormatDate(m.PaymentDate),
		PaymentMethod: m.PaymentMethod,
		ReceiptNumber: m.ReceiptNumber,
		AcademicYear:  m.AcademicYear,
		Term:          m.Term,
		Description:   m.Description,
		RecordedBy:    m.RecordedBy,
		CreatedAt:     m.CreatedAt,
	}
}

func FromPaymentRow(r *model.PaymentRow) PaymentResponse {
	out := FromPayment(&r.FeePaymentModel)
	out.StudentName = r.StudentName
	out.StudentNumber = r.StudentNumber
	out.RecordedByName = r.RecordedByName
	return out
}

func FromPaymentRows(rows []model.PaymentRow) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromPaymentRow(&rows[i]))
	}
	return out
}

type StructureResponse struct {
	ID           int64           `json:"id,omitempty"`
	StudentID    int64           `json:"student_id"`
	AcademicYear string          `json:"academic_year"`
	Term         string          `json:"term"`
	TotalFees    decimal.Decimal `json:"total_fees"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	Balance      decimal.Decimal `json:"balance"`
	Exists       bool            `json:"exists"`
}

func FromStructure(m *model.FeeStructureModel) StructureResponse {
	return StructureResponse{
		ID:           m.ID,
		StudentID:    m.StudentID,
		AcademicYear: m.AcademicYear,
		Term:         m.Term,
		TotalFees:    m.TotalFees,
		AmountPaid:   m.AmountPaid,
		Balance:      m.Balance,
		Exists:       m.ID > 0,
	}
}

func FromStructures(rows []model.FeeStructureModel) []StructureResponse {
	out := make([]StructureResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromStructure(&rows[i]))
	}
	return out
}

// RecordPaymentResponse: the new payment plus the structure after the increment.
type RecordPaymentResponse struct {
	PaymentID     int64             `json:"payment_id"`
	ReceiptNumber string            `json:"receipt_number"`
	Payment       PaymentResponse   `json:"payment"`
	Structure     StructureResponse `json:"structure"`
}

type ReceiptResponse struct {
	PaymentResponse
	EnrollmentCategory *string `json:"enrollment_category"`
	AmountInWords      string  `json:"amount_in_words"`
}
