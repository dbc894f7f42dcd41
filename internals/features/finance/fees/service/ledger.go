package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "assurance_backend/internals/databases"
	"assurance_backend/internals/features/finance/fees/model"
	"assurance_backend/internals/features/finance/fees/repository"
	helper "assurance_backend/internals/helpers"
)

var (
	ErrFeeStructureMissing = errors.New("no fee structure for student, academic year and term")
	ErrStudentNotFound     = errors.New("student not found")
	ErrRecorderNotFound    = errors.New("recording user not found")
	ErrLedgerInconsistent  = errors.New("fee structure was not updated")
	ErrReceiptCollision    = errors.New("could not allocate a unique receipt number")
	ErrInvalidPayment      = errors.New("invalid payment")
)

const maxReceiptAttempts = 3

// Ledger owns every write to fees and fee_structure.
type Ledger struct {
	Store *database.Store

	now        func() time.Time
	newReceipt func(time.Time) string
}

func NewLedger(store *database.Store) *Ledger {
	return &Ledger{Store: store, now: time.Now, newReceipt: NewReceiptNumber}
}

type RecordPaymentInput struct {
	StudentID    int64
	Amount       decimal.Decimal
	PaymentDate  datatypes.Date
	Method       model.PaymentMethod
	AcademicYear string
	Term         string
	Description  *string
	RecordedBy   int64
}

func (in RecordPaymentInput) validate() error {
	switch {
	case in.StudentID <= 0:
		return fmt.Errorf("%w: student_id is required", ErrInvalidPayment)
	case !in.Amount.IsPositive():
		return fmt.Errorf("%w: amount must be greater than 0", ErrInvalidPayment)
	case !helper.ValidMoney(in.Amount):
		return fmt.Errorf("%w: amount %s does not fit NUMERIC(10,2)", ErrInvalidPayment, in.Amount)
	case !in.Method.Valid():
		return fmt.Errorf("%w: unsupported payment method %q", ErrInvalidPayment, in.Method)
	case strings.TrimSpace(in.AcademicYear) == "" || strings.TrimSpace(in.Term) == "":
		return fmt.Errorf("%w: academic_year and term are required", ErrInvalidPayment)
	case in.RecordedBy <= 0:
		return fmt.Errorf("%w: recorded_by is required", ErrInvalidPayment)
	}
	return nil
}

type PaymentResult struct {
	Payment   model.FeePaymentModel
	Structure model.FeeStructureModel
}

// RecordPayment inserts the payment and increments the matching structure row
// in one transaction. A payment without a structure is rejected.
func (l *Ledger) RecordPayment(ctx context.Context, in RecordPaymentInput) (*PaymentResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxReceiptAttempts; attempt++ {
		res, err := l.recordOnce(ctx, in, l.newReceipt(l.now()))
		if err == nil {
			return res, nil
		}
		if !helper.IsUniqueViolation(err, model.ReceiptNumberConstraint) {
			return nil, err
		}
		log.Printf("[WARN] receipt number collision (attempt %d/%d)", attempt, maxReceiptAttempts)
	}
	return nil, ErrReceiptCollision
}

func (l *Ledger) recordOnce(ctx context.Context, in RecordPaymentInput, receipt string) (*PaymentResult, error) {
	var out PaymentResult

	err := l.Store.Tx(ctx, func(tx *gorm.DB) error {
		var fs model.FeeStructureModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("student_id = ? AND academic_year = ? AND term = ?", in.StudentID, in.AcademicYear, in.Term).
			Take(&fs).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			exists, exErr := repository.StudentExists(tx, in.StudentID)
			if exErr != nil {
				return exErr
			}
			if !exists {
				return ErrStudentNotFound
			}
			return ErrFeeStructureMissing
		}
		if err != nil {
			return err
		}

		p := model.FeePaymentModel{
			StudentID:     in.StudentID,
			Amount:        in.Amount,
			PaymentDate:   in.PaymentDate,
			PaymentMethod: in.Method,
			ReceiptNumber: receipt,
			AcademicYear:  in.AcademicYear,
			Term:          in.Term,
			Description:   in.Description,
			RecordedBy:    in.RecordedBy,
		}
		if err := tx.Create(&p).Error; err != nil {
			if helper.IsForeignKeyViolation(err) {
				if strings.Contains(helper.ViolatedConstraint(err), "recorded_by") {
					return ErrRecorderNotFound
				}
				return ErrStudentNotFound
			}
			return err
		}

		// Both right-hand sides read the pre-update amount_paid.
		res := tx.Model(&fs).Clauses(clause.Returning{}).Updates(map[string]any{
			"amount_paid": gorm.Expr("amount_paid + ?", in.Amount),
			"balance":     gorm.Expr("total_fees - (amount_paid + ?)", in.Amount),
			"updated_at":  gorm.Expr("CURRENT_TIMESTAMP"),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrLedgerInconsistent
		}

		out = PaymentResult{Payment: p, Structure: fs}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type SetStructureInput struct {
	StudentID    int64
	TotalFees    decimal.Decimal
	AcademicYear string
	Term         string
}

const upsertStructureSQL = `
	INSERT INTO fee_structure (student_id, total_fees, amount_paid, balance, academic_year, term)
	VALUES (?, ?, 0, ?, ?, ?)
	ON CONFLICT ON CONSTRAINT fee_structure_student_term_key DO UPDATE
	SET total_fees = EXCLUDED.total_fees,
		balance = EXCLUDED.total_fees - fee_structure.amount_paid,
		updated_at = CURRENT_TIMESTAMP
	RETURNING *`

// SetStructure creates or re-prices the structure for a term. Payments already
// recorded stay counted: balance is recomputed from the stored amount_paid.
func (l *Ledger) SetStructure(ctx context.Context, in SetStructureInput) (*model.FeeStructureModel, error) {
	if in.StudentID <= 0 || in.TotalFees.IsNegative() || !helper.ValidMoney(in.TotalFees) ||
		strings.TrimSpace(in.AcademicYear) == "" || strings.TrimSpace(in.Term) == "" {
		return nil, fmt.Errorf("%w: invalid fee structure", ErrInvalidPayment)
	}

	var fs model.FeeStructureModel
	err := l.Store.Conn(ctx).
		Raw(upsertStructureSQL, in.StudentID, in.TotalFees, in.TotalFees, in.AcademicYear, in.Term).
		Scan(&fs).Error
	if err != nil {
		if helper.IsForeignKeyViolation(err) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &fs, nil
}

// Balance returns the structure for the term. exists is false (and every
// amount zero) when none has been set.
func (l *Ledger) Balance(ctx context.Context, studentID int64, academicYear, term string) (fs model.FeeStructureModel, exists bool, err error) {
	err = l.Store.Conn(ctx).
		Where("student_id = ? AND academic_year = ? AND term = ?", studentID, academicYear, term).
		Take(&fs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.FeeStructureModel{
			StudentID:    studentID,
			AcademicYear: academicYear,
			Term:         term,
			TotalFees:    decimal.Zero,
			AmountPaid:   decimal.Zero,
			Balance:      decimal.Zero,
		}, false, nil
	}
	if err != nil {
		return fs, false, err
	}
	return fs, true, nil
}
