package controller

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	database "assurance_backend/internals/databases"
	"assurance_backend/internals/features/finance/fees/dto"
	"assurance_backend/internals/features/finance/fees/receipt"
	"assurance_backend/internals/features/finance/fees/repository"
	"assurance_backend/internals/features/finance/fees/service"
	helper "assurance_backend/internals/helpers"
	authMw "assurance_backend/internals/middlewares/auth"
)

const msgReceiptNotFound = "Receipt not found"

type FeeController struct {
	Store    *database.Store
	Ledger   *service.Ledger
	Validate *validator.Validate
}

func NewFeeController(store *database.Store, v *validator.Validate) *FeeController {
	return &FeeController{Store: store, Ledger: service.NewLedger(store), Validate: v}
}

func writeLedgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrFeeStructureMissing):
		return helper.JsonErrorCode(c, fiber.StatusConflict, helper.CodeFeeStructureMissing,
			"No fee structure set for this student, academic year and term. Set the fee structure before recording payments.")
	case errors.Is(err, service.ErrStudentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	case errors.Is(err, service.ErrRecorderNotFound):
		return helper.JsonErrorCode(c, fiber.StatusUnauthorized, helper.CodeTokenInvalid, "Invalid user in token")
	case errors.Is(err, service.ErrInvalidPayment):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrReceiptCollision), errors.Is(err, service.ErrLedgerInconsistent):
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	default:
		return helper.WritePGError(c, err, "Duplicate record", "Record not found")
	}
}

// parseListQuery reads the optional filters shared by List and Export.
func parseListQuery(c *fiber.Ctx) (dto.ListPaymentsQuery, map[string][]string) {
	q := dto.ListPaymentsQuery{
		AcademicYear:  strings.TrimSpace(c.Query("academic_year")),
		Term:          strings.TrimSpace(c.Query("term")),
		PaymentMethod: strings.TrimSpace(c.Query("payment_method")),
	}
	errs := map[string][]string{}

	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			errs["student_id"] = []string{"must be a positive integer"}
		}
		q.StudentID = id
	}
	if raw := strings.TrimSpace(c.Query("date_from")); raw != "" {
		if _, err := helper.ParseDate(raw); err != nil {
			errs["date_from"] = []string{"must be a date in YYYY-MM-DD format"}
		}
		q.DateFrom = raw
	}
	if raw := strings.TrimSpace(c.Query("date_to")); raw != "" {
		if _, err := helper.ParseDate(raw); err != nil {
			errs["date_to"] = []string{"must be a date in YYYY-MM-DD format"}
		}
		q.DateTo = raw
	}
	return q, errs
}

// GET /api/fees?student_id=&academic_year=&term=&payment_method=&date_from=&date_to=
func (fc *FeeController) List(c *fiber.Ctx) error {
	q, errs := parseListQuery(c)
	if len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}
	var paging *helper.Paging
	if p, ok := helper.ResolvePaging(c, 20, 200); ok {
		paging = &p
	}

	rows, total, err := repository.ListPayments(fc.Store.Conn(c.UserContext()), q, paging)
	if err != nil {
		return writeLedgerError(c, err)
	}
	var pg *helper.Pagination
	if paging != nil {
		pg = helper.BuildPagination(total, *paging, len(rows))
	}
	return helper.JsonList(c, "ok", dto.FromPaymentRows(rows), pg)
}

// POST /api/fees
func (fc *FeeController) Record(c *fiber.Ctx) error {
	userID, ok := authMw.UserIDFrom(c)
	if !ok {
		return helper.JsonErrorCode(c, fiber.StatusUnauthorized, helper.CodeTokenInvalid, "Invalid user in token")
	}
	var req dto.RecordPaymentRequest
	if ok, resp := helper.BindJSON(c, fc.Validate, &req); !ok {
		return resp
	}
	paymentDate, _ := helper.ParseDate(req.PaymentDate)

	res, err := fc.Ledger.RecordPayment(c.UserContext(), service.RecordPaymentInput{
		StudentID:    req.StudentID,
		Amount:       req.Amount,
		PaymentDate:  paymentDate,
		Method:       req.PaymentMethod,
		AcademicYear: req.AcademicYear,
		Term:         req.Term,
		Description:  req.Description,
		RecordedBy:   userID,
	})
	if err != nil {
		return writeLedgerError(c, err)
	}

	return helper.JsonCreated(c, "Payment recorded successfully", dto.RecordPaymentResponse{
		PaymentID:     res.Payment.ID,
		ReceiptNumber: res.Payment.ReceiptNumber,
		Payment:       dto.FromPayment(&res.Payment),
		Structure:     dto.FromStructure(&res.Structure),
	})
}

// GET /api/fees/balance/:studentId?academic_year=&term=
func (fc *FeeController) Balance(c *fiber.Ctx) error {
	studentID, err := helper.ParseIDParam(c, "studentId")
	if err != nil {
		return err
	}
	year := strings.TrimSpace(c.Query("academic_year"))
	term := strings.TrimSpace(c.Query("term"))
	errs := map[string][]string{}
	if year == "" {
		errs["academic_year"] = []string{"is required"}
	}
	if term == "" {
		errs["term"] = []string{"is required"}
	}
	if len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	fs, _, err := fc.Ledger.Balance(c.UserContext(), studentID, year, term)
	if err != nil {
		return writeLedgerError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromStructure(&fs))
}

// POST /api/fees/structure
func (fc *FeeController) SetStructure(c *fiber.Ctx) error {
	var req dto.SetStructureRequest
	if ok, resp := helper.BindJSON(c, fc.Validate, &req); !ok {
		return resp
	}
	fs, err := fc.Ledger.SetStructure(c.UserContext(), service.SetStructureInput{
		StudentID:    req.StudentID,
		TotalFees:    req.TotalFees,
		AcademicYear: req.AcademicYear,
		Term:         req.Term,
	})
	if err != nil {
		return writeLedgerError(c, err)
	}
	return helper.JsonCreated(c, "Fee structure set successfully", dto.FromStructure(fs))
}

// GET /api/fees/structure/:studentId
func (fc *FeeController) Structures(c *fiber.Ctx) error {
	studentID, err := helper.ParseIDParam(c, "studentId")
	if err != nil {
		return err
	}
	rows, err := repository.StructuresOfStudent(fc.Store.Conn(c.UserContext()), studentID)
	if err != nil {
		return writeLedgerError(c, err)
	}
	return helper.JsonList(c, "ok", dto.FromStructures(rows), nil)
}

func (fc *FeeController) loadReceipt(c *fiber.Ctx) (*dto.ReceiptResponse, error) {
	number := strings.TrimSpace(c.Params("receiptNumber"))
	if number == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid receiptNumber")
	}
	row, err := repository.FindReceipt(fc.Store.Conn(c.UserContext()), number)
	if err != nil {
		return nil, err
	}
	return &dto.ReceiptResponse{
		PaymentResponse:    dto.FromPaymentRow(row),
		EnrollmentCategory: row.EnrollmentCategory,
		AmountInWords:      receipt.AmountInWords(row.Amount),
	}, nil
}

// GET /api/fees/receipt/:receiptNumber
func (fc *FeeController) Receipt(c *fiber.Ctx) error {
	r, err := fc.loadReceipt(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return err
		}
		return helper.WritePGError(c, err, "", msgReceiptNotFound)
	}
	return helper.JsonOK(c, "ok", r)
}

// GET /api/fees/receipt/:receiptNumber/pdf
func (fc *FeeController) ReceiptPDF(c *fiber.Ctx) error {
	r, err := fc.loadReceipt(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return err
		}
		return helper.WritePGError(c, err, "", msgReceiptNotFound)
	}

	var buf bytes.Buffer
	if err := receipt.WritePDF(&buf, *r); err != nil {
		log.Printf("[ERROR] receipt pdf %s: %v", r.ReceiptNumber, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s.pdf"`, r.ReceiptNumber))
	return c.Send(buf.Bytes())
}

// GET /api/fees/export (same filters as List)
func (fc *FeeController) Export(c *fiber.Ctx) error {
	q, errs := parseListQuery(c)
	if len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}
	rows, _, err := repository.ListPayments(fc.Store.Conn(c.UserContext()), q, nil)
	if err != nil {
		return writeLedgerError(c, err)
	}

	var buf bytes.Buffer
	if err := receipt.WritePaymentsXLSX(&buf, dto.FromPaymentRows(rows)); err != nil {
		log.Printf("[ERROR] fees export: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
	filename := "fees_" + time.Now().Format("20060102_150405") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}
