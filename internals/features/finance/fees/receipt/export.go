package receipt

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"assurance_backend/internals/features/finance/fees/dto"
)

const exportSheet = "Payments"

var exportHeaders = []string{
	"Receipt No", "Payment Date", "Student ID", "Student Name", "Academic Year",
	"Term", "Method", "Amount", "Description", "Recorded By",
}

// WritePaymentsXLSX writes one row per payment plus a total row.
func WritePaymentsXLSX(w io.Writer, rows []dto.PaymentResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return err
		}
	}

	total := 0.0
	for i, p := range rows {
		row := i + 2
		amount := p.Amount.InexactFloat64()
		total += amount
		description := ""
		if p.Description != nil {
			description = *p.Description
		}
		values := []any{
			p.ReceiptNumber, p.PaymentDate, p.StudentNumber, p.StudentName, p.AcademicYear,
			p.Term, string(p.PaymentMethod), amount, description, p.RecordedByName,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return err
			}
		}
	}

	totalRow := len(rows) + 2
	_ = f.SetCellValue(exportSheet, fmt.Sprintf("G%d", totalRow), "TOTAL")
	if err := f.SetCellValue(exportSheet, fmt.Sprintf("H%d", totalRow), total); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(exportSheet, 1, 1, bold)
		_ = f.SetRowStyle(exportSheet, totalRow, totalRow, bold)
	}
	_ = f.SetColWidth(exportSheet, "A", "A", 44)
	_ = f.SetColWidth(exportSheet, "B", "J", 16)

	return f.Write(w)
}
