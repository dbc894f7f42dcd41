package receipt

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"assurance_backend/internals/features/finance/fees/dto"
)

// SchoolName is printed in the receipt header.
var SchoolName = "ASSURANCE REMEDIAL SCHOOL"

// core PDF fonts are cp1252, which has no cedi sign
const pdfCurrency = "GHS"

// WritePDF renders a single A5 receipt.
func WritePDF(w io.Writer, r dto.ReceiptResponse) error {
	pdf := gofpdf.New("P", "mm", "A5", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	// header
	pdf.SetFont("Arial", "B", 15)
	pdf.CellFormat(0, 8, SchoolName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, "OFFICIAL PAYMENT RECEIPT", "", 1, "C", false, 0, "")
	pdf.SetDrawColor(65, 105, 225)
	pdf.SetLineWidth(0.5)
	pdf.Line(12, pdf.GetY()+2, 136, pdf.GetY()+2)
	pdf.Ln(6)

	field := func(label, value string) {
		pdf.SetFont("Arial", "", 9)
		pdf.Cell(38, 6, label)
		pdf.SetFont("Arial", "B", 9)
		pdf.MultiCell(0, 6, tr(value), "", "L", false)
	}

	field("Receipt No:", r.ReceiptNumber)
	field("Date:", r.PaymentDate)
	field("Student:", r.StudentName)
	field("Student ID:", r.StudentNumber)
	if r.EnrollmentCategory != nil {
		field("Enrollment:", *r.EnrollmentCategory)
	}
	field("Academic Year:", r.AcademicYear)
	field("Term:", r.Term)
	field("Payment Method:", string(r.PaymentMethod))
	if r.Description != nil {
		field("Description:", *r.Description)
	}
	pdf.Ln(3)

	// amount box
	pdf.SetFillColor(240, 244, 255)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, tr("Amount Paid: "+formatAmount(pdfCurrency, r.Amount)), "1", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 6, tr(r.AmountInWords+" only"), "", "C", false)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, tr("Received by: "+r.RecordedByName))
	pdf.Ln(12)
	pdf.Cell(60, 6, "______________________")
	pdf.Ln(5)
	pdf.Cell(60, 6, "Signature")

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}
