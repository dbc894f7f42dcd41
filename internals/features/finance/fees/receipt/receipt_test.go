package receipt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"assurance_backend/internals/features/finance/fees/dto"
)

func TestAmountInWords(t *testing.T) {
	got := AmountInWords(decimal.RequireFromString("150.50"))
	if !strings.HasPrefix(got, "One hundred") || !strings.Contains(got, "Ghana cedis") || !strings.HasSuffix(got, "fifty pesewas") {
		t.Fatalf("unexpected words %q", got)
	}

	whole := AmountInWords(decimal.NewFromInt(200))
	if strings.Contains(whole, "pesewas") {
		t.Fatalf("whole amount should not mention pesewas: %q", whole)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":         "GH₵ 0.00",
		"150.5":     "GH₵ 150.50",
		"1500":      "GH₵ 1,500.00",
		"1234567.8": "GH₵ 1,234,567.80",
		"-300":      "-GH₵ 300.00",
	}
	for in, want := range cases {
		if got := FormatAmount(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatAmount(%s) = %q, want %q", in, got, want)
		}
	}
}

func sampleReceipt() dto.ReceiptResponse {
	desc := "Second instalment"
	cat := "MayJune"
	return dto.ReceiptResponse{
		PaymentResponse: dto.PaymentResponse{
			ID:             1,
			StudentID:      1,
			StudentName:    "Ama Mensah",
			StudentNumber:  "STU001",
			Amount:         decimal.RequireFromString("150.00"),
			PaymentDate:    "2024-09-02",
			PaymentMethod:  "Mobile Money",
			ReceiptNumber:  "REC-20240902-0123456789ABCDEF0123456789ABCDEF",
			AcademicYear:   "2024",
			Term:           "Term1",
			Description:    &desc,
			RecordedByName: "Kofi Boateng",
		},
		EnrollmentCategory: &cat,
		AmountInWords:      "One hundred fifty Ghana cedis",
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleReceipt()); err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output is not a PDF: %q", buf.Bytes()[:8])
	}
}

func TestWritePaymentsXLSX(t *testing.T) {
	first := sampleReceipt().PaymentResponse
	second := first
	second.ReceiptNumber = "REC-20240903-FEDCBA9876543210FEDCBA9876543210"
	second.Amount = decimal.RequireFromString("49.50")
	second.Description = nil

	var buf bytes.Buffer
	if err := WritePaymentsXLSX(&buf, []dto.PaymentResponse{first, second}); err != nil {
		t.Fatalf("xlsx: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header + 2 rows + total, got %d", len(rows))
	}
	if rows[0][0] != "Receipt No" || rows[1][0] != first.ReceiptNumber || rows[2][3] != "Ama Mensah" {
		t.Fatalf("unexpected content %v", rows)
	}
	if rows[3][6] != "TOTAL" || rows[3][7] != "199.5" {
		t.Fatalf("unexpected total row %v", rows[3])
	}
}
