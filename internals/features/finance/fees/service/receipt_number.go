package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const receiptPrefix = "REC-"

// NewReceiptNumber returns REC-YYYYMMDD-<32 hex chars of a random UUIDv4>.
// The date keeps receipts human-sortable, the UUID carries the uniqueness.
func NewReceiptNumber(at time.Time) string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return receiptPrefix + at.Format("20060102") + "-" + hex
}
