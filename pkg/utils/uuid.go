package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateInvoiceNo returns e.g. "INV-20260519-3F9A1C2B"
func GenerateInvoiceNo(prefix string, at time.Time) string {
	if prefix == "" {
		prefix = "INV"
	}
	return prefix + "-" + at.Format("20060102") + "-" + strings.ToUpper(uuid.New().String()[:8])
}
