package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hospitality-pos/internal/billing"
	"github.com/sangkips/hospitality-pos/internal/billing/sections"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// InvoiceLine is an item line in the display currency
type InvoiceLine struct {
	Name      string          `json:"name"`
	Portion   string          `json:"portion,omitempty"`
	Note      string          `json:"note,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// Invoice is composed from an order at preview or print time. It is not
// persisted.
type Invoice struct {
	InvoiceNo    string         `json:"invoice_no"`
	OrderID      uuid.UUID      `json:"order_id"`
	OutletID     uuid.UUID      `json:"outlet_id"`
	IssuedAt     time.Time      `json:"issued_at"`
	OrderType    enum.OrderType `json:"order_type"`
	TableNumber  string         `json:"table_number,omitempty"`
	CustomerName string         `json:"customer_name,omitempty"`
	Language     string         `json:"language"`

	Lines     []InvoiceLine     `json:"lines"`
	Breakdown billing.Breakdown `json:"breakdown"`
	// MarginBase is internal and never printed
	MarginBase decimal.Decimal `json:"margin_base"`

	DiscountCode      string             `json:"discount_code,omitempty"`
	DiscountRejection *billing.Rejection `json:"discount_rejection,omitempty"`

	// Sections lists the keys that render, in order
	Sections []sections.Key `json:"sections"`
}
