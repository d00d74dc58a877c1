// Package render turns a composed invoice into its printable sections and
// renders them for thermal printers and HTML.
package render

import (
	"github.com/sangkips/hospitality-pos/internal/billing/sections"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
)

// Block is the content of one invoice section
type Block interface {
	kind() string
}

// Row is a caption and a formatted value
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type CompanyHeaderBlock struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type InvoiceHeaderBlock struct {
	Title     string `json:"title"`
	InvoiceNo Row    `json:"invoice_no"`
	Date      Row    `json:"date"`
}

type OrderDetailsBlock struct {
	Rows []Row `json:"rows"`
}

// ItemRow is one printed order line
type ItemRow struct {
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
	Detail   string `json:"detail,omitempty"` // portion and note
	Amount   string `json:"amount"`
}

type ItemsTableBlock struct {
	ItemLabel   string    `json:"item_label"`
	QtyLabel    string    `json:"qty_label"`
	AmountLabel string    `json:"amount_label"`
	Lines       []ItemRow `json:"lines"`
}

type TotalsBlock struct {
	Rows         []Row  `json:"rows"`
	GrandTotal   Row    `json:"grand_total"`
	CurrencyNote string `json:"currency_note,omitempty"`
}

type TaxInfoBlock struct {
	Lines []string `json:"lines"`
}

type QRBlock struct {
	Caption string `json:"caption"`
	Data    string `json:"data"`
}

type TextBlock struct {
	Text string `json:"text"`
}

func (CompanyHeaderBlock) kind() string { return "company_header" }
func (InvoiceHeaderBlock) kind() string { return "invoice_header" }
func (OrderDetailsBlock) kind() string  { return "order_details" }
func (ItemsTableBlock) kind() string    { return "items_table" }
func (TotalsBlock) kind() string        { return "totals" }
func (TaxInfoBlock) kind() string       { return "tax_info" }
func (QRBlock) kind() string            { return "qr" }
func (TextBlock) kind() string          { return "text" }

// Document is an invoice with its sections in final order
type Document struct {
	Invoice  *entity.Invoice           `json:"invoice"`
	Sections []sections.Section[Block] `json:"sections"`
}
