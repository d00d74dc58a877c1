package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hospitality-pos/internal/billing"
	"github.com/sangkips/hospitality-pos/internal/billing/sections"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleInvoice() *entity.Invoice {
	return &entity.Invoice{
		InvoiceNo:   "INV-20260519-0A1B2C3D",
		OrderID:     uuid.MustParse("3d2c1b0a-5e4f-4a3b-9c8d-7e6f5a4b3c2d"),
		IssuedAt:    time.Date(2026, 5, 19, 20, 30, 0, 0, time.UTC),
		OrderType:   enum.OrderTypeDineIn,
		TableNumber: "T4",
		Language:    "en",
		Lines: []entity.InvoiceLine{
			{Name: "Paneer Tikka", Portion: "Full", Quantity: 2, UnitPrice: dec("300"), Total: dec("600")},
			{Name: "Dal Makhani", Quantity: 1, UnitPrice: dec("400"), Total: dec("400")},
		},
		Breakdown: billing.Breakdown{
			Currency:            "INR",
			SubtotalDisplay:     dec("1000"),
			ServiceChargeRate:   dec("10"),
			ServiceChargeAmount: dec("100"),
			DiscountAmount:      dec("110"),
			TotalBeforeDiscount: dec("1100"),
			TotalAfterDiscount:  dec("990"),
			GSTRate:             dec("5"),
			GSTAmount:           dec("49.5"),
			TaxesApplied:        true,
			GrandTotal:          dec("1039.5"),
		},
	}
}

func hidden() *bool {
	f := false
	return &f
}

func keys(doc Document) []sections.Key {
	out := make([]sections.Key, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		out = append(out, s.Key)
	}
	return out
}

func TestCompose_DefaultOrderSkipsEmptySections(t *testing.T) {
	settings := &entity.InvoiceSettings{
		CompanyName: "Spice Route",
		TaxID:       "29ABCDE1234F1Z5",
		FooterText1: "Thank you for dining with us",
	}
	inv := sampleInvoice()
	doc := Compose(inv, settings, "INR")

	want := []sections.Key{
		sections.CompanyHeader, sections.InvoiceHeader, sections.OrderDetails,
		sections.ItemsTable, sections.Totals, sections.TaxInfo, sections.FooterText1,
	}
	got := keys(doc)
	if len(got) != len(want) {
		t.Fatalf("sections: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d: got %s, want %s", i, got[i], want[i])
		}
	}
	if len(inv.Sections) != len(want) {
		t.Errorf("invoice sections not recorded: %v", inv.Sections)
	}
}

func TestCompose_CustomOrderWithoutItemsTable(t *testing.T) {
	settings := &entity.InvoiceSettings{
		CompanyName: "Spice Route",
		InvoiceSectionOrder: sections.EncodeOrder([]sections.Key{
			sections.Totals, sections.InvoiceHeader, sections.CompanyHeader,
		}),
	}
	doc := Compose(sampleInvoice(), settings, "INR")

	got := keys(doc)
	want := []sections.Key{sections.Totals, sections.InvoiceHeader, sections.CompanyHeader}
	if len(got) != 3 {
		t.Fatalf("sections: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestContent_Visibility(t *testing.T) {
	settings := &entity.InvoiceSettings{
		CompanyName:       "Spice Route",
		ShowCompanyHeader: hidden(),
		ShowOrderDetails:  hidden(),
		OrderQRBaseURL:    "https://menu.example.com/orders/",
		PaymentQRURL:      "upi://pay?pa=spiceroute@upi",
		ShowPaymentQR:     hidden(),
	}
	content := Content(sampleInvoice(), settings, "INR")

	for _, k := range []sections.Key{sections.CompanyHeader, sections.OrderDetails, sections.PaymentQR, sections.TaxInfo, sections.FooterText2} {
		if _, ok := content[k]; ok {
			t.Errorf("%s should be absent", k)
		}
	}
	qr, ok := content[sections.OrderQR].(QRBlock)
	if !ok {
		t.Fatalf("order QR missing")
	}
	if qr.Data != "https://menu.example.com/orders/3d2c1b0a-5e4f-4a3b-9c8d-7e6f5a4b3c2d" {
		t.Errorf("qr data: got %s", qr.Data)
	}
}

func TestContent_Totals(t *testing.T) {
	inv := sampleInvoice()
	inv.Breakdown.Currency = "USD"
	totals, ok := Content(inv, nil, "INR")[sections.Totals].(TotalsBlock)
	if !ok {
		t.Fatal("totals missing")
	}

	wantRows := []Row{
		{Label: "Subtotal", Value: "1000.00"},
		{Label: "Service Charge (10%)", Value: "100.00"},
		{Label: "Discount", Value: "-110.00"},
		{Label: "GST (5%)", Value: "49.50"},
	}
	if len(totals.Rows) != len(wantRows) {
		t.Fatalf("rows: got %+v", totals.Rows)
	}
	for i, want := range wantRows {
		if totals.Rows[i] != want {
			t.Errorf("row %d: got %+v, want %+v", i, totals.Rows[i], want)
		}
	}
	if totals.GrandTotal.Value != "1039.50" {
		t.Errorf("grand total: got %s", totals.GrandTotal.Value)
	}
	if totals.CurrencyNote != "Amounts in USD" {
		t.Errorf("currency note: got %q", totals.CurrencyNote)
	}
}

func TestContent_CompositionSchemeNote(t *testing.T) {
	inv := sampleInvoice()
	inv.Breakdown.TaxesApplied = false
	settings := &entity.InvoiceSettings{IsCompositionScheme: true}

	content := Content(inv, settings, "INR")
	info, ok := content[sections.TaxInfo].(TaxInfoBlock)
	if !ok || len(info.Lines) != 1 || !strings.Contains(info.Lines[0], "Composition") {
		t.Errorf("tax info: got %+v", content[sections.TaxInfo])
	}
	for _, r := range content[sections.Totals].(TotalsBlock).Rows {
		if strings.HasPrefix(r.Label, "GST") {
			t.Errorf("gst row printed under composition scheme")
		}
	}
}

func TestContent_Language(t *testing.T) {
	inv := sampleInvoice()
	inv.Language = "hi"
	header := Content(inv, nil, "INR")[sections.InvoiceHeader].(InvoiceHeaderBlock)
	if header.Title == "Tax Invoice" || header.Title == "" {
		t.Errorf("title not translated: %q", header.Title)
	}
}

func TestThermal(t *testing.T) {
	settings := &entity.InvoiceSettings{
		CompanyName:    "Spice Route",
		OrderQRBaseURL: "https://menu.example.com/orders",
	}
	doc := Compose(sampleInvoice(), settings, "INR")
	data := Thermal(doc, 32)

	for _, want := range [][]byte{
		[]byte("Spice Route"),
		[]byte("INV-20260519-0A1B2C3D"),
		[]byte("1039.50"),
		{0x1D, '(', 'k'},
		[]byte("https://menu.example.com/orders/3d2c1b0a-5e4f-4a3b-9c8d-7e6f5a4b3c2d"),
	} {
		if !bytes.Contains(data, want) {
			t.Errorf("thermal output missing %q", want)
		}
	}
}

func TestHTML(t *testing.T) {
	settings := &entity.InvoiceSettings{
		CompanyName: "Spice & Co",
		FooterText1: "See you soon",
	}
	doc := Compose(sampleInvoice(), settings, "INR")
	page, err := HTML(doc)
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	html := string(page)

	for _, want := range []string{
		`<html lang="en">`,
		"Spice &amp; Co",
		`<section class="itemsTable">`,
		"1039.50",
		"See you soon",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
	if strings.Index(html, "companyHeader") > strings.Index(html, "totals") {
		t.Errorf("sections out of order")
	}
}
