package render

import (
	"strings"

	"github.com/sangkips/hospitality-pos/internal/billing"
	"github.com/sangkips/hospitality-pos/internal/billing/sections"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/sangkips/hospitality-pos/pkg/labels"
	"github.com/shopspring/decimal"
)

const dateLayout = "02 Jan 2006 15:04"

// Compose builds the content of every section that has something to show
// and arranges it in the outlet's section order. inv.Sections is set to the
// keys that made it.
func Compose(inv *entity.Invoice, settings *entity.InvoiceSettings, baseCurrency string) Document {
	content := Content(inv, settings, baseCurrency)
	arranged := sections.Arrange(settings.SectionOrder(), content)

	keys := make([]sections.Key, 0, len(arranged))
	for _, s := range arranged {
		keys = append(keys, s.Key)
	}
	inv.Sections = keys

	return Document{Invoice: inv, Sections: arranged}
}

// Content maps each section key to its block. A key is absent when the
// section is hidden by settings or has no data.
func Content(inv *entity.Invoice, settings *entity.InvoiceSettings, baseCurrency string) map[sections.Key]Block {
	lbl := labels.For(inv.Language)
	if settings == nil {
		settings = &entity.InvoiceSettings{}
	}
	content := make(map[sections.Key]Block, 11)

	if settings.Visible(sections.CompanyHeader) && settings.CompanyName != "" {
		content[sections.CompanyHeader] = CompanyHeaderBlock{
			Name:    settings.CompanyName,
			Address: settings.Address,
			Phone:   settings.Phone,
			Email:   settings.Email,
		}
	}

	if settings.Visible(sections.InvoiceHeader) {
		content[sections.InvoiceHeader] = InvoiceHeaderBlock{
			Title:     lbl.Get(labels.Invoice),
			InvoiceNo: Row{Label: lbl.Get(labels.InvoiceNo), Value: inv.InvoiceNo},
			Date:      Row{Label: lbl.Get(labels.Date), Value: inv.IssuedAt.Format(dateLayout)},
		}
	}

	if settings.Visible(sections.OrderDetails) {
		rows := []Row{{Label: lbl.Get(labels.OrderType), Value: orderTypeName(inv.OrderType)}}
		if inv.TableNumber != "" {
			rows = append(rows, Row{Label: lbl.Get(labels.Table), Value: inv.TableNumber})
		}
		if inv.CustomerName != "" {
			rows = append(rows, Row{Label: lbl.Get(labels.Customer), Value: inv.CustomerName})
		}
		content[sections.OrderDetails] = OrderDetailsBlock{Rows: rows}
	}

	if len(inv.Lines) > 0 {
		items := ItemsTableBlock{
			ItemLabel:   lbl.Get(labels.Item),
			QtyLabel:    lbl.Get(labels.Qty),
			AmountLabel: lbl.Get(labels.Amount),
		}
		for _, l := range inv.Lines {
			items.Lines = append(items.Lines, ItemRow{
				Quantity: l.Quantity,
				Name:     l.Name,
				Detail:   joinNonEmpty(" / ", l.Portion, l.Note),
				Amount:   billing.FormatDisplay(l.Total),
			})
		}
		content[sections.ItemsTable] = items
	}

	content[sections.Totals] = totals(inv.Breakdown, lbl, baseCurrency)

	if settings.Visible(sections.TaxInfo) {
		var lines []string
		if settings.TaxID != "" {
			lines = append(lines, lbl.Get(labels.TaxID)+": "+settings.TaxID)
		}
		if settings.IsCompositionScheme {
			lines = append(lines, lbl.Get(labels.Composition))
		}
		if len(lines) > 0 {
			content[sections.TaxInfo] = TaxInfoBlock{Lines: lines}
		}
	}

	if settings.Visible(sections.OrderQR) && settings.OrderQRBaseURL != "" {
		content[sections.OrderQR] = QRBlock{
			Caption: lbl.Get(labels.ScanToView),
			Data:    strings.TrimRight(settings.OrderQRBaseURL, "/") + "/" + inv.OrderID.String(),
		}
	}
	if settings.Visible(sections.PaymentQR) && settings.PaymentQRURL != "" {
		content[sections.PaymentQR] = QRBlock{
			Caption: lbl.Get(labels.ScanToPay),
			Data:    settings.PaymentQRURL,
		}
	}

	for key, text := range map[sections.Key]string{
		sections.FooterText1:    settings.FooterText1,
		sections.FooterText2:    settings.FooterText2,
		sections.ClosingMessage: settings.ClosingMessage,
	} {
		if strings.TrimSpace(text) != "" {
			content[key] = TextBlock{Text: text}
		}
	}

	return content
}

func totals(b billing.Breakdown, lbl labels.Set, baseCurrency string) TotalsBlock {
	rows := []Row{{Label: lbl.Get(labels.Subtotal), Value: billing.FormatDisplay(b.SubtotalDisplay)}}

	if b.ServiceChargeAmount.IsPositive() {
		rows = append(rows, Row{
			Label: withRate(lbl.Get(labels.ServiceCharge), b.ServiceChargeRate),
			Value: billing.FormatDisplay(b.ServiceChargeAmount),
		})
	}
	if b.DiscountAmount.IsPositive() {
		rows = append(rows, Row{
			Label: lbl.Get(labels.Discount),
			Value: "-" + billing.FormatDisplay(b.DiscountAmount),
		})
	}
	if b.TaxesApplied {
		for _, tax := range []struct {
			label  labels.Key
			rate   decimal.Decimal
			amount decimal.Decimal
		}{
			{labels.GST, b.GSTRate, b.GSTAmount},
			{labels.VAT, b.VATRate, b.VATAmount},
			{labels.Cess, b.CessRate, b.CessAmount},
		} {
			if !tax.rate.IsPositive() {
				continue
			}
			rows = append(rows, Row{
				Label: withRate(lbl.Get(tax.label), tax.rate),
				Value: billing.FormatDisplay(tax.amount),
			})
		}
	}

	block := TotalsBlock{
		Rows:       rows,
		GrandTotal: Row{Label: lbl.Get(labels.GrandTotal), Value: billing.FormatDisplay(b.GrandTotal)},
	}
	if b.Currency != "" && !strings.EqualFold(b.Currency, baseCurrency) {
		block.CurrencyNote = lbl.Get(labels.AmountsIn) + " " + b.Currency
	}
	return block
}

func withRate(label string, rate decimal.Decimal) string {
	return label + " (" + rate.String() + "%)"
}

func orderTypeName(t enum.OrderType) string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
