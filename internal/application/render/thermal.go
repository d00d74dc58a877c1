package render

import (
	"strconv"

	"github.com/sangkips/hospitality-pos/pkg/printer"
)

const qrModuleSize = 6

// Thermal renders doc as ESC/POS bytes for a printer with width columns
func Thermal(doc Document, width int) []byte {
	d := printer.NewDocument(width)

	for _, s := range doc.Sections {
		switch b := s.Content.(type) {
		case CompanyHeaderBlock:
			d.SetAlign(printer.AlignCenter).
				SetBold(true).
				SetFontSize(printer.FontDouble).
				Wrapped(b.Name).
				SetFontSize(printer.FontNormal).
				SetBold(false)
			for _, line := range []string{b.Address, b.Phone, b.Email} {
				if line != "" {
					d.Wrapped(line)
				}
			}
			d.SetAlign(printer.AlignLeft)

		case InvoiceHeaderBlock:
			d.SetAlign(printer.AlignCenter).
				SetBold(true).
				Text(b.Title).
				SetBold(false).
				SetAlign(printer.AlignLeft).
				KeyValue(b.InvoiceNo.Label, b.InvoiceNo.Value).
				KeyValue(b.Date.Label, b.Date.Value)

		case OrderDetailsBlock:
			for _, r := range b.Rows {
				d.KeyValue(r.Label, r.Value)
			}

		case ItemsTableBlock:
			d.Separator('-').
				SetBold(true).
				KeyValue(b.QtyLabel+" "+b.ItemLabel, b.AmountLabel).
				SetBold(false).
				Separator('-')
			for _, l := range b.Lines {
				d.ItemLine(l.Quantity, l.Name, l.Amount)
				if l.Detail != "" {
					d.Wrapped("   " + l.Detail)
				}
			}

		case TotalsBlock:
			d.Separator('-')
			for _, r := range b.Rows {
				d.KeyValue(r.Label, r.Value)
			}
			d.SetBold(true).
				KeyValue(b.GrandTotal.Label, b.GrandTotal.Value).
				SetBold(false)
			if b.CurrencyNote != "" {
				d.Text(b.CurrencyNote)
			}
			d.Separator('-')

		case TaxInfoBlock:
			for _, line := range b.Lines {
				d.Wrapped(line)
			}

		case QRBlock:
			d.SetAlign(printer.AlignCenter).
				Text(b.Caption).
				QRCode(b.Data, qrModuleSize).
				SetAlign(printer.AlignLeft)

		case TextBlock:
			d.SetAlign(printer.AlignCenter).
				Wrapped(b.Text).
				SetAlign(printer.AlignLeft)
		}
	}

	d.FeedLines(3).PartialCut()
	return d.Bytes()
}

// TestPage is a fixed page used to check paper width and the QR command
func TestPage(width int) []byte {
	d := printer.NewDocument(width)
	d.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("PRINTER TEST").
		SetBold(false).
		Text(strconv.Itoa(width)+" columns").
		SetAlign(printer.AlignLeft).
		Separator('=').
		ItemLine(1, "Masala Chai", "40.00").
		ItemLine(2, "Vegetable Biryani with Raita", "480.00").
		Separator('-').
		KeyValue("Total", "520.00").
		SetAlign(printer.AlignCenter).
		QRCode("PRINTER TEST", qrModuleSize).
		SetAlign(printer.AlignLeft).
		FeedLines(3).
		PartialCut()
	return d.Bytes()
}
