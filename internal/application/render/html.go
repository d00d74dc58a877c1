package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// htmlSection exposes one block under a field named after its type so the
// template can branch with {{with}}
type htmlSection struct {
	Key          string
	Company      *CompanyHeaderBlock
	Header       *InvoiceHeaderBlock
	OrderDetails *OrderDetailsBlock
	Items        *ItemsTableBlock
	Totals       *TotalsBlock
	TaxInfo      *TaxInfoBlock
	QR           *QRBlock
	Text         *TextBlock
}

type htmlView struct {
	Lang     string
	Title    string
	Sections []htmlSection
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(invoiceHTML))

// HTML renders doc as a standalone print preview page
func HTML(doc Document) ([]byte, error) {
	view := htmlView{
		Lang:  doc.Invoice.Language,
		Title: doc.Invoice.InvoiceNo,
	}
	for _, s := range doc.Sections {
		hs := htmlSection{Key: string(s.Key)}
		switch b := s.Content.(type) {
		case CompanyHeaderBlock:
			hs.Company = &b
		case InvoiceHeaderBlock:
			hs.Header = &b
		case OrderDetailsBlock:
			hs.OrderDetails = &b
		case ItemsTableBlock:
			hs.Items = &b
		case TotalsBlock:
			hs.Totals = &b
		case TaxInfoBlock:
			hs.TaxInfo = &b
		case QRBlock:
			hs.QR = &b
		case TextBlock:
			hs.Text = &b
		default:
			return nil, fmt.Errorf("render: unsupported block %T for section %s", s.Content, s.Key)
		}
		view.Sections = append(view.Sections, hs)
	}

	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render: failed to execute invoice template: %w", err)
	}
	return buf.Bytes(), nil
}

const invoiceHTML = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
body { font-family: 'Segoe UI', Tahoma, sans-serif; max-width: 420px; margin: 24px auto; color: #1a1a2e; }
section { padding: 6px 0; }
.center { text-align: center; }
.company h1 { margin: 0; font-size: 22px; }
.muted { color: #4a5568; font-size: 13px; margin: 2px 0; }
table { width: 100%; border-collapse: collapse; }
td, th { padding: 3px 0; font-size: 14px; }
th { border-bottom: 1px solid #cbd5e0; text-align: left; }
.num { text-align: right; }
.grand td { font-weight: 700; border-top: 1px solid #1a1a2e; font-size: 16px; }
.detail { color: #718096; font-size: 12px; }
.qr { border: 1px dashed #cbd5e0; padding: 8px; word-break: break-all; }
</style>
</head>
<body>
{{range .Sections}}<section class="{{.Key}}">
{{with .Company}}<div class="company center">
<h1>{{.Name}}</h1>
{{if .Address}}<p class="muted">{{.Address}}</p>{{end}}
{{if .Phone}}<p class="muted">{{.Phone}}</p>{{end}}
{{if .Email}}<p class="muted">{{.Email}}</p>{{end}}
</div>{{end}}
{{with .Header}}<h2 class="center">{{.Title}}</h2>
<table>
<tr><td>{{.InvoiceNo.Label}}</td><td class="num">{{.InvoiceNo.Value}}</td></tr>
<tr><td>{{.Date.Label}}</td><td class="num">{{.Date.Value}}</td></tr>
</table>{{end}}
{{with .OrderDetails}}<table>
{{range .Rows}}<tr><td>{{.Label}}</td><td class="num">{{.Value}}</td></tr>
{{end}}</table>{{end}}
{{with .Items}}<table>
<tr><th>{{.QtyLabel}}</th><th>{{.ItemLabel}}</th><th class="num">{{.AmountLabel}}</th></tr>
{{range .Lines}}<tr><td>{{.Quantity}}</td><td>{{.Name}}{{if .Detail}}<div class="detail">{{.Detail}}</div>{{end}}</td><td class="num">{{.Amount}}</td></tr>
{{end}}</table>{{end}}
{{with .Totals}}<table>
{{range .Rows}}<tr><td>{{.Label}}</td><td class="num">{{.Value}}</td></tr>
{{end}}<tr class="grand"><td>{{.GrandTotal.Label}}</td><td class="num">{{.GrandTotal.Value}}</td></tr>
</table>
{{if .CurrencyNote}}<p class="muted">{{.CurrencyNote}}</p>{{end}}{{end}}
{{with .TaxInfo}}{{range .Lines}}<p class="muted">{{.}}</p>
{{end}}{{end}}
{{with .QR}}<div class="center"><p class="muted">{{.Caption}}</p><div class="qr" data-qr="{{.Data}}">{{.Data}}</div></div>{{end}}
{{with .Text}}<p class="center">{{.Text}}</p>{{end}}
</section>
{{end}}</body>
</html>
`
