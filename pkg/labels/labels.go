// Package labels holds the printed captions of an invoice in each supported language.
package labels

import "golang.org/x/text/language"

// Key names one caption
type Key string

const (
	Invoice       Key = "invoice"
	InvoiceNo     Key = "invoiceNo"
	Date          Key = "date"
	OrderType     Key = "orderType"
	Table         Key = "table"
	Customer      Key = "customer"
	Item          Key = "item"
	Qty           Key = "qty"
	Amount        Key = "amount"
	Subtotal      Key = "subtotal"
	ServiceCharge Key = "serviceCharge"
	Discount      Key = "discount"
	GST           Key = "gst"
	VAT           Key = "vat"
	Cess          Key = "cess"
	GrandTotal    Key = "grandTotal"
	TaxID         Key = "taxId"
	Composition   Key = "composition"
	ScanToView    Key = "scanToView"
	ScanToPay     Key = "scanToPay"
	AmountsIn     Key = "amountsIn"
	ThankYou      Key = "thankYou"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Hindi,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

var catalog = map[language.Tag]map[Key]string{
	language.English: {
		Invoice:       "Tax Invoice",
		InvoiceNo:     "Invoice No",
		Date:          "Date",
		OrderType:     "Order Type",
		Table:         "Table",
		Customer:      "Customer",
		Item:          "Item",
		Qty:           "Qty",
		Amount:        "Amount",
		Subtotal:      "Subtotal",
		ServiceCharge: "Service Charge",
		Discount:      "Discount",
		GST:           "GST",
		VAT:           "VAT",
		Cess:          "Cess",
		GrandTotal:    "Grand Total",
		TaxID:         "GSTIN",
		Composition:   "Composition taxable person, not eligible to collect tax on supplies",
		ScanToView:    "Scan to view your order",
		ScanToPay:     "Scan to pay",
		AmountsIn:     "Amounts in",
		ThankYou:      "Thank you, visit again!",
	},
	language.Hindi: {
		Invoice:       "कर चालान",
		InvoiceNo:     "चालान संख्या",
		Date:          "दिनांक",
		OrderType:     "ऑर्डर प्रकार",
		Table:         "टेबल",
		Customer:      "ग्राहक",
		Item:          "वस्तु",
		Qty:           "मात्रा",
		Amount:        "राशि",
		Subtotal:      "उप-योग",
		ServiceCharge: "सेवा शुल्क",
		Discount:      "छूट",
		GST:           "जीएसटी",
		VAT:           "वैट",
		Cess:          "उपकर",
		GrandTotal:    "कुल योग",
		TaxID:         "जीएसटीआईएन",
		Composition:   "कंपोज़िशन करदाता, आपूर्ति पर कर वसूलने के पात्र नहीं",
		ScanToView:    "अपना ऑर्डर देखने के लिए स्कैन करें",
		ScanToPay:     "भुगतान के लिए स्कैन करें",
		AmountsIn:     "राशि मुद्रा",
		ThankYou:      "धन्यवाद, फिर पधारें!",
	},
	language.Spanish: {
		Invoice:       "Factura",
		InvoiceNo:     "Factura N.º",
		Date:          "Fecha",
		OrderType:     "Tipo de pedido",
		Table:         "Mesa",
		Customer:      "Cliente",
		Item:          "Artículo",
		Qty:           "Cant.",
		Amount:        "Importe",
		Subtotal:      "Subtotal",
		ServiceCharge: "Cargo por servicio",
		Discount:      "Descuento",
		GST:           "GST",
		VAT:           "IVA",
		Cess:          "Recargo",
		GrandTotal:    "Total",
		TaxID:         "NIF",
		Composition:   "Contribuyente en régimen de composición, no recauda impuestos",
		ScanToView:    "Escanea para ver tu pedido",
		ScanToPay:     "Escanea para pagar",
		AmountsIn:     "Importes en",
		ThankYou:      "¡Gracias, vuelva pronto!",
	},
}

// Set is the caption table for one language
type Set struct {
	tag     language.Tag
	entries map[Key]string
}

// For picks the best supported language for the given BCP 47 preferences
// (an Accept-Language header value works). Unknown or empty input gets English.
func For(preferences ...string) Set {
	var tags []language.Tag
	for _, p := range preferences {
		if p == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}

	_, index, confidence := matcher.Match(tags...)
	tag := supported[0]
	if confidence != language.No {
		tag = supported[index]
	}
	return Set{tag: tag, entries: catalog[tag]}
}

// Language is the chosen tag, e.g. "hi"
func (s Set) Language() string {
	if s.entries == nil {
		return supported[0].String()
	}
	return s.tag.String()
}

// Get returns the caption for k, falling back to English
func (s Set) Get(k Key) string {
	if v, ok := s.entries[k]; ok {
		return v
	}
	if v, ok := catalog[supported[0]][k]; ok {
		return v
	}
	return string(k)
}
