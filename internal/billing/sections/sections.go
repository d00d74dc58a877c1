// Package sections decides which invoice sections are rendered and in what order.
package sections

import (
	"encoding/json"
	"strings"
)

// Key names one invoice section
type Key string

const (
	CompanyHeader  Key = "companyHeader"
	InvoiceHeader  Key = "invoiceHeader"
	OrderDetails   Key = "orderDetails"
	ItemsTable     Key = "itemsTable"
	Totals         Key = "totals"
	TaxInfo        Key = "taxInfo"
	OrderQR        Key = "orderQR"
	PaymentQR      Key = "paymentQR"
	FooterText1    Key = "footerText1"
	FooterText2    Key = "footerText2"
	ClosingMessage Key = "closingMessage"
)

var defaultOrder = []Key{
	CompanyHeader,
	InvoiceHeader,
	OrderDetails,
	ItemsTable,
	Totals,
	TaxInfo,
	OrderQR,
	PaymentQR,
	FooterText1,
	FooterText2,
	ClosingMessage,
}

// Default returns a fresh copy of the canonical section order
func Default() []Key {
	out := make([]Key, len(defaultOrder))
	copy(out, defaultOrder)
	return out
}

// IsValid reports whether k belongs to the section vocabulary
func (k Key) IsValid() bool {
	for _, d := range defaultOrder {
		if d == k {
			return true
		}
	}
	return false
}

// Normalize keeps the known keys of order, first occurrence wins.
// It reports false when nothing usable remains.
func Normalize(order []Key) ([]Key, bool) {
	seen := make(map[Key]bool, len(order))
	out := make([]Key, 0, len(order))
	for _, k := range order {
		if !k.IsValid() || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out, len(out) > 0
}

// ParseOrder reads a persisted section order. Missing or corrupt data, or a
// list with no known keys, yields the default order.
func ParseOrder(raw string) []Key {
	if strings.TrimSpace(raw) == "" {
		return Default()
	}
	var keys []Key
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return Default()
	}
	out, ok := Normalize(keys)
	if !ok {
		return Default()
	}
	return out
}

// EncodeOrder serializes order for storage
func EncodeOrder(order []Key) string {
	data, err := json.Marshal(order)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// Section is one renderable unit in its final position
type Section[T any] struct {
	Key     Key `json:"key"`
	Content T   `json:"content"`
}

// Arrange walks order and keeps the keys present in content, preserving the
// persisted relative order. A key absent from content has nothing to render.
func Arrange[T any](order []Key, content map[Key]T) []Section[T] {
	out := make([]Section[T], 0, len(order))
	for _, k := range order {
		c, ok := content[k]
		if !ok {
			continue
		}
		out = append(out, Section[T]{Key: k, Content: c})
	}
	return out
}
