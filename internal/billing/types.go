package billing

import (
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Item is a normalized order line. Price and CalculatedCost are in the base currency.
type Item struct {
	MenuItemID      string           `json:"menuItemId"`
	Name            string           `json:"name"`
	Price           decimal.Decimal  `json:"price"`
	Quantity        int              `json:"quantity"`
	SelectedPortion string           `json:"selectedPortion,omitempty"`
	Note            string           `json:"note,omitempty"`
	CalculatedCost  *decimal.Decimal `json:"currentCalculatedCost,omitempty"`
}

// LineTotal is price × quantity in the base currency
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Settings is the tax and service-charge subset of an outlet's invoice settings.
// Zero values are the documented defaults: 0 for numbers, false for flags.
type Settings struct {
	ServiceChargePercentage decimal.Decimal
	GSTPercentage           decimal.Decimal // informational fallback, superseded by TaxPolicy rules
	VATPercentage           decimal.Decimal
	CessPercentage          decimal.Decimal
	IsCompositionScheme     bool
	EstablishmentType       enum.EstablishmentType
	HotelTariffBracket      enum.TariffBracket
}

// Breakdown is the full financial result for one order. It is created fresh on
// every call and never mutated afterwards.
type Breakdown struct {
	Currency                string          `json:"currency"`
	SubtotalBase            decimal.Decimal `json:"subtotalBase"`
	SubtotalDisplay         decimal.Decimal `json:"subtotalDisplay"`
	ServiceChargeRate       decimal.Decimal `json:"serviceChargeRate"`
	ServiceChargeAmount     decimal.Decimal `json:"serviceChargeAmount"`
	DiscountAmount          decimal.Decimal `json:"discountAmount"`
	TotalBeforeDiscount     decimal.Decimal `json:"totalBeforeDiscount"`
	TotalAfterDiscount      decimal.Decimal `json:"totalAfterDiscount"`
	GSTRate                 decimal.Decimal `json:"gstRate"`
	VATRate                 decimal.Decimal `json:"vatRate"`
	CessRate                decimal.Decimal `json:"cessRate"`
	TaxesApplied            bool            `json:"taxesApplied"`
	GSTAmount               decimal.Decimal `json:"gstAmount"`
	VATAmount               decimal.Decimal `json:"vatAmount"`
	CessAmount              decimal.Decimal `json:"cessAmount"`
	GrandTotal              decimal.Decimal `json:"grandTotal"`
	TotalCalculatedCostBase decimal.Decimal `json:"totalCalculatedCostBase"`
}

// MarginBase is the base-currency subtotal minus the calculated cost of goods
func (b Breakdown) MarginBase() decimal.Decimal {
	return b.SubtotalBase.Sub(b.TotalCalculatedCostBase)
}
