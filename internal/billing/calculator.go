package billing

import (
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Input is everything one breakdown depends on
type Input struct {
	Items    []Item
	Settings Settings
	Discount Discount
	// ServiceChargeOverride replaces Settings.ServiceChargePercentage when set
	ServiceChargeOverride *decimal.Decimal
	DisplayCurrency       string
}

// Calculator computes invoice breakdowns. It holds only the immutable
// converter, so one instance may serve any number of concurrent requests.
type Calculator struct {
	converter *Converter
}

// NewCalculator creates a calculator converting through c
func NewCalculator(c *Converter) *Calculator {
	return &Calculator{converter: c}
}

// Converter returns the currency converter in use
func (c *Calculator) Converter() *Converter {
	return c.converter
}

// Compute derives the breakdown for in. The order of operations is fixed:
// service charge is added before the discount is taken off, the discounted
// total is clamped at zero, GST and VAT apply to the discounted total and cess
// applies to the discounted total plus GST and VAT.
func (c *Calculator) Compute(in Input) Breakdown {
	items := NormalizeItemList(in.Items)

	subtotalBase := decimal.Zero
	costBase := decimal.Zero
	for _, it := range items {
		subtotalBase = subtotalBase.Add(it.LineTotal())
		if it.CalculatedCost != nil {
			costBase = costBase.Add(it.CalculatedCost.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}

	subtotal := c.converter.Convert(subtotalBase, in.DisplayCurrency)

	serviceChargeRate := in.Settings.ServiceChargePercentage
	if in.ServiceChargeOverride != nil {
		serviceChargeRate = *in.ServiceChargeOverride
	}
	serviceCharge := nonNegative(percentOf(subtotal, serviceChargeRate))

	beforeDiscount := subtotal.Add(serviceCharge)

	// a percentage discount is taken from the service-charge inclusive total
	discount := decimal.Zero
	switch {
	case in.Discount.IsNone():
	case in.Discount.Type == enum.DiscountTypePercentage:
		discount = percentOf(beforeDiscount, in.Discount.Value)
	default:
		discount = c.converter.Convert(in.Discount.Value, in.DisplayCurrency)
	}
	discount = nonNegative(discount)

	afterDiscount := nonNegative(beforeDiscount.Sub(discount))

	policy := ResolveTaxPolicy(in.Settings)
	gst, vat, cess := decimal.Zero, decimal.Zero, decimal.Zero
	if policy.ApplyTaxes {
		gst = nonNegative(percentOf(afterDiscount, policy.GSTRate))
		vat = nonNegative(percentOf(afterDiscount, policy.VATRate))
		cess = nonNegative(percentOf(afterDiscount.Add(gst).Add(vat), policy.CessRate))
	}

	return Breakdown{
		Currency:                c.converter.Resolve(in.DisplayCurrency),
		SubtotalBase:            subtotalBase,
		SubtotalDisplay:         subtotal,
		ServiceChargeRate:       serviceChargeRate,
		ServiceChargeAmount:     serviceCharge,
		DiscountAmount:          discount,
		TotalBeforeDiscount:     beforeDiscount,
		TotalAfterDiscount:      afterDiscount,
		GSTRate:                 policy.GSTRate,
		VATRate:                 policy.VATRate,
		CessRate:                policy.CessRate,
		TaxesApplied:            policy.ApplyTaxes,
		GSTAmount:               gst,
		VATAmount:               vat,
		CessAmount:              cess,
		GrandTotal:              afterDiscount.Add(gst).Add(vat).Add(cess),
		TotalCalculatedCostBase: costBase,
	}
}
