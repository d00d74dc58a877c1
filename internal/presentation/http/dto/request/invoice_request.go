package request

// InvoiceQuery carries the per-request invoice options. Amounts are decimal
// strings.
type InvoiceQuery struct {
	DiscountCode          string `form:"discount_code" binding:"omitempty,max=50"`
	DiscountType          string `form:"discount_type" binding:"omitempty,oneof=percentage fixed_amount"`
	DiscountValue         string `form:"discount_value"`
	ServiceChargeOverride string `form:"service_charge"`
	Currency              string `form:"currency" binding:"omitempty,len=3"`
	Language              string `form:"lang"`
}

// EmailInvoiceRequest names the recipient. An empty recipient falls back to
// the customer email on the order.
type EmailInvoiceRequest struct {
	Recipient string `json:"recipient" binding:"omitempty,email"`
}
