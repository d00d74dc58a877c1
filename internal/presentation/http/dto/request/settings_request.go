package request

import (
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// UpdateInvoiceSettingsRequest replaces the outlet's invoice settings
type UpdateInvoiceSettingsRequest struct {
	ServiceChargePercentage decimal.Decimal        `json:"service_charge_percentage"`
	GSTPercentage           decimal.Decimal        `json:"gst_percentage"`
	VATPercentage           decimal.Decimal        `json:"vat_percentage"`
	CessPercentage          decimal.Decimal        `json:"cess_percentage"`
	IsCompositionScheme     bool                   `json:"is_composition_scheme"`
	EstablishmentType       enum.EstablishmentType `json:"establishment_type"`
	HotelTariffBracket      enum.TariffBracket     `json:"hotel_tariff_bracket"`
	InvoiceSectionOrder     []string               `json:"invoice_section_order"`

	CompanyName     string `json:"company_name" binding:"max=255"`
	Address         string `json:"address" binding:"max=500"`
	Phone           string `json:"phone" binding:"max=50"`
	Email           string `json:"email" binding:"omitempty,email,max=255"`
	TaxID           string `json:"tax_id" binding:"max=50"`
	FooterText1     string `json:"footer_text_1" binding:"max=500"`
	FooterText2     string `json:"footer_text_2" binding:"max=500"`
	ClosingMessage  string `json:"closing_message" binding:"max=500"`
	OrderQRBaseURL  string `json:"order_qr_base_url" binding:"omitempty,url,max=500"`
	PaymentQRURL    string `json:"payment_qr_url" binding:"max=500"`
	DefaultLanguage string `json:"default_language" binding:"max=10"`
	DefaultCurrency string `json:"default_currency" binding:"omitempty,len=3"`

	ShowCompanyHeader *bool `json:"show_company_header"`
	ShowInvoiceHeader *bool `json:"show_invoice_header"`
	ShowOrderDetails  *bool `json:"show_order_details"`
	ShowTaxInfo       *bool `json:"show_tax_info"`
	ShowOrderQR       *bool `json:"show_order_qr"`
	ShowPaymentQR     *bool `json:"show_payment_qr"`
}
