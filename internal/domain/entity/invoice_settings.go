package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hospitality-pos/internal/billing"
	"github.com/sangkips/hospitality-pos/internal/billing/sections"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceSettings is the per-outlet configuration of tax, service charge and
// invoice presentation. Visibility flags are pointers: nil means the default.
type InvoiceSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OutletID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"outlet_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Tax and service charge
	ServiceChargePercentage decimal.Decimal        `gorm:"type:numeric(5,2);not null;default:0" json:"service_charge_percentage"`
	GSTPercentage           decimal.Decimal        `gorm:"type:numeric(5,2);not null;default:0" json:"gst_percentage"`
	VATPercentage           decimal.Decimal        `gorm:"type:numeric(5,2);not null;default:0" json:"vat_percentage"`
	CessPercentage          decimal.Decimal        `gorm:"type:numeric(5,2);not null;default:0" json:"cess_percentage"`
	IsCompositionScheme     bool                   `gorm:"not null" json:"is_composition_scheme"`
	EstablishmentType       enum.EstablishmentType `gorm:"size:20;not null;default:'standalone'" json:"establishment_type"`
	HotelTariffBracket      enum.TariffBracket     `gorm:"size:20" json:"hotel_tariff_bracket,omitempty"`

	// Layout
	InvoiceSectionOrder string `gorm:"type:text" json:"-"`

	// Presentation
	CompanyName     string `gorm:"size:255" json:"company_name"`
	Address         string `gorm:"size:500" json:"address"`
	Phone           string `gorm:"size:50" json:"phone"`
	Email           string `gorm:"size:255" json:"email"`
	TaxID           string `gorm:"size:50" json:"tax_id"`
	FooterText1     string `gorm:"size:500" json:"footer_text_1"`
	FooterText2     string `gorm:"size:500" json:"footer_text_2"`
	ClosingMessage  string `gorm:"size:500" json:"closing_message"`
	OrderQRBaseURL  string `gorm:"size:500" json:"order_qr_base_url"`
	PaymentQRURL    string `gorm:"size:500" json:"payment_qr_url"`
	DefaultLanguage string `gorm:"size:10;default:'en'" json:"default_language"`
	DefaultCurrency string `gorm:"size:3" json:"default_currency"`

	// Visibility
	ShowCompanyHeader *bool `json:"show_company_header"`
	ShowInvoiceHeader *bool `json:"show_invoice_header"`
	ShowOrderDetails  *bool `json:"show_order_details"`
	ShowTaxInfo       *bool `json:"show_tax_info"`
	ShowOrderQR       *bool `json:"show_order_qr"`
	ShowPaymentQR     *bool `json:"show_payment_qr"`
}

// BillingSettings returns the subset the calculator needs
func (s *InvoiceSettings) BillingSettings() billing.Settings {
	if s == nil {
		return billing.Settings{}
	}
	return billing.Settings{
		ServiceChargePercentage: s.ServiceChargePercentage,
		GSTPercentage:           s.GSTPercentage,
		VATPercentage:           s.VATPercentage,
		CessPercentage:          s.CessPercentage,
		IsCompositionScheme:     s.IsCompositionScheme,
		EstablishmentType:       s.EstablishmentType,
		HotelTariffBracket:      s.HotelTariffBracket,
	}
}

// SectionOrder returns the persisted section order, or the default one
func (s *InvoiceSettings) SectionOrder() []sections.Key {
	if s == nil {
		return sections.Default()
	}
	return sections.ParseOrder(s.InvoiceSectionOrder)
}

// Visible reports whether the section behind key may be shown. Structural
// sections default to shown; sections without a flag are always allowed.
func (s *InvoiceSettings) Visible(key sections.Key) bool {
	if s == nil {
		return true
	}
	var flag *bool
	switch key {
	case sections.CompanyHeader:
		flag = s.ShowCompanyHeader
	case sections.InvoiceHeader:
		flag = s.ShowInvoiceHeader
	case sections.OrderDetails:
		flag = s.ShowOrderDetails
	case sections.TaxInfo:
		flag = s.ShowTaxInfo
	case sections.OrderQR:
		flag = s.ShowOrderQR
	case sections.PaymentQR:
		flag = s.ShowPaymentQR
	}
	return flag == nil || *flag
}

func (s *InvoiceSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (InvoiceSettings) TableName() string {
	return "invoice_settings"
}
