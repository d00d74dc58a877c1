package response

import (
	"github.com/sangkips/hospitality-pos/internal/billing/sections"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
)

// InvoiceSettingsResponse exposes the settings with the effective section order
type InvoiceSettingsResponse struct {
	*entity.InvoiceSettings
	InvoiceSectionOrder []sections.Key `json:"invoice_section_order"`
}

// NewInvoiceSettingsResponse wraps settings for output
func NewInvoiceSettingsResponse(settings *entity.InvoiceSettings) InvoiceSettingsResponse {
	return InvoiceSettingsResponse{
		InvoiceSettings:     settings,
		InvoiceSectionOrder: settings.SectionOrder(),
	}
}
