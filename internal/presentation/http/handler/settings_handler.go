package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/hospitality-pos/internal/application/service"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/dto/response"
)

// SettingsHandler handles invoice settings requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the outlet's invoice settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetInvoiceSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", response.NewInvoiceSettingsResponse(settings))
}

// GetSectionOrder retrieves the effective invoice section order
func (h *SettingsHandler) GetSectionOrder(c *gin.Context) {
	order, err := h.settingsService.GetSectionOrder(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Section order retrieved successfully", gin.H{"invoice_section_order": order})
}

// UpdateSettings replaces the outlet's invoice settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateInvoiceSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	settings, err := h.settingsService.UpdateInvoiceSettings(c.Request.Context(), &service.UpdateInvoiceSettingsInput{
		ServiceChargePercentage: req.ServiceChargePercentage,
		GSTPercentage:           req.GSTPercentage,
		VATPercentage:           req.VATPercentage,
		CessPercentage:          req.CessPercentage,
		IsCompositionScheme:     req.IsCompositionScheme,
		EstablishmentType:       req.EstablishmentType,
		HotelTariffBracket:      req.HotelTariffBracket,
		SectionOrder:            req.InvoiceSectionOrder,
		CompanyName:             req.CompanyName,
		Address:                 req.Address,
		Phone:                   req.Phone,
		Email:                   req.Email,
		TaxID:                   req.TaxID,
		FooterText1:             req.FooterText1,
		FooterText2:             req.FooterText2,
		ClosingMessage:          req.ClosingMessage,
		OrderQRBaseURL:          req.OrderQRBaseURL,
		PaymentQRURL:            req.PaymentQRURL,
		DefaultLanguage:         req.DefaultLanguage,
		DefaultCurrency:         req.DefaultCurrency,
		ShowCompanyHeader:       req.ShowCompanyHeader,
		ShowInvoiceHeader:       req.ShowInvoiceHeader,
		ShowOrderDetails:        req.ShowOrderDetails,
		ShowTaxInfo:             req.ShowTaxInfo,
		ShowOrderQR:             req.ShowOrderQR,
		ShowPaymentQR:           req.ShowPaymentQR,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", response.NewInvoiceSettingsResponse(settings))
}
