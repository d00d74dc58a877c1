package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/hospitality-pos/internal/billing"
	"github.com/sangkips/hospitality-pos/internal/billing/sections"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/sangkips/hospitality-pos/internal/domain/repository"
	infraRepo "github.com/sangkips/hospitality-pos/internal/infrastructure/repository"
	"github.com/sangkips/hospitality-pos/pkg/apperror"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// SettingsService manages the outlet's invoice settings
type SettingsService struct {
	settingsRepo repository.InvoiceSettingsRepository
	converter    *billing.Converter
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.InvoiceSettingsRepository, converter *billing.Converter) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		converter:    converter,
	}
}

// GetInvoiceSettings returns the outlet's settings, creating defaults on first use
func (s *SettingsService) GetInvoiceSettings(ctx context.Context) (*entity.InvoiceSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	outletID, ok := infraRepo.GetOutletID(ctx)
	if !ok {
		return nil, apperror.ErrMissingOutlet
	}
	settings = &entity.InvoiceSettings{
		OutletID:            outletID,
		EstablishmentType:   enum.EstablishmentStandalone,
		InvoiceSectionOrder: sections.EncodeOrder(sections.Default()),
		DefaultLanguage:     "en",
		DefaultCurrency:     s.converter.Base(),
	}
	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to create invoice settings: %w", err)
	}
	return settings, nil
}

// GetSectionOrder returns the effective section order
func (s *SettingsService) GetSectionOrder(ctx context.Context) ([]sections.Key, error) {
	settings, err := s.GetInvoiceSettings(ctx)
	if err != nil {
		return nil, err
	}
	return settings.SectionOrder(), nil
}

// UpdateInvoiceSettingsInput replaces every editable field. An empty
// SectionOrder resets the layout to the default.
type UpdateInvoiceSettingsInput struct {
	ServiceChargePercentage decimal.Decimal
	GSTPercentage           decimal.Decimal
	VATPercentage           decimal.Decimal
	CessPercentage          decimal.Decimal
	IsCompositionScheme     bool
	EstablishmentType       enum.EstablishmentType
	HotelTariffBracket      enum.TariffBracket
	SectionOrder            []string

	CompanyName     string
	Address         string
	Phone           string
	Email           string
	TaxID           string
	FooterText1     string
	FooterText2     string
	ClosingMessage  string
	OrderQRBaseURL  string
	PaymentQRURL    string
	DefaultLanguage string
	DefaultCurrency string

	ShowCompanyHeader *bool
	ShowInvoiceHeader *bool
	ShowOrderDetails  *bool
	ShowTaxInfo       *bool
	ShowOrderQR       *bool
	ShowPaymentQR     *bool
}

// UpdateInvoiceSettings validates and stores input
func (s *SettingsService) UpdateInvoiceSettings(ctx context.Context, input *UpdateInvoiceSettingsInput) (*entity.InvoiceSettings, error) {
	order, err := validateSectionOrder(input.SectionOrder)
	if err != nil {
		return nil, err
	}
	if fieldErrors := s.validate(input); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	settings, err := s.GetInvoiceSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.ServiceChargePercentage = input.ServiceChargePercentage
	settings.GSTPercentage = input.GSTPercentage
	settings.VATPercentage = input.VATPercentage
	settings.CessPercentage = input.CessPercentage
	settings.IsCompositionScheme = input.IsCompositionScheme
	settings.EstablishmentType = input.EstablishmentType
	settings.HotelTariffBracket = input.HotelTariffBracket
	settings.InvoiceSectionOrder = sections.EncodeOrder(order)
	settings.CompanyName = input.CompanyName
	settings.Address = input.Address
	settings.Phone = input.Phone
	settings.Email = input.Email
	settings.TaxID = input.TaxID
	settings.FooterText1 = input.FooterText1
	settings.FooterText2 = input.FooterText2
	settings.ClosingMessage = input.ClosingMessage
	settings.OrderQRBaseURL = input.OrderQRBaseURL
	settings.PaymentQRURL = input.PaymentQRURL
	settings.DefaultLanguage = input.DefaultLanguage
	settings.DefaultCurrency = strings.ToUpper(input.DefaultCurrency)
	settings.ShowCompanyHeader = input.ShowCompanyHeader
	settings.ShowInvoiceHeader = input.ShowInvoiceHeader
	settings.ShowOrderDetails = input.ShowOrderDetails
	settings.ShowTaxInfo = input.ShowTaxInfo
	settings.ShowOrderQR = input.ShowOrderQR
	settings.ShowPaymentQR = input.ShowPaymentQR

	if settings.ID == uuid.Nil {
		err = s.settingsRepo.Create(ctx, settings)
	} else {
		err = s.settingsRepo.Update(ctx, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save invoice settings: %w", err)
	}
	return settings, nil
}

func (s *SettingsService) validate(input *UpdateInvoiceSettingsInput) []apperror.FieldError {
	var fieldErrors []apperror.FieldError
	for field, pct := range map[string]decimal.Decimal{
		"service_charge_percentage": input.ServiceChargePercentage,
		"gst_percentage":            input.GSTPercentage,
		"vat_percentage":            input.VATPercentage,
		"cess_percentage":           input.CessPercentage,
	} {
		if pct.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: field, Message: "cannot be negative"})
		}
	}

	if input.EstablishmentType == "" {
		input.EstablishmentType = enum.EstablishmentStandalone
	}
	if !input.EstablishmentType.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "establishment_type", Message: "must be standalone or hotel"})
	}
	if input.HotelTariffBracket != "" && !input.HotelTariffBracket.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "hotel_tariff_bracket", Message: "must be below_7500 or above_7500"})
	}

	if input.DefaultLanguage == "" {
		input.DefaultLanguage = "en"
	}
	if _, err := language.Parse(input.DefaultLanguage); err != nil {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "default_language", Message: "must be a BCP 47 language tag"})
	}

	if input.DefaultCurrency == "" {
		input.DefaultCurrency = s.converter.Base()
	}
	if !s.converter.Supports(input.DefaultCurrency) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "default_currency", Message: "has no configured exchange rate"})
	}
	return fieldErrors
}

// validateSectionOrder rejects unknown and repeated keys
func validateSectionOrder(raw []string) ([]sections.Key, error) {
	if len(raw) == 0 {
		return sections.Default(), nil
	}
	seen := make(map[sections.Key]bool, len(raw))
	order := make([]sections.Key, 0, len(raw))
	for _, r := range raw {
		k := sections.Key(strings.TrimSpace(r))
		if !k.IsValid() {
			return nil, apperror.Wrap(apperror.ErrInvalidSectionOrder, fmt.Sprintf("unknown section %q", r))
		}
		if seen[k] {
			return nil, apperror.Wrap(apperror.ErrInvalidSectionOrder, fmt.Sprintf("section %q listed twice", r))
		}
		seen[k] = true
		order = append(order, k)
	}
	return order, nil
}
