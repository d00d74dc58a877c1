package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/hospitality-pos/internal/application/render"
	"github.com/sangkips/hospitality-pos/internal/billing"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/sangkips/hospitality-pos/internal/domain/repository"
	"github.com/sangkips/hospitality-pos/pkg/apperror"
	"github.com/sangkips/hospitality-pos/pkg/email"
	"github.com/sangkips/hospitality-pos/pkg/labels"
	"github.com/shopspring/decimal"
)

// Mailer delivers rendered invoices
type Mailer interface {
	Enabled() bool
	Send(ctx context.Context, msg email.Message) error
}

// InvoiceOptions are the per-request inputs of an invoice. A discount code
// and a manual discount are mutually exclusive.
type InvoiceOptions struct {
	DiscountType          enum.DiscountType
	DiscountValue         *decimal.Decimal
	DiscountCode          string
	ServiceChargeOverride *decimal.Decimal
	Currency              string
	Language              string
}

// InvoiceService composes invoices from orders and outlet settings
type InvoiceService struct {
	orderRepo    repository.OrderRepository
	settingsRepo repository.InvoiceSettingsRepository
	discounts    *DiscountService
	calculator   *billing.Calculator
	mailer       Mailer
	clock        func() time.Time
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	orderRepo repository.OrderRepository,
	settingsRepo repository.InvoiceSettingsRepository,
	discounts *DiscountService,
	calculator *billing.Calculator,
	mailer Mailer,
) *InvoiceService {
	return &InvoiceService{
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		discounts:    discounts,
		calculator:   calculator,
		mailer:       mailer,
		clock:        time.Now,
	}
}

// WithClock replaces the time source
func (s *InvoiceService) WithClock(clock func() time.Time) *InvoiceService {
	s.clock = clock
	return s
}

// Preview computes the invoice for an order and lays out its sections.
// Nothing is persisted.
func (s *InvoiceService) Preview(ctx context.Context, orderID uuid.UUID, opts InvoiceOptions) (*render.Document, error) {
	if opts.DiscountCode != "" && opts.DiscountValue != nil {
		return nil, apperror.NewBadRequestError("Use either a discount code or a manual discount, not both")
	}
	if opts.ServiceChargeOverride != nil && opts.ServiceChargeOverride.IsNegative() {
		return nil, apperror.NewBadRequestError("Service charge cannot be negative")
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	discount, rejection, err := s.resolveDiscount(ctx, order, opts, now)
	if err != nil {
		return nil, err
	}

	currency := opts.Currency
	if currency == "" && settings != nil {
		currency = settings.DefaultCurrency
	}
	converter := s.calculator.Converter()
	currency = converter.Resolve(currency)

	items := order.ParsedItems()
	breakdown := s.calculator.Compute(billing.Input{
		Items:                 items,
		Settings:              settings.BillingSettings(),
		Discount:              discount,
		ServiceChargeOverride: opts.ServiceChargeOverride,
		DisplayCurrency:       currency,
	})

	preferences := []string{opts.Language}
	if settings != nil {
		preferences = append(preferences, settings.DefaultLanguage)
	}

	inv := &entity.Invoice{
		InvoiceNo:         order.InvoiceNo,
		OrderID:           order.ID,
		OutletID:          order.OutletID,
		IssuedAt:          now,
		OrderType:         order.OrderType,
		TableNumber:       order.TableNumber,
		CustomerName:      order.CustomerName,
		Language:          labels.For(preferences...).Language(),
		Lines:             invoiceLines(items, converter, currency),
		Breakdown:         breakdown,
		MarginBase:        breakdown.MarginBase(),
		DiscountRejection: rejection,
	}
	if rejection == nil && opts.DiscountCode != "" {
		inv.DiscountCode = strings.ToUpper(strings.TrimSpace(opts.DiscountCode))
	}

	doc := render.Compose(inv, settings, converter.Base())
	return &doc, nil
}

// RenderHTML returns the invoice as a standalone HTML page
func (s *InvoiceService) RenderHTML(ctx context.Context, orderID uuid.UUID, opts InvoiceOptions) ([]byte, error) {
	doc, err := s.Preview(ctx, orderID, opts)
	if err != nil {
		return nil, err
	}
	return render.HTML(*doc)
}

// EmailInvoice sends the HTML invoice to recipient, or to the customer
// address on the order when recipient is empty.
func (s *InvoiceService) EmailInvoice(ctx context.Context, orderID uuid.UUID, recipient string, opts InvoiceOptions) (*render.Document, error) {
	if s.mailer == nil || !s.mailer.Enabled() {
		return nil, apperror.ErrMailerDisabled
	}

	doc, err := s.Preview(ctx, orderID, opts)
	if err != nil {
		return nil, err
	}

	if recipient == "" {
		order, err := s.orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		if order != nil {
			recipient = order.CustomerEmail
		}
	}
	if recipient == "" {
		return nil, apperror.NewBadRequestError("No recipient address and the order has no customer email")
	}

	body, err := render.HTML(*doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}

	lbl := labels.For(doc.Invoice.Language)
	msg := email.Message{
		To:       recipient,
		Subject:  lbl.Get(labels.Invoice) + " " + doc.Invoice.InvoiceNo,
		HTMLBody: string(body),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Error().Err(err).
			Str("order_id", orderID.String()).
			Msg("Failed to email invoice")
		return nil, apperror.NewAppError(http.StatusBadGateway, "Failed to send invoice email")
	}

	log.Info().
		Str("order_id", orderID.String()).
		Str("invoice_no", doc.Invoice.InvoiceNo).
		Msg("Invoice emailed")
	return doc, nil
}

func (s *InvoiceService) resolveDiscount(ctx context.Context, order *entity.Order, opts InvoiceOptions, now time.Time) (billing.Discount, *billing.Rejection, error) {
	if opts.DiscountCode != "" {
		return s.discounts.Validate(ctx, opts.DiscountCode, order.Total, now)
	}
	if opts.DiscountValue == nil {
		return billing.NoDiscount(), nil, nil
	}

	discountType := opts.DiscountType
	if discountType == "" {
		discountType = enum.DiscountTypePercentage
	}
	if !discountType.IsValid() {
		return billing.NoDiscount(), nil, apperror.NewBadRequestError("Invalid discount type")
	}
	if opts.DiscountValue.IsNegative() {
		return billing.NoDiscount(), nil, apperror.NewBadRequestError("Discount cannot be negative")
	}
	return billing.Manual(discountType, *opts.DiscountValue), nil, nil
}

func invoiceLines(items []billing.Item, converter *billing.Converter, currency string) []entity.InvoiceLine {
	lines := make([]entity.InvoiceLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, entity.InvoiceLine{
			Name:      it.Name,
			Portion:   it.SelectedPortion,
			Note:      it.Note,
			Quantity:  it.Quantity,
			UnitPrice: billing.Display(converter.Convert(it.Price, currency)),
			Total:     billing.Display(converter.Convert(it.LineTotal(), currency)),
		})
	}
	return lines
}
