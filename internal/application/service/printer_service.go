package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/hospitality-pos/internal/application/render"
	"github.com/sangkips/hospitality-pos/pkg/printer"
)

// PrinterService lays out invoices for the thermal printer and sends them.
type PrinterService struct {
	printer     printer.Printer
	invoices    *InvoiceService
	printerType string
	width       int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, invoices *InvoiceService, printerType string, width int) *PrinterService {
	return &PrinterService{
		printer:     p,
		invoices:    invoices,
		printerType: printerType,
		width:       width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
	Width      int    `json:"width"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
		Width:      s.width,
	}
}

// TestPrint sends a test page to the printer.
func (s *PrinterService) TestPrint(ctx context.Context) error {
	if err := s.printer.Print(ctx, render.TestPage(s.width)); err != nil {
		return fmt.Errorf("test print failed: %w", err)
	}
	return nil
}

// PrintInvoice composes the invoice and prints it. The document is returned
// even when printing fails so the caller can still show it.
func (s *PrinterService) PrintInvoice(ctx context.Context, orderID uuid.UUID, opts InvoiceOptions) (*render.Document, error) {
	doc, err := s.invoices.Preview(ctx, orderID, opts)
	if err != nil {
		return nil, err
	}

	if err := s.printer.Print(ctx, render.Thermal(*doc, s.width)); err != nil {
		log.Warn().Err(err).
			Str("order_id", orderID.String()).
			Str("printer", s.printerType).
			Msg("Invoice print failed")
		return doc, fmt.Errorf("print failed: %w", err)
	}

	log.Info().
		Str("order_id", orderID.String()).
		Str("invoice_no", doc.Invoice.InvoiceNo).
		Msg("Invoice printed")
	return doc, nil
}
