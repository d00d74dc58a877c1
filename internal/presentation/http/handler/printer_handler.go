package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/hospitality-pos/internal/application/service"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.printerService.GetStatus()
	response.OK(c, "Printer status retrieved", status)
}

// TestPrint sends a test page to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	if err := h.printerService.TestPrint(c.Request.Context()); err != nil {
		response.OK(c, "Test print completed (printer may be disabled)", gin.H{
			"status":  h.printerService.GetStatus(),
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Test page sent to printer", gin.H{
		"status": h.printerService.GetStatus(),
	})
}

// PrintInvoice prints the invoice of an order.
func (h *PrinterHandler) PrintInvoice(c *gin.Context) {
	id, ok := parseID(c, "id", "order")
	if !ok {
		return
	}
	opts, ok := bindInvoiceOptions(c)
	if !ok {
		return
	}

	doc, err := h.printerService.PrintInvoice(c.Request.Context(), id, opts)
	if err != nil {
		// The invoice was built but printing failed
		if doc != nil {
			response.OK(c, "Invoice generated but printing failed", gin.H{
				"invoice": doc,
				"warning": err.Error(),
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice printed successfully", gin.H{
		"invoice": doc,
	})
}
