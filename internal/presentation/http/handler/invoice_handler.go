package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/hospitality-pos/internal/application/service"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/dto/response"
)

// InvoiceHandler serves invoice previews and delivery
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Preview returns the computed invoice with its sections in print order
func (h *InvoiceHandler) Preview(c *gin.Context) {
	id, ok := parseID(c, "id", "order")
	if !ok {
		return
	}
	opts, ok := bindInvoiceOptions(c)
	if !ok {
		return
	}

	doc, err := h.invoiceService.Preview(c.Request.Context(), id, opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice generated successfully", doc)
}

// HTML returns the invoice as a printable page
func (h *InvoiceHandler) HTML(c *gin.Context) {
	id, ok := parseID(c, "id", "order")
	if !ok {
		return
	}
	opts, ok := bindInvoiceOptions(c)
	if !ok {
		return
	}

	page, err := h.invoiceService.RenderHTML(c.Request.Context(), id, opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// Email sends the invoice to the guest
func (h *InvoiceHandler) Email(c *gin.Context) {
	id, ok := parseID(c, "id", "order")
	if !ok {
		return
	}
	opts, ok := bindInvoiceOptions(c)
	if !ok {
		return
	}

	var req request.EmailInvoiceRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	doc, err := h.invoiceService.EmailInvoice(c.Request.Context(), id, req.Recipient, opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice emailed successfully", doc)
}
