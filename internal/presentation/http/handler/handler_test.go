package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/hospitality-pos/internal/application/service"
	"github.com/sangkips/hospitality-pos/internal/billing"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/sangkips/hospitality-pos/internal/domain/repository"
	infraRepo "github.com/sangkips/hospitality-pos/internal/infrastructure/repository"
	"github.com/sangkips/hospitality-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/hospitality-pos/pkg/email"
	"github.com/shopspring/decimal"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var (
	testOutlet = uuid.MustParse("3c9a1e5d-7b2f-4d8e-a6c1-5f0b9d2e4a11")
	testUser   = uuid.MustParse("e4b8d2a6-1f3c-4a5e-9b7d-0c2e6f8a1b22")
)

type memOrders struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entity.Order
}

func (r *memOrders) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = uuid.New()
	stored := *order
	r.orders[order.ID] = &stored
	return nil
}

func (r *memOrders) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	outletID, _ := infraRepo.GetOutletID(ctx)
	if !ok || o.OutletID != outletID {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *memOrders) List(ctx context.Context, params repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return nil, 0, nil
}

func (r *memOrders) AppendStatus(ctx context.Context, orderID uuid.UUID, from enum.OrderStatus, event *entity.OrderStatusEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := r.orders[orderID]
	if o.Status != from {
		return repository.ErrStatusChanged
	}
	o.Status = event.Status
	o.History = append(o.History, *event)
	return nil
}

type noSettings struct{}

func (noSettings) Get(ctx context.Context) (*entity.InvoiceSettings, error)    { return nil, nil }
func (noSettings) Create(ctx context.Context, s *entity.InvoiceSettings) error { return nil }
func (noSettings) Update(ctx context.Context, s *entity.InvoiceSettings) error { return nil }

type noCodes struct{}

func (noCodes) Create(ctx context.Context, code *entity.DiscountCode) error { return nil }
func (noCodes) GetByCode(ctx context.Context, code string) (*entity.DiscountCode, error) {
	return nil, nil
}
func (noCodes) List(ctx context.Context, activeOnly bool) ([]entity.DiscountCode, error) {
	return nil, nil
}

type disabledMailer struct{}

func (disabledMailer) Enabled() bool                                     { return false }
func (disabledMailer) Send(ctx context.Context, msg email.Message) error { return nil }

func newRouter() *gin.Engine {
	orders := &memOrders{orders: map[uuid.UUID]*entity.Order{}}
	calculator := billing.NewCalculator(billing.NewConverter("INR", map[string]decimal.Decimal{
		"USD": decimal.RequireFromString("0.012"),
	}))
	discounts := service.NewDiscountService(noCodes{})
	invoices := service.NewInvoiceService(orders, noSettings{}, discounts, calculator, disabledMailer{})

	orderHandler := NewOrderHandler(service.NewOrderService(orders))
	invoiceHandler := NewInvoiceHandler(invoices)

	router := gin.New()
	api := router.Group("/orders", func(c *gin.Context) {
		c.Set("user_id", testUser)
		c.Set("outlet_id", testOutlet)
		c.Request = c.Request.WithContext(infraRepo.WithOutlet(c.Request.Context(), testOutlet))
		c.Next()
	})
	api.POST("", orderHandler.Create)
	api.GET("/:id", orderHandler.Get)
	api.GET("/:id/invoice", invoiceHandler.Preview)
	api.GET("/:id/invoice/html", invoiceHandler.HTML)
	api.POST("/:id/invoice/email", invoiceHandler.Email)
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func do(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func createOrder(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec, env := do(t, router, http.MethodPost, "/orders", `{
		"table_number": "T4",
		"items": "[{\"name\":\"Paneer Tikka\",\"price\":300,\"quantity\":2},{\"name\":\"Dal Makhani\",\"price\":\"400\",\"quantity\":\"1\"}]"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var order struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &order); err != nil {
		t.Fatal(err)
	}
	return order.ID
}

func TestInvoicePreview(t *testing.T) {
	router := newRouter()
	id := createOrder(t, router)

	tests := []struct {
		name      string
		query     string
		wantCode  int
		wantGrand string
		wantCurr  string
	}{
		{"plain", "", http.StatusOK, "1000", "INR"},
		{"fixed discount", "?discount_type=fixed_amount&discount_value=100", http.StatusOK, "900", "INR"},
		{"percentage by default", "?discount_value=10", http.StatusOK, "900", "INR"},
		{"display currency", "?currency=usd", http.StatusOK, "12", "USD"},
		{"unknown currency falls back", "?currency=XYZ", http.StatusOK, "1000", "INR"},
		{"bad discount value", "?discount_value=ten", http.StatusBadRequest, "", ""},
		{"bad discount type", "?discount_type=bogus&discount_value=1", http.StatusUnprocessableEntity, "", ""},
		{"bad currency length", "?currency=US", http.StatusUnprocessableEntity, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, router, http.MethodGet, "/orders/"+id+"/invoice"+tt.query, "")
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}
			var doc struct {
				Invoice struct {
					Breakdown struct {
						Currency   string          `json:"currency"`
						GrandTotal decimal.Decimal `json:"grandTotal"`
					} `json:"breakdown"`
				} `json:"invoice"`
			}
			if err := json.Unmarshal(env.Data, &doc); err != nil {
				t.Fatal(err)
			}
			b := doc.Invoice.Breakdown
			if b.Currency != tt.wantCurr || !b.GrandTotal.Equal(decimal.RequireFromString(tt.wantGrand)) {
				t.Fatalf("got %s %s, want %s %s", b.GrandTotal, b.Currency, tt.wantGrand, tt.wantCurr)
			}
		})
	}
}

func TestInvoiceHTML(t *testing.T) {
	router := newRouter()
	id := createOrder(t, router)

	rec, _ := do(t, router, http.MethodGet, "/orders/"+id+"/invoice/html", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "Paneer Tikka") {
		t.Fatal("page does not list the items")
	}
}

func TestOrderAndInvoiceErrors(t *testing.T) {
	router := newRouter()
	id := createOrder(t, router)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"malformed id", http.MethodGet, "/orders/not-a-uuid", "", http.StatusBadRequest},
		{"unknown order", http.MethodGet, "/orders/" + uuid.NewString(), "", http.StatusNotFound},
		{"unknown invoice", http.MethodGet, "/orders/" + uuid.NewString() + "/invoice", "", http.StatusNotFound},
		{"no items", http.MethodPost, "/orders", `{"items":"[]"}`, http.StatusUnprocessableEntity},
		{"items missing", http.MethodPost, "/orders", `{"table_number":"T1"}`, http.StatusUnprocessableEntity},
		{"bad email", http.MethodPost, "/orders", `{"customer_email":"nope","items":[]}`, http.StatusUnprocessableEntity},
		{"malformed body", http.MethodPost, "/orders", `{`, http.StatusBadRequest},
		{"mailer disabled", http.MethodPost, "/orders/" + id + "/invoice/email", `{"recipient":"guest@example.com"}`, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, router, tt.method, tt.path, tt.body)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
			if env.Success {
				t.Fatal("error response reported success")
			}
		})
	}
}

func TestBindValidationFieldNames(t *testing.T) {
	router := newRouter()
	_, env := do(t, router, http.MethodPost, "/orders", `{"customer_email":"nope","items":[]}`)

	if len(env.Errors) != 1 || env.Errors[0].Field != "customer_email" {
		t.Fatalf("errors = %+v, want one customer_email error", env.Errors)
	}
}

func TestInvoiceOptions(t *testing.T) {
	opts, err := invoiceOptions(request.InvoiceQuery{
		DiscountCode:          "  welcome10 ",
		DiscountType:          "fixed_amount",
		DiscountValue:         "50.5",
		ServiceChargeOverride: "0",
		Currency:              "usd",
		Language:              "hi",
	})
	if err != nil {
		t.Fatal(err)
	}
	if opts.DiscountCode != "welcome10" || opts.DiscountType != "fixed_amount" {
		t.Fatalf("opts = %+v", opts)
	}
	if opts.DiscountValue == nil || !opts.DiscountValue.Equal(decimal.RequireFromString("50.5")) {
		t.Fatalf("discount value = %v", opts.DiscountValue)
	}
	if opts.ServiceChargeOverride == nil || !opts.ServiceChargeOverride.IsZero() {
		t.Fatalf("service charge override = %v, want explicit 0", opts.ServiceChargeOverride)
	}

	if _, err := invoiceOptions(request.InvoiceQuery{ServiceChargeOverride: "ten"}); err == nil {
		t.Fatal("want error for malformed service charge")
	}
}

func TestToSnake(t *testing.T) {
	tests := map[string]string{
		"CustomerEmail": "customer_email",
		"Items":         "items",
		"status":        "status",
	}
	for in, want := range tests {
		if got := toSnake(in); got != want {
			t.Errorf("toSnake(%q) = %q, want %q", in, got, want)
		}
	}
}
