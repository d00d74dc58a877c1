package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/sangkips/hospitality-pos/internal/domain/repository"
	infraRepo "github.com/sangkips/hospitality-pos/internal/infrastructure/repository"
	"github.com/sangkips/hospitality-pos/pkg/email"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var testOutlet = uuid.MustParse("7b0e6a52-3f57-4c8e-9a43-0b1f5d7c2e10")

func outletCtx() context.Context {
	return ctxFor(testOutlet)
}

func ctxFor(outletID uuid.UUID) context.Context {
	return infraRepo.WithOutlet(context.Background(), outletID)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type memOrders struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entity.Order
}

func newMemOrders() *memOrders {
	return &memOrders{orders: map[uuid.UUID]*entity.Order{}}
}

func (r *memOrders) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.History {
		order.History[i].OrderID = order.ID
	}
	stored := *order
	stored.History = append([]entity.OrderStatusEvent(nil), order.History...)
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
	cp.History = append([]entity.OrderStatusEvent(nil), o.History...)
	return &cp, nil
}

func (r *memOrders) List(ctx context.Context, params repository.OrderFilterParams) ([]entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	outletID, _ := infraRepo.GetOutletID(ctx)
	var out []entity.Order
	for _, o := range r.orders {
		if o.OutletID != outletID {
			continue
		}
		if params.Status != nil && o.Status != *params.Status {
			continue
		}
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *memOrders) AppendStatus(ctx context.Context, orderID uuid.UUID, from enum.OrderStatus, event *entity.OrderStatusEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if o.Status != from {
		return repository.ErrStatusChanged
	}
	event.OrderID = orderID
	o.Status = event.Status
	o.History = append(o.History, *event)
	return nil
}

type memSettings struct {
	settings map[uuid.UUID]*entity.InvoiceSettings
}

func newMemSettings(seed ...*entity.InvoiceSettings) *memSettings {
	r := &memSettings{settings: map[uuid.UUID]*entity.InvoiceSettings{}}
	for _, s := range seed {
		r.settings[s.OutletID] = s
	}
	return r
}

func (r *memSettings) Get(ctx context.Context) (*entity.InvoiceSettings, error) {
	outletID, _ := infraRepo.GetOutletID(ctx)
	return r.settings[outletID], nil
}

func (r *memSettings) Create(ctx context.Context, s *entity.InvoiceSettings) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.settings[s.OutletID] = s
	return nil
}

func (r *memSettings) Update(ctx context.Context, s *entity.InvoiceSettings) error {
	r.settings[s.OutletID] = s
	return nil
}

type memDiscounts struct {
	codes []entity.DiscountCode
}

func (r *memDiscounts) Create(ctx context.Context, code *entity.DiscountCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	r.codes = append(r.codes, *code)
	return nil
}

func (r *memDiscounts) GetByCode(ctx context.Context, code string) (*entity.DiscountCode, error) {
	for i := range r.codes {
		if strings.EqualFold(r.codes[i].Code, strings.TrimSpace(code)) {
			c := r.codes[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memDiscounts) List(ctx context.Context, activeOnly bool) ([]entity.DiscountCode, error) {
	var out []entity.DiscountCode
	for _, c := range r.codes {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

type fakeMailer struct {
	enabled bool
	sent    []email.Message
}

func (m *fakeMailer) Enabled() bool { return m.enabled }

func (m *fakeMailer) Send(ctx context.Context, msg email.Message) error {
	m.sent = append(m.sent, msg)
	return nil
}
