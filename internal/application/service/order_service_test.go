package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hospitality-pos/internal/billing/timing"
	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/sangkips/hospitality-pos/pkg/apperror"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newOrderFixture(t *testing.T) (*OrderService, *stepClock, uuid.UUID) {
	t.Helper()
	clock := &stepClock{now: time.Date(2026, 5, 19, 10, 0, 0, 0, time.UTC)}
	svc := NewOrderService(newMemOrders()).WithClock(clock.Now)
	order, err := svc.CreateOrder(outletCtx(), &CreateOrderInput{
		UserID:      uuid.New(),
		OrderType:   enum.OrderTypeDineIn,
		TableNumber: "T4",
		Items:       json.RawMessage(`[{"menuItemId":"m1","name":"Masala Dosa","price":120,"quantity":2}]`),
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	return svc, clock, order.ID
}

func TestCreateOrder(t *testing.T) {
	svc, _, id := newOrderFixture(t)

	order, err := svc.GetOrder(outletCtx(), id)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if order.Status != enum.OrderStatusPending {
		t.Errorf("status: got %s", order.Status)
	}
	if len(order.History) != 1 || order.History[0].Status != enum.OrderStatusPending {
		t.Errorf("history: got %+v", order.History)
	}
	if !order.Total.Equal(dec("240")) {
		t.Errorf("total: got %s", order.Total)
	}
	if order.OutletID != testOutlet {
		t.Errorf("outlet: got %s", order.OutletID)
	}
}

func TestCreateOrder_Rejects(t *testing.T) {
	svc := NewOrderService(newMemOrders())

	tests := []struct {
		name  string
		input CreateOrderInput
	}{
		{"no items", CreateOrderInput{Items: json.RawMessage(`[]`)}},
		{"only zero quantities", CreateOrderInput{Items: json.RawMessage(`[{"name":"Tea","price":20,"quantity":0}]`)}},
		{"unknown order type", CreateOrderInput{OrderType: "drive_through", Items: json.RawMessage(`[{"name":"Tea","price":20,"quantity":1}]`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrder(outletCtx(), &tt.input)
			if got := apperror.GetAppError(err); got.Code != http.StatusUnprocessableEntity {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestCreateOrder_RequiresOutlet(t *testing.T) {
	svc := NewOrderService(newMemOrders())
	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{Items: json.RawMessage(`[{"name":"Tea","price":20,"quantity":1}]`)})
	if !errors.Is(err, apperror.ErrMissingOutlet) {
		t.Errorf("got %v", err)
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		path    []enum.OrderStatus
		next    enum.OrderStatus
		allowed bool
	}{
		{"pending to preparing", nil, enum.OrderStatusPreparing, true},
		{"pending to completed", nil, enum.OrderStatusCompleted, false},
		{"same status", nil, enum.OrderStatusPending, false},
		{"preparing to ready", []enum.OrderStatus{enum.OrderStatusPreparing}, enum.OrderStatusReadyForPickup, true},
		{"back to a visited status", []enum.OrderStatus{enum.OrderStatusPreparing, enum.OrderStatusReadyForPickup}, enum.OrderStatusPreparing, true},
		{"cancelled to pending", []enum.OrderStatus{enum.OrderStatusCancelled}, enum.OrderStatusPending, true},
		{"cancelled to preparing never visited", []enum.OrderStatus{enum.OrderStatusCancelled}, enum.OrderStatusPreparing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, clock, id := newOrderFixture(t)
			for _, s := range tt.path {
				clock.Advance(time.Minute)
				if _, err := svc.UpdateStatus(outletCtx(), &UpdateStatusInput{OrderID: id, Next: s}); err != nil {
					t.Fatalf("setup move to %s: %v", s, err)
				}
			}

			order, err := svc.UpdateStatus(outletCtx(), &UpdateStatusInput{OrderID: id, Next: tt.next, ActorID: uuid.New()})
			if !tt.allowed {
				if got := apperror.GetAppError(err); got.Code != http.StatusUnprocessableEntity {
					t.Errorf("expected invalid transition, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateStatus: %v", err)
			}
			if order.Status != tt.next {
				t.Errorf("status: got %s", order.Status)
			}
			if got := len(order.History); got != len(tt.path)+2 {
				t.Errorf("history length: got %d", got)
			}
		})
	}
}

// racingOrders lets another writer change the order between the read and
// the status update
type racingOrders struct {
	*memOrders
	concurrent enum.OrderStatus
}

func (r *racingOrders) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := r.memOrders.GetByID(ctx, id)
	if order == nil || err != nil {
		return order, err
	}
	event := &entity.OrderStatusEvent{Status: r.concurrent, ChangedAt: time.Now()}
	if err := r.memOrders.AppendStatus(ctx, id, order.Status, event); err != nil {
		return nil, err
	}
	return order, nil
}

func TestUpdateStatus_StaleStatusRejected(t *testing.T) {
	repo := newMemOrders()
	svc := NewOrderService(repo)
	order, err := svc.CreateOrder(outletCtx(), &CreateOrderInput{
		UserID: uuid.New(),
		Items:  json.RawMessage(`[{"name":"Masala Dosa","price":120,"quantity":2}]`),
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if _, err := svc.UpdateStatus(outletCtx(), &UpdateStatusInput{OrderID: order.ID, Next: enum.OrderStatusPreparing}); err != nil {
		t.Fatalf("move to preparing: %v", err)
	}

	racing := NewOrderService(&racingOrders{memOrders: repo, concurrent: enum.OrderStatusCancelled})
	_, err = racing.UpdateStatus(outletCtx(), &UpdateStatusInput{OrderID: order.ID, Next: enum.OrderStatusReadyForPickup})
	got := apperror.GetAppError(err)
	if got.Code != http.StatusUnprocessableEntity || !strings.Contains(got.Message, "no longer Preparing") {
		t.Fatalf("expected invalid transition, got %v", err)
	}

	stored, err := svc.GetOrder(outletCtx(), order.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if stored.Status != enum.OrderStatusCancelled {
		t.Errorf("status: got %s, want Cancelled", stored.Status)
	}
	if got := len(stored.History); got != 3 {
		t.Errorf("history length: got %d, want 3", got)
	}
	for _, ev := range stored.History {
		if ev.Status == enum.OrderStatusReadyForPickup {
			t.Errorf("stale update was appended: %+v", stored.History)
		}
	}
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	svc := NewOrderService(newMemOrders())
	_, err := svc.UpdateStatus(outletCtx(), &UpdateStatusInput{OrderID: uuid.New(), Next: enum.OrderStatusPreparing})
	if got := apperror.GetAppError(err); got.Code != http.StatusNotFound {
		t.Errorf("got %v", err)
	}
}

func TestGetTiming(t *testing.T) {
	svc, clock, id := newOrderFixture(t)

	clock.Advance(2 * time.Minute)
	if _, err := svc.UpdateStatus(outletCtx(), &UpdateStatusInput{OrderID: id, Next: enum.OrderStatusPreparing}); err != nil {
		t.Fatal(err)
	}
	clock.Advance(15 * time.Minute)
	if _, err := svc.UpdateStatus(outletCtx(), &UpdateStatusInput{OrderID: id, Next: enum.OrderStatusReadyForPickup}); err != nil {
		t.Fatal(err)
	}
	clock.Advance(5 * time.Minute)

	report, err := svc.GetTiming(outletCtx(), id)
	if err != nil {
		t.Fatalf("GetTiming: %v", err)
	}

	if report.Approval.State != timing.Completed || report.Approval.Value != 2*time.Minute {
		t.Errorf("approval: got %+v", report.Approval)
	}
	if report.Prep.State != timing.Completed || report.Prep.Value != 15*time.Minute {
		t.Errorf("prep: got %+v", report.Prep)
	}
	if report.Service.State != timing.InProgress || report.Service.Value != 5*time.Minute {
		t.Errorf("service: got %+v", report.Service)
	}
	if report.Total.State != timing.InProgress || report.Total.Value != 22*time.Minute {
		t.Errorf("total: got %+v", report.Total)
	}
}
