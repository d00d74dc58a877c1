package enum_test

import (
	"encoding/json"
	"testing"

	"github.com/sangkips/hospitality-pos/internal/domain/enum"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from enum.OrderStatus
		to   enum.OrderStatus
		want bool
	}{
		{"pending to preparing", enum.OrderStatusPending, enum.OrderStatusPreparing, true},
		{"pending to completed", enum.OrderStatusPending, enum.OrderStatusCompleted, false},
		{"preparing to ready", enum.OrderStatusPreparing, enum.OrderStatusReadyForPickup, true},
		{"preparing to out for delivery", enum.OrderStatusPreparing, enum.OrderStatusOutForDelivery, true},
		{"ready to completed", enum.OrderStatusReadyForPickup, enum.OrderStatusCompleted, true},
		{"out for delivery to cancelled", enum.OrderStatusOutForDelivery, enum.OrderStatusCancelled, true},
		{"cancelled reopen", enum.OrderStatusCancelled, enum.OrderStatusPending, true},
		{"completed to preparing", enum.OrderStatusCompleted, enum.OrderStatusPreparing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestOrderStatus_JSON(t *testing.T) {
	data, err := json.Marshal(enum.OrderStatusReadyForPickup)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"Ready for Pickup"` {
		t.Errorf("got %s", data)
	}

	var s enum.OrderStatus
	if err := json.Unmarshal([]byte(`"Out for Delivery"`), &s); err != nil {
		t.Fatalf("unmarshal name: %v", err)
	}
	if s != enum.OrderStatusOutForDelivery {
		t.Errorf("got %v", s)
	}
	if err := json.Unmarshal([]byte(`4`), &s); err != nil {
		t.Fatalf("unmarshal int: %v", err)
	}
	if s != enum.OrderStatusCompleted {
		t.Errorf("got %v", s)
	}
	if err := json.Unmarshal([]byte(`"Served"`), &s); err == nil {
		t.Error("expected error for unknown status")
	}
}
