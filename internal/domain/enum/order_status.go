package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OrderStatus represents the lifecycle status of an order
type OrderStatus int

const (
	OrderStatusPending        OrderStatus = 0
	OrderStatusPreparing      OrderStatus = 1
	OrderStatusReadyForPickup OrderStatus = 2
	OrderStatusOutForDelivery OrderStatus = 3
	OrderStatusCompleted      OrderStatus = 4
	OrderStatusCancelled      OrderStatus = 5
)

var orderStatusNames = [...]string{
	"Pending",
	"Preparing",
	"Ready for Pickup",
	"Out for Delivery",
	"Completed",
	"Cancelled",
}

// forward edges of the order state machine
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:      {OrderStatusReadyForPickup, OrderStatusOutForDelivery, OrderStatusCancelled},
	OrderStatusReadyForPickup: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusOutForDelivery: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:      {OrderStatusPending},
	OrderStatusCancelled:      {OrderStatusPending},
}

func (s OrderStatus) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("OrderStatus(%d)", int(s))
	}
	return orderStatusNames[s]
}

// IsValid reports whether s is one of the known statuses
func (s OrderStatus) IsValid() bool {
	return s >= OrderStatusPending && int(s) < len(orderStatusNames)
}

// IsTerminal reports whether no further forward transition exists
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next is a forward edge from s.
// Completed and Cancelled may only go back to Pending (reopen).
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, candidate := range orderStatusTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ParseOrderStatus resolves a display name to a status
func ParseOrderStatus(name string) (OrderStatus, bool) {
	for i, n := range orderStatusNames {
		if n == name {
			return OrderStatus(i), true
		}
	}
	return OrderStatusPending, false
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	status, ok := ParseOrderStatus(str)
	if !ok {
		return fmt.Errorf("unknown order status %q", str)
	}
	*s = status
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
