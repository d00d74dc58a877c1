package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/hospitality-pos/internal/billing"
	"github.com/sangkips/hospitality-pos/internal/billing/timing"
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a guest order at one outlet. Items are stored as serialized JSON
// and only ever read back through billing.NormalizeItemString.
type Order struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OutletID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"outlet_id"`
	InvoiceNo     string           `gorm:"size:50;uniqueIndex;not null" json:"invoice_no"`
	OrderType     enum.OrderType   `gorm:"size:20;not null;default:'dine_in'" json:"order_type"`
	CustomerName  string           `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerEmail string           `gorm:"size:255" json:"customer_email,omitempty"`
	TableNumber   string           `gorm:"size:20" json:"table_number,omitempty"`
	Items         string           `gorm:"type:text;not null;default:'[]'" json:"-"`
	Total         decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0" json:"total"`
	Status        enum.OrderStatus `gorm:"not null;default:0;index" json:"status"`
	CreatedBy     uuid.UUID        `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`

	History []OrderStatusEvent `gorm:"foreignKey:OrderID" json:"history,omitempty"`
}

// ParsedItems returns the normalized item list
func (o *Order) ParsedItems() []billing.Item {
	return billing.NormalizeItemString(o.Items)
}

// SetItems normalizes and stores items and refreshes the informational total
func (o *Order) SetItems(items []billing.Item) {
	items = billing.NormalizeItemList(items)
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	o.Items = billing.EncodeItems(items)
	o.Total = total
}

// TimingEvents converts the history for the timing analyzer
func (o *Order) TimingEvents() []timing.Event {
	events := make([]timing.Event, 0, len(o.History))
	for _, h := range o.History {
		events = append(events, timing.Event{Status: h.Status, At: h.ChangedAt})
	}
	return events
}

// HasVisited reports whether status appears in the history
func (o *Order) HasVisited(status enum.OrderStatus) bool {
	for _, h := range o.History {
		if h.Status == status {
			return true
		}
	}
	return false
}

// MarshalJSON exposes the parsed items instead of the stored text
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Items []billing.Item `json:"items"`
	}{
		Alias: Alias(o),
		Items: o.ParsedItems(),
	})
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// OrderStatusEvent is one entry of an order's append-only status history
type OrderStatusEvent struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"order_id"`
	Status    enum.OrderStatus `gorm:"not null" json:"status"`
	ChangedAt time.Time        `gorm:"not null;index" json:"changed_at"`
	ChangedBy *uuid.UUID       `gorm:"type:uuid" json:"changed_by,omitempty"`
	Note      string           `gorm:"size:500" json:"note,omitempty"`
}

func (e *OrderStatusEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.ChangedAt.IsZero() {
		e.ChangedAt = time.Now()
	}
	return nil
}

func (OrderStatusEvent) TableName() string {
	return "order_status_events"
}
