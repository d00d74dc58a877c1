package enum

// OrderType is how the order is served
type OrderType string

const (
	OrderTypeDineIn      OrderType = "dine_in"
	OrderTypeTakeaway    OrderType = "takeaway"
	OrderTypeDelivery    OrderType = "delivery"
	OrderTypeRoomService OrderType = "room_service"
)

// IsValid reports whether t is a known order type
func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery, OrderTypeRoomService:
		return true
	}
	return false
}
