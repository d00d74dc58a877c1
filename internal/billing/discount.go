package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Discount is a concrete, already validated discount. The zero value means no discount.
type Discount struct {
	Type  enum.DiscountType `json:"type"`
	Value decimal.Decimal   `json:"value"`
}

// NoDiscount returns the empty discount
func NoDiscount() Discount {
	return Discount{}
}

// IsNone reports whether d applies nothing
func (d Discount) IsNone() bool {
	return !d.Type.IsValid()
}

// Manual builds a discount from a caller supplied descriptor. The value is
// used as-is; an unknown type resolves to no discount.
func Manual(discountType enum.DiscountType, value decimal.Decimal) Discount {
	if !discountType.IsValid() {
		return NoDiscount()
	}
	return Discount{Type: discountType, Value: value}
}

// DiscountCode is the subset of a stored discount code needed for validation.
// MinOrderAmount is in the base currency. An empty OutletID applies to every outlet.
type DiscountCode struct {
	Code           string
	Type           enum.DiscountType
	Value          decimal.Decimal
	MinOrderAmount *decimal.Decimal
	IsActive       bool
	ValidFrom      *time.Time
	ValidTo        *time.Time
	OutletID       string
}

// RejectionReason identifies why a discount code did not apply
type RejectionReason string

const (
	RejectUnknownCode     RejectionReason = "unknown_code"
	RejectInactive        RejectionReason = "inactive"
	RejectNotYetValid     RejectionReason = "not_yet_valid"
	RejectExpired         RejectionReason = "expired"
	RejectMinimumOrder    RejectionReason = "minimum_order_not_met"
	RejectOutletMismatch  RejectionReason = "outlet_mismatch"
	RejectUnsupportedType RejectionReason = "unsupported_type"
)

// Rejection explains a refused discount code. It is surfaced to the caller,
// the invoice is then computed with no discount.
type Rejection struct {
	Code    string          `json:"code"`
	Reason  RejectionReason `json:"reason"`
	Message string          `json:"message"`
}

func (r *Rejection) Error() string {
	return r.Message
}

// CodeCheck is the order context a discount code is validated against
type CodeCheck struct {
	OrderTotal decimal.Decimal // base currency
	OutletID   string
	Now        time.Time
}

// ResolveCode validates code against the order. On success it returns the
// code's discount and a nil rejection; on failure it returns no discount and
// the reason. A partially applicable code is never partially applied.
func ResolveCode(code DiscountCode, check CodeCheck) (Discount, *Rejection) {
	reject := func(reason RejectionReason, format string, args ...interface{}) (Discount, *Rejection) {
		return NoDiscount(), &Rejection{
			Code:    code.Code,
			Reason:  reason,
			Message: fmt.Sprintf(format, args...),
		}
	}

	if !code.Type.IsValid() {
		return reject(RejectUnsupportedType, "discount code %s has an unsupported type", code.Code)
	}
	if !code.IsActive {
		return reject(RejectInactive, "discount code %s is not active", code.Code)
	}
	if code.OutletID != "" && check.OutletID != "" && code.OutletID != check.OutletID {
		return reject(RejectOutletMismatch, "discount code %s is not valid at this outlet", code.Code)
	}
	if code.ValidFrom != nil && check.Now.Before(*code.ValidFrom) {
		return reject(RejectNotYetValid, "discount code %s is valid from %s", code.Code, code.ValidFrom.Format("2006-01-02"))
	}
	if code.ValidTo != nil && check.Now.After(*code.ValidTo) {
		return reject(RejectExpired, "discount code %s expired on %s", code.Code, code.ValidTo.Format("2006-01-02"))
	}
	if code.MinOrderAmount != nil && check.OrderTotal.LessThan(*code.MinOrderAmount) {
		return reject(RejectMinimumOrder, "minimum order of %s not met for discount code %s",
			code.MinOrderAmount.StringFixed(2), code.Code)
	}

	return Discount{Type: code.Type, Value: code.Value}, nil
}

// FindCode looks a code up by its text, ignoring case and surrounding spaces
func FindCode(codes []DiscountCode, text string) (DiscountCode, bool) {
	text = strings.TrimSpace(text)
	for _, c := range codes {
		if strings.EqualFold(c.Code, text) {
			return c, true
		}
	}
	return DiscountCode{}, false
}

// ResolveCodeText finds text in codes and validates it. An unknown code is a rejection.
func ResolveCodeText(codes []DiscountCode, text string, check CodeCheck) (Discount, *Rejection) {
	code, ok := FindCode(codes, text)
	if !ok {
		return NoDiscount(), &Rejection{
			Code:    strings.TrimSpace(text),
			Reason:  RejectUnknownCode,
			Message: fmt.Sprintf("discount code %s does not exist", strings.TrimSpace(text)),
		}
	}
	return ResolveCode(code, check)
}
