package billing

import (
	"github.com/sangkips/hospitality-pos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

var (
	defaultGSTRate      = decimal.NewFromInt(5)
	hotelPremiumGSTRate = decimal.NewFromInt(18)
)

// TaxPolicy is the set of rates that applies to an invoice
type TaxPolicy struct {
	GSTRate    decimal.Decimal
	VATRate    decimal.Decimal
	CessRate   decimal.Decimal
	ApplyTaxes bool
}

// ResolveTaxPolicy derives the applicable rates from settings. Rules, first match wins:
//
//	composition scheme                → no taxes at all
//	hotel with tariff above 7500      → GST 18%
//	anything else                     → GST 5%
//
// The raw GSTPercentage setting is never used; VAT and cess come straight from
// settings whenever taxes apply.
func ResolveTaxPolicy(s Settings) TaxPolicy {
	if s.IsCompositionScheme {
		return TaxPolicy{
			GSTRate:  decimal.Zero,
			VATRate:  decimal.Zero,
			CessRate: decimal.Zero,
		}
	}

	gst := defaultGSTRate
	if s.EstablishmentType == enum.EstablishmentHotel && s.HotelTariffBracket == enum.TariffAbove7500 {
		gst = hotelPremiumGSTRate
	}

	return TaxPolicy{
		GSTRate:    gst,
		VATRate:    s.VATPercentage,
		CessRate:   s.CessPercentage,
		ApplyTaxes: true,
	}
}
