package billing

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeItems is the single ingestion point for order items. raw may be a
// JSON array of items or a JSON string holding such an array (the serialized
// form older clients store). Anything unparseable yields an empty list.
// Lines with a quantity below one or a negative price are dropped.
func NormalizeItems(raw []byte) []Item {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []Item{}
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return []Item{}
		}
		raw = bytes.TrimSpace([]byte(inner))
		if len(raw) == 0 || raw[0] != '[' {
			return []Item{}
		}
	}

	var lines []rawItem
	if err := json.Unmarshal(raw, &lines); err != nil {
		return []Item{}
	}

	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, Item{
			MenuItemID:      l.MenuItemID.String(),
			Name:            l.Name,
			Price:           l.Price,
			Quantity:        int(l.Quantity),
			SelectedPortion: l.SelectedPortion,
			Note:            l.Note,
			CalculatedCost:  l.CalculatedCost,
		})
	}
	return NormalizeItemList(items)
}

// NormalizeItemString is NormalizeItems for a stored text column
func NormalizeItemString(raw string) []Item {
	return NormalizeItems([]byte(raw))
}

// NormalizeItemList drops lines that cannot be billed. The input is not modified.
func NormalizeItemList(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Quantity < 1 || it.Price.IsNegative() {
			continue
		}
		out = append(out, it)
	}
	return out
}

// EncodeItems serializes items for storage
func EncodeItems(items []Item) string {
	if items == nil {
		items = []Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// rawItem accepts the loose shapes clients send: numeric or string ids and quantities.
type rawItem struct {
	MenuItemID      looseString      `json:"menuItemId"`
	Name            string           `json:"name"`
	Price           decimal.Decimal  `json:"price"`
	Quantity        looseInt         `json:"quantity"`
	SelectedPortion string           `json:"selectedPortion"`
	Note            string           `json:"note"`
	CalculatedCost  *decimal.Decimal `json:"currentCalculatedCost"`
}

type looseInt int

func (n *looseInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	// fractional or out of range quantities make the line unbillable
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		*n = -1
		return nil
	}
	*n = looseInt(f)
	return nil
}

type looseString string

func (s looseString) String() string {
	return string(s)
}

func (s *looseString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = looseString(str)
		return nil
	}
	*s = looseString(data)
	return nil
}
