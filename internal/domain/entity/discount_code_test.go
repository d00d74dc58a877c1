package entity_test

import (
	"sync"
	"testing"

	"github.com/sangkips/hospitality-pos/internal/domain/entity"
	"gorm.io/gorm/schema"
)

func TestDiscountCode_UniqueIndexes(t *testing.T) {
	s, err := schema.Parse(&entity.DiscountCode{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	indexes := s.ParseIndexes()

	tests := []struct {
		name   string
		fields []string
		where  string
	}{
		{"idx_discount_codes_outlet_code", []string{"outlet_id", "code"}, ""},
		{"idx_discount_codes_shared_code", []string{"code"}, "outlet_id IS NULL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := indexes[tt.name]
			if !ok {
				t.Fatalf("index %s missing, have %v", tt.name, indexes)
			}
			if idx.Class != "UNIQUE" {
				t.Errorf("class: got %q, want UNIQUE", idx.Class)
			}
			if idx.Where != tt.where {
				t.Errorf("where: got %q, want %q", idx.Where, tt.where)
			}
			if len(idx.Fields) != len(tt.fields) {
				t.Fatalf("fields: got %d, want %v", len(idx.Fields), tt.fields)
			}
			for i, f := range idx.Fields {
				if f.DBName != tt.fields[i] {
					t.Errorf("field %d: got %s, want %s", i, f.DBName, tt.fields[i])
				}
			}
		})
	}
}
