package pagination_test

import (
	"testing"

	"github.com/sangkips/hospitality-pos/pkg/pagination"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		params    pagination.Params
		total     int64
		wantPage  int
		wantPer   int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"first page", pagination.Params{Page: 1, PerPage: 10}, 25, 1, 10, 3, true, false},
		{"last page", pagination.Params{Page: 3, PerPage: 10}, 25, 3, 10, 3, false, true},
		{"defaults", pagination.Params{}, 5, 1, 20, 1, false, false},
		{"per page capped", pagination.Params{Page: 2, PerPage: 500}, 250, 2, 100, 3, true, true},
		{"empty", pagination.Params{Page: 1, PerPage: 10}, 0, 1, 10, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.New(tt.params, tt.total)
			if p.CurrentPage != tt.wantPage || p.PerPage != tt.wantPer || p.TotalPages != tt.wantPages {
				t.Errorf("got page=%d per=%d pages=%d", p.CurrentPage, p.PerPage, p.TotalPages)
			}
			if p.HasNext != tt.wantNext || p.HasPrev != tt.wantPrev {
				t.Errorf("got next=%v prev=%v", p.HasNext, p.HasPrev)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := pagination.Params{Page: 4, PerPage: 25}
	if p.Offset() != 75 {
		t.Errorf("got %d", p.Offset())
	}
}

func TestNewResult_NilItems(t *testing.T) {
	r := pagination.NewResult[string](nil, pagination.New(pagination.Params{}, 0))
	if r.Items == nil || len(r.Items) != 0 {
		t.Errorf("got %#v", r.Items)
	}
}
