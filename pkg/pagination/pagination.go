package pagination

import (
	"math"

	"gorm.io/gorm"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// Pagination is the page metadata returned with list responses
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// Params are the page query parameters
type Params struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"per_page" json:"per_page"`
}

// Normalize clamps the parameters into range
func (p *Params) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
}

// Offset is the number of rows skipped for the current page
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Scope applies LIMIT/OFFSET for p to a gorm query
func Scope(p Params) func(*gorm.DB) *gorm.DB {
	p.Normalize()
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset()).Limit(p.PerPage)
	}
}

// New builds the metadata for a page of a result set of size total
func New(p Params, total int64) *Pagination {
	p.Normalize()
	totalPages := int(math.Ceil(float64(total) / float64(p.PerPage)))

	return &Pagination{
		CurrentPage: p.Page,
		PerPage:     p.PerPage,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     p.Page < totalPages,
		HasPrev:     p.Page > 1,
	}
}

// Result is a page of items with its metadata
type Result[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// NewResult pairs items with their pagination; nil items become an empty list
func NewResult[T any](items []T, p *Pagination) *Result[T] {
	if items == nil {
		items = []T{}
	}
	return &Result[T]{Items: items, Pagination: p}
}
