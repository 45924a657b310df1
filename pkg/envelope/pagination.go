package envelope

import (
	"net/url"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxPageSize is the largest page the API serves.
const MaxPageSize = 100

// Pagination selects a page of a list endpoint. A Size of zero (or less)
// requests the whole collection at once; DecodeListResponse then reports
// Page 0 and Size equal to the total count.
type Pagination struct {
	Page int // zero-based
	Size int
}

// DefaultPagination is the first page of twenty items.
var DefaultPagination = Pagination{Page: 0, Size: 20}

// All returns the unpaginated Pagination.
func All() Pagination {
	return Pagination{}
}

// PageOf returns the given zero-based page with size items.
func PageOf(page, size int) Pagination {
	return Pagination{Page: page, Size: size}
}

// Unpaginated reports whether p asks for the whole collection.
func (p Pagination) Unpaginated() bool {
	return p.Size <= 0
}

// Validate checks page bounds. An unpaginated request may only ask for
// page 0, since any other page would be dropped.
func (p Pagination) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Page,
			validation.Min(0),
			validation.When(p.Unpaginated(), validation.Max(0).Error("must be 0 when size is not set")),
		),
		validation.Field(&p.Size, validation.Max(MaxPageSize)),
	)
}

// Apply adds page and size to q. Nothing is added for an unpaginated request.
func (p Pagination) Apply(q url.Values) {
	if p.Unpaginated() {
		return
	}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("size", strconv.Itoa(p.Size))
}
