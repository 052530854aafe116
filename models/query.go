package models

import "math"

const (
	// DefaultPageIndex is used when a list query omits the page index.
	DefaultPageIndex = 1

	// DefaultPageSize is used when a list query omits the page size.
	DefaultPageSize = 10

	// MaxPageSize caps the page size a client may request.
	MaxPageSize = 100

	// MaxPageIndex caps the page index a client may request.
	MaxPageIndex = 1_000_000_000
)

// BlogListQuery holds the filters and page window of GET /blogs.
//
// Every filter is optional: an empty string, an empty slice or a nil Status
// means the corresponding predicate is not applied.
type BlogListQuery struct {
	// PageIndex is the 1-based page number.
	PageIndex int64 `json:"pageIndex" validate:"gte=0,lte=1000000000"`

	// PageSize is the maximum number of rows per page.
	PageSize int64 `json:"pageSize" validate:"gte=0,lte=100"`

	// Category is matched as a substring of the stored category.
	Category string `json:"category" validate:"max=64"`

	// Tags must all be present in the post's tag list.
	Tags []string `json:"tags" validate:"max=32,dive,required,max=64"`

	// Keyword is matched as a case-insensitive substring of the title.
	Keyword string `json:"keyword" validate:"max=255"`

	// Status restricts the list to posts in the given state.
	Status *BlogStatus `json:"status" validate:"omitnil,oneof=0 1"`
}

// Normalize returns a copy of q with defaults applied to an unset page
// window and the page size clamped to [MaxPageSize].
func (q BlogListQuery) Normalize() BlogListQuery {
	if q.PageIndex <= 0 {
		q.PageIndex = DefaultPageIndex
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

// Offset returns the number of rows to skip for the requested page,
// saturating at math.MaxInt64. The query is expected to be normalized.
func (q BlogListQuery) Offset() uint64 {
	if q.PageIndex <= 1 || q.PageSize <= 0 {
		return 0
	}

	index := uint64(q.PageIndex - 1)
	size := uint64(q.PageSize)
	if index > math.MaxInt64/size {
		return math.MaxInt64
	}
	return index * size
}
