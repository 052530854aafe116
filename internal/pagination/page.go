package pagination

// Page is one window of raw records returned by a paginated query.
//
// Invariants: len(Rows) <= PageSize, and Pages == ceil(Total / PageSize)
// when PageSize > 0 (0 otherwise). Use [NewPage] to get Pages right.
type Page[D any] struct {
	// PageIndex is the 1-based index of this page.
	PageIndex int64

	// PageSize is the maximum number of rows per page.
	PageSize int64

	// Total is the number of records matching the query across all pages.
	Total int64

	// Pages is the total number of pages.
	Pages int64

	// Rows are the records of this page in store order.
	Rows []D
}

// PageResult is a page of transformed items ready to be serialized.
// Its metadata always equals the metadata of the [Page] it was built from.
type PageResult[T any] struct {
	PageIndex int64 `json:"pageIndex"`
	PageSize  int64 `json:"pageSize"`
	Total     int64 `json:"total"`
	Pages     int64 `json:"pages"`

	// Rows holds the successfully transformed items. Never nil.
	Rows []T `json:"rows"`

	// Dropped is the number of input rows whose transform failed.
	Dropped int `json:"-"`
}

// NewPage builds a [Page] and derives its page count from total and
// pageSize.
func NewPage[D any](pageIndex, pageSize, total int64, rows []D) Page[D] {
	return Page[D]{
		PageIndex: pageIndex,
		PageSize:  pageSize,
		Total:     total,
		Pages:     PageCount(total, pageSize),
		Rows:      rows,
	}
}

// PageCount returns ceil(total / pageSize), or 0 when pageSize is not
// positive.
func PageCount(total, pageSize int64) int64 {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
