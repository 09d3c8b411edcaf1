package results

// PaginationParams carries the page window requested by the caller.
// Handlers normalize it before it reaches any service, so Page and PageSize
// are always >= 1 here.
type PaginationParams struct {
	Page     int
	PageSize int
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Normalize clamps the params into a valid window: page >= 1,
// 1 <= size <= MaxPageSize, with defaults for missing values.
func (p PaginationParams) Normalize() PaginationParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the requested page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Paged wraps one page of items plus count metadata.
type Paged[T any] struct {
	Items       []T   `json:"items"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
}

// NewPaged builds a page with TotalPages = ceil(totalCount / pageSize).
func NewPaged[T any](items []T, p PaginationParams, totalCount int64) Paged[T] {
	totalPages := int((totalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
	return Paged[T]{
		Items:       items,
		CurrentPage: p.Page,
		PageSize:    p.PageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
	}
}
