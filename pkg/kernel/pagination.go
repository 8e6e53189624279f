package kernel

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PaginationOptions is a 1-based page request
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize replaces out-of-range values with defaults
func (p PaginationOptions) Normalize() PaginationOptions {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > MaxPageSize {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Page describes where a slice of results sits in the full result
type Page struct {
	Number int `json:"number"`
	Size   int `json:"size"`
	Total  int `json:"total"`
	Pages  int `json:"pages"`
}

// HasNext reports whether a later page has items
func (p Page) HasNext() bool {
	return p.Number < p.Pages
}

// HasPrevious reports whether an earlier page exists
func (p Page) HasPrevious() bool {
	return p.Number > 1 && p.Pages > 0
}

// Paginated is one page of T plus its position
type Paginated[T any] struct {
	Items []T  `json:"items"`
	Page  Page `json:"page"`
	Empty bool `json:"empty"`
}

// TotalPages is ceil(total / size); zero when size is not positive
func TotalPages(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Paginate slices items[(page-1)*size : page*size], clamped to len(items).
// A page past the end, or a page below 1, yields an empty Items slice; it
// is never an error. A non-positive size falls back to DefaultPageSize.
func Paginate[T any](items []T, opts PaginationOptions) Paginated[T] {
	size := opts.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)

	result := Paginated[T]{
		Items: []T{},
		Page: Page{
			Number: opts.Page,
			Size:   size,
			Total:  total,
			Pages:  TotalPages(total, size),
		},
	}

	if opts.Page >= 1 && opts.Page <= result.Page.Pages {
		start := (opts.Page - 1) * size
		end := start + size
		if end > total {
			end = total
		}
		result.Items = append(result.Items, items[start:end]...)
	}

	result.Empty = len(result.Items) == 0
	return result
}

// MapPaginated converts the items of a page, keeping its position
func MapPaginated[T, U any](p Paginated[T], fn func(T) U) Paginated[U] {
	items := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return Paginated[U]{
		Items: items,
		Page:  p.Page,
		Empty: p.Empty,
	}
}
