package domain

const DefaultPageSize = 20

// NormalizePage clamps caller-supplied paging values: a negative page becomes
// the first page, a non-positive size becomes DefaultPageSize. An
// out-of-range page is left alone; listing it yields an empty slice.
func NormalizePage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return page, size
}

// Page is one slice of an active-only listing together with metadata computed
// from the filtered row set. Numbering is zero-based; a page past the end
// carries an empty item slice and the real totals.
type Page[T any] struct {
	Items      []T
	TotalItems int64
	TotalPages int
	Number     int
	Size       int
}

func NewPage[T any](items []T, total int64, page, size int) *Page[T] {
	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:      items,
		TotalItems: total,
		TotalPages: pages,
		Number:     page,
		Size:       size,
	}
}
