package pagination

// Page limits.
const (
	// DefaultPageSize is the number of rows shown per page.
	DefaultPageSize = 10
	// MinPage is the first page number.
	MinPage = 1
)

// CalculateTotalPages returns ceil(totalItems / pageSize), or 0 when there is
// nothing to page over.
func CalculateTotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	return pages
}

// Pager is a 1-based page cursor over items. It stores only the current page;
// the visible window and page count are derived on every call.
type Pager[T any] struct {
	items       []T
	pageSize    int
	currentPage int
}

// NewPager creates a pager positioned on the first page. A non-positive
// pageSize falls back to DefaultPageSize.
func NewPager[T any](items []T, pageSize int) *Pager[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager[T]{
		items:       items,
		pageSize:    pageSize,
		currentPage: MinPage,
	}
}

// SetItems replaces the item set wholesale and returns to the first page.
func (p *Pager[T]) SetItems(items []T) {
	p.items = items
	p.currentPage = MinPage
}

// PageSize returns the fixed page size.
func (p *Pager[T]) PageSize() int {
	return p.pageSize
}

// CurrentPage returns the 1-based page number.
func (p *Pager[T]) CurrentPage() int {
	return p.currentPage
}

// TotalPages returns the number of pages, 0 when there are no items.
func (p *Pager[T]) TotalPages() int {
	return CalculateTotalPages(len(p.items), p.pageSize)
}

// CanAdvance reports whether a following page exists.
func (p *Pager[T]) CanAdvance() bool {
	return p.currentPage < p.TotalPages()
}

// CanRetreat reports whether a preceding page exists.
func (p *Pager[T]) CanRetreat() bool {
	return p.currentPage > MinPage
}

// Advance moves to the next page. It is a no-op on the last page and reports
// whether the page changed.
func (p *Pager[T]) Advance() bool {
	if !p.CanAdvance() {
		return false
	}
	p.currentPage++
	return true
}

// Retreat moves to the previous page. It is a no-op on the first page and
// reports whether the page changed.
func (p *Pager[T]) Retreat() bool {
	if !p.CanRetreat() {
		return false
	}
	p.currentPage--
	return true
}

// VisibleSlice returns items in [(page-1)*size, page*size), clipped to the
// item count. The result aliases the underlying slice.
func (p *Pager[T]) VisibleSlice() []T {
	start := (p.currentPage - 1) * p.pageSize
	if start >= len(p.items) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// Meta returns a snapshot of the pager position.
func (p *Pager[T]) Meta() Meta {
	return NewMeta(p.currentPage, p.pageSize, len(p.items))
}
