package pagination

// Meta describes the pager position.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates pagination metadata from the current page, page size, and total count.
func NewMeta(currentPage, pageSize, totalCount int) Meta {
	if currentPage < MinPage {
		currentPage = MinPage
	}
	totalPages := CalculateTotalPages(totalCount, pageSize)

	return Meta{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		HasPrevious: currentPage > MinPage,
		HasNext:     currentPage < totalPages,
	}
}
