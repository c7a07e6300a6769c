package utils

import "math"

// DefaultPageSize is used when the client omits or zeroes pageSize.
const DefaultPageSize = 10

// NormalizePaging clamps page/pageSize to sane values.
func NormalizePaging(page, pageSize int) (int, int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	return page, pageSize
}

// PageBounds returns the [start, end) slice window for a page over a
// collection of totalItems. A page past the end yields an empty window.
func PageBounds(totalItems, page, pageSize int) (int, int) {
	page, pageSize = NormalizePaging(page, pageSize)
	start := (page - 1) * pageSize
	if start > totalItems {
		start = totalItems
	}
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}
	return start, end
}

// Pagination represents the pagination details.
type Pagination struct {
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// CreatePagination creates a Pagination object.
func CreatePagination(totalItems, page, pageSize int) *Pagination {
	page, pageSize = NormalizePaging(page, pageSize)
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))

	return &Pagination{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	}
}
