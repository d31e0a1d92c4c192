// Package paginate holds the pagination arithmetic shared by the admin
// listing views.
package paginate

// Meta mirrors the pagination block the backend returns with paged listings.
type Meta struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// TotalPages returns the number of pages needed for totalItems at
// itemsPerPage per page. Zero items still occupy one (empty) page.
func TotalPages(totalItems, itemsPerPage int) int {
	if itemsPerPage <= 0 {
		return 1
	}
	if totalItems <= 0 {
		return 1
	}
	return (totalItems + itemsPerPage - 1) / itemsPerPage
}

// Bounds returns the 1-based inclusive item range shown on page. A page past
// the end returns (0, 0).
func Bounds(page, totalItems, itemsPerPage int) (first, last int) {
	if page < 1 || itemsPerPage <= 0 || totalItems <= 0 {
		return 0, 0
	}
	first = (page-1)*itemsPerPage + 1
	if first > totalItems {
		return 0, 0
	}
	last = first + itemsPerPage - 1
	if last > totalItems {
		last = totalItems
	}
	return first, last
}

// HasNext reports whether a next page exists.
func HasNext(page, totalItems, itemsPerPage int) bool {
	return page < TotalPages(totalItems, itemsPerPage)
}

// HasPrev reports whether a previous page exists.
func HasPrev(page int) bool {
	return page > 1
}
