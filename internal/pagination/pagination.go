// Package pagination slices ordered lists into fixed-size display windows.
// It is pure: the same inputs always produce the same page.
package pagination

// Page is one window of an ordered list.
type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
}

// TotalPages returns ceil(count/pageSize), with a minimum of 1 so an empty
// list still renders as a single (empty) page.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Clamp forces page into [1, totalPages].
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns the requested window of items. The page number is clamped
// rather than rejected: asking for page 99 of 3 yields page 3.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := TotalPages(len(items), pageSize)
	page = Clamp(page, totalPages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
	}
}
