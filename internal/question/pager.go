package question

import "strconv"

// DefaultPageSize is the number of questions per page.
const DefaultPageSize = 10

// ParsePage reads a 1-indexed page number. Missing, non-numeric, zero and negative
// values all mean the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate returns the items of the given 1-indexed page. Pages past the end come
// back empty, never nil.
func Paginate[T any](items []T, page, size int) []T {
	if size < 1 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	// compare in page units first so (page-1)*size cannot overflow
	if page-1 > len(items)/size {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
