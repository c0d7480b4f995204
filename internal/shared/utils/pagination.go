package utils

// ApplyPagination calculates slice indices for pagination.
// Returns (start, end) indices for slicing: slice[start:end]
func ApplyPagination(total, page, pageSize int) (start, end int) {
	start = (page - 1) * pageSize
	end = start + pageSize

	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return start, end
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages == 0 {
		return 1
	}
	return pages
}

// ClampPage keeps a 1-indexed page inside [1, TotalPages(total, pageSize)].
// Out-of-range pages clamp rather than error, so a deletion that shrinks
// the result set never leaves the view on an empty page with a nonzero
// total.
func ClampPage(page, total, pageSize int) int {
	if page < 1 {
		return 1
	}
	if max := TotalPages(total, pageSize); page > max {
		return max
	}
	return page
}
