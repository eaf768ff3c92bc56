package shelf

// Window is one page of an ordered sequence.
type Window[T any] struct {
	Items   []T
	Page    int
	HasPrev bool
	HasNext bool
}

// Paginate returns the items in [page*size, (page+1)*size).
// Pages past the end yield no items but keep HasPrev set, so callers can
// still offer a way back. A size below 1 is treated as DefaultPageSize.
func Paginate[T any](items []T, page, size int) Window[T] {
	if size < 1 {
		size = DefaultPageSize
	}
	if page < 0 {
		page = 0
	}
	w := Window[T]{Page: page, HasPrev: page > 0}
	if !PageExists(len(items), page, size) {
		return w
	}
	start := page * size
	end := min(start+size, len(items))
	w.Items = items[start:end]
	w.HasNext = end < len(items)
	return w
}

// PageCount returns the number of non-empty pages needed for total items.
func PageCount(total, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	return (total + size - 1) / size
}

// PageExists reports whether page holds at least one of total items.
func PageExists(total, page, size int) bool {
	return page >= 0 && page < PageCount(total, size)
}
