package pagination

const (
	// DefaultPageSize is used whenever a non-positive page size is given.
	DefaultPageSize = 10

	// DefaultWindowDelta is the number of pages shown on each side of the
	// current page by PageWindow.
	DefaultWindowDelta = 2
)

// Page is one slice of a collection together with its navigation metadata.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// TotalPages returns ceil(total/pageSize). A non-positive pageSize is
// replaced by DefaultPageSize.
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	pageSize = normalizeSize(pageSize)
	return (total + pageSize - 1) / pageSize
}

// ClampPage brings page into [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Paginate returns the requested page of items. Out-of-range pages are
// clamped, so asking for page 99 of a five page collection yields page 5.
// The returned Items share the backing array of items.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	pageSize = normalizeSize(pageSize)
	total := len(items)
	pages := TotalPages(total, pageSize)
	page = ClampPage(page, pages)

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	if start > total {
		start = total
	}

	slice := make([]T, 0)
	if total > 0 {
		slice = items[start:end:end]
	}

	return Page[T]{
		Items:      slice,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: pages,
		HasPrev:    page > 1,
		HasNext:    page < pages,
	}
}

func normalizeSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	return size
}
