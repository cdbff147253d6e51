package view

// PageInfo describes the visible window of a filtered view.
type PageInfo struct {
	Page         int  `json:"page"`
	PageSize     int  `json:"page_size"`
	TotalItems   int  `json:"total_items"`
	TotalPages   int  `json:"total_pages"`
	Start        int  `json:"start"`
	End          int  `json:"end"`
	HasPrev      bool `json:"has_prev"`
	HasNext      bool `json:"has_next"`
	ShowControls bool `json:"show_controls"`
}

// TotalPages is ceil(count / size). It is 0 for an empty view.
func TotalPages(count, size int) int {
	if size < 1 || count < 1 {
		return 0
	}
	return (count + size - 1) / size
}

// ClampPage bounds page to [1, totalPages], or to 1 when there are no pages.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns items[(page-1)*size : page*size] after clamping page.
func Paginate[T any](items []T, page, size int) ([]T, PageInfo) {
	if size < 1 {
		size = len(items)
		if size == 0 {
			size = 1
		}
	}

	total := len(items)
	totalPages := TotalPages(total, size)
	page = ClampPage(page, totalPages)

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	window := make([]T, end-start)
	copy(window, items[start:end])

	return window, PageInfo{
		Page:         page,
		PageSize:     size,
		TotalItems:   total,
		TotalPages:   totalPages,
		Start:        start,
		End:          end,
		HasPrev:      page > 1,
		HasNext:      page < totalPages,
		ShowControls: totalPages > 1,
	}
}
