package bulma

// Pager is the paging state the Pagination component reads.
type Pager interface {
	CurrentPage() int
	TotalPages() int
	PerPage() int
	TotalCount() int
}

// Page is a Pager over a known item count.
type Page struct {
	Number int
	Size   int
	Count  int
}

// NewPage returns the page-th page of count items, size per page. Page
// numbers start at 1; values below 1 are clamped.
func NewPage(page, size, count int) Page {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}
	if count < 0 {
		count = 0
	}
	return Page{Number: page, Size: size, Count: count}
}

func (p Page) CurrentPage() int { return p.Number }
func (p Page) PerPage() int     { return p.Size }
func (p Page) TotalCount() int  { return p.Count }

// TotalPages is the number of pages needed for all items.
func (p Page) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return (p.Count + p.Size - 1) / p.Size
}

// Offset is the index of the first item on the page, for use in queries.
func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// DefaultRadius is the number of pages shown on each side of the current
// page.
const DefaultRadius = 2

// PageWindow returns the pages from max(current-radius, 1) to
// min(current+radius, total), inclusive.
func PageWindow(current, total, radius int) []int {
	start := max(current-radius, 1)
	end := min(current+radius, total)
	if end < start {
		return nil
	}
	out := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	return out
}

// PageItem is one entry of a pagination list: a page number or a gap.
type PageItem struct {
	Page     int
	Ellipsis bool
}

// PageItems lays out the pagination list around current.
//
// Page 1 is added before the window when current > radius+1, followed by an
// ellipsis when current > radius+2. The last page is added after the window
// when current < total-radius, preceded by an ellipsis when
// current < total-radius-1. An ellipsis therefore always stands for at
// least one hidden page.
func PageItems(current, total, radius int) []PageItem {
	var items []PageItem
	if current > radius+1 {
		items = append(items, PageItem{Page: 1})
		if current > radius+2 {
			items = append(items, PageItem{Ellipsis: true})
		}
	}
	for _, p := range PageWindow(current, total, radius) {
		items = append(items, PageItem{Page: p})
	}
	if current < total-radius {
		if current < total-radius-1 {
			items = append(items, PageItem{Ellipsis: true})
		}
		items = append(items, PageItem{Page: total})
	}
	return items
}
