package bulma

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"
)

// PathFunc returns the URL of a page.
type PathFunc func(page int) string

// PaginationOptions configures Pagination.
type PaginationOptions struct {
	// Radius is the number of pages shown either side of the current one.
	// Zero means DefaultRadius.
	Radius int
	// Attrs go on the pagination-container div.
	Attrs Attrs
}

// Pagination renders previous and next links, the page list and a summary
// line. It renders nothing when there is at most one page.
//
//	bulma.Pagination(bulma.NewPage(3, 20, 145), func(p int) string {
//		return "/products?page=" + strconv.Itoa(p)
//	}, bulma.PaginationOptions{})
func Pagination(pager Pager, path PathFunc, opts PaginationOptions) templ.Component {
	if pager == nil || pager.TotalPages() <= 1 {
		return Fragment()
	}
	radius := opts.Radius
	if radius <= 0 {
		radius = DefaultRadius
	}
	current, total := pager.CurrentPage(), pager.TotalPages()

	previous := Attrs{{Key: "class", Value: "pagination-previous"}}
	if current > 1 {
		previous = previous.Set("href", templ.URL(path(current-1)))
	} else {
		previous = previous.Set("disabled", true)
	}
	next := Attrs{{Key: "class", Value: "pagination-next"}}
	if current < total {
		next = next.Set("href", templ.URL(path(current+1)))
	} else {
		next = next.Set("disabled", true)
	}

	items := PageItems(current, total, radius)
	list := make([]templ.Component, len(items))
	for i, item := range items {
		list[i] = Element("li", nil, pageLink(item, current, path))
	}

	return div(Mix(class("pagination-container"), opts.Attrs),
		Element("nav", Attrs{
			{Key: "class", Value: "pagination"},
			{Key: "role", Value: "navigation"},
			{Key: "aria-label", Value: "pagination"},
		},
			Element("a", previous, Plain("Previous")),
			Element("a", next, Plain("Next")),
			Element("ul", class("pagination-list"), list...),
		),
		div(class("has-text-centered", "mt-2", "is-size-7"), Plain(paginationSummary(pager))),
	)
}

func pageLink(item PageItem, current int, path PathFunc) templ.Component {
	if item.Ellipsis {
		return span(class("pagination-ellipsis"), Plain("…"))
	}
	n := strconv.Itoa(item.Page)
	if item.Page == current {
		return Element("a", Attrs{
			{Key: "class", Value: "pagination-link is-current"},
			{Key: "aria-label", Value: "Page " + n},
			{Key: "aria-current", Value: "page"},
		}, Plain(n))
	}
	return Element("a", Attrs{
		{Key: "class", Value: "pagination-link"},
		{Key: "href", Value: templ.URL(path(item.Page))},
		{Key: "aria-label", Value: "Go to page " + n},
	}, Plain(n))
}

func paginationSummary(pager Pager) string {
	start := (pager.CurrentPage()-1)*pager.PerPage() + 1
	end := min(start+pager.PerPage()-1, pager.TotalCount())
	return fmt.Sprintf("Showing %d-%d of %d items", start, end, pager.TotalCount())
}
