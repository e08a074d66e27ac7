package bulma

import (
	"strconv"

	"github.com/a-h/templ"
)

// GridOptions configures Grid.
//
// Grid class order: grid, is-col-min-<n>, is-gap-<n>, is-column-gap-<n>,
// is-row-gap-<n>. The fixed-grid wrapper gets has-<n>-cols and
// has-auto-count.
//
// Gaps run from 0 to 8 in steps of 0.5 and are given as strings ("1.5").
type GridOptions struct {
	// FixedColumns wraps the grid in a fixed-grid with that many columns.
	FixedColumns int
	// AutoCount wraps the grid in a fixed-grid that picks its own count.
	AutoCount bool
	// MinColumnWidth is 1 to 32.
	MinColumnWidth int
	Gap            string
	ColumnGap      string
	RowGap         string
	// Attrs go on the outermost element: the fixed-grid wrapper when there
	// is one.
	Attrs Attrs
}

// GridClasses compiles the class list of the inner grid element.
func GridClasses(opts GridOptions) Classes {
	c := Classes{"grid"}
	if opts.MinColumnWidth > 0 {
		c = c.Add("is-col-min-" + strconv.Itoa(opts.MinColumnWidth))
	}
	return c.
		Prefixed("is-gap-", opts.Gap).
		Prefixed("is-column-gap-", opts.ColumnGap).
		Prefixed("is-row-gap-", opts.RowGap)
}

// FixedGridClasses compiles the class list of the fixed-grid wrapper. It
// returns nil when the grid needs no wrapper.
func FixedGridClasses(opts GridOptions) Classes {
	if opts.FixedColumns <= 0 && !opts.AutoCount {
		return nil
	}
	c := Classes{"fixed-grid"}
	if opts.FixedColumns > 0 {
		c = c.Add("has-" + strconv.Itoa(opts.FixedColumns) + "-cols")
	}
	return c.AddIf(opts.AutoCount, "has-auto-count")
}

// Grid renders a Bulma smart grid around children, usually Cell components.
func Grid(opts GridOptions, children ...templ.Component) templ.Component {
	fixed := FixedGridClasses(opts)
	if fixed == nil {
		return div(Mix(class(GridClasses(opts)...), opts.Attrs), children...)
	}
	return div(Mix(class(fixed...), opts.Attrs),
		div(class(GridClasses(opts)...), children...))
}

// Cell renders a grid cell.
func Cell(attrs Attrs, children ...templ.Component) templ.Component {
	return div(Mix(class("cell"), attrs), children...)
}
