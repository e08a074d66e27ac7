package bulma

import "github.com/a-h/templ"

// ColumnsOptions configures Columns.
//
// Class order: columns, is-<minimum breakpoint>, is-multiline, gap tokens,
// is-centered, is-vcentered.
type ColumnsOptions struct {
	// MinBreakpoint is the breakpoint from which columns sit side by side.
	// Bulma's default is tablet.
	MinBreakpoint Breakpoint
	Multiline     bool
	// Gap is 0 to 8, uniformly or per breakpoint.
	Gap       Responsive
	Centered  bool
	VCentered bool
	Attrs     Attrs
}

// ColumnsClasses compiles the class list of a columns container.
func ColumnsClasses(opts ColumnsOptions) Classes {
	return Classes{"columns"}.
		Is(string(opts.MinBreakpoint)).
		AddIf(opts.Multiline, "is-multiline").
		Responsive(opts.Gap).
		AddIf(opts.Centered, "is-centered").
		AddIf(opts.VCentered, "is-vcentered")
}

// Columns renders a columns container around children, which are usually
// Column components.
func Columns(opts ColumnsOptions, children ...templ.Component) templ.Component {
	return div(Mix(class(ColumnsClasses(opts)...), opts.Attrs), children...)
}

// ColumnOptions configures a single Column.
type ColumnOptions struct {
	// Size is a Bulma column size: a number from 1 to 12 or a name such as
	// "half" or "one-third", uniformly or per breakpoint.
	Size   Responsive
	Offset Responsive
	Narrow bool
	Attrs  Attrs
}

// ColumnClasses compiles the class list of a column.
func ColumnClasses(opts ColumnOptions) Classes {
	c := Classes{"column"}.Responsive(opts.Size)
	for _, t := range opts.Offset.Tokens() {
		c = c.Add("is-offset-" + t[len("is-"):])
	}
	return c.AddIf(opts.Narrow, "is-narrow")
}

// Column renders one column.
func Column(opts ColumnOptions, children ...templ.Component) templ.Component {
	return div(Mix(class(ColumnClasses(opts)...), opts.Attrs), children...)
}
