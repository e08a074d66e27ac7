package bulma

import "github.com/a-h/templ"

// ButtonOptions configures Button.
//
// Class order: button, is-<color>, is-<mode>, is-<size>, is-responsive,
// is-fullwidth, is-outlined, is-inverted, is-rounded, then caller classes.
type ButtonOptions struct {
	Color      Color
	Mode       Mode
	Size       Size
	Responsive bool
	FullWidth  bool
	Outlined   bool
	Inverted   bool
	Rounded    bool
	// Icon is shorthand for IconLeft. When both are set Icon wins.
	Icon      string
	IconLeft  string
	IconRight string
	Attrs     Attrs
}

// ButtonClasses compiles the class list for a button. Other elements that
// should look like buttons (links, labels) can use it directly.
func ButtonClasses(opts ButtonOptions) Classes {
	return Classes{"button"}.
		Is(string(opts.Color)).
		Is(string(opts.Mode)).
		Is(string(opts.Size)).
		AddIf(opts.Responsive, "is-responsive").
		AddIf(opts.FullWidth, "is-fullwidth").
		AddIf(opts.Outlined, "is-outlined").
		AddIf(opts.Inverted, "is-inverted").
		AddIf(opts.Rounded, "is-rounded")
}

// Button renders a <button> with the Bulma button classes. Icons are placed
// before and after the children.
func Button(opts ButtonOptions, children ...templ.Component) templ.Component {
	left := opts.IconLeft
	if opts.Icon != "" {
		left = opts.Icon
	}
	body := make([]templ.Component, 0, len(children)+2)
	if left != "" {
		body = append(body, Icon(left, IconOptions{}))
	}
	body = append(body, children...)
	if opts.IconRight != "" {
		body = append(body, Icon(opts.IconRight, IconOptions{}))
	}
	return Element("button", Mix(class(ButtonClasses(opts)...), opts.Attrs), body...)
}
