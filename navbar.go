package bulma

import "github.com/a-h/templ"

// NavigationBarOptions configures NavigationBar.
type NavigationBarOptions struct {
	// Container wraps the contents in a container div.
	Container bool
	// Constraint is added to the container, for example "is-fluid" or
	// "is-max-desktop". It implies Container.
	Constraint string
	// Controller toggles the burger menu. Defaults to
	// NavigationBarController.
	Controller string
	// Attrs go on the nav element; a class here follows "navbar".
	Attrs Attrs
}

// NavigationBarBuilder collects navbar entries.
type NavigationBarBuilder struct {
	brand, left, right []templ.Component
}

// Brand appends to navbar-brand, before the burger.
func (b *NavigationBarBuilder) Brand(c templ.Component) { b.brand = append(b.brand, c) }

// Left appends to navbar-start.
func (b *NavigationBarBuilder) Left(c templ.Component) { b.left = append(b.left, c) }

// Right appends to navbar-end.
func (b *NavigationBarBuilder) Right(c templ.Component) { b.right = append(b.right, c) }

// NavigationBar renders a responsive navbar with a burger toggle.
func NavigationBar(opts NavigationBarOptions, configure func(*NavigationBarBuilder)) templ.Component {
	controller := opts.Controller
	if controller == "" {
		controller = NavigationBarController
	}
	return build(configure, func(b *NavigationBarBuilder) templ.Component {
		burger := Element("a", Mix(Attrs{
			{Key: "class", Value: "navbar-burger"},
			{Key: "role", Value: "button"},
			{Key: "aria-label", Value: "menu"},
			{Key: "aria-expanded", Value: "false"},
		}, stimulusAction(controller+"#toggle"), stimulusTarget(controller, "burger")),
			burgerLines()...)

		brand := append(append([]templ.Component{}, b.brand...), burger)
		inner := Fragment(
			div(class("navbar-brand"), brand...),
			div(Mix(class("navbar-menu"), stimulusTarget(controller, "menu")),
				div(class("navbar-start"), b.left...),
				div(class("navbar-end"), b.right...),
			),
		)
		if opts.Container || opts.Constraint != "" {
			inner = div(class("container", opts.Constraint), inner)
		}

		nav := Mix(Attrs{
			{Key: "class", Value: "navbar"},
			{Key: "role", Value: "navigation"},
			{Key: "aria-label", Value: "main navigation"},
		}, stimulusController(controller), opts.Attrs)
		return Element("nav", nav, inner)
	})
}

func burgerLines() []templ.Component {
	lines := make([]templ.Component, 4)
	for i := range lines {
		lines[i] = span(Attrs{{Key: "aria-hidden", Value: "true"}})
	}
	return lines
}

// NavigationBarDropdownOptions configures NavigationBarDropdown.
type NavigationBarDropdownOptions struct {
	// Left aligns the dropdown with the left edge of its item instead of
	// the right.
	Left  bool
	Attrs Attrs
}

// NavigationBarDropdownBuilder collects dropdown entries in order.
type NavigationBarDropdownBuilder struct {
	entries []templ.Component
}

// Header appends a non-link heading.
func (b *NavigationBarDropdownBuilder) Header(label string) {
	b.entries = append(b.entries,
		div(class("navbar-item", "header", "has-text-weight-medium"), Plain(label)))
}

// Item appends a link.
func (b *NavigationBarDropdownBuilder) Item(label, href string) {
	b.entries = append(b.entries, Element("a",
		Attrs{{Key: "class", Value: "navbar-item"}, {Key: "href", Value: templ.URL(href)}},
		Plain(label)))
}

// Divider appends a horizontal rule.
func (b *NavigationBarDropdownBuilder) Divider() {
	b.entries = append(b.entries, Void("hr", class("navbar-divider")))
}

// NavigationBarDropdown renders the menu part of a navbar dropdown. Put it
// inside a "navbar-item has-dropdown" element after the navbar-link.
func NavigationBarDropdown(opts NavigationBarDropdownOptions, configure func(*NavigationBarDropdownBuilder)) templ.Component {
	return build(configure, func(b *NavigationBarDropdownBuilder) templ.Component {
		classes := Classes{"navbar-dropdown"}.AddIf(!opts.Left, "is-right")
		return div(Mix(class(classes...), opts.Attrs), b.entries...)
	})
}
