package bulma

import "github.com/a-h/templ"

// DropdownOptions configures Dropdown.
//
// Class order: dropdown, is-hoverable, is-right or is-up.
type DropdownOptions struct {
	// Hoverable opens the menu on hover and drops the click controller.
	Hoverable bool
	// Controller is the Stimulus controller toggling the menu in click
	// mode. Defaults to DropdownController.
	Controller string
	// Align accepts AlignRight and AlignUp; anything else aligns left.
	Align Alignment
	// Icon defaults to "fas fa-angle-down".
	Icon  string
	Attrs Attrs
}

// DropdownBuilder collects the menu entries in order.
type DropdownBuilder struct {
	entries []templ.Component
}

// Item appends a non-link entry.
func (b *DropdownBuilder) Item(c templ.Component) {
	b.entries = append(b.entries, div(class("dropdown-item"), c))
}

// ItemText appends a non-link text entry.
func (b *DropdownBuilder) ItemText(text string) { b.Item(Plain(text)) }

// Link appends a link entry.
func (b *DropdownBuilder) Link(label, href string) {
	b.entries = append(b.entries, Element("a",
		Attrs{{Key: "class", Value: "dropdown-item"}, {Key: "href", Value: templ.URL(href)}},
		Plain(label)))
}

// Divider appends a horizontal rule.
func (b *DropdownBuilder) Divider() {
	b.entries = append(b.entries, Void("hr", class("dropdown-divider")))
}

// DropdownClasses compiles the class list of the dropdown container.
func DropdownClasses(opts DropdownOptions) Classes {
	c := Classes{"dropdown"}.AddIf(opts.Hoverable, "is-hoverable")
	switch opts.Align {
	case AlignRight:
		c = c.Add("is-right")
	case AlignUp:
		c = c.Add("is-up")
	}
	return c
}

// Dropdown renders a button that opens a menu.
func Dropdown(label string, opts DropdownOptions, configure func(*DropdownBuilder)) templ.Component {
	controller := opts.Controller
	if controller == "" {
		controller = DropdownController
	}
	icon := opts.Icon
	if icon == "" {
		icon = "fas fa-angle-down"
	}
	return build(configure, func(b *DropdownBuilder) templ.Component {
		container := class(DropdownClasses(opts)...)
		trigger := Attrs{
			{Key: "class", Value: "button"},
			{Key: "aria-haspopup", Value: "true"},
			{Key: "aria-controls", Value: "dropdown-menu"},
		}
		if !opts.Hoverable {
			container = Mix(container, stimulusController(controller))
			trigger = Mix(trigger, stimulusAction(controller+"#toggle"))
		}
		return div(Mix(container, opts.Attrs),
			div(class("dropdown-trigger"),
				Element("button", trigger,
					span(nil, Plain(label)),
					span(class("icon", "is-small"),
						Element("i", Attrs{{Key: "class", Value: icon}, {Key: "aria-hidden", Value: "true"}})),
				),
			),
			div(Attrs{{Key: "class", Value: "dropdown-menu"}, {Key: "id", Value: "dropdown-menu"}, {Key: "role", Value: "menu"}},
				div(class("dropdown-content"), b.entries...),
			),
		)
	})
}
