package bulma

import "github.com/a-h/templ"

// IconOptions configures Icon.
//
// Class order: icon, is-<size>, has-text-<color>, is-left, is-right.
type IconOptions struct {
	Size  Size
	Color Color
	// Left and Right position the icon inside a form control.
	Left  bool
	Right bool
	// TextLeft and TextRight wrap the icon in an icon-text span with the
	// text beside it.
	TextLeft  string
	TextRight string
	// Class adds tokens to the icon span, after the computed ones.
	Class string
}

// IconClasses compiles the class list of the icon span.
func IconClasses(opts IconOptions) Classes {
	return Classes{"icon"}.
		Is(string(opts.Size)).
		Prefixed("has-text-", string(opts.Color)).
		AddIf(opts.Left, "is-left").
		AddIf(opts.Right, "is-right").
		Add(opts.Class)
}

// Icon renders a Bulma icon element around a font icon class such as
// "fas fa-home".
//
//	bulma.Icon("fas fa-home", bulma.IconOptions{Color: bulma.Primary, TextRight: "Home"})
func Icon(icon string, opts IconOptions) templ.Component {
	glyph := span(class(IconClasses(opts)...), Element("i", class(icon)))
	if opts.TextLeft == "" && opts.TextRight == "" {
		return glyph
	}
	return span(class("icon-text"),
		when(opts.TextLeft != "", func() templ.Component { return span(nil, Plain(opts.TextLeft)) }),
		glyph,
		when(opts.TextRight != "", func() templ.Component { return span(nil, Plain(opts.TextRight)) }),
	)
}
