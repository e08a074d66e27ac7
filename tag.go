package bulma

import "github.com/a-h/templ"

// TagOptions configures Tag.
//
// Class order: tag, is-<color>, is-<light> is-light, is-<size>, is-rounded.
type TagOptions struct {
	Color Color
	// Light is a color rendered in its light variant. It is used instead
	// of Color, not in addition to it.
	Light   Color
	Size    Size
	Rounded bool
	// Delete adds a delete button inside the tag and renders the tag as a
	// <button> (or <a> when Attrs carry an href).
	Delete bool
	Attrs  Attrs
}

// TagClasses compiles the class list of a tag.
func TagClasses(opts TagOptions) Classes {
	return Classes{"tag"}.
		Is(string(opts.Color)).
		AddIf(opts.Light != "", "is-"+string(opts.Light), "is-light").
		Is(string(opts.Size)).
		AddIf(opts.Rounded, "is-rounded")
}

// Tag renders a Bulma tag. The element depends on the attributes: an href
// makes it an <a>; Delete or a data-action attribute makes it a <button>;
// otherwise it is a <span>.
func Tag(text string, opts TagOptions) templ.Component {
	attrs := Mix(class(TagClasses(opts)...), opts.Attrs)
	switch {
	case opts.Attrs.Has("href"):
		return Element("a", attrs, tagBody(text, opts)...)
	case opts.Delete || opts.Attrs.Has("data-action"):
		return Element("button", attrs, tagBody(text, opts)...)
	default:
		return span(attrs, Plain(text))
	}
}

func tagBody(text string, opts TagOptions) []templ.Component {
	if !opts.Delete {
		return []templ.Component{Plain(text)}
	}
	del := Classes{"delete"}.AddIf(opts.Size != Large, "is-small")
	return []templ.Component{Plain(text), span(class(del...))}
}
