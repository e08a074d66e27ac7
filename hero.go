package bulma

import "github.com/a-h/templ"

// HeroOptions configures Hero.
//
// Class order: hero, is-<color>, is-<size>. Size also accepts
// "halfheight", "fullheight" and "fullheight-with-navbar".
type HeroOptions struct {
	// Title and Subtitle fill the hero body when no Body is registered.
	Title    string
	Subtitle string
	Color    Color
	Size     Size
	Attrs    Attrs
}

// HeroBuilder collects the hero sections.
type HeroBuilder struct {
	head, body, foot templ.Component
}

// Head sets the hero-head content.
func (b *HeroBuilder) Head(c templ.Component) { b.head = c }

// Body sets the hero-body content.
func (b *HeroBuilder) Body(c templ.Component) { b.body = c }

// Foot sets the hero-foot content.
func (b *HeroBuilder) Foot(c templ.Component) { b.foot = c }

// HeroClasses compiles the class list of the hero section.
func HeroClasses(opts HeroOptions) Classes {
	return Classes{"hero"}.Is(string(opts.Color)).Is(string(opts.Size))
}

// Hero renders a hero section. With no Body registered the body holds the
// Title and Subtitle paragraphs.
func Hero(opts HeroOptions, configure func(*HeroBuilder)) templ.Component {
	return build(configure, func(b *HeroBuilder) templ.Component {
		body := b.body
		if body == nil {
			body = Fragment(
				when(opts.Title != "", func() templ.Component {
					return Element("p", class("title"), Plain(opts.Title))
				}),
				when(opts.Subtitle != "", func() templ.Component {
					return Element("p", class("subtitle"), Plain(opts.Subtitle))
				}),
			)
		}
		return Element("section", Mix(class(HeroClasses(opts)...), opts.Attrs),
			when(b.head != nil, func() templ.Component { return div(class("hero-head"), b.head) }),
			div(class("hero-body"), body),
			when(b.foot != nil, func() templ.Component { return div(class("hero-foot"), b.foot) }),
		)
	})
}
