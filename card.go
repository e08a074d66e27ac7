package bulma

import "github.com/a-h/templ"

// CardOptions configures Card.
type CardOptions struct {
	Attrs Attrs
}

// CardBuilder collects the card sections. A section that was never
// registered is left out of the markup.
type CardBuilder struct {
	headTitle   string
	headClasses []string
	hasHead     bool
	content     templ.Component
	footer      []cardFooterLink
}

type cardFooterLink struct {
	text  string
	href  string
	attrs Attrs
}

// Head sets the header title. Classes are added to the card-header element.
func (b *CardBuilder) Head(title string, classes ...string) {
	b.headTitle = title
	b.headClasses = classes
	b.hasHead = true
}

// Content sets the card body, rendered inside card-content > content.
func (b *CardBuilder) Content(c templ.Component) { b.content = c }

// FooterLink appends a link to the card footer. A class in attrs comes
// before card-footer-item.
func (b *CardBuilder) FooterLink(text, href string, attrs ...Attrs) {
	b.footer = append(b.footer, cardFooterLink{text: text, href: href, attrs: Mix(nil, attrs...)})
}

// Card renders a Bulma card.
//
//	bulma.Card(bulma.CardOptions{}, func(c *bulma.CardBuilder) {
//		c.Head("Card Title")
//		c.Content(bulma.Plain("Some content"))
//		c.FooterLink("View", "/view", bulma.Attrs{{Key: "target", Value: "_blank"}})
//	})
func Card(opts CardOptions, configure func(*CardBuilder)) templ.Component {
	return build(configure, func(b *CardBuilder) templ.Component {
		return div(Mix(class("card"), opts.Attrs),
			b.header(),
			when(b.content != nil, func() templ.Component {
				return div(class("card-content"), div(class("content"), b.content))
			}),
			b.footerSection(),
		)
	})
}

func (b *CardBuilder) header() templ.Component {
	if !b.hasHead {
		return nil
	}
	return Element("header", class(append([]string{"card-header"}, b.headClasses...)...),
		Element("p", class("card-header-title"), Plain(b.headTitle)))
}

func (b *CardBuilder) footerSection() templ.Component {
	if len(b.footer) == 0 {
		return nil
	}
	links := make([]templ.Component, len(b.footer))
	for i, l := range b.footer {
		attrs := Attrs{{Key: "href", Value: templ.URL(l.href)}}
		attrs = Mix(attrs, l.attrs, class("card-footer-item"))
		links[i] = Element("a", attrs, Plain(l.text))
	}
	return Element("footer", class("card-footer"), links...)
}
