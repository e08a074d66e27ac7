// Package gallery renders a config.Document into HTML pages, one sample
// per configured component.
package gallery

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pthm/bulma"
	"github.com/pthm/bulma/hx"
	"github.com/pthm/bulma/internal/config"
)

// DefaultStylesheet is linked when the document does not name one.
const DefaultStylesheet = "https://cdn.jsdelivr.net/npm/bulma@1.0.2/css/bulma.min.css"

// Options adjusts how pages are rendered.
type Options struct {
	// Scripts are added to <head> in order, e.g. HTMX when serving.
	Scripts []string
	// PageURL links a page in the navigation bar. The default is
	// "<name>.html".
	PageURL func(page string) string
	// LazyURL returns where lazy card content is fetched from. When nil,
	// lazy cards render their content inline.
	LazyURL func(page string, sample int) string
}

// Gallery renders the pages of one document.
type Gallery struct {
	doc  *config.Document
	opts Options
}

// New returns a Gallery for doc.
func New(doc *config.Document, opts Options) *Gallery {
	if opts.PageURL == nil {
		opts.PageURL = func(page string) string { return page + ".html" }
	}
	return &Gallery{doc: doc, opts: opts}
}

// Document returns the gallery's document.
func (g *Gallery) Document() *config.Document {
	return g.doc
}

// Lookup returns the page named name.
func (g *Gallery) Lookup(name string) (config.Page, bool) {
	for _, p := range g.doc.Pages {
		if p.Name == name {
			return p, true
		}
	}
	return config.Page{}, false
}

// Page renders the named page as a complete HTML document.
func (g *Gallery) Page(name string) (templ.Component, error) {
	page, ok := g.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("gallery: no page %q", name)
	}
	return g.layout(pageTitle(page), g.section(page)), nil
}

// All renders every page into a single HTML document.
func (g *Gallery) All() templ.Component {
	sections := make([]templ.Component, len(g.doc.Pages))
	for i, page := range g.doc.Pages {
		sections[i] = g.section(page)
	}
	return g.layout(g.doc.Title, sections...)
}

// CardContent returns the body of a lazy card, served as a fragment.
func (g *Gallery) CardContent(page string, sample int) (templ.Component, error) {
	p, ok := g.Lookup(page)
	if !ok || sample < 0 || sample >= len(p.Samples) {
		return nil, fmt.Errorf("gallery: no sample %s[%d]", page, sample)
	}
	s := p.Samples[sample]
	if s.Kind != config.KindCard {
		return nil, fmt.Errorf("gallery: sample %s[%d] is a %s, not a card", page, sample, s.Kind)
	}
	return bulma.Plain(s.Text), nil
}

func pageTitle(p config.Page) string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}

func (g *Gallery) layout(title string, body ...templ.Component) templ.Component {
	stylesheet := g.doc.Stylesheet
	if stylesheet == "" {
		stylesheet = DefaultStylesheet
	}

	head := []templ.Component{
		bulma.Void("meta", bulma.Attrs{{Key: "charset", Value: "utf-8"}}),
		bulma.Void("meta", bulma.Attrs{
			{Key: "name", Value: "viewport"},
			{Key: "content", Value: "width=device-width, initial-scale=1"},
		}),
		bulma.Element("title", nil, bulma.Plain(title)),
		bulma.Void("link", bulma.Attrs{
			{Key: "rel", Value: "stylesheet"},
			{Key: "href", Value: templ.URL(stylesheet)},
		}),
	}
	for _, src := range g.opts.Scripts {
		head = append(head, bulma.Element("script", bulma.Attrs{{Key: "src", Value: templ.URL(src)}}))
	}

	content := append([]templ.Component{g.navigation()}, body...)
	content = append(content, hx.ToastContainer())

	return bulma.Fragment(
		bulma.Raw("<!DOCTYPE html>"),
		bulma.Element("html", bulma.Attrs{{Key: "lang", Value: "en"}},
			bulma.Element("head", nil, head...),
			bulma.Element("body", nil, content...),
		),
	)
}

func (g *Gallery) navigation() templ.Component {
	return bulma.NavigationBar(bulma.NavigationBarOptions{Container: true}, func(nav *bulma.NavigationBarBuilder) {
		nav.Brand(bulma.Element("strong", bulma.Attrs{{Key: "class", Value: "navbar-item"}}, bulma.Plain(g.doc.Title)))
		for _, page := range g.doc.Pages {
			nav.Left(bulma.Element("a", bulma.Attrs{
				{Key: "class", Value: "navbar-item"},
				{Key: "href", Value: templ.SafeURL(g.opts.PageURL(page.Name))},
			}, bulma.Plain(pageTitle(page))))
		}
	})
}

func (g *Gallery) section(page config.Page) templ.Component {
	samples := make([]templ.Component, len(page.Samples))
	for i, s := range page.Samples {
		samples[i] = bulma.Element("div", bulma.Attrs{
			{Key: "class", Value: "box"},
			{Key: "id", Value: sampleID(page.Name, i)},
		},
			bulma.Element("p", bulma.Attrs{{Key: "class", Value: "heading"}}, bulma.Plain(s.Kind)),
			g.sample(page.Name, i, s),
		)
	}
	return bulma.Element("section", bulma.Attrs{
		{Key: "class", Value: "section"},
		{Key: "id", Value: page.Name},
	},
		bulma.Element("div", bulma.Attrs{{Key: "class", Value: "container"}},
			append([]templ.Component{bulma.Title(pageTitle(page), bulma.TitleOptions{Size: 2})}, samples...)...,
		),
	)
}

func sampleID(page string, i int) string {
	return page + "-" + strconv.Itoa(i)
}
