package bulma

import (
	"fmt"

	"github.com/a-h/templ"
)

// TabsOptions configures Tabs.
//
// Class order: tabs, is-boxed, is-<align>, is-<size>, is-toggle,
// is-toggle-rounded, is-fullwidth. Rounded implies is-toggle.
type TabsOptions struct {
	Align     Alignment
	Size      Size
	Boxed     bool
	Toggle    bool
	Rounded   bool
	FullWidth bool
	// DataAttributes drives tab switching. Defaults to
	// StimulusTabs(TabsController).
	DataAttributes TabsDataAttributes
	// Attrs go on the outer div. When they carry an id, the tab list gets
	// <id>-tabs and the content wrapper <id>-content.
	Attrs Attrs
}

// TabOptions describes one tab.
type TabOptions struct {
	ID     string
	Title  string
	Icon   string
	Active bool
}

// TabsBuilder collects tabs and their content. Tab and content entries are
// always registered together, so entry i of one belongs to entry i of the
// other.
type TabsBuilder struct {
	tabs     []TabOptions
	contents []templ.Component
	right    templ.Component
}

// Tab registers a tab and its content panel.
func (b *TabsBuilder) Tab(tab TabOptions, content templ.Component) {
	b.tabs = append(b.tabs, tab)
	b.contents = append(b.contents, content)
}

// RightContent places c to the right of the tab list, for example a button.
func (b *TabsBuilder) RightContent(c templ.Component) { b.right = c }

// TabsClasses compiles the class list of the tabs element.
func TabsClasses(opts TabsOptions) Classes {
	return Classes{"tabs"}.
		AddIf(opts.Boxed, "is-boxed").
		Is(string(opts.Align)).
		Is(string(opts.Size)).
		AddIf(opts.Toggle || opts.Rounded, "is-toggle").
		AddIf(opts.Rounded, "is-toggle-rounded").
		AddIf(opts.FullWidth, "is-fullwidth")
}

func (opts TabsOptions) dataAttributes() TabsDataAttributes {
	if opts.DataAttributes == nil {
		return StimulusTabs(TabsController)
	}
	return opts.DataAttributes
}

// Tabs renders a tab list followed by the content panels. Inactive panels
// carry is-hidden.
//
//	bulma.Tabs(bulma.TabsOptions{}, func(t *bulma.TabsBuilder) {
//		t.Tab(bulma.TabOptions{ID: "profile", Title: "Profile", Active: true}, profile)
//		t.Tab(bulma.TabOptions{ID: "settings", Title: "Settings", Icon: "fas fa-cog"}, settings)
//	})
func Tabs(opts TabsOptions, configure func(*TabsBuilder)) templ.Component {
	return build(configure, func(b *TabsBuilder) templ.Component {
		data := opts.dataAttributes()

		var listAttrs, contentAttrs Attrs
		if id, ok := opts.Attrs.Get("id"); ok && id != nil {
			if s := idString(id); s != "" {
				listAttrs = listAttrs.Set("id", s+"-tabs")
				contentAttrs = contentAttrs.Set("id", s+"-content")
			}
		}

		items := make([]templ.Component, len(b.tabs))
		panels := make([]templ.Component, len(b.tabs))
		for i, tab := range b.tabs {
			items[i] = tabItem(tab, data)
			panels[i] = tabContent(tab.ID, tab.Active, data, b.contents[i])
		}

		list := div(class(TabsClasses(opts)...), Element("ul", listAttrs, items...))
		if b.right != nil {
			list = div(class("columns"),
				div(class("column"), list),
				div(class("column", "is-narrow"), b.right),
			)
		}

		return div(Mix(data.ForContainer(), opts.Attrs),
			list,
			div(contentAttrs, panels...),
		)
	})
}

// TabItem renders a single tab list item. Use it to re-render one tab on
// its own, for example in a partial page update.
func TabItem(tab TabOptions, data TabsDataAttributes) templ.Component {
	if data == nil {
		data = StimulusTabs(TabsController)
	}
	return tabItem(tab, data)
}

// TabContent renders a single content panel.
func TabContent(id string, active bool, data TabsDataAttributes, content templ.Component) templ.Component {
	if data == nil {
		data = StimulusTabs(TabsController)
	}
	return tabContent(id, active, data, content)
}

func tabItem(tab TabOptions, data TabsDataAttributes) templ.Component {
	attrs := Mix(Attrs{{Key: "id", Value: tab.ID + "-tab"}}, data.ForTab(tab.ID))
	if tab.Active {
		attrs = attrs.Class("is-active")
	}
	return Element("li", attrs,
		Element("a", nil,
			when(tab.Icon != "", func() templ.Component {
				return span(class("icon", "mr-1"), Element("i", class(tab.Icon)))
			}),
			span(nil, Plain(tab.Title)),
		),
	)
}

func tabContent(id string, active bool, data TabsDataAttributes, content templ.Component) templ.Component {
	attrs := Attrs{{Key: "id", Value: id}}
	if !active {
		attrs = attrs.Class("is-hidden")
	}
	return div(Mix(attrs, data.ForContent(id)), content)
}

func idString(v any) string {
	return fmt.Sprint(v)
}
