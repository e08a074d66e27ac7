package gallery

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pthm/bulma"
	"github.com/pthm/bulma/hx"
	"github.com/pthm/bulma/internal/config"
)

// divider is the item text that renders a dropdown divider.
const divider = "-"

func (g *Gallery) sample(page string, i int, s config.Sample) templ.Component {
	color := bulma.Color(s.Color)
	size := bulma.Size(s.Size)

	switch s.Kind {
	case config.KindButton:
		opts := bulma.ButtonOptions{Color: color, Size: size, Rounded: s.Rounded, Icon: s.Icon}
		if s.Href != "" {
			// Links styled as buttons.
			return bulma.Element("a", bulma.Attrs{
				{Key: "class", Value: bulma.ButtonClasses(opts)},
				{Key: "href", Value: templ.URL(s.Href)},
			}, bulma.Plain(s.Text))
		}
		return bulma.Button(opts, bulma.Plain(s.Text))

	case config.KindTag:
		tags := make([]templ.Component, 0, len(s.Items))
		for _, item := range textItems(s) {
			tags = append(tags, bulma.Tag(item, bulma.TagOptions{Color: color, Size: size, Rounded: s.Rounded}))
		}
		return bulma.Element("div", bulma.Attrs{{Key: "class", Value: "tags"}}, tags...)

	case config.KindNotification:
		return bulma.Notification(bulma.NotificationOptions{Color: color, Delete: true}, bulma.Plain(s.Text))

	case config.KindTitle:
		opts := bulma.TitleOptions{Size: titleSize(size)}
		if len(s.Items) > 0 {
			opts.Subtitle = s.Items[0]
		}
		return bulma.Title(s.Text, opts)

	case config.KindProgress:
		attrs := bulma.Attrs{{Key: "value", Value: s.Value}}
		if s.Max > 0 {
			attrs = attrs.Set("max", s.Max)
		}
		return bulma.ProgressBar(bulma.ProgressBarOptions{Color: color, Size: size, Attrs: attrs},
			bulma.Plain(strconv.Itoa(s.Value)))

	case config.KindIcon:
		return bulma.Icon(s.Icon, bulma.IconOptions{Size: size, Color: color, TextRight: s.Text})

	case config.KindCard:
		return g.card(page, i, s)

	case config.KindTabs:
		return bulma.Tabs(bulma.TabsOptions{
			Size:  size,
			Attrs: bulma.Attrs{{Key: "id", Value: sampleID(page, i)}},
		}, func(tabs *bulma.TabsBuilder) {
			for n, item := range s.Items {
				tabs.Tab(bulma.TabOptions{
					ID:     sampleID(page, i) + "-" + strconv.Itoa(n),
					Title:  item,
					Active: n == 0,
				}, bulma.Plain(item))
			}
		})

	case config.KindTable:
		return g.table(s)

	case config.KindPagination:
		pager := bulma.NewPage(s.Page, s.PerPage, s.Total)
		return bulma.Pagination(pager, func(n int) string {
			return g.opts.PageURL(page) + "?page=" + strconv.Itoa(n)
		}, bulma.PaginationOptions{})

	case config.KindDropdown:
		return bulma.Dropdown(s.Text, bulma.DropdownOptions{Icon: s.Icon}, func(d *bulma.DropdownBuilder) {
			for _, item := range s.Items {
				if item == divider {
					d.Divider()
					continue
				}
				d.ItemText(item)
			}
		})

	case config.KindLevel:
		return bulma.Level(bulma.LevelOptions{}, func(l *bulma.LevelBuilder) {
			if s.Title != "" {
				l.Left(bulma.Element("strong", nil, bulma.Plain(s.Title)))
			}
			for _, item := range s.Items {
				l.Item(bulma.Plain(item))
			}
		})

	case config.KindHero:
		return bulma.Hero(bulma.HeroOptions{Title: s.Title, Subtitle: s.Text, Color: color, Size: size}, nil)

	case config.KindColumns:
		cols := make([]templ.Component, len(s.Items))
		for n, item := range s.Items {
			cols[n] = bulma.Column(bulma.ColumnOptions{},
				bulma.Notification(bulma.NotificationOptions{Color: color}, bulma.Plain(item)))
		}
		return bulma.Columns(bulma.ColumnsOptions{}, cols...)

	case config.KindGrid:
		cells := make([]templ.Component, len(s.Items))
		for n, item := range s.Items {
			cells[n] = bulma.Cell(nil, bulma.Plain(item))
		}
		return bulma.Grid(bulma.GridOptions{}, cells...)

	case config.KindModal:
		return bulma.Modal(bulma.ModalOptions{},
			bulma.Element("div", bulma.Attrs{{Key: "class", Value: "box"}}, bulma.Plain(s.Text)))

	case config.KindFormField:
		return bulma.FormField(bulma.FormFieldOptions{IconLeft: s.Icon, Help: s.Text}, func(f *bulma.FormFieldBuilder) {
			f.Label(s.Title)
			f.Control(bulma.Void("input", bulma.Attrs{
				{Key: "class", Value: "input"},
				{Key: "type", Value: "text"},
				{Key: "name", Value: sampleID(page, i)},
			}))
		})

	case config.KindFileUpload:
		return bulma.FileUpload(bulma.FileUploadOptions{Color: color, Size: size, Name: true}, func(data bulma.Attrs) templ.Component {
			return bulma.Void("input", bulma.Mix(bulma.Attrs{
				{Key: "class", Value: "file-input"},
				{Key: "type", Value: "file"},
				{Key: "name", Value: sampleID(page, i)},
			}, data))
		})

	case config.KindNavigationBar:
		return bulma.NavigationBar(bulma.NavigationBarOptions{}, func(nav *bulma.NavigationBarBuilder) {
			nav.Brand(bulma.Element("strong", bulma.Attrs{{Key: "class", Value: "navbar-item"}}, bulma.Plain(s.Title)))
			for _, item := range s.Items {
				nav.Left(bulma.Element("a", bulma.Attrs{
					{Key: "class", Value: "navbar-item"},
					{Key: "href", Value: templ.SafeURL("#")},
				}, bulma.Plain(item)))
			}
		})
	}

	// Validation rejects unknown kinds before rendering.
	return bulma.Plain(fmt.Sprintf("unsupported sample kind %q", s.Kind))
}

func (g *Gallery) card(page string, i int, s config.Sample) templ.Component {
	return bulma.Card(bulma.CardOptions{}, func(b *bulma.CardBuilder) {
		c := hx.ExtendCard(b)
		if s.Title != "" {
			c.Head(s.Title)
		}
		if s.Lazy && g.opts.LazyURL != nil {
			c.LazyContent(g.opts.LazyURL(page, i),
				bulma.ProgressBar(bulma.ProgressBarOptions{Size: bulma.Small}))
		} else {
			c.Content(bulma.Plain(s.Text))
		}
		for _, item := range s.Items {
			c.FooterLink(item, "#")
		}
	})
}

func (g *Gallery) table(s config.Sample) templ.Component {
	return bulma.Table(s.Rows, bulma.TableOptions{Striped: true, FullWidth: true}, func(t *bulma.TableBuilder[[]string]) {
		for n, header := range s.Columns {
			t.TextColumn(header, func(row []string) string {
				if n < len(row) {
					return row[n]
				}
				return ""
			})
		}
	})
}

// textItems returns the items of s, or its text when there are none.
func textItems(s config.Sample) []string {
	if len(s.Items) == 0 && s.Text != "" {
		return []string{s.Text}
	}
	return s.Items
}

// titleSize maps a Bulma size onto a heading level.
func titleSize(s bulma.Size) int {
	switch s {
	case bulma.Large:
		return 1
	case bulma.Medium:
		return 3
	case bulma.Small:
		return 5
	}
	return 0
}
