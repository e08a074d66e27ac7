package bulma

import (
	"time"

	"github.com/a-h/templ"
)

// TableOptions configures Table.
//
// Class order: table, is-bordered, is-striped, is-narrow, is-hoverable,
// is-fullwidth.
type TableOptions struct {
	// ID is the table id. When empty it is taken from the first row if
	// that row implements TableNamer, and is "table" otherwise.
	ID        string
	Bordered  bool
	Striped   bool
	Narrow    bool
	Hoverable bool
	FullWidth bool
	Attrs     Attrs
}

// TableNamer is implemented by row types that know the name of their
// collection, such as "users".
type TableNamer interface {
	TableName() string
}

// TableClasses compiles the class list of a table.
func TableClasses(opts TableOptions) Classes {
	return Classes{"table"}.
		AddIf(opts.Bordered, "is-bordered").
		AddIf(opts.Striped, "is-striped").
		AddIf(opts.Narrow, "is-narrow").
		AddIf(opts.Hoverable, "is-hoverable").
		AddIf(opts.FullWidth, "is-fullwidth")
}

// TableColumn is a registered column. Its methods adjust the cell
// attributes and return the column for chaining.
type TableColumn[T any] struct {
	header  string
	attrs   Attrs
	content func(T) templ.Component
}

// Attrs mixes attrs into every cell of the column.
func (c *TableColumn[T]) Attrs(attrs Attrs) *TableColumn[T] {
	c.attrs = Mix(c.attrs, attrs)
	return c
}

// Class adds class tokens to every cell of the column.
func (c *TableColumn[T]) Class(tokens ...string) *TableColumn[T] {
	c.attrs = c.attrs.Class(tokens...)
	return c
}

// headerClass derives the th alignment from the cell classes.
func (c *TableColumn[T]) headerClass() Attrs {
	cls := c.attrs.ClassList()
	switch {
	case cls.Has("has-text-right") || cls.Has("amount-display"):
		return class("has-text-right")
	case cls.Has("has-text-centered"):
		return class("has-text-centered")
	}
	return nil
}

// TableBuilder collects columns and the optional pagination footer.
type TableBuilder[T any] struct {
	columns []*TableColumn[T]
	pager   Pager
	path    PathFunc
}

// Column registers a column whose cells are produced by content.
func (b *TableBuilder[T]) Column(header string, content func(T) templ.Component) *TableColumn[T] {
	col := &TableColumn[T]{header: header, content: content}
	b.columns = append(b.columns, col)
	return col
}

// TextColumn registers a column of escaped text.
func (b *TableBuilder[T]) TextColumn(header string, text func(T) string) *TableColumn[T] {
	return b.Column(header, func(row T) templ.Component {
		return Plain(text(row))
	})
}

// DateColumn registers a column of formatted times. An empty layout means
// 2006-01-02. Zero times leave the cell empty.
func (b *TableBuilder[T]) DateColumn(header, layout string, value func(T) time.Time) *TableColumn[T] {
	if layout == "" {
		layout = time.DateOnly
	}
	return b.Column(header, func(row T) templ.Component {
		t := value(row)
		if t.IsZero() {
			return nil
		}
		return Plain(t.Format(layout))
	})
}

// ConditionalIcon registers a centered column that shows an icon for rows
// where cond holds. An empty icon means "fas fa-check".
func (b *TableBuilder[T]) ConditionalIcon(header, icon string, cond func(T) bool) *TableColumn[T] {
	if icon == "" {
		icon = "fas fa-check"
	}
	return b.Column(header, func(row T) templ.Component {
		if !cond(row) {
			return nil
		}
		return Icon(icon, IconOptions{})
	}).Class("has-text-centered")
}

// Paginate adds a footer row holding a Pagination for pager.
func (b *TableBuilder[T]) Paginate(pager Pager, path PathFunc) {
	b.pager = pager
	b.path = path
}

// Table renders rows as a table. The body is row-major: one tr per row,
// one td per column in registration order.
//
//	bulma.Table(users, bulma.TableOptions{Striped: true}, func(t *bulma.TableBuilder[User]) {
//		t.TextColumn("Name", func(u User) string { return u.Name })
//		t.DateColumn("Joined", "", func(u User) time.Time { return u.CreatedAt })
//	})
func Table[T any](rows []T, opts TableOptions, configure func(*TableBuilder[T])) templ.Component {
	return build(configure, func(b *TableBuilder[T]) templ.Component {
		headers := make([]templ.Component, len(b.columns))
		for i, col := range b.columns {
			headers[i] = Element("th", col.headerClass(), Plain(col.header))
		}

		body := make([]templ.Component, len(rows))
		for r, row := range rows {
			cells := make([]templ.Component, len(b.columns))
			for c, col := range b.columns {
				cells[c] = Element("td", col.attrs, col.content(row))
			}
			body[r] = Element("tr", nil, cells...)
		}

		attrs := Attrs{
			{Key: "id", Value: tableID(rows, opts.ID)},
			{Key: "class", Value: TableClasses(opts)},
		}
		return Element("table", Mix(attrs, opts.Attrs),
			Element("thead", nil, Element("tr", nil, headers...)),
			Element("tbody", nil, body...),
			b.footer(),
		)
	})
}

func (b *TableBuilder[T]) footer() templ.Component {
	if b.pager == nil {
		return nil
	}
	return Element("tfoot", nil,
		Element("tr", nil,
			Element("td", Attrs{{Key: "class", Value: "py-0"}, {Key: "colspan", Value: len(b.columns)}},
				Pagination(b.pager, b.path, PaginationOptions{}),
			),
		),
	)
}

// tableID picks the table id. A panic in TableName is recovered and the
// default is used; the failure is logged at debug level.
func tableID[T any](rows []T, id string) (out string) {
	const fallback = "table"
	if id != "" {
		return id
	}
	if len(rows) == 0 {
		return fallback
	}
	namer, ok := any(rows[0]).(TableNamer)
	if !ok {
		return fallback
	}
	defer func() {
		if r := recover(); r != nil {
			log().Debug().Interface("panic", r).Msg("bulma: table name lookup failed, using default id")
			out = fallback
		}
	}()
	if name := namer.TableName(); name != "" {
		return name
	}
	return fallback
}
