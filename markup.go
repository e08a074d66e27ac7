package bulma

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Plain returns a component that writes s with HTML escaping.
func Plain(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Raw returns a component that writes html unescaped. Use it only for
// markup the caller controls.
func Raw(html string) templ.Component {
	return templ.Raw(html)
}

// Fragment renders children in order. Nil children are skipped.
func Fragment(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderAll(ctx, w, children)
	})
}

// RenderString renders c into a string.
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Element renders <tag attrs>children</tag>. It is exported so callers can
// build small pieces of markup for slots without a .templ file.
func Element(tag string, attrs Attrs, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, openTag(tag, attrs)); err != nil {
			return err
		}
		if err := renderAll(ctx, w, children); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Void renders an element without a closing tag, such as <hr> or <input>.
func Void(tag string, attrs Attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, openTag(tag, attrs))
		return err
	})
}

func openTag(tag string, attrs Attrs) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(tag)
	attrs.render(&sb)
	sb.WriteByte('>')
	return sb.String()
}

func renderAll(ctx context.Context, w io.Writer, children []templ.Component) error {
	for _, c := range children {
		if c == nil {
			continue
		}
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

// class is shorthand for an attribute set holding only a class.
func class(tokens ...string) Attrs {
	return Attrs{{Key: "class", Value: Classes(tokens)}}
}

func div(attrs Attrs, children ...templ.Component) templ.Component {
	return Element("div", attrs, children...)
}

func span(attrs Attrs, children ...templ.Component) templ.Component {
	return Element("span", attrs, children...)
}

// when returns c if cond holds, nil otherwise. Nil children are skipped.
func when(cond bool, c func() templ.Component) templ.Component {
	if !cond {
		return nil
	}
	return c()
}
