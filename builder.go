package bulma

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// build returns a component that, on every render, creates a fresh builder,
// hands it to configure and renders whatever render produces from it.
// Registration methods only record; no markup is written until configure
// has returned.
func build[B any](configure func(*B), render func(*B) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := new(B)
		if configure != nil {
			configure(b)
		}
		return render(b).Render(ctx, w)
	})
}
