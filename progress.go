package bulma

import "github.com/a-h/templ"

// ProgressBarOptions configures ProgressBar. Put value and max in Attrs;
// without them the bar is indeterminate.
type ProgressBarOptions struct {
	Color Color
	Size  Size
	Attrs Attrs
}

// ProgressBar renders a <progress> element.
func ProgressBar(opts ProgressBarOptions, children ...templ.Component) templ.Component {
	classes := Classes{"progress"}.Is(string(opts.Color)).Is(string(opts.Size))
	return Element("progress", Mix(class(classes...), opts.Attrs), children...)
}
