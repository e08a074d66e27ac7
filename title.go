package bulma

import (
	"strconv"

	"github.com/a-h/templ"
)

// TitleOptions configures Title. Sizes run from 1 to 6; zero means unset.
type TitleOptions struct {
	Size     int
	Subtitle string
	// SubtitleSize defaults to Size+2 when Size is set.
	SubtitleSize int
	Spaced       bool
}

// TitleClasses compiles the title and subtitle class lists.
func TitleClasses(opts TitleOptions) (title, subtitle Classes) {
	title = Classes{"title"}.
		Is(sizeToken(opts.Size)).
		AddIf(opts.Spaced, "is-spaced")

	sub := opts.SubtitleSize
	if sub == 0 && opts.Size != 0 {
		sub = opts.Size + 2
	}
	subtitle = Classes{"subtitle"}.Is(sizeToken(sub))
	return title, subtitle
}

func sizeToken(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// Title renders an <h1> title with an optional <h2> subtitle.
func Title(text string, opts TitleOptions) templ.Component {
	title, subtitle := TitleClasses(opts)
	return Fragment(
		Element("h1", class(title...), Plain(text)),
		when(opts.Subtitle != "", func() templ.Component {
			return Element("h2", class(subtitle...), Plain(opts.Subtitle))
		}),
	)
}
