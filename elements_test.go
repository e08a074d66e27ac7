package bulma

import (
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/pthm/bulma/internal/htmltest"
)

func TestLeafComponents(t *testing.T) {
	tests := []struct {
		name string
		c    templ.Component
		want string
	}{
		{
			"icon",
			Icon("fas fa-home", IconOptions{}),
			`<span class="icon"><i class="fas fa-home"></i></span>`,
		},
		{
			"icon with text",
			Icon("fas fa-home", IconOptions{Color: Primary, TextRight: "Home"}),
			`<span class="icon-text"><span class="icon has-text-primary"><i class="fas fa-home"></i></span><span>Home</span></span>`,
		},
		{
			"button with icons",
			Button(ButtonOptions{
				Color:     Primary,
				Size:      Small,
				Rounded:   true,
				Icon:      "fas fa-check",
				IconRight: "fas fa-angle-right",
				Attrs:     Attrs{{Key: "type", Value: "submit"}, {Key: "class", Value: "mt-2"}},
			}, Plain("Save")),
			`<button class="button is-primary is-small is-rounded mt-2" type="submit"><span class="icon"><i class="fas fa-check"></i></span>Save<span class="icon"><i class="fas fa-angle-right"></i></span></button>`,
		},
		{
			"tag span",
			Tag("Sample Tag", TagOptions{Light: Warning}),
			`<span class="tag is-warning is-light">Sample Tag</span>`,
		},
		{
			"tag anchor",
			Tag("Link Tag", TagOptions{Size: Large, Attrs: Attrs{{Key: "href", Value: "/sample-link"}}}),
			`<a class="tag is-large" href="/sample-link">Link Tag</a>`,
		},
		{
			"tag delete",
			Tag("Remove", TagOptions{Delete: true}),
			`<button class="tag">Remove<span class="delete is-small"></span></button>`,
		},
		{
			"tag delete large",
			Tag("Remove", TagOptions{Delete: true, Size: Large}),
			`<button class="tag is-large">Remove<span class="delete"></span></button>`,
		},
		{
			"tag with action",
			Tag("Go", TagOptions{Attrs: Attrs{}.Data("action", "tags#go")}),
			`<button class="tag" data-action="tags#go">Go</button>`,
		},
		{
			"notification with delete",
			Notification(NotificationOptions{
				Color:       Danger,
				DeleteAttrs: Attrs{}.Data("action", "notification#close"),
				Attrs:       Attrs{{Key: "class", Value: "mb-2"}},
			}, Plain("Failed")),
			`<div class="notification is-danger mb-2"><button class="delete" data-action="notification#close"></button>Failed</div>`,
		},
		{
			"notification plain",
			Notification(NotificationOptions{}, Plain("Hi")),
			`<div class="notification">Hi</div>`,
		},
		{
			"title and subtitle",
			Title("Hello", TitleOptions{Size: 2, Subtitle: "World"}),
			`<h1 class="title is-2">Hello</h1><h2 class="subtitle is-4">World</h2>`,
		},
		{
			"title only",
			Title("Hello", TitleOptions{}),
			`<h1 class="title">Hello</h1>`,
		},
		{
			"progress",
			ProgressBar(ProgressBarOptions{Color: Info, Attrs: Attrs{{Key: "value", Value: 15}, {Key: "max", Value: 100}}}, Plain("15%")),
			`<progress class="progress is-info" value="15" max="100">15%</progress>`,
		},
		{
			"columns",
			Columns(ColumnsOptions{Multiline: true}, Column(ColumnOptions{Size: Uniform(4)}, Plain("a"))),
			`<div class="columns is-multiline"><div class="column is-4">a</div></div>`,
		},
		{
			"grid",
			Grid(GridOptions{MinColumnWidth: 10, Gap: "2"}, Cell(nil, Plain("a"))),
			`<div class="grid is-col-min-10 is-gap-2"><div class="cell">a</div></div>`,
		},
		{
			"fixed grid takes the attributes",
			Grid(GridOptions{FixedColumns: 3, Attrs: Attrs{{Key: "id", Value: "g"}}}),
			`<div class="fixed-grid has-3-cols" id="g"><div class="grid"></div></div>`,
		},
		{
			"modal",
			Modal(ModalOptions{}, Plain("Hello")),
			`<div class="modal" data-controller="bulma--modal"><div class="modal-background" data-action="click->bulma--modal#close"></div><div class="modal-content">Hello</div><button class="modal-close is-large" aria-label="close" data-action="bulma--modal#close"></button></div>`,
		},
		{
			"modal custom controller",
			Modal(ModalOptions{Active: true, DataAttributes: StimulusModal("dialog")}),
			`<div class="modal is-active" data-controller="dialog"><div class="modal-background" data-action="click->dialog#close"></div><div class="modal-content"></div><button class="modal-close is-large" aria-label="close" data-action="dialog#close"></button></div>`,
		},
		{
			"form control",
			FormControl(FormControlOptions{}, Plain("x")),
			`<div class="control">x</div>`,
		},
		{
			"form control with icons",
			FormControl(FormControlOptions{IconLeft: "fas fa-user", IconRight: "fas fa-check"}, Void("input", Attrs{{Key: "class", Value: "input"}})),
			`<div class="control has-icons-left has-icons-right"><input class="input"><span class="icon is-small is-left"><i class="fas fa-user"></i></span><span class="icon is-small is-right"><i class="fas fa-check"></i></span></div>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			htmltest.Equal(t, render(t, tt.c), tt.want)
		})
	}
}

func TestTextIsEscaped(t *testing.T) {
	got := render(t, Tag(`<script>alert("x")</script>`, TagOptions{}))
	if strings.Contains(got, "<script>") {
		t.Errorf("Tag() = %q, caller text was not escaped", got)
	}
}

func TestRawPassesThrough(t *testing.T) {
	got := render(t, Fragment(Raw("<b>bold</b>"), nil, Plain("&")))
	if got != "<b>bold</b>&amp;" {
		t.Errorf("Fragment() = %q, want %q", got, "<b>bold</b>&amp;")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	c := Card(CardOptions{Attrs: Attrs{}.Data("a", "1").Data("b", "2").Aria("label", "card")}, func(b *CardBuilder) {
		b.Head("Title", "has-background-light")
		b.Content(Button(ButtonOptions{Color: Link, Rounded: true}, Plain("Go")))
		b.FooterLink("One", "/1")
		b.FooterLink("Two", "/2")
	})
	first := render(t, c)
	for i := 0; i < 10; i++ {
		if got := render(t, c); got != first {
			t.Fatalf("render %d = %q, want %q", i, got, first)
		}
	}
}
