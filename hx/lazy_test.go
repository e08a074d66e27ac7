package hx

import (
	"testing"

	"github.com/pthm/bulma"
	"github.com/pthm/bulma/internal/htmltest"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "lazy",
			got:  render(t, Lazy("/_c/stats", bulma.Plain("Loading"))),
			want: `<div hx-get="/_c/stats" hx-trigger="intersect once" hx-swap="outerHTML">Loading</div>`,
		},
		{
			name: "defer",
			got:  render(t, Defer("/_c/stats", nil)),
			want: `<div hx-get="/_c/stats" hx-trigger="load" hx-swap="outerHTML"></div>`,
		},
		{
			name: "custom",
			got:  render(t, Load("/_c/feed", "every 5s", SwapInner, nil)),
			want: `<div hx-get="/_c/feed" hx-trigger="every 5s" hx-swap="innerHTML"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			htmltest.Equal(t, tt.got, tt.want)
		})
	}
}

func TestExtendCard(t *testing.T) {
	out := render(t, bulma.Card(bulma.CardOptions{}, func(b *bulma.CardBuilder) {
		c := ExtendCard(b)
		c.Head("Stats")
		c.LazyContent("/_c/stats", bulma.Plain("Loading"))
	}))

	htmltest.Equal(t, out, `<div class="card">`+
		`<header class="card-header"><p class="card-header-title">Stats</p></header>`+
		`<div class="card-content"><div class="content">`+
		`<div hx-get="/_c/stats" hx-trigger="intersect once" hx-swap="outerHTML">Loading</div>`+
		`</div></div></div>`)
}

func TestExtendTabs(t *testing.T) {
	out := render(t, bulma.Tabs(bulma.TabsOptions{}, func(b *bulma.TabsBuilder) {
		tabs := ExtendTabs(b)
		tabs.Tab(bulma.TabOptions{ID: "a", Title: "A", Active: true}, bulma.Plain("eager"))
		tabs.LazyTab(bulma.TabOptions{ID: "b", Title: "B"}, "/_c/b", bulma.Plain("Loading"))
	}))

	items := htmltest.Find(t, out, "li")
	if len(items) != 2 {
		t.Fatalf("got %d tab items, want 2", len(items))
	}

	var lazy int
	for _, d := range htmltest.Find(t, out, "div") {
		if v, ok := htmltest.Attr(d, "hx-get"); ok {
			lazy++
			if v != "/_c/b" {
				t.Errorf("hx-get = %q, want /_c/b", v)
			}
		}
	}
	if lazy != 1 {
		t.Errorf("got %d lazy panels, want 1", lazy)
	}
}
