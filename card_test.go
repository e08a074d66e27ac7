package bulma

import (
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/pthm/bulma/internal/htmltest"
)

func TestCard(t *testing.T) {
	got := render(t, Card(CardOptions{}, func(c *CardBuilder) {
		c.Head("Card Title")
		c.Content(Plain("This is some card content"))
		c.FooterLink("View", "/view", Attrs{{Key: "target", Value: "_blank"}})
		c.FooterLink("Edit", "/edit", Attrs{{Key: "class", Value: "has-text-primary"}})
	}))

	want := `<div class="card">
		<header class="card-header"><p class="card-header-title">Card Title</p></header>
		<div class="card-content"><div class="content">This is some card content</div></div>
		<footer class="card-footer">
			<a href="/view" target="_blank" class="card-footer-item">View</a>
			<a href="/edit" class="has-text-primary card-footer-item">Edit</a>
		</footer>
	</div>`
	htmltest.Equal(t, got, want)
}

func TestCardHeaderClasses(t *testing.T) {
	got := render(t, Card(CardOptions{}, func(c *CardBuilder) {
		c.Head("Title", "has-background-primary", "has-text-white")
	}))
	htmltest.Equal(t, got, `<div class="card"><header class="card-header has-background-primary has-text-white"><p class="card-header-title">Title</p></header></div>`)
}

func TestCardOmitsEmptySections(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*CardBuilder)
		absent    []string
	}{
		{"nil callback", nil, []string{"card-header", "card-content", "card-footer"}},
		{"content only", func(c *CardBuilder) { c.Content(Plain("x")) }, []string{"card-header", "card-footer"}},
		{"footer only", func(c *CardBuilder) { c.FooterLink("a", "/a") }, []string{"card-header", "card-content"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, Card(CardOptions{}, tt.configure))
			for _, cls := range tt.absent {
				if strings.Contains(got, cls) {
					t.Errorf("Card() = %q, want no %s", got, cls)
				}
			}
		})
	}
}

func TestCardCallbackRunsOncePerRender(t *testing.T) {
	calls := 0
	c := Card(CardOptions{}, func(b *CardBuilder) {
		calls++
		b.FooterLink("a", "/a")
	})
	first := render(t, c)
	second := render(t, c)
	if calls != 2 {
		t.Errorf("configure called %d times over two renders, want 2", calls)
	}
	if first != second {
		t.Errorf("second render = %q, want %q", second, first)
	}
	if n := strings.Count(second, "card-footer-item"); n != 1 {
		t.Errorf("footer links = %d, want 1; builder state leaked between renders", n)
	}
}

func TestUnsafeHrefsAreNeutralized(t *testing.T) {
	const unsafe = "javascript:alert(1)"
	tests := []struct {
		name string
		c    templ.Component
	}{
		{"card footer", Card(CardOptions{}, func(c *CardBuilder) { c.FooterLink("x", unsafe) })},
		{"dropdown", Dropdown("Menu", DropdownOptions{}, func(d *DropdownBuilder) { d.Link("x", unsafe) })},
		{"navbar dropdown", NavigationBarDropdown(NavigationBarDropdownOptions{}, func(d *NavigationBarDropdownBuilder) { d.Item("x", unsafe) })},
		{"pagination", Pagination(NewPage(2, 10, 50), func(int) string { return unsafe }, PaginationOptions{})},
		{"attrs href", Element("a", Attrs{{Key: "href", Value: unsafe}}, Plain("x"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render(t, tt.c)
			if strings.Contains(got, "javascript:") {
				t.Errorf("output contains javascript href: %s", got)
			}
			if !strings.Contains(got, string(templ.FailedSanitizationURL)) {
				t.Errorf("output = %s, want %s href", got, templ.FailedSanitizationURL)
			}
		})
	}
}

func TestSafeHrefsPassThrough(t *testing.T) {
	got := render(t, Card(CardOptions{}, func(c *CardBuilder) {
		c.FooterLink("a", "https://example.com/x")
		c.FooterLink("b", "mailto:me@example.com")
		c.FooterLink("c", "?page=2")
	}))
	for _, href := range []string{`href="https://example.com/x"`, `href="mailto:me@example.com"`, `href="?page=2"`} {
		if !strings.Contains(got, href) {
			t.Errorf("Card() = %s, want %s", got, href)
		}
	}
}
