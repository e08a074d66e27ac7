package bulma

import (
	"strings"
	"testing"

	"github.com/pthm/bulma/internal/htmltest"
)

func navLink(href string) Attrs {
	return Attrs{{Key: "class", Value: "navbar-item"}, {Key: "href", Value: href}}
}

func TestNavigationBar(t *testing.T) {
	got := render(t, NavigationBar(NavigationBarOptions{}, func(nav *NavigationBarBuilder) {
		nav.Brand(Element("a", navLink("/"), Plain("App")))
		nav.Left(Element("a", navLink("/"), Plain("Home")))
		nav.Left(Element("a", navLink("/products"), Plain("Products")))
		nav.Right(Element("a", navLink("/about"), Plain("About")))
	}))

	want := `<nav class="navbar" role="navigation" aria-label="main navigation" data-controller="bulma--navigation-bar">
		<div class="navbar-brand">
			<a class="navbar-item" href="/">App</a>
			<a class="navbar-burger" role="button" aria-label="menu" aria-expanded="false"
				data-action="bulma--navigation-bar#toggle" data-bulma--navigation-bar-target="burger">
				<span aria-hidden="true"></span><span aria-hidden="true"></span>
				<span aria-hidden="true"></span><span aria-hidden="true"></span>
			</a>
		</div>
		<div class="navbar-menu" data-bulma--navigation-bar-target="menu">
			<div class="navbar-start">
				<a class="navbar-item" href="/">Home</a>
				<a class="navbar-item" href="/products">Products</a>
			</div>
			<div class="navbar-end"><a class="navbar-item" href="/about">About</a></div>
		</div>
	</nav>`
	htmltest.Equal(t, got, want)
}

func TestNavigationBarContainer(t *testing.T) {
	got := render(t, NavigationBar(NavigationBarOptions{
		Constraint: "is-fluid",
		Controller: "menu",
		Attrs:      Attrs{{Key: "class", Value: "is-primary"}},
	}, nil))

	want := `<nav class="navbar is-primary" role="navigation" aria-label="main navigation" data-controller="menu">
		<div class="container is-fluid">
			<div class="navbar-brand">
				<a class="navbar-burger" role="button" aria-label="menu" aria-expanded="false" data-action="menu#toggle" data-menu-target="burger">
					<span aria-hidden="true"></span><span aria-hidden="true"></span>
					<span aria-hidden="true"></span><span aria-hidden="true"></span>
				</a>
			</div>
			<div class="navbar-menu" data-menu-target="menu">
				<div class="navbar-start"></div>
				<div class="navbar-end"></div>
			</div>
		</div>
	</nav>`
	htmltest.Equal(t, got, want)

	plain := render(t, NavigationBar(NavigationBarOptions{Container: true}, nil))
	if !strings.Contains(plain, `<div class="container">`) {
		t.Errorf("NavigationBar(Container) = %q, want a bare container div", plain)
	}
}

func TestNavigationBarDropdown(t *testing.T) {
	got := render(t, NavigationBarDropdown(NavigationBarDropdownOptions{}, func(d *NavigationBarDropdownBuilder) {
		d.Header("User")
		d.Item("Profile", "/profile")
		d.Divider()
		d.Item("Sign Out", "/logout")
	}))

	want := `<div class="navbar-dropdown is-right">
		<div class="navbar-item header has-text-weight-medium">User</div>
		<a class="navbar-item" href="/profile">Profile</a>
		<hr class="navbar-divider">
		<a class="navbar-item" href="/logout">Sign Out</a>
	</div>`
	htmltest.Equal(t, got, want)

	left := render(t, NavigationBarDropdown(NavigationBarDropdownOptions{Left: true}, nil))
	htmltest.Equal(t, left, `<div class="navbar-dropdown"></div>`)
}

func TestDropdown(t *testing.T) {
	got := render(t, Dropdown("Actions", DropdownOptions{}, func(d *DropdownBuilder) {
		d.Link("View Profile", "/profile")
		d.Divider()
		d.ItemText("Just text")
		d.Item(Element("strong", nil, Plain("Bold")))
	}))

	want := `<div class="dropdown" data-controller="bulma--dropdown">
		<div class="dropdown-trigger">
			<button class="button" aria-haspopup="true" aria-controls="dropdown-menu" data-action="bulma--dropdown#toggle">
				<span>Actions</span>
				<span class="icon is-small"><i class="fas fa-angle-down" aria-hidden="true"></i></span>
			</button>
		</div>
		<div class="dropdown-menu" id="dropdown-menu" role="menu">
			<div class="dropdown-content">
				<a class="dropdown-item" href="/profile">View Profile</a>
				<hr class="dropdown-divider">
				<div class="dropdown-item">Just text</div>
				<div class="dropdown-item"><strong>Bold</strong></div>
			</div>
		</div>
	</div>`
	htmltest.Equal(t, got, want)
}

func TestDropdownHoverable(t *testing.T) {
	got := render(t, Dropdown("More", DropdownOptions{Hoverable: true, Align: AlignUp, Icon: "fas fa-angle-up"}, nil))

	want := `<div class="dropdown is-hoverable is-up">
		<div class="dropdown-trigger">
			<button class="button" aria-haspopup="true" aria-controls="dropdown-menu">
				<span>More</span>
				<span class="icon is-small"><i class="fas fa-angle-up" aria-hidden="true"></i></span>
			</button>
		</div>
		<div class="dropdown-menu" id="dropdown-menu" role="menu"><div class="dropdown-content"></div></div>
	</div>`
	htmltest.Equal(t, got, want)
}
