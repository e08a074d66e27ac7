package hx

import (
	"github.com/a-h/templ"
	"github.com/pthm/bulma"
)

// Lazy returns a placeholder that loads url when it enters the viewport.
//
// The placeholder renders immediately; HTMX replaces the whole element with
// the response. Placeholders inside hidden tab panels load when the panel
// is shown.
func Lazy(url string, placeholder templ.Component) templ.Component {
	return Load(url, TriggerIntersect, SwapOuter, placeholder)
}

// Defer returns a placeholder that loads url once the page has loaded.
func Defer(url string, placeholder templ.Component) templ.Component {
	return Load(url, TriggerLoad, SwapOuter, placeholder)
}

// Load returns a placeholder div that issues hx-get to url on trigger.
func Load(url, trigger string, swap SwapMode, placeholder templ.Component) templ.Component {
	return bulma.Element("div", bulma.Attrs{
		{Key: "hx-get", Value: url},
		{Key: "hx-trigger", Value: trigger},
		{Key: "hx-swap", Value: string(swap)},
	}, placeholder)
}

// Card adds HTMX helpers to a card builder.
type Card struct {
	*bulma.CardBuilder
}

// ExtendCard wraps b. Call it inside the Card configure callback.
func ExtendCard(b *bulma.CardBuilder) Card {
	return Card{CardBuilder: b}
}

// LazyContent sets the card content to a placeholder that loads url when
// the card scrolls into view.
func (c Card) LazyContent(url string, placeholder templ.Component) {
	c.Content(Lazy(url, placeholder))
}

// Tabs adds HTMX helpers to a tabs builder.
type Tabs struct {
	*bulma.TabsBuilder
}

// ExtendTabs wraps b. Call it inside the Tabs configure callback.
func ExtendTabs(b *bulma.TabsBuilder) Tabs {
	return Tabs{TabsBuilder: b}
}

// LazyTab registers a tab whose panel loads url the first time it is
// shown.
func (t Tabs) LazyTab(tab bulma.TabOptions, url string, placeholder templ.Component) {
	t.Tab(tab, Lazy(url, placeholder))
}
