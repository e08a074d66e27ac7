// Package hx connects bulma components to HTMX.
//
// The core bulma package renders static markup. This package adds the
// pieces a server needs to load parts of a page over HTMX: named fragments
// served from signed URLs, lazy placeholders that fetch them, flash
// messages rendered as Bulma notifications, and small request helpers.
//
// # Fragments
//
// A fragment is a named function that renders a component from URL
// parameters. Fragments are registered with a Registry, which serves them
// under a common prefix:
//
//	reg := hx.NewRegistry(secretKey)
//	orders := reg.Fragment("orders", func(r *http.Request, p hx.Params) (templ.Component, error) {
//	    page := bulma.NewPage(p.Int("page"), 20, store.CountOrders())
//	    return ordersTable(store.Orders(page), page), nil
//	})
//	http.Handle("/_c/", reg.Handler())
//
// Parameters are carried in a single query value. By default they are
// signed (HMAC-SHA256), which keeps them readable but tamper-proof. Call
// Sensitive on the fragment to encrypt them with AES-GCM instead.
//
// # Lazy Content
//
// Lazy and Defer render a placeholder that HTMX replaces with the fragment
// once it scrolls into view or once the page has loaded:
//
//	orders.Lazy(hx.Params{"page": 1}, bulma.Plain("Loading..."))
//
// Builders from the bulma package can be extended the same way:
//
//	bulma.Card(bulma.CardOptions{}, func(b *bulma.CardBuilder) {
//	    b.Head("Orders")
//	    hx.ExtendCard(b).LazyContent(orders.URL(hx.Params{"page": 1}), spinner)
//	})
//
// # Security Model
//
// Mutating methods (POST/PUT/DELETE/PATCH) require the HX-Request: true
// header that HTMX sends, which blocks plain cross-origin form posts
// without additional tokens.
//
// # Error Handling
//
// Fragment errors go to Registry.OnError. The default handler maps
// ErrNotFound to 404, tampered or malformed parameters to 400 and
// everything else to 500.
package hx
