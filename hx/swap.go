package hx

// SwapMode defines HTMX swap strategies for how response HTML replaces the target.
//
// Each mode corresponds to an HTMX hx-swap value. The default is SwapOuter.
//
// See https://htmx.org/attributes/hx-swap/ for visual examples.
type SwapMode string

const (
	// SwapOuter replaces the entire element including its tag (outerHTML).
	// Lazy placeholders use it so the fragment takes the placeholder's place.
	SwapOuter SwapMode = "outerHTML"

	// SwapInner replaces only the element's contents, preserving the outer tag (innerHTML).
	SwapInner SwapMode = "innerHTML"

	// SwapBeforeEnd appends the response to the end of the target's contents.
	// Flash notifications are added to the toast container this way.
	SwapBeforeEnd SwapMode = "beforeend"

	// SwapAfterEnd inserts the response after the target element.
	SwapAfterEnd SwapMode = "afterend"

	// SwapBeforeBegin inserts the response before the target element.
	SwapBeforeBegin SwapMode = "beforebegin"

	// SwapAfterBegin prepends the response to the start of the target's contents.
	// Useful for prepending rows to a table body.
	SwapAfterBegin SwapMode = "afterbegin"

	// SwapDelete removes the target element entirely.
	SwapDelete SwapMode = "delete"

	// SwapNone performs no swap - response is discarded.
	SwapNone SwapMode = "none"
)

// Triggers used by the lazy placeholders.
const (
	TriggerIntersect = "intersect once"
	TriggerLoad      = "load"
)
