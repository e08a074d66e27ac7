package hx

import (
	"github.com/a-h/templ"
	"github.com/pthm/bulma"
)

// Flash levels for toast notifications.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// ToastsID is the id of the element flash messages are appended to.
const ToastsID = "toasts"

// AutoDismissMillis is the delay written to data-auto-dismiss on every
// toast.
const AutoDismissMillis = 3000

// Flash represents a one-time notification message.
//
// Flash messages are rendered as Bulma notifications in an out-of-band
// (OOB) swap that appends to the #toasts container. A client script may
// read data-auto-dismiss to remove them after a delay.
type Flash struct {
	Level   string // success, error, warning, info
	Message string
}

// flashColors maps flash levels to notification colors. Unknown levels
// render without a color.
var flashColors = map[string]bulma.Color{
	FlashSuccess: bulma.Success,
	FlashError:   bulma.Danger,
	FlashWarning: bulma.Warning,
	FlashInfo:    bulma.Info,
}

// FlashNotification renders a single flash as a dismissible notification.
func FlashNotification(f Flash) templ.Component {
	attrs := bulma.Attrs{{Key: "class", Value: "toast"}}.
		Data("flash-level", f.Level).
		Data("auto-dismiss", AutoDismissMillis)
	return bulma.Notification(bulma.NotificationOptions{
		Color:  flashColors[f.Level],
		Delete: true,
		Attrs:  attrs,
	}, bulma.Plain(f.Message))
}

// FlashesOOB renders flashes as an OOB swap into the #toasts container.
// It renders nothing when there are no flashes. Append it to a fragment
// response:
//
//	return bulma.Fragment(content, hx.FlashesOOB(flashes)), nil
func FlashesOOB(flashes []Flash) templ.Component {
	if len(flashes) == 0 {
		return bulma.Fragment()
	}
	items := make([]templ.Component, len(flashes))
	for i, f := range flashes {
		items[i] = FlashNotification(f)
	}
	return bulma.Element("div", bulma.Attrs{
		{Key: "id", Value: ToastsID},
		{Key: "hx-swap-oob", Value: string(SwapBeforeEnd)},
	}, items...)
}

// ToastContainer returns the container flash messages are appended to.
//
// Add it to your layout, typically near the end of <body>. Style
// .toast-container to position the notifications.
func ToastContainer() templ.Component {
	return bulma.Element("div", bulma.Attrs{
		{Key: "id", Value: ToastsID},
		{Key: "class", Value: "toast-container"},
	})
}
