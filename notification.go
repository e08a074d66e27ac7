package bulma

import "github.com/a-h/templ"

// NotificationOptions configures Notification.
//
// Class order: notification, is-<color>, is-<mode>, then caller classes.
type NotificationOptions struct {
	Color Color
	Mode  Mode
	// Delete adds a dismiss button. DeleteAttrs are mixed into it, for
	// example a data-action for a Stimulus controller.
	Delete      bool
	DeleteAttrs Attrs
	Attrs       Attrs
}

// NotificationClasses compiles the class list of a notification.
func NotificationClasses(opts NotificationOptions) Classes {
	return Classes{"notification"}.
		Is(string(opts.Color)).
		Is(string(opts.Mode))
}

// Notification renders a Bulma notification block around children.
func Notification(opts NotificationOptions, children ...templ.Component) templ.Component {
	var del templ.Component
	if opts.Delete || len(opts.DeleteAttrs) > 0 {
		del = Element("button", Mix(class("delete"), opts.DeleteAttrs))
	}
	body := append([]templ.Component{del}, children...)
	return div(Mix(class(NotificationClasses(opts)...), opts.Attrs), body...)
}
