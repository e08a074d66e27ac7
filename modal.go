package bulma

import "github.com/a-h/templ"

// ModalOptions configures Modal.
type ModalOptions struct {
	// Active shows the modal when rendered.
	Active bool
	// DataAttributes drives opening and closing. Defaults to
	// StimulusModal(ModalController).
	DataAttributes ModalDataAttributes
	Attrs          Attrs
}

// Modal renders a modal with a background, the children as content and a
// close button.
func Modal(opts ModalOptions, children ...templ.Component) templ.Component {
	data := opts.DataAttributes
	if data == nil {
		data = StimulusModal(ModalController)
	}
	container := Mix(class("modal"), data.ForContainer())
	if opts.Active {
		container = container.Class("is-active")
	}
	return div(Mix(container, opts.Attrs),
		div(Mix(class("modal-background"), data.ForBackground())),
		div(class("modal-content"), children...),
		Element("button", Mix(
			Attrs{{Key: "class", Value: "modal-close is-large"}, {Key: "aria-label", Value: "close"}},
			data.ForCloseButton(),
		)),
	)
}
