package bulma

// Default Stimulus controller identifiers. The controllers themselves are
// not part of this package; any controller with the same targets and
// actions will do.
const (
	TabsController          = "bulma--tabs"
	ModalController         = "bulma--modal"
	DropdownController      = "bulma--dropdown"
	NavigationBarController = "bulma--navigation-bar"
	FileInputController     = "bulma--file-input-display"
)

// TabsDataAttributes supplies the behavior attributes of a Tabs component.
// Implement it to drive tabs with something other than Stimulus.
type TabsDataAttributes interface {
	ForContainer() Attrs
	ForTab(id string) Attrs
	ForContent(id string) Attrs
}

// StimulusTabs wires tabs to a Stimulus controller.
type StimulusTabs string

func (s StimulusTabs) ForContainer() Attrs {
	return Attrs{}.Data("controller", string(s))
}

func (s StimulusTabs) ForTab(id string) Attrs {
	return Attrs{}.
		Data(string(s)+"-target", "tab").
		Data("tab-content", id).
		Data("action", "click->"+string(s)+"#showTabContent")
}

func (s StimulusTabs) ForContent(string) Attrs {
	return Attrs{}.Data(string(s)+"-target", "content")
}

// ModalDataAttributes supplies the behavior attributes of a Modal.
type ModalDataAttributes interface {
	ForContainer() Attrs
	ForBackground() Attrs
	ForCloseButton() Attrs
}

// StimulusModal wires a modal to a Stimulus controller.
type StimulusModal string

func (s StimulusModal) ForContainer() Attrs {
	return Attrs{}.Data("controller", string(s))
}

func (s StimulusModal) ForBackground() Attrs {
	return Attrs{}.Data("action", "click->"+string(s)+"#close")
}

func (s StimulusModal) ForCloseButton() Attrs {
	return Attrs{}.Data("action", string(s)+"#close")
}

// stimulusTarget returns the data attribute marking an element as a target
// of controller.
func stimulusTarget(controller, name string) Attrs {
	return Attrs{}.Data(controller+"-target", name)
}

func stimulusAction(action string) Attrs {
	return Attrs{}.Data("action", action)
}

func stimulusController(controller string) Attrs {
	return Attrs{}.Data("controller", controller)
}
