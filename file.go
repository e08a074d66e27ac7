package bulma

import "github.com/a-h/templ"

// FileUploadOptions configures FileUpload.
//
// Class order: file, is-<color>, is-<size>, has-name, is-<align>,
// is-fullwidth, is-boxed.
type FileUploadOptions struct {
	Color Color
	Size  Size
	// Name shows the selected file name next to the button. It also turns
	// on the data attributes that keep the name up to date.
	Name      bool
	Align     Alignment
	FullWidth bool
	Boxed     bool
	// DataAttributes defaults to StimulusFileInput(FileInputController)
	// and is only used when Name is set.
	DataAttributes FileInputDataAttributes
	Attrs          Attrs
}

// FileInputDataAttributes supplies the behavior attributes of a
// FileUpload with a file name display.
type FileInputDataAttributes interface {
	ForFile() Attrs
	ForFileInput() Attrs
	ForFileList() Attrs
}

// StimulusFileInput wires a file upload to a Stimulus controller.
type StimulusFileInput string

func (s StimulusFileInput) ForFile() Attrs { return stimulusController(string(s)) }

func (s StimulusFileInput) ForFileInput() Attrs {
	return Mix(stimulusTarget(string(s), "fileInput"), stimulusAction(string(s)+"#show"))
}

func (s StimulusFileInput) ForFileList() Attrs { return stimulusTarget(string(s), "fileList") }

// FileUploadClasses compiles the class list of the file container.
func FileUploadClasses(opts FileUploadOptions) Classes {
	return Classes{"file"}.
		Is(string(opts.Color)).
		Is(string(opts.Size)).
		AddIf(opts.Name, "has-name").
		Is(string(opts.Align)).
		AddIf(opts.FullWidth, "is-fullwidth").
		AddIf(opts.Boxed, "is-boxed")
}

// FileUpload renders a styled file input. input is called with the data
// attributes for the <input type="file"> element, nil when Name is unset.
//
//	bulma.FileUpload(bulma.FileUploadOptions{Name: true}, func(data bulma.Attrs) templ.Component {
//		return bulma.Void("input", bulma.Mix(bulma.Attrs{
//			{Key: "class", Value: "file-input"},
//			{Key: "type", Value: "file"},
//			{Key: "name", Value: "resume"},
//		}, data))
//	})
func FileUpload(opts FileUploadOptions, input func(Attrs) templ.Component) templ.Component {
	var data FileInputDataAttributes
	if opts.Name {
		data = opts.DataAttributes
		if data == nil {
			data = StimulusFileInput(FileInputController)
		}
	}

	container := class(FileUploadClasses(opts)...)
	var inputAttrs Attrs
	var name templ.Component
	if data != nil {
		container = Mix(container, data.ForFile())
		inputAttrs = data.ForFileInput()
		name = span(Mix(class("file-name", "is-flex"), data.ForFileList()), Plain("No file uploaded"))
	}

	var field templ.Component
	if input != nil {
		field = input(inputAttrs)
	}
	return div(Mix(container, opts.Attrs),
		Element("label", class("file-label"),
			field,
			span(class("file-cta"),
				span(class("file-icon"), Element("i", class("fas", "fa-upload"))),
				span(class("file-label"), Plain(" Choose a file… ")),
			),
			name,
		),
	)
}
