package bulma

import "github.com/a-h/templ"

// FormControlOptions configures FormControl.
//
// Class order: control, has-icons-left, has-icons-right.
type FormControlOptions struct {
	IconLeft  string
	IconRight string
	Attrs     Attrs
}

// FormControlClasses compiles the class list of a control.
func FormControlClasses(opts FormControlOptions) Classes {
	return Classes{"control"}.
		AddIf(opts.IconLeft != "", "has-icons-left").
		AddIf(opts.IconRight != "", "has-icons-right")
}

// FormControl wraps an input, select or button in a control, followed by
// its small left and right icons.
func FormControl(opts FormControlOptions, children ...templ.Component) templ.Component {
	body := append([]templ.Component{}, children...)
	if opts.IconLeft != "" {
		body = append(body, Icon(opts.IconLeft, IconOptions{Size: Small, Left: true}))
	}
	if opts.IconRight != "" {
		body = append(body, Icon(opts.IconRight, IconOptions{Size: Small, Right: true}))
	}
	return div(Mix(class(FormControlClasses(opts)...), opts.Attrs), body...)
}

// FormFieldOptions configures FormField.
//
// Class order: field, then column and column sizes, then cell and
// is-<cell class>.
type FormFieldOptions struct {
	Help      string
	IconLeft  string
	IconRight string
	// Column makes the field a column. ColumnSize implies Column.
	Column     bool
	ColumnSize Responsive
	// Cell makes the field a grid cell. CellClass implies Cell and adds
	// is-<CellClass>, for example "col-span-2".
	Cell      bool
	CellClass string
	Attrs     Attrs
}

// FormFieldBuilder collects the label and the control content.
type FormFieldBuilder struct {
	label   templ.Component
	control templ.Component
}

// Label sets a text label rendered as <label class="label">.
func (b *FormFieldBuilder) Label(text string) {
	b.label = Element("label", class("label"), Plain(text))
}

// LabelContent sets the label markup as is.
func (b *FormFieldBuilder) LabelContent(c templ.Component) { b.label = c }

// Control sets the content of the control, usually an input.
func (b *FormFieldBuilder) Control(c templ.Component) { b.control = c }

// FormFieldClasses compiles the class list of a field.
func FormFieldClasses(opts FormFieldOptions) Classes {
	c := Classes{"field"}
	if opts.Column || opts.ColumnSize.IsSet() {
		c = c.Add("column").Responsive(opts.ColumnSize)
	}
	if opts.Cell || opts.CellClass != "" {
		c = c.Add("cell").Is(opts.CellClass)
	}
	return c
}

// FormField renders a field: label, control with optional icons, help.
//
//	bulma.FormField(bulma.FormFieldOptions{Help: "Enter the project name."}, func(f *bulma.FormFieldBuilder) {
//		f.Label("Project Name")
//		f.Control(bulma.Void("input", bulma.Attrs{{Key: "class", Value: "input"}, {Key: "name", Value: "name"}}))
//	})
func FormField(opts FormFieldOptions, configure func(*FormFieldBuilder)) templ.Component {
	return build(configure, func(b *FormFieldBuilder) templ.Component {
		return div(Mix(class(FormFieldClasses(opts)...), opts.Attrs),
			b.label,
			FormControl(FormControlOptions{IconLeft: opts.IconLeft, IconRight: opts.IconRight}, b.control),
			when(opts.Help != "", func() templ.Component {
				return Element("p", class("help"), Plain(opts.Help))
			}),
		)
	})
}
