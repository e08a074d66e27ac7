// Package bulma renders Bulma CSS components as templ components.
//
// Every component is a function that returns a templ.Component. Nothing is
// written until the component is rendered, so components compose freely
// with each other and with .templ files.
//
// # Options and Classes
//
// Each component takes a typed options struct. The struct's fields map to
// Bulma modifier classes in a fixed order, documented on the type, so the
// same options always produce the same class list. Enum values such as
// Color and Size are not validated: Color("brand") becomes is-brand.
//
// The class compilation is exported on its own for markup that should look
// like a component without being one:
//
//	bulma.ButtonClasses(bulma.ButtonOptions{Color: bulma.Primary}).String()
//	// "button is-primary"
//
// Breakpoint-dependent options take a Responsive value:
//
//	bulma.Columns(bulma.ColumnsOptions{
//	    Multiline: true,
//	    Gap:       bulma.PerBreakpoint(bulma.At(bulma.Mobile, 2), bulma.At(bulma.Desktop, 5)),
//	})
//	// class="columns is-multiline is-2-mobile is-5-desktop"
//
// # Attributes
//
// Every options struct has an Attrs field for extra attributes. They are
// merged with Mix: classes are appended after the component's own, data-
// and aria- keys merge one key at a time, and any other key replaces the
// component's value.
//
//	bulma.Mix(bulma.Attrs{{Key: "class", Value: "control"}}, bulma.Attrs{{Key: "class", Value: "is-expanded"}})
//	// class="control is-expanded"
//
// # Builders
//
// Components with structured content take a configure callback. The
// callback receives a builder whose methods register content; it runs once
// per render, before any markup is written, and the component then renders
// the registered entries in order.
//
//	bulma.Card(bulma.CardOptions{}, func(c *bulma.CardBuilder) {
//	    c.Head("Card Title")
//	    c.Content(bulma.Plain("This is some card content"))
//	    c.FooterLink("View", "/view")
//	})
//
// Sections with nothing registered are left out where Bulma allows it.
//
// # Text
//
// Caller text is always escaped. Use Plain for text content and Raw only
// for markup the caller controls.
//
// # Behavior
//
// Interactive components (Tabs, Modal, Dropdown, NavigationBar and
// FileUpload) carry Stimulus data attributes for a controller named in
// this package's *Controller constants. The controllers are not provided.
// Tabs, Modal and FileUpload accept an interface to emit other attributes.
//
// Package hx adds HTMX helpers on top of these components.
package bulma
