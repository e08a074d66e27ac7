// Package config loads gallery documents: YAML files listing pages of
// component samples that the gallery package renders.
package config

// Sample kinds understood by the gallery.
const (
	KindButton        = "button"
	KindTag           = "tag"
	KindNotification  = "notification"
	KindTitle         = "title"
	KindProgress      = "progress"
	KindIcon          = "icon"
	KindCard          = "card"
	KindTabs          = "tabs"
	KindTable         = "table"
	KindPagination    = "pagination"
	KindDropdown      = "dropdown"
	KindLevel         = "level"
	KindHero          = "hero"
	KindColumns       = "columns"
	KindGrid          = "grid"
	KindModal         = "modal"
	KindFormField     = "form-field"
	KindFileUpload    = "file-upload"
	KindNavigationBar = "navbar"
)

// Kinds lists every sample kind in documentation order.
var Kinds = []string{
	KindButton, KindTag, KindNotification, KindTitle, KindProgress, KindIcon,
	KindCard, KindTabs, KindTable, KindPagination, KindDropdown, KindLevel,
	KindHero, KindColumns, KindGrid, KindModal, KindFormField, KindFileUpload,
	KindNavigationBar,
}

// Document is a whole gallery file.
type Document struct {
	Title string `yaml:"title" validate:"required,max=200"`
	// Stylesheet overrides the Bulma CSS link in rendered pages.
	Stylesheet string `yaml:"stylesheet,omitempty" validate:"omitempty,url"`
	Pages      []Page `yaml:"pages" validate:"required,min=1,dive"`
}

// Page groups samples under one heading.
type Page struct {
	Name    string   `yaml:"name" validate:"required,slug"`
	Title   string   `yaml:"title,omitempty"`
	Samples []Sample `yaml:"samples" validate:"required,min=1,dive"`
}

// Sample describes one component instance. Which fields matter depends on
// Kind; the others are ignored.
type Sample struct {
	Kind    string `yaml:"kind" validate:"required,kind"`
	Title   string `yaml:"title,omitempty"`
	Text    string `yaml:"text,omitempty"`
	Color   string `yaml:"color,omitempty" validate:"omitempty,oneof=primary link info success warning danger white light dark black text ghost"`
	Size    string `yaml:"size,omitempty" validate:"omitempty,oneof=small normal medium large"`
	Icon    string `yaml:"icon,omitempty"`
	Href    string `yaml:"href,omitempty"`
	Rounded bool   `yaml:"rounded,omitempty"`
	// Lazy loads card content through a fragment when served.
	Lazy bool `yaml:"lazy,omitempty"`

	// Items feed tags, tabs, dropdown entries, level items, columns and
	// grid cells.
	Items []string `yaml:"items,omitempty"`

	// Table samples.
	Columns []string   `yaml:"columns,omitempty" validate:"required_if=Kind table"`
	Rows    [][]string `yaml:"rows,omitempty"`

	// Progress samples.
	Value int `yaml:"value,omitempty" validate:"gte=0,ltefield=Max"`
	Max   int `yaml:"max,omitempty" validate:"gte=0"`

	// Pagination samples.
	Page    int `yaml:"page,omitempty" validate:"gte=0"`
	PerPage int `yaml:"per_page,omitempty" validate:"gte=0"`
	Total   int `yaml:"total,omitempty" validate:"gte=0"`
}
