package bulma

import (
	"fmt"
	"strings"
)

// Classes is an ordered list of CSS class tokens.
//
// Components build their class list by starting from a base token and
// appending modifiers in a fixed order, so the same options always produce
// the same list. Values are not validated: an unknown color becomes
// is-<whatever> and is left for the stylesheet to ignore.
type Classes []string

// Add appends non-empty tokens.
func (c Classes) Add(tokens ...string) Classes {
	for _, t := range tokens {
		if t != "" {
			c = append(c, t)
		}
	}
	return c
}

// AddIf appends tokens when cond is true.
func (c Classes) AddIf(cond bool, tokens ...string) Classes {
	if !cond {
		return c
	}
	return c.Add(tokens...)
}

// Is appends is-<value> when value is non-empty.
func (c Classes) Is(value string) Classes {
	return c.Prefixed("is-", value)
}

// Prefixed appends prefix+value when value is non-empty.
func (c Classes) Prefixed(prefix, value string) Classes {
	if value == "" {
		return c
	}
	return append(c, prefix+value)
}

// Responsive appends the tokens of r.
func (c Classes) Responsive(r Responsive) Classes {
	return append(c, r.Tokens()...)
}

// Has reports whether token is in the list.
func (c Classes) Has(token string) bool {
	for _, t := range c {
		if t == token {
			return true
		}
	}
	return false
}

// String joins the tokens with single spaces.
func (c Classes) String() string {
	return strings.Join(c.compact(), " ")
}

func (c Classes) compact() Classes {
	out := c[:0:0]
	for _, t := range c {
		out = append(out, strings.Fields(t)...)
	}
	return out
}

// Color is a Bulma color name.
type Color string

const (
	Primary Color = "primary"
	Link    Color = "link"
	Info    Color = "info"
	Success Color = "success"
	Warning Color = "warning"
	Danger  Color = "danger"
	White   Color = "white"
	Light   Color = "light"
	Dark    Color = "dark"
	Black   Color = "black"
	Text    Color = "text"
	Ghost   Color = "ghost"
)

// Size is a Bulma size modifier.
type Size string

const (
	Small  Size = "small"
	Normal Size = "normal"
	Medium Size = "medium"
	Large  Size = "large"
)

// Mode selects the light or dark variant of a color.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Alignment positions tabs, dropdowns and file inputs.
type Alignment string

const (
	AlignLeft     Alignment = "left"
	AlignCentered Alignment = "centered"
	AlignRight    Alignment = "right"
	AlignUp       Alignment = "up"
)

// Breakpoint names a responsive threshold.
type Breakpoint string

const (
	Mobile     Breakpoint = "mobile"
	Tablet     Breakpoint = "tablet"
	Touch      Breakpoint = "touch"
	Desktop    Breakpoint = "desktop"
	Widescreen Breakpoint = "widescreen"
	FullHD     Breakpoint = "fullhd"
)

// BreakpointValue pairs a breakpoint with a size value.
type BreakpointValue struct {
	Breakpoint Breakpoint
	Value      string
}

// At pairs a breakpoint with a value. Integers and strings are both
// accepted: At(Mobile, 2) and At(Desktop, "half").
func At(bp Breakpoint, value any) BreakpointValue {
	return BreakpointValue{Breakpoint: bp, Value: fmt.Sprint(value)}
}

// Responsive is an option that is either one value for every breakpoint or
// a list of per-breakpoint values. The zero value is unset.
type Responsive struct {
	uniform string
	set     bool
	at      []BreakpointValue
}

// Uniform applies one value everywhere: is-<value>.
func Uniform(value any) Responsive {
	return Responsive{uniform: fmt.Sprint(value), set: true}
}

// PerBreakpoint applies values per breakpoint, one is-<value>-<breakpoint>
// token per entry, in the order given.
func PerBreakpoint(values ...BreakpointValue) Responsive {
	return Responsive{at: values, set: len(values) > 0}
}

// IsSet reports whether the option carries a value.
func (r Responsive) IsSet() bool {
	return r.set
}

// Tokens returns the class tokens for the value.
func (r Responsive) Tokens() []string {
	if !r.set {
		return nil
	}
	if r.at == nil {
		return []string{"is-" + r.uniform}
	}
	out := make([]string, 0, len(r.at))
	for _, v := range r.at {
		out = append(out, "is-"+v.Value+"-"+string(v.Breakpoint))
	}
	return out
}
