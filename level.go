package bulma

import "github.com/a-h/templ"

// LevelOptions configures Level.
type LevelOptions struct {
	// Mobile keeps the level horizontal on small screens.
	Mobile bool
	Attrs  Attrs
}

// LevelBuilder collects level entries. Each entry is wrapped in a
// level-item.
type LevelBuilder struct {
	left, items, right []templ.Component
}

// Left appends an entry to level-left.
func (b *LevelBuilder) Left(c templ.Component) { b.left = append(b.left, c) }

// Item appends a centered entry between the left and right groups.
func (b *LevelBuilder) Item(c templ.Component) { b.items = append(b.items, c) }

// Right appends an entry to level-right.
func (b *LevelBuilder) Right(c templ.Component) { b.right = append(b.right, c) }

// Level renders a horizontal level. The level-left and level-right groups
// are always present.
func Level(opts LevelOptions, configure func(*LevelBuilder)) templ.Component {
	return build(configure, func(b *LevelBuilder) templ.Component {
		levelClasses := Classes{"level"}.AddIf(opts.Mobile, "is-mobile")
		children := []templ.Component{div(class("level-left"), levelItems(b.left)...)}
		children = append(children, levelItems(b.items)...)
		children = append(children, div(class("level-right"), levelItems(b.right)...))
		return div(Mix(class(levelClasses...), opts.Attrs), children...)
	})
}

func levelItems(entries []templ.Component) []templ.Component {
	out := make([]templ.Component, len(entries))
	for i, c := range entries {
		out[i] = div(class("level-item"), c)
	}
	return out
}
