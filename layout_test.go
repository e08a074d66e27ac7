package bulma

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/pthm/bulma/internal/htmltest"
)

func TestHero(t *testing.T) {
	tests := []struct {
		name string
		c    templ.Component
		want string
	}{
		{
			"title and subtitle",
			Hero(HeroOptions{Title: "Hello", Subtitle: "World", Color: Primary}, nil),
			`<section class="hero is-primary"><div class="hero-body"><p class="title">Hello</p><p class="subtitle">World</p></div></section>`,
		},
		{
			"sections",
			Hero(HeroOptions{Size: Medium, Attrs: Attrs{{Key: "id", Value: "top"}}}, func(h *HeroBuilder) {
				h.Head(Plain("head"))
				h.Body(Plain("body"))
				h.Foot(Plain("foot"))
			}),
			`<section class="hero is-medium" id="top">
				<div class="hero-head">head</div>
				<div class="hero-body">body</div>
				<div class="hero-foot">foot</div>
			</section>`,
		},
		{
			"empty",
			Hero(HeroOptions{}, nil),
			`<section class="hero"><div class="hero-body"></div></section>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			htmltest.Equal(t, render(t, tt.c), tt.want)
		})
	}
}

func TestLevel(t *testing.T) {
	got := render(t, Level(LevelOptions{}, func(l *LevelBuilder) {
		l.Left(Plain("L"))
		l.Item(Plain("C1"))
		l.Item(Plain("C2"))
		l.Right(Plain("R1"))
		l.Right(Plain("R2"))
	}))

	want := `<div class="level">
		<div class="level-left"><div class="level-item">L</div></div>
		<div class="level-item">C1</div>
		<div class="level-item">C2</div>
		<div class="level-right"><div class="level-item">R1</div><div class="level-item">R2</div></div>
	</div>`
	htmltest.Equal(t, got, want)

	empty := render(t, Level(LevelOptions{Mobile: true}, nil))
	htmltest.Equal(t, empty, `<div class="level is-mobile"><div class="level-left"></div><div class="level-right"></div></div>`)
}
