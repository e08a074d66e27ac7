package htmltest

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"sorts attributes", `<a id="x" class="b">t</a>`, `<a class="b" id="x">t</a>`},
		{"collapses class spaces", `<div class=" a   b "></div>`, `<div class="a b"></div>`},
		{"drops whitespace text", "<ul>\n  <li>one</li>\n</ul>", `<ul><li>one</li></ul>`},
		{"void elements", `<hr class="x">`, `<hr class="x">`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	nodes := Find(t, `<ul><li class="a">1</li><li>2</li></ul>`, "li")
	if len(nodes) != 2 {
		t.Fatalf("Find() returned %d nodes, want 2", len(nodes))
	}
	if got := Text(nodes[1]); got != "2" {
		t.Errorf("Text() = %q, want %q", got, "2")
	}
	if got := Classes(nodes[0]); len(got) != 1 || got[0] != "a" {
		t.Errorf("Classes() = %v, want [a]", got)
	}
}
