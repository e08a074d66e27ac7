// Package htmltest compares HTML by structure rather than by bytes.
package htmltest

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Normalize parses s as a body fragment and renders it back in a canonical
// form: attributes sorted by key, class tokens single-spaced in their
// original order, whitespace-only text dropped and other text trimmed.
func Normalize(s string) (string, error) {
	nodes, err := parse(s)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, n := range nodes {
		write(&sb, n)
	}
	return sb.String(), nil
}

// Equal fails the test when got and want differ after normalization.
func Equal(t testing.TB, got, want string) {
	t.Helper()
	g, err := Normalize(got)
	if err != nil {
		t.Fatalf("normalize got: %v", err)
	}
	w, err := Normalize(want)
	if err != nil {
		t.Fatalf("normalize want: %v", err)
	}
	if diff := cmp.Diff(w, g); diff != "" {
		t.Errorf("html mismatch (-want +got):\n%s", diff)
	}
}

// Find returns the elements of s with the given tag name in document
// order.
func Find(t testing.TB, s, tag string) []*html.Node {
	t.Helper()
	nodes, err := parse(s)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return out
}

// Attr returns the value of key on n and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// Classes returns the class tokens of n.
func Classes(n *html.Node) []string {
	v, _ := Attr(n, "class")
	return strings.Fields(v)
}

// Text returns the concatenated, trimmed text content of n.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func parse(s string) ([]*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	return html.ParseFragment(strings.NewReader(s), body)
}

func write(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
			sb.WriteString(html.EscapeString(text))
		}
	case html.ElementNode:
		sb.WriteByte('<')
		sb.WriteString(n.Data)
		attrs := append([]html.Attribute(nil), n.Attr...)
		sort.Slice(attrs, func(i, j int) bool { return attrs[i].Key < attrs[j].Key })
		for _, a := range attrs {
			val := a.Val
			if a.Key == "class" {
				val = strings.Join(strings.Fields(val), " ")
			}
			sb.WriteByte(' ')
			sb.WriteString(a.Key)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(val))
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			write(sb, c)
		}
		if !isVoid(n.Data) {
			sb.WriteString("</" + n.Data + ">")
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			write(sb, c)
		}
	}
}

func isVoid(tag string) bool {
	switch tag {
	case "area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "source", "track", "wbr":
		return true
	}
	return false
}
