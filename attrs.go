package bulma

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value any
}

// Attrs is an ordered attribute set.
//
// Order is preserved on output so rendered markup is byte-stable. The data
// and aria namespaces are stored flattened ("data-action", "aria-label"),
// which makes every merge operate per nested key.
//
// Values render as follows:
//   - string, templ.SafeURL, numbers, fmt.Stringer: key="escaped value"
//   - string under a URL key (href, src, action, formaction): sanitized
//     with templ.URL first; pass a templ.SafeURL to skip that
//   - true: bare attribute (disabled)
//   - false, nil: omitted
//
// The class key is special: its value may be a string, Classes or []string,
// and an empty class list is omitted.
//
// Methods never modify the receiver's backing array; they return a new set.
type Attrs []Attr

// Set returns a copy of a with key set to value. An existing key keeps its
// position.
func (a Attrs) Set(key string, value any) Attrs {
	out := slices.Clone(a)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Attr{Key: key, Value: value})
}

// Data sets data-<key>.
func (a Attrs) Data(key string, value any) Attrs {
	return a.Set("data-"+key, value)
}

// Aria sets aria-<key>.
func (a Attrs) Aria(key string, value any) Attrs {
	return a.Set("aria-"+key, value)
}

// Class appends tokens to the class attribute.
func (a Attrs) Class(tokens ...string) Attrs {
	return Mix(a, Attrs{{Key: "class", Value: Classes(tokens)}})
}

// Get returns the value stored under key.
func (a Attrs) Get(key string) (any, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present with a value that would render.
func (a Attrs) Has(key string) bool {
	v, ok := a.Get(key)
	if !ok || v == nil {
		return false
	}
	if b, isBool := v.(bool); isBool {
		return b
	}
	return true
}

// Delete returns a copy of a without key.
func (a Attrs) Delete(key string) Attrs {
	out := make(Attrs, 0, len(a))
	for _, attr := range a {
		if attr.Key != key {
			out = append(out, attr)
		}
	}
	return out
}

// ClassList returns the tokens of the class attribute.
func (a Attrs) ClassList() Classes {
	v, _ := a.Get("class")
	return classTokens(v)
}

// Templ converts the set to templ.Attributes for use in .templ files.
func (a Attrs) Templ() templ.Attributes {
	out := make(templ.Attributes, len(a))
	for _, attr := range a {
		if attr.Key == "class" {
			out["class"] = classTokens(attr.Value).String()
			continue
		}
		out[attr.Key] = attr.Value
	}
	return out
}

// FromTempl converts templ.Attributes into an ordered set. Keys are sorted.
// Nested maps under "data" or "aria" are flattened into data-* and aria-*
// keys, also sorted.
func FromTempl(in templ.Attributes) Attrs {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out Attrs
	for _, k := range keys {
		v := in[k]
		if k == "data" || k == "aria" {
			if nested, ok := flattenNamespace(k, v); ok {
				out = append(out, nested...)
				continue
			}
		}
		out = append(out, Attr{Key: k, Value: v})
	}
	return out
}

func flattenNamespace(ns string, v any) (Attrs, bool) {
	var m map[string]any
	switch t := v.(type) {
	case map[string]any:
		m = t
	case map[string]string:
		m = make(map[string]any, len(t))
		for k, s := range t {
			m[k] = s
		}
	default:
		return nil, false
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(Attrs, 0, len(keys))
	for _, k := range keys {
		out = append(out, Attr{Key: ns + "-" + k, Value: m[k]})
	}
	return out, true
}

// Mix merges overrides into base and returns a new set.
//
// The class attribute concatenates: base tokens first, then each override's
// tokens, without de-duplication. Any other key present in both takes the
// override value at the base key's position; keys only in an override are
// appended in override order. Mix never fails; with no overrides it returns
// a copy of base.
func Mix(base Attrs, overrides ...Attrs) Attrs {
	out := slices.Clone(base)
	for _, o := range overrides {
		for _, attr := range o {
			i := slices.IndexFunc(out, func(x Attr) bool { return x.Key == attr.Key })
			switch {
			case i < 0:
				out = append(out, attr)
			case attr.Key == "class":
				merged := append(classTokens(out[i].Value), classTokens(attr.Value)...)
				out[i].Value = merged
			default:
				out[i].Value = attr.Value
			}
		}
	}
	return out
}

// classTokens splits any supported class value into tokens.
func classTokens(v any) Classes {
	switch t := v.(type) {
	case nil:
		return nil
	case Classes:
		return slices.Clone(t).compact()
	case []string:
		return Classes(slices.Clone(t)).compact()
	case string:
		return Classes(strings.Fields(t))
	default:
		return Classes(strings.Fields(fmt.Sprint(t)))
	}
}

// render writes each attribute as ` key="value"`.
func (a Attrs) render(sb *strings.Builder) {
	for _, attr := range a {
		if !validAttrName(attr.Key) {
			log().Debug().Str("key", attr.Key).Msg("bulma: dropping invalid attribute name")
			continue
		}
		if attr.Key == "class" {
			if s := classTokens(attr.Value).String(); s != "" {
				writeAttr(sb, "class", s)
			}
			continue
		}
		switch v := attr.Value.(type) {
		case nil:
		case bool:
			if v {
				sb.WriteByte(' ')
				sb.WriteString(attr.Key)
			}
		case string:
			if urlAttrs[attr.Key] {
				v = string(templ.URL(v))
			}
			writeAttr(sb, attr.Key, v)
		case templ.SafeURL:
			writeAttr(sb, attr.Key, string(v))
		case fmt.Stringer:
			writeAttr(sb, attr.Key, v.String())
		default:
			writeAttr(sb, attr.Key, fmt.Sprint(v))
		}
	}
}

// WriteTo renders the attributes to w, each prefixed by a space.
func (a Attrs) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	a.render(&sb)
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

var urlAttrs = map[string]bool{"href": true, "src": true, "action": true, "formaction": true}

// validAttrName reports whether key can be written unquoted inside a tag.
func validAttrName(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r <= ' ', r == 0x7f, r == '"', r == '\'', r == '>', r == '/', r == '=', r == '<', r == '`':
			return false
		}
	}
	return true
}

func writeAttr(sb *strings.Builder, key, value string) {
	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteString(`="`)
	sb.WriteString(templ.EscapeString(value))
	sb.WriteByte('"')
}
