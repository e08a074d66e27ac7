package encoding

import "fmt"

// Params are the values carried in a fragment URL.
type Params map[string]any

// String returns the value under key as a string. Missing keys give "".
func (p Params) String(key string) string {
	switch v := p[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Int returns the value under key as an int. Missing or non-numeric values
// give 0.
func (p Params) Int(key string) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// Bool returns the value under key as a bool.
func (p Params) Bool(key string) bool {
	b, _ := p[key].(bool)
	return b
}
