package bulma

import (
	"context"
	"testing"

	"github.com/a-h/templ"
)

// render renders c and fails the test on error.
func render(t *testing.T, c templ.Component) string {
	t.Helper()
	out, err := RenderString(context.Background(), c)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return out
}
