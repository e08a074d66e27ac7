package generator

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/a-h/templ"
)

// write renders c into path behind the generated-file marker.
func (gen *Generator) write(ctx context.Context, path string, c templ.Component) error {
	fmt.Fprintf(gen.opts.Out, "generating %s\n", path)

	if gen.opts.DryRun {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintln(w, Marker); err != nil {
		f.Close()
		return err
	}
	if err := c.Render(ctx, w); err != nil {
		f.Close()
		return fmt.Errorf("render: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
