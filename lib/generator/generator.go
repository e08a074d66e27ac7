// Package generator writes a gallery out as static HTML files and removes
// them again.
package generator

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm/bulma/internal/gallery"
)

// Marker is written on the first line of every generated file. Clean only
// removes files that carry it.
const Marker = "<!-- Code generated by bulma. DO NOT EDIT. -->"

// IndexFile holds every page in one document.
const IndexFile = "index.html"

// Options configures the generator.
type Options struct {
	DryRun bool
	// Out receives progress lines. Defaults to os.Stdout.
	Out io.Writer
}

// Generator writes gallery pages into a directory.
type Generator struct {
	opts Options
}

// New creates a new generator.
func New(opts Options) *Generator {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	return &Generator{opts: opts}
}

// Generate writes index.html and one <page>.html per page of g into dir,
// creating dir if needed. It returns the paths written.
func (gen *Generator) Generate(ctx context.Context, g *gallery.Gallery, dir string) ([]string, error) {
	if !gen.opts.DryRun {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	var written []string
	index := filepath.Join(dir, IndexFile)
	if err := gen.write(ctx, index, g.All()); err != nil {
		return written, err
	}
	written = append(written, index)

	for _, page := range g.Document().Pages {
		c, err := g.Page(page.Name)
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, page.Name+".html")
		if err := gen.write(ctx, path, c); err != nil {
			return written, fmt.Errorf("page %s: %w", page.Name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// Clean removes generated HTML files from dir and returns their paths.
// Files without the marker are left alone.
func (gen *Generator) Clean(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		generated, err := isGenerated(path)
		if err != nil {
			return removed, err
		}
		if !generated {
			continue
		}

		fmt.Fprintf(gen.opts.Out, "removing %s\n", path)
		if !gen.opts.DryRun {
			if err := os.Remove(path); err != nil {
				return removed, err
			}
		}
		removed = append(removed, path)
	}
	return removed, nil
}

func isGenerated(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	return strings.TrimSpace(line) == Marker, nil
}
