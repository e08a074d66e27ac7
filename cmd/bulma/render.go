package main

import (
	"io"
	"os"

	"github.com/a-h/templ"
	"github.com/pthm/bulma/internal/gallery"
	"github.com/spf13/cobra"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	var out, page string

	cmd := &cobra.Command{
		Use:   "render <gallery.yaml>",
		Short: "Render a gallery to a single HTML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGallery(flags, args[0], gallery.Options{})
			if err != nil {
				return err
			}

			var c templ.Component = g.All()
			if page != "" {
				if c, err = g.Page(page); err != nil {
					return err
				}
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if err := c.Render(cmd.Context(), w); err != nil {
				return err
			}
			if out != "" {
				flags.log.WithFields(map[string]any{"out": out}).Info("rendered gallery")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&page, "page", "", "Render only the named page")
	return cmd
}
