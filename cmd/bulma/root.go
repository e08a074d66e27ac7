package main

import (
	"github.com/pthm/bulma"
	"github.com/pthm/bulma/internal/config"
	"github.com/pthm/bulma/internal/gallery"
	"github.com/pthm/bulma/internal/logger"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
	logHuman bool

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bulma",
		Short:         "Render and serve galleries of Bulma components",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Options{
				Level:         flags.logLevel,
				HumanReadable: flags.logHuman,
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			flags.log = log
			bulma.SetLogger(log.Zerolog())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.logHuman, "log-human", false, "Write logs for people instead of machines")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newCleanCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadGallery reads the gallery file at path.
func loadGallery(flags *rootFlags, path string, opts gallery.Options) (*gallery.Gallery, error) {
	doc, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	flags.log.WithFields(map[string]any{"file": path, "pages": len(doc.Pages)}).Debug("loaded gallery")
	return gallery.New(doc, opts), nil
}
