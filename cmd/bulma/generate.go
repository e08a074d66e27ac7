package main

import (
	"github.com/pthm/bulma/internal/gallery"
	"github.com/pthm/bulma/lib/generator"
	"github.com/spf13/cobra"
)

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	var dir string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate <gallery.yaml>",
		Short: "Write a gallery as static HTML files, one per page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGallery(flags, args[0], gallery.Options{})
			if err != nil {
				return err
			}
			gen := generator.New(generator.Options{DryRun: dryRun, Out: cmd.OutOrStdout()})
			written, err := gen.Generate(cmd.Context(), g, dir)
			if err != nil {
				return err
			}
			flags.log.WithFields(map[string]any{"dir": dir, "files": len(written), "dry_run": dryRun}).Info("generated gallery")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "site", "Output directory")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be generated without writing files")
	return cmd
}

func newCleanCmd(flags *rootFlags) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "clean [dir]",
		Short: "Remove generated HTML files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "site"
			if len(args) == 1 {
				dir = args[0]
			}
			gen := generator.New(generator.Options{DryRun: dryRun, Out: cmd.OutOrStdout()})
			removed, err := gen.Clean(dir)
			if err != nil {
				return err
			}
			flags.log.WithFields(map[string]any{"dir": dir, "files": len(removed), "dry_run": dryRun}).Info("cleaned gallery")
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be removed without deleting files")
	return cmd
}
