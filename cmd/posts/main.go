package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Kush-Singh-26/newpost/builder/config"
	"github.com/Kush-Singh-26/newpost/internal/catalog"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	fs     afero.Fs
	cfg    *config.Config
	logger *slog.Logger
}

func (a *app) catalog() *catalog.Catalog {
	return catalog.New(a.fs, a.cfg.PostsDir, a.logger)
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, cfg: config.Default()}

	root := &cobra.Command{
		Use:           "posts",
		Short:         "Inspect the posts in a Jekyll _posts directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			level := slog.LevelInfo
			if a.cfg.Verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfg.PostsDir, "dir", "d", a.cfg.PostsDir, "posts directory")
	flags.StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "output format: text or yaml")
	flags.BoolVarP(&a.cfg.Verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newListCmd(a), newTagsCmd(a))
	return root
}

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
