package main

import (
	"github.com/spf13/cobra"

	"github.com/Kush-Singh-26/newpost/internal/catalog"
)

func newTagsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Count posts per tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := a.catalog().Tags()
			if err != nil {
				return err
			}
			return catalog.WriteTags(cmd.OutOrStdout(), tags, a.cfg.Output)
		},
	}
}
