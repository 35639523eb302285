package main

import (
	"github.com/spf13/cobra"

	"github.com/Kush-Singh-26/newpost/internal/catalog"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			posts, err := a.catalog().Load()
			if err != nil {
				return err
			}
			return catalog.WriteList(cmd.OutOrStdout(), posts, a.cfg.Output)
		},
	}
}
