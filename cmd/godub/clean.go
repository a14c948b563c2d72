package main

import (
	"github.com/spf13/cobra"

	"github.com/godub/godub/pkg/dub"
)

func newCleanCmd() *cobra.Command {
	var (
		opts        dubOptions
		allPackages bool
	)

	cmd := &cobra.Command{
		Use:   "clean [package]",
		Short: "Remove cached build files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := opts.toOptionSet()
			if err != nil {
				return err
			}

			req := &dub.CleanRequest{AllPackages: allPackages, Options: set}
			if len(args) > 0 {
				req.Package = args[0]
			}

			return execute(req)
		},
	}
	cmd.Flags().BoolVar(&allPackages, "all-packages", false, "clean all locally cached packages")
	opts.register(cmd)

	return cmd
}
