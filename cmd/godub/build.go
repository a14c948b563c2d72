package main

import (
	"github.com/spf13/cobra"

	"github.com/godub/godub/pkg/dub"
)

func newRunCmd() *cobra.Command {
	var opts dubOptions

	cmd := &cobra.Command{
		Use:     "run",
		Aliases: []string{"r"},
		Short:   "Build and run the package",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := opts.toOptionSet()
			if err != nil {
				return err
			}
			return execute(&dub.RunRequest{Options: set})
		},
	}
	opts.register(cmd)

	return cmd
}

func newBuildCmd() *cobra.Command {
	var opts dubOptions

	cmd := &cobra.Command{
		Use:     "build",
		Aliases: []string{"b"},
		Short:   "Build the package",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := opts.toOptionSet()
			if err != nil {
				return err
			}
			return execute(&dub.BuildRequest{Options: set})
		},
	}
	opts.register(cmd)

	return cmd
}
