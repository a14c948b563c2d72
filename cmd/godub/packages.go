package main

import (
	"github.com/spf13/cobra"

	"github.com/godub/godub/pkg/dub"
)

func newAddCmd() *cobra.Command {
	var opts dubOptions

	cmd := &cobra.Command{
		Use:   "add <package[@version]>...",
		Short: "Add packages as dependencies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := opts.toOptionSet()
			if err != nil {
				return err
			}
			return execute(&dub.AddRequest{Packages: args, Options: set})
		},
	}
	opts.register(cmd)

	return cmd
}

func newRemoveCmd() *cobra.Command {
	var opts dubOptions

	cmd := &cobra.Command{
		Use:   "remove <package[@version]>...",
		Short: "Remove packages from the dependency list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := opts.toOptionSet()
			if err != nil {
				return err
			}
			return execute(&dub.RemoveRequest{Packages: args, Options: set})
		},
	}
	opts.register(cmd)

	return cmd
}

func newFetchCmd() *cobra.Command {
	var (
		opts  dubOptions
		cache string
	)

	cmd := &cobra.Command{
		Use:   "fetch <package[@version]>",
		Short: "Fetch a package to dub's shared location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := opts.toOptionSet()
			if err != nil {
				return err
			}
			return execute(&dub.FetchRequest{
				Package: args[0],
				Cache:   cache,
				Options: set,
			})
		},
	}
	cmd.Flags().StringVar(&cache, "cache", "", "package cache to fetch into (local, user, system)")
	opts.register(cmd)

	return cmd
}
