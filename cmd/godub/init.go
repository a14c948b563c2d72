package main

import (
	"github.com/spf13/cobra"

	"github.com/godub/godub/pkg/dub"
)

func newInitCmd() *cobra.Command {
	var (
		opts     dubOptions
		projType string
	)

	cmd := &cobra.Command{
		Use:   "init [directory] [dependency...]",
		Short: "Initialize an empty package",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := dub.ParseProjectType(projType)
			if err != nil {
				return err
			}
			set, err := opts.toOptionSet()
			if err != nil {
				return err
			}

			req := &dub.InitRequest{
				Type:           typ,
				NonInteractive: set.NonInteractive,
				Options:        set,
			}
			// dub init takes the switch ahead of the shared options
			req.Options.NonInteractive = false
			if len(args) > 0 {
				req.Directory = args[0]
				req.Dependencies = args[1:]
			}

			return execute(req)
		},
	}
	cmd.Flags().StringVarP(&projType, "type", "t", "minimal", "package skeleton: minimal, vibe.d, deimos or custom")
	opts.register(cmd)

	return cmd
}
