package main

import (
	"github.com/spf13/cobra"

	"github.com/godub/godub/pkg/dub"
)

func newRawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "raw [tokens...]",
		Short: "Pass arguments straight to dub",
		Long: `Forwards the trailing tokens to dub verbatim and unreordered,
including tokens that begin with '-'. This is the escape hatch for dub
features godub does not model.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(&dub.RawRequest{Args: args})
		},
	}
}
