package main

import (
	"github.com/spf13/cobra"

	"github.com/godub/godub/pkg/dub"
)

func newConvertCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert dub.json/dub.sdl to the other format",
		Long: `Converts the package manifest to the target format. The companion
source manifest (dub.sdl for json, dub.json for sdl) must exist in the
working directory; dub replaces it with the converted file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := dub.ParseFormat(format)
			if err != nil {
				return err
			}
			return execute(&dub.ConvertRequest{Format: f})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "target manifest format: json or sdl")
	_ = cmd.MarkFlagRequired("format")

	return cmd
}
