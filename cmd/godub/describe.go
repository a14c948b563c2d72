package main

import (
	"github.com/spf13/cobra"

	"github.com/godub/godub/pkg/dub"
)

func newDescribeCmd() *cobra.Command {
	var (
		opts     dubOptions
		data     []string
		dataList bool
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the JSON build description for the package and its dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := opts.toOptionSet()
			if err != nil {
				return err
			}
			return execute(&dub.DescribeRequest{
				Data:     data,
				DataList: dataList,
				Options:  set,
			})
		},
	}
	cmd.Flags().StringSliceVar(&data, "data", nil, "list only the named data fields (comma-separated)")
	cmd.Flags().BoolVar(&dataList, "data-list", false, "print the --data values as a list")
	opts.register(cmd)

	return cmd
}
