// Package main provides the godub CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/godub/godub/pkg/config"
	"github.com/godub/godub/pkg/dub"
)

var version = "dev"

func main() {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(pluginArgs(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "godub",
		Short: "A command adapter for the DUB package manager",
		Long: `godub maps its own subcommands onto invocations of the installed dub
binary. dub does all real work; godub only translates flags, inherits
the standard streams, and propagates dub's exit code verbatim.

Without a subcommand, godub runs 'dub run'.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := (&dubOptions{}).toOptionSet()
			if err != nil {
				return err
			}
			return execute(&dub.RunRequest{Options: set})
		},
	}

	cmd.AddCommand(
		newRunCmd(),
		newBuildCmd(),
		newConvertCmd(),
		newRawCmd(),
		newDescribeCmd(),
		newAddCmd(),
		newRemoveCmd(),
		newFetchCmd(),
		newInitCmd(),
		newCleanCmd(),
		newLintCmd(),
	)

	return cmd
}

// pluginArgs strips the leading plugin token a host build tool
// prepends when it invokes godub as `<host> dub ...`, so both
// spellings parse the same.
func pluginArgs(args []string) []string {
	if len(args) > 0 && args[0] == "dub" {
		return args[1:]
	}
	return args
}

// loadDefaults locates and reads the .godub.yaml defaults file.
// No file anywhere up the tree means zero defaults, not an error.
func loadDefaults() (*config.Defaults, error) {
	envCfg, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	path := envCfg.ConfigPath
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.FindFile(wd)
		}
	}
	if path == "" {
		return &config.Defaults{}, nil
	}

	return config.Load(path)
}

// execute resolves dub once, runs the request with inherited streams,
// and terminates the process with dub's own exit code. It returns only
// when dub was never run.
func execute(req dub.Request) error {
	envCfg, err := config.LoadEnv()
	if err != nil {
		return err
	}

	exe, err := dub.Resolve(envCfg.DubPath)
	if err != nil {
		return err
	}

	code, err := dub.Execute(exe, req)
	if err != nil {
		return err
	}

	os.Exit(code)
	return nil
}
