package main

import (
	"github.com/spf13/cobra"

	"github.com/godub/godub/pkg/dub"
)

func newLintCmd() *cobra.Command {
	var (
		opts           dubOptions
		syntaxCheck    bool
		styleCheck     bool
		errorFormat    string
		report         bool
		reportFormat   string
		reportFile     string
		importPaths    []string
		dscannerConfig string
	)

	cmd := &cobra.Command{
		Use:   "lint [package[@version]]",
		Short: "Run D-Scanner checks on the package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := opts.toOptionSet()
			if err != nil {
				return err
			}

			req := &dub.LintRequest{
				SyntaxCheck:    syntaxCheck,
				StyleCheck:     styleCheck,
				ErrorFormat:    errorFormat,
				Report:         report,
				ReportFormat:   reportFormat,
				ReportFile:     reportFile,
				ImportPaths:    importPaths,
				DScannerConfig: dscannerConfig,
				Options:        set,
			}
			if len(args) > 0 {
				req.Package = args[0]
			}

			return execute(req)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&syntaxCheck, "syntax-check", false, "only check for syntax errors")
	f.BoolVar(&styleCheck, "style-check", false, "only check for style issues")
	f.StringVar(&errorFormat, "error-format", "", "custom error format for D-Scanner")
	f.BoolVar(&report, "report", false, "generate a report instead of printing issues")
	f.StringVar(&reportFormat, "report-format", "", "report format")
	f.StringVar(&reportFile, "report-file", "", "write the report to a file")
	f.StringArrayVar(&importPaths, "import-paths", nil, "extra import path (repeatable)")
	f.StringVar(&dscannerConfig, "dscanner-config", "", "D-Scanner configuration file")
	opts.register(cmd)

	return cmd
}
