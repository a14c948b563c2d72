// Package dub translates typed subcommand requests into dub argument
// vectors and runs the installed dub executable with them. It never
// parses dub's output and never validates flag values; dub does all
// real work.
package dub

import "os"

// CompilerEnvVar supplies a default compiler when an OptionSet carries
// no explicit compiler. An explicit value always wins over the
// environment.
const CompilerEnvVar = "DC"

// OptionSet holds the build options shared by most dub subcommands.
// The zero value emits no flags.
type OptionSet struct {
	Compiler string
	Build    string
	Config   string
	Arch     string

	Rdmd           bool
	TempBuild      bool
	Force          bool
	Deep           bool
	NoDeps         bool
	Yes            bool
	NonInteractive bool

	DVersions       []string
	Debug           []string
	OverrideConfigs []string
}

// Flags encodes the set as dub command-line tokens in a fixed order:
// scalar flags, then boolean switches, then repeated list flags.
// List elements keep their original order; dub gives later values
// higher precedence, so reordering would change meaning.
func (o *OptionSet) Flags() []string {
	var args []string

	compiler := o.Compiler
	if compiler == "" {
		compiler = os.Getenv(CompilerEnvVar)
	}
	if compiler != "" {
		args = append(args, "--compiler="+compiler)
	}
	if o.Build != "" {
		args = append(args, "--build="+o.Build)
	}
	if o.Config != "" {
		args = append(args, "--config="+o.Config)
	}
	if o.Arch != "" {
		args = append(args, "--arch="+o.Arch)
	}

	switches := []struct {
		flag string
		on   bool
	}{
		{"--rdmd", o.Rdmd},
		{"--temp-build", o.TempBuild},
		{"--force", o.Force},
		{"--deep", o.Deep},
		{"--nodeps", o.NoDeps},
		{"--yes", o.Yes},
		{"--non-interactive", o.NonInteractive},
	}
	for _, s := range switches {
		if s.on {
			args = append(args, s.flag)
		}
	}

	for _, v := range o.DVersions {
		args = append(args, "--d-version="+v)
	}
	for _, d := range o.Debug {
		args = append(args, "--debug="+d)
	}
	for _, c := range o.OverrideConfigs {
		args = append(args, "--override-config="+c)
	}

	return args
}
