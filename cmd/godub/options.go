package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/godub/godub/pkg/config"
	"github.com/godub/godub/pkg/dub"
)

// dubOptions binds the shared dub option flags onto a cobra command.
type dubOptions struct {
	compiler       string
	build          string
	config         string
	arch           string
	rdmd           bool
	tempBuild      bool
	force          bool
	deep           bool
	nodeps         bool
	yes            bool
	nonInteractive bool
	dVersions      []string
	debug          []string
	overrideConfig []string
}

func (o *dubOptions) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.compiler, "compiler", "", "D compiler to use (default: $DC)")
	f.StringVarP(&o.build, "build", "b", "", "build type (debug, release, ...)")
	f.StringVarP(&o.config, "config", "c", "", "build configuration")
	f.StringVarP(&o.arch, "arch", "a", "", "target architecture")
	f.BoolVar(&o.rdmd, "rdmd", false, "use rdmd instead of compiling directly")
	f.BoolVar(&o.tempBuild, "temp-build", false, "build in a temporary directory")
	f.BoolVarP(&o.force, "force", "f", false, "force recompilation")
	f.BoolVar(&o.deep, "deep", false, "apply to all dependencies as well")
	f.BoolVar(&o.nodeps, "nodeps", false, "do not resolve missing dependencies")
	f.BoolVar(&o.yes, "yes", false, "assume yes for all interactive prompts")
	f.BoolVar(&o.nonInteractive, "non-interactive", false, "never enter interactive mode")
	f.StringArrayVar(&o.dVersions, "d-version", nil, "define a version identifier (repeatable)")
	f.StringArrayVarP(&o.debug, "debug", "d", nil, "define a debug identifier (repeatable)")
	f.StringArrayVar(&o.overrideConfig, "override-config", nil, "override a dependency's configuration (repeatable)")
}

// toOptionSet resolves the defaults file and returns the typed option
// set. Scalar precedence is flag, then $DC (compiler only, applied by
// the encoder), then the defaults file.
func (o *dubOptions) toOptionSet() (dub.OptionSet, error) {
	set := dub.OptionSet{
		Compiler:        o.compiler,
		Build:           o.build,
		Config:          o.config,
		Arch:            o.arch,
		Rdmd:            o.rdmd,
		TempBuild:       o.tempBuild,
		Force:           o.force,
		Deep:            o.deep,
		NoDeps:          o.nodeps,
		Yes:             o.yes,
		NonInteractive:  o.nonInteractive,
		DVersions:       o.dVersions,
		Debug:           o.debug,
		OverrideConfigs: o.overrideConfig,
	}

	defs, err := loadDefaults()
	if err != nil {
		return set, err
	}
	applyDefaults(&set, defs)

	return set, nil
}

// applyDefaults fills unset scalar fields from the defaults file. The
// compiler default is held back while $DC is set, so the environment
// keeps its place between the flag and the file.
func applyDefaults(set *dub.OptionSet, defs *config.Defaults) {
	if set.Compiler == "" && os.Getenv(dub.CompilerEnvVar) == "" {
		set.Compiler = defs.Compiler
	}
	if set.Build == "" {
		set.Build = defs.Build
	}
	if set.Config == "" {
		set.Config = defs.Config
	}
	if set.Arch == "" {
		set.Arch = defs.Arch
	}
}
