package dub

import (
	"fmt"
	"os"
	"path/filepath"
)

// Request is one fully validated subcommand invocation. Requests are
// constructed by the CLI layer; the core only encodes and runs them.
type Request interface {
	// Tokens returns the argument vector passed to dub. Encoding is
	// deterministic and never fails.
	Tokens() []string
}

// Validator is implemented by requests that must check a local
// precondition before dub is invoked.
type Validator interface {
	Validate() error
}

// Format selects the target manifest format for convert.
type Format string

const (
	FormatJSON Format = "json"
	FormatSDL  Format = "sdl"
)

// ParseFormat constrains a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatSDL:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid format %q (expected json or sdl)", s)
}

// Source returns the manifest file dub convert would read and replace
// when converting to this format.
func (f Format) Source() string {
	if f == FormatJSON {
		return "dub.sdl"
	}
	return "dub.json"
}

// ProjectType selects the skeleton dub init generates.
type ProjectType string

const (
	ProjectMinimal ProjectType = "minimal"
	ProjectVibeD   ProjectType = "vibe.d"
	ProjectDeimos  ProjectType = "deimos"
	ProjectCustom  ProjectType = "custom"
)

// ParseProjectType constrains a user-supplied project type string.
func ParseProjectType(s string) (ProjectType, error) {
	switch ProjectType(s) {
	case ProjectMinimal, ProjectVibeD, ProjectDeimos, ProjectCustom:
		return ProjectType(s), nil
	}
	return "", fmt.Errorf("invalid project type %q (expected minimal, vibe.d, deimos or custom)", s)
}

// RunRequest builds and runs the package in the working directory.
type RunRequest struct {
	Options OptionSet
}

func (r *RunRequest) Tokens() []string {
	return append([]string{"run"}, r.Options.Flags()...)
}

// BuildRequest builds the package without running it.
type BuildRequest struct {
	Options OptionSet
}

func (r *BuildRequest) Tokens() []string {
	return append([]string{"build"}, r.Options.Flags()...)
}

// ConvertRequest rewrites the package manifest in the target format.
// Dir is the directory holding the manifest; empty means the working
// directory.
type ConvertRequest struct {
	Format Format
	Dir    string
}

// Validate checks that the source manifest the converter would read
// exists, so dub is not invoked on a no-op.
func (r *ConvertRequest) Validate() error {
	src := r.Format.Source()
	if _, err := os.Stat(filepath.Join(r.Dir, src)); err != nil {
		return &PreconditionError{File: src}
	}
	return nil
}

func (r *ConvertRequest) Tokens() []string {
	return []string{"convert", "--format=" + string(r.Format)}
}

// RawRequest forwards user tokens to dub verbatim, unreordered. It is
// the escape hatch for dub features the adapter does not model.
type RawRequest struct {
	Args []string
}

func (r *RawRequest) Tokens() []string {
	return r.Args
}

// DescribeRequest prints dub's JSON build description.
type DescribeRequest struct {
	Data     []string
	DataList bool
	Options  OptionSet
}

func (r *DescribeRequest) Tokens() []string {
	args := []string{"describe"}
	for _, d := range r.Data {
		args = append(args, "--data="+d)
	}
	if r.DataList {
		args = append(args, "--data-list")
	}
	return append(args, r.Options.Flags()...)
}

// AddRequest adds packages as dependencies. Packages is non-empty;
// the CLI enforces that.
type AddRequest struct {
	Packages []string
	Options  OptionSet
}

func (r *AddRequest) Tokens() []string {
	args := append([]string{"add"}, r.Packages...)
	return append(args, r.Options.Flags()...)
}

// RemoveRequest removes packages from the dependency list.
type RemoveRequest struct {
	Packages []string
	Options  OptionSet
}

func (r *RemoveRequest) Tokens() []string {
	args := append([]string{"remove"}, r.Packages...)
	return append(args, r.Options.Flags()...)
}

// FetchRequest fetches a package to dub's shared location.
type FetchRequest struct {
	Package string
	Cache   string
	Options OptionSet
}

func (r *FetchRequest) Tokens() []string {
	args := []string{"fetch", r.Package}
	if r.Cache != "" {
		args = append(args, "--cache="+r.Cache)
	}
	return append(args, r.Options.Flags()...)
}

// InitRequest initializes an empty package. NonInteractive is init's
// own switch and is emitted ahead of the shared options.
type InitRequest struct {
	Directory      string
	Dependencies   []string
	Type           ProjectType
	NonInteractive bool
	Options        OptionSet
}

func (r *InitRequest) Tokens() []string {
	args := []string{"init"}
	if r.Directory != "" {
		args = append(args, r.Directory)
	}
	args = append(args, r.Dependencies...)
	typ := r.Type
	if typ == "" {
		typ = ProjectMinimal
	}
	args = append(args, "--type="+string(typ))
	if r.NonInteractive {
		args = append(args, "--non-interactive")
	}
	return append(args, r.Options.Flags()...)
}

// CleanRequest removes cached build files.
type CleanRequest struct {
	Package     string
	AllPackages bool
	Options     OptionSet
}

func (r *CleanRequest) Tokens() []string {
	args := []string{"clean"}
	if r.Package != "" {
		args = append(args, r.Package)
	}
	if r.AllPackages {
		args = append(args, "--all-packages")
	}
	return append(args, r.Options.Flags()...)
}

// LintRequest runs D-Scanner checks through dub lint.
type LintRequest struct {
	Package        string
	SyntaxCheck    bool
	StyleCheck     bool
	ErrorFormat    string
	Report         bool
	ReportFormat   string
	ReportFile     string
	ImportPaths    []string
	DScannerConfig string
	Options        OptionSet
}

func (r *LintRequest) Tokens() []string {
	args := []string{"lint"}
	if r.Package != "" {
		args = append(args, r.Package)
	}
	if r.SyntaxCheck {
		args = append(args, "--syntax-check")
	}
	if r.StyleCheck {
		args = append(args, "--style-check")
	}
	if r.ErrorFormat != "" {
		args = append(args, "--error-format="+r.ErrorFormat)
	}
	if r.Report {
		args = append(args, "--report")
	}
	if r.ReportFormat != "" {
		args = append(args, "--report-format="+r.ReportFormat)
	}
	if r.ReportFile != "" {
		args = append(args, "--report-file="+r.ReportFile)
	}
	for _, p := range r.ImportPaths {
		args = append(args, "--import-paths="+p)
	}
	if r.DScannerConfig != "" {
		args = append(args, "--dscanner-config="+r.DScannerConfig)
	}
	return append(args, r.Options.Flags()...)
}
