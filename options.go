package cliparse

import (
	"log/slog"

	"github.com/mfridman/cliparse/pkg/manifest"
)

// Options configures a call to [Parse]. The zero value parses the process arguments with no
// declared flags.
type Options struct {
	// Args is the argument vector to parse, without the program name. A nil Args reads
	// [Env.Args]; pass an empty non-nil slice to parse nothing.
	Args []string

	// Flags declares the expected flags.
	Flags Schema

	// InferType converts every positional that looks like a number into a float64.
	InferType bool

	// Input is a per-position type hint for positionals, used when InferType is off. Entry i
	// applies to positional i and the last entry applies to every later position, so a single
	// entry covers all of them.
	Input []Type

	// BooleanDefault decides what declared boolean flags without a default hold when they are
	// absent from the arguments.
	BooleanDefault BoolDefault

	// Separator collects the arguments after a literal "--" into Flags["--"] instead of appending
	// them to the positionals.
	Separator bool

	// Help is the help text template. Its common indentation and surrounding blank lines are
	// removed before it is indented by two spaces.
	Help string

	// Description is printed above the help text. When empty, the manifest description is used.
	Description string
	// HideDescription suppresses the description entirely.
	HideDescription bool

	// Version is printed by --version. When empty, the manifest version is used.
	Version string

	// DisableAutoHelp turns off printing help and exiting when --help is given.
	DisableAutoHelp bool
	// DisableAutoVersion turns off printing the version and exiting when --version is given.
	DisableAutoVersion bool

	// ListFlags appends an Options section generated from Flags to the help text.
	ListFlags bool

	// Pkg is the program's manifest. It supplies the description, the version and the process
	// title. See [manifest.FindUp].
	Pkg *manifest.Manifest

	// Env supplies the process-facing collaborators. Nil means [DefaultEnv].
	Env *Env

	// Logger receives debug records about unknown flags and terminal actions. Nil discards them.
	Logger *slog.Logger
}

// BoolDefault is the policy for declared boolean flags that have no default and are absent from
// the arguments. The zero value stores false.
type BoolDefault struct {
	// Omit leaves such flags out of the result, so "never given" can be told apart from
	// --flag=false.
	Omit bool

	// Value is stored instead of false when it is not nil and Omit is not set.
	Value any
}

// seed returns the value an absent boolean flag starts with, and false when it gets none.
func (p BoolDefault) seed() (any, bool) {
	switch {
	case p.Omit:
		return nil, false
	case p.Value == nil:
		return false, true
	default:
		return p.Value, true
	}
}
