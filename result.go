package cliparse

import (
	"fmt"
	"io"
	"log/slog"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mfridman/cliparse/pkg/manifest"
)

// DefaultHelpExitCode is the exit code used by [Result.ShowUsage].
const DefaultHelpExitCode = 2

// Result is the outcome of [Parse].
type Result struct {
	// Input holds the positionals in order. Each is a string unless type inference or an input
	// hint converted it to a float64 or bool.
	Input []any

	// Flags maps result keys to values. A declared flag is stored under its camelCase name and
	// under every alias, all holding the same value. Keys appear in the order the arguments
	// mentioned them, followed by defaults in schema order.
	Flags *orderedmap.OrderedMap[string, any]

	// Pkg is the manifest passed in [Options.Pkg], if any.
	Pkg *manifest.Manifest

	// Help is the formatted help text.
	Help string

	// Unknown lists the undeclared flag names that were given, without dashes, in the order they
	// first appeared.
	Unknown []string

	env    *Env
	logger *slog.Logger
}

// Lookup returns the value stored for a flag. The name may be a result key or any command-line
// form of it, such as "camel-case-option".
func (r *Result) Lookup(name string) (any, bool) {
	if v, ok := r.Flags.Get(name); ok {
		return v, true
	}
	return r.Flags.Get(resultKey(name))
}

// Has reports whether the result holds a value for the flag.
func (r *Result) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// GetFlag retrieves a flag value by name, with type inference. Example usage:
//
//	verbose := GetFlag[bool](res, "verbose")
//	count := GetFlag[float64](res, "count")
//	rest := GetFlag[[]string](res, "--")
//
// A flag that is absent yields the zero value of T; use [Result.Has] to tell the two apart. A flag
// holding a value of another type panics, since asking for the wrong type is a programming error.
func GetFlag[T any](r *Result, name string) T {
	value, ok := r.Lookup(name)
	if !ok {
		var zero T
		return zero
	}
	if v, ok := value.(T); ok {
		return v
	}
	panic(fmt.Sprintf("internal error: type mismatch for flag %q: holds %T, requested %T", name, value, *new(T)))
}

// ShowHelp writes the help text and requests exit with code. Help goes to stdout when code is 0
// and to stderr otherwise.
func (r *Result) ShowHelp(code int) {
	var w io.Writer = r.env.Stdout
	if code != 0 {
		w = r.env.Stderr
	}
	fmt.Fprintln(w, r.Help)
	r.logger.Debug("exit after help", slog.Int("code", code))
	r.env.Exit(code)
}

// ShowUsage is ShowHelp with [DefaultHelpExitCode].
func (r *Result) ShowUsage() {
	r.ShowHelp(DefaultHelpExitCode)
}
