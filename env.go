package cliparse

import (
	"io"
	"os"
)

// Env holds the process-facing collaborators of [Parse]. Any nil field falls back to the
// corresponding field of [DefaultEnv].
type Env struct {
	// Args supplies the argument vector when [Options.Args] is nil.
	Args func() []string

	// Stdout receives help on success paths and the version string. Stderr receives help on error
	// paths.
	Stdout, Stderr io.Writer

	// Exit terminates the process with the given code. Parsing never continues after a call to
	// Exit; when Exit returns (as a test double would), Parse returns an [*Error] instead.
	Exit func(code int)

	// SetTitle is called once per parse with the command name derived from the manifest.
	SetTitle func(title string)
}

// DefaultEnv returns an Env bound to the real process: [os.Args] without the program name,
// [os.Stdout], [os.Stderr] and [os.Exit]. Go offers no portable way to rename a running process,
// so its SetTitle does nothing.
func DefaultEnv() *Env {
	return &Env{
		Args:     func() []string { return os.Args[1:] },
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Exit:     os.Exit,
		SetTitle: func(string) {},
	}
}

func checkAndSetEnv(env *Env) *Env {
	def := DefaultEnv()
	if env == nil {
		return def
	}
	out := *env
	if out.Args == nil {
		out.Args = def.Args
	}
	if out.Stdout == nil {
		out.Stdout = def.Stdout
	}
	if out.Stderr == nil {
		out.Stderr = def.Stderr
	}
	if out.Exit == nil {
		out.Exit = def.Exit
	}
	if out.SetTitle == nil {
		out.SetTitle = def.SetTitle
	}
	return &out
}
