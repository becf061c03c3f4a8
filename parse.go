package cliparse

import (
	"fmt"
	"io"
	"log/slog"
)

// Parse parses the arguments described by opts and returns the result. A nil opts is the same as
// an empty one.
//
// Malformed arguments never fail: unknown flags are admitted under a best-effort key and values
// that do not convert to their declared type are kept as given. The only error that is not a
// help or version exit is an invalid [Schema], which is a programming error.
//
// When --version or --help is given and the matching auto behavior is enabled, Parse writes the
// version or help text and calls [Env.Exit] with 0. If Exit returns, Parse returns the result along
// with an [*Error] whose code is [ErrShowVersion] or [ErrShowHelp].
func Parse(opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	env := checkAndSetEnv(opts.Env)
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	l, err := newLookup(opts.Flags)
	if err != nil {
		return nil, NewError(ErrInvalidSchema, fmt.Errorf("failed to parse: %w", err))
	}

	args := opts.Args
	if args == nil {
		args = env.Args()
	}
	n := normalize(tokenize(args, l.typeOf), l, opts, logger)

	r := &Result{
		Input:   n.input,
		Flags:   n.flags,
		Pkg:     opts.Pkg,
		Help:    formatHelp(opts),
		Unknown: n.unknown,
		env:     env,
		logger:  logger,
	}
	if title := opts.Pkg.Title(); title != "" {
		env.SetTitle(title)
	}

	if !opts.DisableAutoVersion && !r.negated("autoVersion") && r.requested(l, "version", "v") {
		fmt.Fprintln(env.Stdout, version(opts))
		logger.Debug("exit after version", slog.Int("code", 0))
		env.Exit(0)
		return r, newExitError(ErrShowVersion, 0)
	}
	if !opts.DisableAutoHelp && !r.negated("autoHelp") && r.requested(l, "help", "h") {
		r.ShowHelp(0)
		return r, newExitError(ErrShowHelp, 0)
	}
	return r, nil
}

// ParseHelp is Parse with help as the help text template, the shorthand for programs whose only
// option is their help text.
func ParseHelp(help string, opts *Options) (*Result, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	o.Help = help
	return Parse(&o)
}

// requested reports whether a conventional flag such as --help was given a truthy value. The
// short form only counts when the schema does not claim it for another flag.
func (r *Result) requested(l *lookup, long, short string) bool {
	if v, ok := r.Flags.Get(long); ok && truthy(v) {
		return true
	}
	if e, declared := l.resolve(short); declared && e.key != long {
		return false
	}
	v, ok := r.Flags.Get(short)
	return ok && truthy(v)
}

// negated reports whether the arguments switched an auto behavior off, as --no-auto-help does.
func (r *Result) negated(key string) bool {
	v, ok := r.Flags.Get(key)
	return ok && v == false
}

func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "false"
	case float64:
		return v != 0
	default:
		return true
	}
}
