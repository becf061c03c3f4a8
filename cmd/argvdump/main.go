// Command argvdump shows how an argument vector is parsed under a flag schema.
//
//	argvdump [flags] [-- argv...]
//
// The arguments after "--" are parsed by cliparse and printed as JSON. The schema comes from a YAML
// or HCL file given with -schema; the manifest from -manifest, or from the nearest package.json
// above the working directory.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/shlex"
	"github.com/mfridman/xflag"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/mfridman/cliparse"
	"github.com/mfridman/cliparse/pkg/manifest"
	"github.com/mfridman/cliparse/pkg/schemafile"
)

const help = `
	Usage
	  $ argvdump [flags] [-- argv...]

	Flags
	  -schema FILE           flag schema (.yaml, .yml or .hcl)
	  -manifest FILE         package manifest (default: nearest package.json)
	  -line STRING           shell-style command line to parse instead of argv
	  -infer                 infer numbers in positionals
	  -separator             collect arguments after -- into flags["--"]
	  -omit-unset-booleans   leave absent boolean flags out of the result
	  -keys                  print flag keys, one per line
	  -v                     log debug output to stderr
`

func main() {
	env := cliparse.DefaultEnv()
	if err := run(os.Args[1:], env); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(env.Stderr, "argvdump: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	schema            string
	manifest          string
	line              string
	infer             bool
	separator         bool
	omitUnsetBooleans bool
	keys              bool
	verbose           bool
}

type output struct {
	Input   []any                               `json:"input"`
	Flags   *orderedmap.OrderedMap[string, any] `json:"flags"`
	Unknown []string                            `json:"unknown,omitempty"`
}

func run(args []string, env *cliparse.Env) error {
	var cfg config
	fset := flag.NewFlagSet("argvdump", flag.ContinueOnError)
	fset.SetOutput(env.Stderr)
	fset.StringVar(&cfg.schema, "schema", "", "flag schema (.yaml, .yml or .hcl)")
	fset.StringVar(&cfg.manifest, "manifest", "", "package manifest (default: nearest package.json)")
	fset.StringVar(&cfg.line, "line", "", "shell-style command line to parse instead of argv")
	fset.BoolVar(&cfg.infer, "infer", false, "infer numbers in positionals")
	fset.BoolVar(&cfg.separator, "separator", false, `collect arguments after -- into flags["--"]`)
	fset.BoolVar(&cfg.omitUnsetBooleans, "omit-unset-booleans", false, "leave absent boolean flags out of the result")
	fset.BoolVar(&cfg.keys, "keys", false, "print flag keys, one per line")
	fset.BoolVar(&cfg.verbose, "v", false, "log debug output to stderr")

	// Everything after the first -- belongs to the program being simulated.
	own, argv := args, []string{}
	for i, arg := range args {
		if arg == "--" {
			own, argv = args[:i], args[i+1:]
			break
		}
	}
	if err := xflag.ParseToEnd(fset, own); err != nil {
		return err
	}
	argv = append(append([]string{}, fset.Args()...), argv...)
	if cfg.line != "" {
		words, err := shlex.Split(cfg.line)
		if err != nil {
			return fmt.Errorf("failed to split -line: %w", err)
		}
		argv = append([]string{}, words...)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: level}))

	var schema cliparse.Schema
	if cfg.schema != "" {
		var err error
		if schema, err = schemafile.Load(cfg.schema); err != nil {
			return err
		}
	}
	pkg, err := loadManifest(cfg.manifest, logger)
	if err != nil {
		return err
	}

	opts := &cliparse.Options{
		Args:      argv,
		Flags:     schema,
		InferType: cfg.infer,
		Separator: cfg.separator,
		Help:      help,
		ListFlags: len(schema) > 0,
		Pkg:       pkg,
		Env:       env,
		Logger:    logger,
	}
	if cfg.omitUnsetBooleans {
		opts.BooleanDefault = cliparse.BoolDefault{Omit: true}
	}
	res, err := cliparse.Parse(opts)
	if err != nil {
		var cliErr *cliparse.Error
		if errors.As(err, &cliErr) && cliErr.Code() != cliparse.ErrInvalidSchema {
			return nil
		}
		return err
	}
	for _, name := range res.Unknown {
		if suggestions := schema.Suggest(name); len(suggestions) > 0 {
			logger.Warn("unknown flag", slog.String("flag", name), slog.Any("did_you_mean", suggestions))
		}
	}
	return write(env.Stdout, res, cfg.keys)
}

func loadManifest(path string, logger *slog.Logger) (*manifest.Manifest, error) {
	if path != "" {
		return manifest.Read(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	pkg, found, err := manifest.FindUp(wd)
	if err != nil {
		if errors.Is(err, manifest.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	logger.Debug("using manifest", slog.String("path", found))
	return pkg, nil
}

func write(w io.Writer, res *cliparse.Result, keys bool) error {
	if keys {
		for pair := res.Flags.Oldest(); pair != nil; pair = pair.Next() {
			if _, err := fmt.Fprintln(w, pair.Key); err != nil {
				return err
			}
		}
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output{Input: res.Input, Flags: res.Flags, Unknown: res.Unknown})
}
