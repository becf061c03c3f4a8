// Package cliparse turns a raw argument vector and a declarative flag schema into a normalized
// result: positional inputs, typed flags, and ready-to-print help text. It is meant to run as the
// setup step of a command-line program, before the program's real logic.
//
// Flags are resolved through their aliases, keyed in camelCase, and coerced to the type declared
// in the [Schema]. Undeclared flags are never an error; they are admitted under a best-effort key
// and reported in [Result.Unknown]. The process-facing side effects (reading os.Args, writing to
// stdout and stderr, exiting) all go through an injected [Env].
package cliparse
