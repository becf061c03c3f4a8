package cliparse

import "strings"

// rawFlag is a flag occurrence as it appeared on the command line, before any schema lookup.
type rawFlag struct {
	// name is the flag name without its leading dashes.
	name string
	// value is a string when one was given, true for a bare flag and false for a negated one.
	value any
}

// tokens is the result of splitting an argument vector.
type tokens struct {
	positionals []string
	flags       []rawFlag
	// separator holds the arguments after a literal "--".
	separator []string
}

// tokenize splits args into flags, positionals and the separator section. typeOf reports the
// declared type of a flag name; boolean flags only take the following argument as their value when
// it is the literal "true" or "false".
func tokenize(args []string, typeOf func(name string) (Type, bool)) tokens {
	var t tokens
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			t.separator = append([]string{}, args[i+1:]...)
			break
		}
		name, ok := flagName(arg)
		if !ok {
			t.positionals = append(t.positionals, arg)
			continue
		}
		if before, after, found := strings.Cut(name, "="); found {
			t.flags = append(t.flags, rawFlag{name: before, value: after})
			continue
		}
		typ, known := typeOf(name)
		if !known && strings.HasPrefix(name, "no-") && len(name) > len("no-") {
			t.flags = append(t.flags, rawFlag{name: name[len("no-"):], value: false})
			continue
		}
		if i+1 < len(args) && takesValue(args[i+1], known && typ == TypeBoolean) {
			i++
			t.flags = append(t.flags, rawFlag{name: name, value: args[i]})
			continue
		}
		t.flags = append(t.flags, rawFlag{name: name, value: true})
	}
	return t
}

// flagName returns the name of a flag argument without its dashes. The lone "-", negative
// numbers, and arguments with an empty name are positionals.
func flagName(arg string) (string, bool) {
	switch {
	case strings.HasPrefix(arg, "--"):
		name := arg[2:]
		return name, name != "" && !strings.HasPrefix(name, "=")
	case strings.HasPrefix(arg, "-"):
		if arg == "-" || looksNegative(arg) {
			return "", false
		}
		name := arg[1:]
		return name, !strings.HasPrefix(name, "=")
	}
	return "", false
}

// takesValue reports whether next can be consumed as the value of the preceding flag.
func takesValue(next string, boolean bool) bool {
	if boolean {
		return next == "true" || next == "false"
	}
	if next == "--" || next == "-" {
		return false
	}
	if _, isFlag := flagName(next); isFlag {
		return false
	}
	return true
}
