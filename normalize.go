package cliparse

import (
	"log/slog"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// SeparatorKey is the key of the separator section in [Result.Flags].
const SeparatorKey = "--"

// conventional flag keys are handled by Parse itself and never reported as unknown.
var conventional = map[string]bool{
	"help":        true,
	"h":           true,
	"version":     true,
	"v":           true,
	"autoHelp":    true,
	"autoVersion": true,
}

// normalized is the output of the schema normalizer.
type normalized struct {
	input   []any
	flags   *orderedmap.OrderedMap[string, any]
	unknown []string
}

// flagValues collects values by result key and remembers two orders: keys written from the
// arguments, in encounter order, and keys seeded from the schema.
type flagValues struct {
	values  map[string]any
	touched []string
	seeded  []string
}

func (v *flagValues) seed(keys []string, value any) {
	for _, key := range keys {
		if _, ok := v.values[key]; !ok {
			v.seeded = append(v.seeded, key)
		}
		v.values[key] = value
	}
}

func (v *flagValues) set(keys []string, value any) {
	for _, key := range keys {
		if !slices.Contains(v.touched, key) {
			v.touched = append(v.touched, key)
		}
		v.values[key] = value
	}
}

func (v *flagValues) ordered() *orderedmap.OrderedMap[string, any] {
	out := orderedmap.New[string, any](len(v.values))
	for _, key := range v.touched {
		out.Set(key, v.values[key])
	}
	for _, key := range v.seeded {
		if _, ok := out.Get(key); !ok {
			out.Set(key, v.values[key])
		}
	}
	return out
}

// normalize turns tokens into the final flags and positionals.
func normalize(tok tokens, l *lookup, opts *Options, logger *slog.Logger) normalized {
	v := &flagValues{values: make(map[string]any)}

	// Booleans first, under the boolean-default policy.
	for _, e := range l.entries {
		if e.flag.Type != TypeBoolean {
			continue
		}
		if e.flag.Default != nil {
			v.seed(e.keys, e.flag.Default)
			continue
		}
		if value, ok := opts.BooleanDefault.seed(); ok {
			v.seed(e.keys, value)
		}
	}
	for _, e := range l.entries {
		if e.flag.Type != TypeBoolean && e.flag.Default != nil {
			v.seed(e.keys, e.flag.Default)
		}
	}

	var unknown []string
	for _, raw := range tok.flags {
		e, ok := l.resolve(raw.name)
		if !ok {
			key := resultKey(raw.name)
			v.set([]string{key}, coerceUndeclared(raw.value, opts.InferType))
			if !conventional[key] && !slices.Contains(unknown, raw.name) {
				unknown = append(unknown, raw.name)
				logger.Debug("unknown flag",
					slog.String("flag", raw.name),
					slog.Any("suggestions", opts.Flags.Suggest(raw.name)),
				)
			}
			continue
		}
		value := coerce(e.flag.Type, raw.value)
		keys := e.keys
		if own := resultKey(raw.name); own != e.key && slices.Contains(e.keys, own) {
			keys = append([]string{own}, slices.DeleteFunc(slices.Clone(e.keys), func(k string) bool {
				return k == own
			})...)
		}
		v.set(keys, value)
	}

	flags := v.ordered()
	input := coerceInput(tok.positionals, opts)
	if opts.Separator {
		sep := tok.separator
		if sep == nil {
			sep = []string{}
		}
		flags.Set(SeparatorKey, sep)
	} else {
		for _, arg := range tok.separator {
			input = append(input, coercePositional(len(input), arg, opts))
		}
	}
	return normalized{input: input, flags: flags, unknown: unknown}
}

// coerce converts a raw value to the declared type. Values that do not convert are kept as given.
func coerce(t Type, raw any) any {
	s, isString := raw.(string)
	switch t {
	case TypeBoolean:
		if isString {
			switch s {
			case "true":
				return true
			case "false":
				return false
			}
		}
		return raw
	case TypeNumber:
		if isString {
			if n, ok := parseNumber(s); ok {
				return n
			}
		}
		return raw
	default:
		if raw == true {
			return ""
		}
		return raw
	}
}

func coerceUndeclared(raw any, infer bool) any {
	if s, ok := raw.(string); ok && infer {
		if n, ok := parseNumber(s); ok {
			return n
		}
	}
	return raw
}

func coerceInput(positionals []string, opts *Options) []any {
	input := make([]any, 0, len(positionals))
	for i, arg := range positionals {
		input = append(input, coercePositional(i, arg, opts))
	}
	return input
}

// coercePositional converts the positional at index i. It never looks at flag types.
func coercePositional(i int, arg string, opts *Options) any {
	if opts.InferType {
		return coerceUndeclared(arg, true)
	}
	if len(opts.Input) == 0 {
		return arg
	}
	hint := opts.Input[min(i, len(opts.Input)-1)]
	if hint == TypeString {
		return arg
	}
	return coerce(hint, arg)
}
