package cliparse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mfridman/cliparse/pkg/suggest"
)

// Type is the value type of a declared flag.
type Type int

const (
	// TypeString keeps the flag value verbatim. It is the zero value.
	TypeString Type = iota
	// TypeBoolean coerces "true" and "false" to booleans. A bare flag is true.
	TypeBoolean
	// TypeNumber parses the flag value as a numeric literal into a float64.
	TypeNumber
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType parses the name of a type. The empty string is [TypeString].
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "string":
		return TypeString, nil
	case "boolean", "bool":
		return TypeBoolean, nil
	case "number":
		return TypeNumber, nil
	}
	return 0, fmt.Errorf("unknown flag type %q", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (t Type) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("unknown flag type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t Type) valid() bool {
	return t >= TypeString && t <= TypeNumber
}

// Flag declares a single flag of a [Schema].
type Flag struct {
	// Name is the canonical name, in any casing. The flag is accepted on the command line both in
	// its hyphenated form (--camel-case-option) and as written, and is stored in the result under
	// its camelCase form (camelCaseOption).
	Name string

	// Type is the value type. Defaults to [TypeString].
	Type Type

	// Aliases are alternate command-line names, typically single characters. Every alias is also a
	// key of the result and always holds the same value as the flag.
	Aliases []string

	// Default is the value used when the flag is absent from the arguments. A nil Default means
	// the flag has no default. Boolean flags without a default follow [Options.BooleanDefault].
	Default any

	// Usage is a one-line description shown in the generated flag listing.
	Usage string
}

// Typed returns a flag that declares nothing but its type, the short form of a flag declaration.
func Typed(name string, t Type) Flag {
	return Flag{Name: name, Type: t}
}

// Schema is the ordered set of flags a program declares.
type Schema []Flag

// Validate reports programming errors in the schema: empty or duplicate names, unknown types, and
// names or aliases claimed by more than one flag.
func (s Schema) Validate() error {
	_, err := newLookup(s)
	return err
}

// Lookup finds the flag that a command-line name refers to. The name may be the canonical name,
// its hyphenated or camelCase form, or any alias.
func (s Schema) Lookup(name string) (Flag, bool) {
	l, err := newLookup(s)
	if err != nil {
		return Flag{}, false
	}
	e, ok := l.resolve(name)
	if !ok {
		return Flag{}, false
	}
	return e.flag, true
}

// Suggest returns up to three declared command-line names similar to name, most similar first.
func (s Schema) Suggest(name string) []string {
	var known []string
	for _, f := range s {
		known = append(known, cliName(f.Name))
		known = append(known, f.Aliases...)
	}
	return suggest.FindSimilar(strings.TrimLeft(name, "-"), known, 3)
}

// entry is a declared flag after canonicalization.
type entry struct {
	flag Flag
	// key is the flag's own key in the result.
	key string
	// keys holds key followed by the key of every alias, without duplicates.
	keys []string
}

// lookup maps every command-line surface of the schema to its entry.
type lookup struct {
	entries []*entry
	byName  map[string]*entry
}

func newLookup(s Schema) (*lookup, error) {
	l := &lookup{byName: make(map[string]*entry)}
	for i, f := range s {
		if strings.TrimSpace(f.Name) == "" {
			return nil, fmt.Errorf("flag at index %d has no name", i)
		}
		if strings.HasPrefix(f.Name, "-") {
			return nil, fmt.Errorf("flag name %q must not start with a dash", f.Name)
		}
		if !f.Type.valid() {
			return nil, fmt.Errorf("flag %q: unknown flag type %d", f.Name, int(f.Type))
		}
		f.Aliases = slices.Clone(f.Aliases)
		if f.Type == TypeNumber {
			if n, ok := toFloat(f.Default); ok {
				f.Default = n
			}
		}
		e := &entry{flag: f, key: resultKey(f.Name)}
		e.keys = append(e.keys, e.key)
		if err := l.claim(e, f.Name, cliName(f.Name), e.key); err != nil {
			return nil, err
		}
		for _, alias := range f.Aliases {
			if alias == "" || strings.HasPrefix(alias, "-") {
				return nil, fmt.Errorf("flag %q: invalid alias %q", f.Name, alias)
			}
			key := resultKey(alias)
			if !slices.Contains(e.keys, key) {
				e.keys = append(e.keys, key)
			}
			if err := l.claim(e, alias, cliName(alias), key); err != nil {
				return nil, err
			}
		}
		l.entries = append(l.entries, e)
	}
	return l, nil
}

func (l *lookup) claim(e *entry, names ...string) error {
	for _, name := range names {
		if other, ok := l.byName[name]; ok && other != e {
			if other.flag.Name == e.flag.Name {
				return fmt.Errorf("duplicate flag %q", e.flag.Name)
			}
			return fmt.Errorf("flag %q: name %q is already used by flag %q", e.flag.Name, name, other.flag.Name)
		}
		l.byName[name] = e
	}
	return nil
}

// resolve finds the entry for a command-line name, first verbatim and then by its result key, so
// --camel-case-option and --camelCaseOption reach the same flag.
func (l *lookup) resolve(name string) (*entry, bool) {
	if e, ok := l.byName[name]; ok {
		return e, true
	}
	if e, ok := l.byName[resultKey(name)]; ok {
		return e, true
	}
	return nil, false
}

// typeOf reports the declared type of a command-line name.
func (l *lookup) typeOf(name string) (Type, bool) {
	e, ok := l.resolve(name)
	if !ok {
		return 0, false
	}
	return e.flag.Type, true
}
