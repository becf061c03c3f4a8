package cliparse

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/mfridman/cliparse/pkg/textutil"
)

// FlagUsages renders the schema as an aligned flag listing, one flag per line, in schema order.
// Single-character aliases are shown as shorthands and longer ones are listed after the usage.
func FlagUsages(schema Schema) (string, error) {
	if err := schema.Validate(); err != nil {
		return "", err
	}
	fset := pflag.NewFlagSet("", pflag.ContinueOnError)
	fset.SortFlags = false
	for _, f := range schema {
		name := cliName(f.Name)
		var shorthand string
		var longAliases []string
		for _, alias := range f.Aliases {
			if alias == f.Name {
				continue
			}
			if len(alias) == 1 && shorthand == "" {
				shorthand = alias
				continue
			}
			longAliases = append(longAliases, "--"+cliName(alias))
		}
		usage := f.Usage
		if len(longAliases) > 0 {
			usage = strings.TrimSpace(fmt.Sprintf("%s (aliases: %s)", usage, strings.Join(longAliases, ", ")))
		}
		switch f.Type {
		case TypeBoolean:
			def, _ := f.Default.(bool)
			fset.BoolP(name, shorthand, def, usage)
		case TypeNumber:
			def, _ := toFloat(f.Default)
			fset.Float64P(name, shorthand, def, usage)
		default:
			def, _ := f.Default.(string)
			fset.StringP(name, shorthand, def, usage)
		}
	}
	return fset.FlagUsages(), nil
}

// optionsSection is the help section listing the declared flags.
func optionsSection(schema Schema) string {
	if len(schema) == 0 {
		return ""
	}
	usages, err := FlagUsages(schema)
	if err != nil || usages == "" {
		return ""
	}
	return textutil.Indent("Options\n"+strings.TrimRight(usages, "\n"), 2)
}
