package cliparse

import (
	"strings"

	"github.com/mfridman/cliparse/pkg/textutil"
)

// descriptionWidth is where long descriptions wrap.
const descriptionWidth = 78

// formatHelp assembles the help text: the description, then the redented help template, then the
// optional flag listing.
func formatHelp(opts *Options) string {
	help := opts.Help
	// Trailing tabs are left behind by indented raw string literals.
	if trimmed := strings.TrimRight(help, "\n"); strings.HasSuffix(trimmed, "\t") {
		help = strings.TrimRight(trimmed, "\t")
	}
	help = textutil.Redent(textutil.TrimNewlines(help), 2)
	if opts.ListFlags {
		if section := optionsSection(opts.Flags); section != "" {
			if help != "" {
				help += "\n\n"
			}
			help += section
		}
	}

	var b strings.Builder
	if description := describe(opts); description != "" {
		b.WriteString("\n")
		for _, line := range textutil.Wrap(description, descriptionWidth) {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n")
	if help != "" {
		b.WriteString(help + "\n")
	}
	return b.String()
}

func describe(opts *Options) string {
	if opts.HideDescription {
		return ""
	}
	if opts.Description != "" {
		return opts.Description
	}
	if opts.Pkg != nil {
		return opts.Pkg.Description
	}
	return ""
}

// version is the string printed by --version.
func version(opts *Options) string {
	if opts.Version != "" {
		return opts.Version
	}
	if opts.Pkg != nil {
		return opts.Pkg.Version
	}
	return ""
}
