// Package schemafile loads a flag [cliparse.Schema] from a YAML or HCL document.
//
// In YAML the document is a mapping from flag name to either a bare type (the short form) or a
// mapping with type, alias, default and usage keys:
//
//	unicorn:
//	  alias: u
//	meow:
//	  default: dog
//	cursor: boolean
//
// In HCL each flag is a labeled block:
//
//	flag "unicorn" {
//	  alias = ["u"]
//	}
//	flag "cursor" {
//	  type    = "boolean"
//	  default = true
//	}
//
// Declaration order is preserved in both formats.
package schemafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mfridman/cliparse"
)

// Load reads the schema file at path. Files ending in .hcl are decoded as HCL, everything else as
// YAML.
func Load(path string) (cliparse.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema cliparse.Schema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		schema, err = DecodeHCL(data, path)
	default:
		schema, err = DecodeYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return schema, nil
}
