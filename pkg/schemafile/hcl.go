package schemafile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/mfridman/cliparse"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "flag", LabelNames: []string{"name"}},
	},
}

var flagBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type"},
		{Name: "alias"},
		{Name: "default"},
		{Name: "usage"},
	},
}

// DecodeHCL decodes an HCL schema document. filename is only used in diagnostics.
func DecodeHCL(data []byte, filename string) (cliparse.Schema, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	seen := make(map[string]*hcl.Block)
	var schema cliparse.Schema
	for _, block := range content.Blocks.OfType("flag") {
		name := block.Labels[0]
		if prev, ok := seen[name]; ok {
			return nil, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Duplicate flag definition",
				Detail:   fmt.Sprintf("A flag named %q was already defined at %s.", name, prev.DefRange),
				Subject:  &block.DefRange,
			}}
		}
		seen[name] = block

		f, diags := decodeFlagBlock(name, block)
		if diags.HasErrors() {
			return nil, diags
		}
		schema = append(schema, f)
	}
	return schema, nil
}

func decodeFlagBlock(name string, block *hcl.Block) (cliparse.Flag, hcl.Diagnostics) {
	f := cliparse.Flag{Name: name}
	body, diags := block.Body.Content(flagBodySchema)
	if diags.HasErrors() {
		return f, diags
	}
	for attrName, attr := range body.Attributes {
		val, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		var err error
		switch attrName {
		case "type":
			var s string
			if err = gocty.FromCtyValue(val, &s); err == nil {
				f.Type, err = cliparse.ParseType(s)
			}
		case "alias":
			f.Aliases, err = ctyToAliases(val)
		case "default":
			f.Default, err = ctyToDefault(val)
		case "usage":
			err = gocty.FromCtyValue(val, &f.Usage)
		}
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  fmt.Sprintf("Invalid %s for flag %q", attrName, name),
				Detail:   err.Error(),
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
	}
	return f, diags
}

// ctyToAliases accepts a single string or a list or tuple of strings.
func ctyToAliases(v cty.Value) ([]string, error) {
	if v.IsNull() {
		return nil, nil
	}
	ty := v.Type()
	if ty == cty.String {
		return []string{v.AsString()}, nil
	}
	if !ty.IsListType() && !ty.IsTupleType() {
		return nil, fmt.Errorf("alias must be a string or a list of strings, got %s", ty.FriendlyName())
	}
	var out []string
	it := v.ElementIterator()
	for it.Next() {
		_, el := it.Element()
		var s string
		if err := gocty.FromCtyValue(el, &s); err != nil {
			return nil, fmt.Errorf("alias: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

// ctyToDefault converts a default value to the Go value a flag holds: string, bool or float64.
func ctyToDefault(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	switch ty := v.Type(); ty {
	case cty.String:
		return v.AsString(), nil
	case cty.Bool:
		return v.True(), nil
	case cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("default must be a string, bool or number, got %s", ty.FriendlyName())
	}
}
