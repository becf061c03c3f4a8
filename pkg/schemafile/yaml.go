package schemafile

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mfridman/cliparse"
)

// flagSpec is a flag declaration in either of its two YAML forms.
type flagSpec struct {
	short bool
	flag  cliparse.Flag
}

// fullForm mirrors the mapping form of a flag declaration.
type fullForm struct {
	Type    cliparse.Type `yaml:"type"`
	Alias   aliases       `yaml:"alias"`
	Default any           `yaml:"default"`
	Usage   string        `yaml:"usage"`
}

// aliases accepts a single alias or a list of them.
type aliases []string

func (a *aliases) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*a = aliases{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*a = list
		return nil
	}
	return fmt.Errorf("line %d: alias must be a string or a list of strings", node.Line)
}

func (s *flagSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		t, err := cliparse.ParseType(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*s = flagSpec{short: true, flag: cliparse.Flag{Type: t}}
		return nil
	case yaml.MappingNode:
		var full fullForm
		if err := node.Decode(&full); err != nil {
			return err
		}
		*s = flagSpec{flag: cliparse.Flag{
			Type:    full.Type,
			Aliases: full.Alias,
			Default: full.Default,
			Usage:   full.Usage,
		}}
		return nil
	}
	return fmt.Errorf("line %d: flag must be a type name or a mapping", node.Line)
}

// DecodeYAML decodes a YAML schema document.
func DecodeYAML(data []byte) (cliparse.Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return cliparse.Schema{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("schema must be a mapping of flag names")
	}
	schema := make(cliparse.Schema, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		var spec flagSpec
		if err := root.Content[i+1].Decode(&spec); err != nil {
			return nil, fmt.Errorf("flag %q: %w", name, err)
		}
		if spec.short {
			schema = append(schema, cliparse.Typed(name, spec.flag.Type))
			continue
		}
		spec.flag.Name = name
		schema = append(schema, spec.flag)
	}
	return schema, nil
}
