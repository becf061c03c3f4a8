// Package manifest reads the package manifest of a command-line program: its name, version,
// description and the commands it installs.
//
// Both package.json and YAML manifests are supported. The bin field may be a single path, in which
// case the command takes the package name, or a mapping from command name to path. The order of a
// bin mapping is preserved.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Filenames are the manifest names FindUp looks for, in order of preference.
var Filenames = []string{"package.json", "package.yaml", "package.yml"}

// ErrNotFound is returned by FindUp when no directory up to the root holds a manifest.
var ErrNotFound = errors.New("manifest not found")

// Manifest is the subset of a package manifest a command-line program cares about.
type Manifest struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description" yaml:"description"`
	Bin         Bin    `json:"bin" yaml:"bin"`
}

// Command is one executable installed by the package.
type Command struct {
	Name string
	Path string
}

// Bin lists the commands a package installs.
type Bin []Command

// Title returns the name a running program should take: the first command in bin, or the package
// name when bin is empty.
func (m *Manifest) Title() string {
	if m == nil {
		return ""
	}
	if len(m.Bin) > 0 && m.Bin[0].Name != "" {
		return m.Bin[0].Name
	}
	return m.Name
}

// Parse decodes a manifest. Documents starting with "{" are read as JSON, anything else as YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return nil, fmt.Errorf("failed to decode json manifest: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode yaml manifest: %w", err)
	}
	m.normalize()
	return &m, nil
}

// Read reads and decodes the manifest at path.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// FindUp looks for a manifest in dir and then in each parent directory. It returns the manifest
// together with the path it was read from, or an error wrapping [ErrNotFound].
func FindUp(dir string) (*Manifest, string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", err
	}
	for {
		for _, name := range Filenames {
			path := filepath.Join(dir, name)
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			m, err := Read(path)
			if err != nil {
				return nil, "", err
			}
			return m, path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, "", fmt.Errorf("%w in %s or any parent directory", ErrNotFound, dir)
		}
		dir = parent
	}
}

// normalize names a bin given as a single path after the package, the way npm does.
func (m *Manifest) normalize() {
	if len(m.Bin) == 1 && m.Bin[0].Name == "" {
		m.Bin[0].Name = m.Name
		if i := strings.LastIndexByte(m.Name, '/'); strings.HasPrefix(m.Name, "@") && i >= 0 {
			// scoped packages install the unscoped name
			m.Bin[0].Name = m.Name[i+1:]
		}
	}
}

// UnmarshalYAML accepts either a single path or a mapping of command names to paths.
func (b *Bin) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" || node.Tag == "!!null" {
			*b = nil
			return nil
		}
		*b = Bin{{Path: node.Value}}
		return nil
	case yaml.MappingNode:
		out := make(Bin, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var path string
			if err := node.Content[i+1].Decode(&path); err != nil {
				return fmt.Errorf("bin %q: %w", node.Content[i].Value, err)
			}
			out = append(out, Command{Name: node.Content[i].Value, Path: path})
		}
		*b = out
		return nil
	}
	return fmt.Errorf("line %d: bin must be a string or a mapping", node.Line)
}

// UnmarshalJSON accepts either a single path or an object of command names to paths, keeping the
// object's key order.
func (b *Bin) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch v := tok.(type) {
	case nil:
		*b = nil
		return nil
	case string:
		if v == "" {
			*b = nil
			return nil
		}
		*b = Bin{{Path: v}}
		return nil
	case json.Delim:
		if v != '{' {
			break
		}
		var out Bin
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			var path string
			if err := dec.Decode(&path); err != nil {
				return fmt.Errorf("bin %q: %w", keyTok, err)
			}
			out = append(out, Command{Name: keyTok.(string), Path: path})
		}
		*b = out
		return nil
	}
	return errors.New("bin must be a string or an object")
}
