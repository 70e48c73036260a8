package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/pokecard/internal/contrast"
	"github.com/zjrosen/pokecard/internal/log"
)

// SaveTypeColor sets theme.type_colors.<typeName> in the config file.
// Comments and formatting elsewhere in the file are preserved by editing
// the yaml.Node tree rather than re-marshaling a struct.
func SaveTypeColor(configPath, typeName, hex string) error {
	if typeName == "" || typeName != strings.ToLower(typeName) {
		return fmt.Errorf("type name %q must be lowercase and non-empty", typeName)
	}
	if _, err := contrast.ParseHex(hex); err != nil {
		return err
	}
	hex = "#" + strings.ToUpper(strings.TrimPrefix(hex, "#"))

	return editConfig(configPath, func(root *yaml.Node) {
		theme := ensureMapping(root, "theme")
		colors := ensureMapping(theme, "type_colors")
		setScalar(colors, typeName, hex)
	})
}

// RemoveTypeColor deletes theme.type_colors.<typeName> from the config file.
// Removing a name that is not present is not an error.
func RemoveTypeColor(configPath, typeName string) error {
	return editConfig(configPath, func(root *yaml.Node) {
		theme := findMapping(root, "theme")
		if theme == nil {
			return
		}
		colors := findMapping(theme, "type_colors")
		if colors == nil {
			return
		}
		for i := 0; i+1 < len(colors.Content); i += 2 {
			if colors.Content[i].Value == typeName {
				colors.Content = append(colors.Content[:i], colors.Content[i+2:]...)
				return
			}
		}
	})
}

// editConfig parses configPath into a yaml.Node, applies edit to the root
// mapping and writes the result back atomically.
func editConfig(configPath string, edit func(root *yaml.Node)) error {
	data, err := os.ReadFile(configPath) //nolint:gosec // G304: config path chosen by the user
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("parsing config: top level must be a mapping")
	}

	edit(doc.Content[0])

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return writeAtomic(configPath, buf.Bytes())
}

// writeAtomic writes to a temp file in the same directory, then renames.
func writeAtomic(configPath string, data []byte) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".pokecard.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	log.Info(log.CatConfig, "Saved config", "path", configPath)
	return nil
}

// findMapping returns the mapping stored under key, or nil.
func findMapping(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key && m.Content[i+1].Kind == yaml.MappingNode {
			return m.Content[i+1]
		}
	}
	return nil
}

// ensureMapping returns the mapping under key, creating it or replacing a
// non-mapping value (such as a commented-out null) when needed.
func ensureMapping(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value != key {
			continue
		}
		if m.Content[i+1].Kind != yaml.MappingNode {
			m.Content[i+1] = &yaml.Node{Kind: yaml.MappingNode}
		}
		return m.Content[i+1]
	}

	child := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		child,
	)
	return child
}

// setScalar sets key to a double-quoted string value.
func setScalar(m *yaml.Node, key, value string) {
	valueNode := &yaml.Node{Kind: yaml.ScalarNode, Value: value, Style: yaml.DoubleQuotedStyle}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = valueNode
			return
		}
	}
	m.Content = append(m.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		valueNode,
	)
}
