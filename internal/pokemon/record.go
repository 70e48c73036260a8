// Package pokemon holds the PokeAPI-shaped record a card is built from and
// the loaders that read it from disk.
package pokemon

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Record is the subset of a PokeAPI pokemon resource used by a card.
// Callers own it; nothing in this module mutates a Record.
type Record struct {
	Name    string    `json:"name" yaml:"name" toml:"name"`
	Sprites Sprites   `json:"sprites" yaml:"sprites" toml:"sprites"`
	Types   []RawType `json:"types" yaml:"types" toml:"types"`
	Stats   []Stat    `json:"stats" yaml:"stats" toml:"stats"`
}

// Sprites holds sprite URLs. FrontDefault may be empty.
type Sprites struct {
	FrontDefault string `json:"front_default" yaml:"front_default" toml:"front_default"`
}

// Stat is one base stat entry.
type Stat struct {
	Stat     NamedRef `json:"stat" yaml:"stat" toml:"stat"`
	BaseStat int      `json:"base_stat" yaml:"base_stat" toml:"base_stat"`
}

// NamedRef is PokeAPI's {name, url} reference shape.
type NamedRef struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
}

// RawType is one entry of a record's type list. It is either a plain type
// name ("grass") or the API shape ({"slot": 1, "type": {"name": "grass"}}).
// A null entry decodes to an empty plain name.
type RawType struct {
	name      string
	apiShaped bool
}

// PlainName returns a RawType written as a bare string.
func PlainName(name string) RawType {
	return RawType{name: name}
}

// APIShaped returns a RawType written as {type: {name}}.
func APIShaped(name string) RawType {
	return RawType{name: name, apiShaped: true}
}

// Name returns the type name carried by either variant.
func (t RawType) Name() string {
	return t.name
}

// IsAPIShaped reports whether the entry used the {type: {name}} shape.
func (t RawType) IsAPIShaped() bool {
	return t.apiShaped
}

type apiType struct {
	Slot int      `json:"slot,omitempty" yaml:"slot,omitempty"`
	Type NamedRef `json:"type" yaml:"type"`
}

// UnmarshalJSON accepts a string, an API-shaped object or null.
func (t *RawType) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = PlainName("")
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*t = PlainName(name)
		return nil
	}

	var obj apiType
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("type entry must be a string or {\"type\":{\"name\":...}}: %w", err)
	}
	*t = APIShaped(obj.Type.Name)
	return nil
}

// MarshalJSON writes the entry back in the shape it was read in.
func (t RawType) MarshalJSON() ([]byte, error) {
	if t.apiShaped {
		return json.Marshal(apiType{Type: NamedRef{Name: t.name}})
	}
	return json.Marshal(t.name)
}

// UnmarshalYAML decodes the record with its type list read node by node.
// yaml.v3 never calls a field's unmarshaler for a null sequence entry, so
// "- ~" would otherwise vanish instead of becoming an empty name.
func (r *Record) UnmarshalYAML(value *yaml.Node) error {
	var doc struct {
		Name    string      `yaml:"name"`
		Sprites Sprites     `yaml:"sprites"`
		Types   []yaml.Node `yaml:"types"`
		Stats   []Stat      `yaml:"stats"`
	}
	if err := value.Decode(&doc); err != nil {
		return err
	}

	var types []RawType
	if doc.Types != nil {
		types = make([]RawType, len(doc.Types))
		for i := range doc.Types {
			if err := types[i].UnmarshalYAML(&doc.Types[i]); err != nil {
				return err
			}
		}
	}

	*r = Record{Name: doc.Name, Sprites: doc.Sprites, Types: types, Stats: doc.Stats}
	return nil
}

// UnmarshalYAML accepts a scalar or a mapping.
func (t *RawType) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" {
			*t = PlainName("")
			return nil
		}
		*t = PlainName(value.Value)
		return nil
	case yaml.MappingNode:
		var obj apiType
		if err := value.Decode(&obj); err != nil {
			return fmt.Errorf("decoding type entry: %w", err)
		}
		*t = APIShaped(obj.Type.Name)
		return nil
	default:
		return fmt.Errorf("line %d: type entry must be a string or a mapping", value.Line)
	}
}

// UnmarshalTOML accepts a string or a table with a "type" sub-table.
func (t *RawType) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*t = PlainName(v)
		return nil
	case map[string]any:
		inner, ok := v["type"].(map[string]any)
		if !ok {
			return fmt.Errorf("type table is missing a [type] sub-table")
		}
		name, _ := inner["name"].(string)
		*t = APIShaped(name)
		return nil
	default:
		return fmt.Errorf("type entry must be a string or a table, got %T", data)
	}
}

// NormalizeTypes flattens raw entries into plain names, keeping order and
// duplicates.
func NormalizeTypes(raw []RawType) []string {
	names := make([]string, len(raw))
	for i, t := range raw {
		names[i] = t.Name()
	}
	return names
}

// TypeNames returns the record's normalized type list.
func (r Record) TypeNames() []string {
	return NormalizeTypes(r.Types)
}
