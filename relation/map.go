package relation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// Map is an insertion-ordered mapping from member name to Descriptor.
type Map struct {
	names  []string
	byName map[string]Descriptor
}

func newMap(capacity int) *Map {
	return &Map{
		names:  make([]string, 0, capacity),
		byName: make(map[string]Descriptor, capacity),
	}
}

// set stores d under name. A name already present keeps its position.
func (m *Map) set(name string, d Descriptor) {
	if _, ok := m.byName[name]; !ok {
		m.names = append(m.names, name)
	}
	m.byName[name] = d
}

// Get returns the descriptor stored under name.
func (m *Map) Get(name string) (Descriptor, bool) {
	d, ok := m.byName[name]
	return d, ok
}

// Len returns the number of descriptors.
func (m *Map) Len() int { return len(m.names) }

// Names returns the member names in insertion order.
func (m *Map) Names() []string {
	return append([]string(nil), m.names...)
}

// All iterates descriptors in insertion order.
func (m *Map) All() iter.Seq2[string, Descriptor] {
	return func(yield func(string, Descriptor) bool) {
		for _, name := range m.names {
			if !yield(name, m.byName[name]) {
				return
			}
		}
	}
}

// MarshalJSON encodes m as a JSON object, keeping insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.byName[name])
		if err != nil {
			return nil, fmt.Errorf("marshal relation %s: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes m as a YAML mapping, keeping insertion order.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range m.names {
		var val yaml.Node
		if err := val.Encode(m.byName[name]); err != nil {
			return nil, fmt.Errorf("marshal relation %s: %w", name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&val,
		)
	}
	return node, nil
}
