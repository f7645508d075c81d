package orderedmap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// MarshalJSON renders m as a JSON object with keys in insertion order.
// encoding/json does not expose ordering hooks for map types, so the object
// is assembled by hand the way the teacher's ordered-marshal helpers do for
// its parse-result types.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for el := range m.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		keyBytes, err := json.Marshal(fmt.Sprintf("%v", el))
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')
		val, _ := m.Get(el)
		valBytes, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		buf.Write(valBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON populates m from a JSON object, preserving the key order of
// the source document by reading the stream token by token rather than
// decoding into a native Go map first.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	*m = Map[K, V]{}
	m.init()

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("orderedmap: expected JSON object")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		rawKey, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("orderedmap: expected string key")
		}
		var key K
		if err := json.Unmarshal([]byte(fmt.Sprintf("%q", rawKey)), &key); err != nil {
			return err
		}
		var value V
		if err := dec.Decode(&value); err != nil {
			return err
		}
		m.Set(key, value)
	}
	return nil
}

// MarshalYAML renders m as a YAML mapping node with keys in insertion order.
func (m *Map[K, V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for el := range m.All() {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(el); err != nil {
			return nil, err
		}
		val, _ := m.Get(el)
		valNode := &yaml.Node{}
		if err := valNode.Encode(val); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML populates m from a YAML mapping node, preserving source order.
func (m *Map[K, V]) UnmarshalYAML(node *yaml.Node) error {
	*m = Map[K, V]{}
	m.init()
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("orderedmap: expected YAML mapping, got kind %d", node.Kind)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key K
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		var value V
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		m.Set(key, value)
	}
	return nil
}
