package colors

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Ordered is a string-keyed map that remembers insertion order. Configuration
// documents are decoded into it so generated JSON lists keys in the order they
// were declared.
type Ordered[V any] struct {
	keys   []string
	values map[string]V
}

// Set stores value under key, appending key if it is new.
func (o *Ordered[V]) Set(key string, value V) {
	if o.values == nil {
		o.values = make(map[string]V)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o Ordered[V]) Get(key string) (V, bool) {
	value, ok := o.values[key]
	return value, ok
}

// Keys returns the keys in insertion order.
func (o Ordered[V]) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Len reports the number of entries.
func (o Ordered[V]) Len() int {
	return len(o.keys)
}

// Map returns an unordered copy.
func (o Ordered[V]) Map() map[string]V {
	out := make(map[string]V, len(o.keys))
	for _, key := range o.keys {
		out[key] = o.values[key]
	}
	return out
}

// MarshalJSON writes entries in insertion order.
func (o Ordered[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := marshalRaw(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')

		encodedValue, err := marshalRaw(o.values[key])
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", key, err)
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a YAML mapping, keeping the document's key order.
func (o *Ordered[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	o.keys = nil
	o.values = make(map[string]V, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var value V
		if err := valueNode.Decode(&value); err != nil {
			return err
		}
		o.Set(keyNode.Value, value)
	}
	return nil
}

// marshalRaw encodes v without HTML escaping and without the trailing newline
// json.Encoder appends.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
