// Package loader parses JSON and YAML documents into an order-preserving
// value model: objects become Document slices, arrays become []any, and
// scalars become plain Go values.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxNesting bounds the document depth the converter will walk. Alias chains
// and adversarial inputs surface as an error instead of exhausting the stack.
const maxNesting = 1000

// LoadRoot parses input into a single root value. JSON is parsed through the
// YAML reader, which accepts it as a subset and exposes mapping members in
// declaration order. Exactly one top-level document is allowed.
func LoadRoot(input string) (any, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("empty input")
	}

	dec := yaml.NewDecoder(strings.NewReader(input))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty input")
		}
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	root, err := nodeToValue(&doc, 0)
	if err != nil {
		return nil, err
	}

	// A second decodable document means the input is a multi-document
	// stream, which has no single rendering.
	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case err == nil:
		return nil, fmt.Errorf("multiple documents in input; expected exactly one")
	case !errors.Is(err, io.EOF):
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	return root, nil
}

// LoadRootBytes parses input bytes into a single root value.
func LoadRootBytes(data []byte) (any, error) {
	return LoadRoot(string(data))
}

// LoadFile reads a file and parses it into a single root value.
func LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadRootBytes(data)
}

// LoadReader parses a document from r, typically piped stdin.
func LoadReader(r io.Reader) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return LoadRootBytes(data)
}

// LoadObject accepts an already parsed value (Documents, maps, slices,
// structs, or serialized strings). Strings and byte slices run through the
// parser; custom structs flatten to plain maps and slices via a JSON
// round-trip so the node builder can walk them.
func LoadObject(value any) (any, error) {
	if value == nil {
		return nil, fmt.Errorf("object input is nil")
	}

	rv := reflect.ValueOf(value)
	if (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Slice || rv.Kind() == reflect.Map || rv.Kind() == reflect.Interface || rv.Kind() == reflect.Func || rv.Kind() == reflect.Chan) && rv.IsNil() {
		return nil, fmt.Errorf("object input is nil")
	}

	switch v := value.(type) {
	case string:
		return LoadRoot(v)
	case []byte:
		return LoadRootBytes(v)
	case Document, []any, map[string]any:
		return v, nil
	default:
		return normalizeValue(value)
	}
}

// normalizeValue converts arbitrary Go values to the shapes the builder
// understands. Primitives pass through untouched; everything else flattens
// through JSON marshaling, which honors struct tags.
func normalizeValue(value any) (any, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.String:
		return rv.Interface(), nil
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct, reflect.Interface:
		data, err := json.Marshal(rv.Interface())
		if err != nil {
			return nil, fmt.Errorf("cannot marshal value: %w", err)
		}
		var out any
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("cannot normalize value: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value kind %s", rv.Kind())
	}
}

// nodeToValue converts a decoded yaml.Node tree into the rendering value
// model. Mapping members keep declaration order, including duplicates; a
// viewer should show the document as written.
func nodeToValue(n *yaml.Node, depth int) (any, error) {
	if depth > maxNesting {
		return nil, fmt.Errorf("document nesting exceeds %d levels", maxNesting)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeToValue(n.Content[0], depth)
	case yaml.MappingNode:
		doc := make(Document, 0, len(n.Content)/2)
		for i := 0; i < len(n.Content)-1; i += 2 {
			keyNode := n.Content[i]
			valNode := n.Content[i+1]
			var key string
			if err := keyNode.Decode(&key); err != nil {
				// YAML allows non-string keys; render them under their raw text.
				key = keyNode.Value
			}
			val, err := nodeToValue(valNode, depth+1)
			if err != nil {
				return nil, err
			}
			doc = append(doc, Member{Key: key, Value: val})
		}
		return doc, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := nodeToValue(c, depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case yaml.ScalarNode:
		var val any
		if err := n.Decode(&val); err != nil {
			return n.Value, nil
		}
		return val, nil
	case yaml.AliasNode:
		if n.Alias != nil {
			return nodeToValue(n.Alias, depth+1)
		}
		return nil, nil
	default:
		return nil, nil
	}
}
