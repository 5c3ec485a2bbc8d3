// Package navigator resolves dotted paths against loaded document values,
// so rendering can start from a subtree instead of the document root.
package navigator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/oakwood-commons/jviz/pkg/loader"
)

// NodeAtPath descends from root along a dotted path and returns the value it
// lands on. Both dot and bracket notation are accepted, so "items.0.tags" and
// "items[0].tags" name the same node. Quoted bracket segments address keys
// that contain dots, as in `regions["south.east"]`. An empty path (or ".")
// returns the root unchanged.
func NodeAtPath(root any, path string) (any, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" || trimmed == "." {
		return root, nil
	}
	cur := root
	for _, step := range parsePath(trimmed) {
		next, err := navigateStep(cur, step)
		if err != nil {
			return nil, fmt.Errorf("path '%s': %w", path, err)
		}
		cur = next
	}
	return cur, nil
}

// parsePath splits a path into navigation steps, handling both dot and bracket notation
// Examples: "items.0" -> ["items", "0"]
//
//	"items[0]" -> ["items", "0"]
//	"items[0].tags" -> ["items", "0", "tags"]
//	"regions.asia.countries[1]" -> ["regions", "asia", "countries", "1"]
func parsePath(path string) []string {
	var parts []string
	var current strings.Builder

	for i := 0; i < len(path); i++ {
		ch := path[i]
		switch ch {
		case '.':
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		case '[':
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
			// Find the closing bracket
			j := i + 1
			for j < len(path) && path[j] != ']' {
				j++
			}
			if j < len(path) {
				parts = append(parts, path[i+1:j])
				i = j
			}
		default:
			current.WriteByte(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// navigateStep navigates a single step (key or index) in the data structure.
func navigateStep(cur any, step string) (any, error) {
	key := step
	if strings.HasPrefix(key, `"`) && strings.HasSuffix(key, `"`) && len(key) > 1 {
		key = key[1 : len(key)-1]
	}

	switch t := cur.(type) {
	case loader.Document:
		v, ok := t.Get(key)
		if !ok {
			return nil, fmt.Errorf("key '%s' not found", key)
		}
		return v, nil
	case map[string]any:
		v, ok := t[key]
		if !ok {
			return nil, fmt.Errorf("key '%s' not found", key)
		}
		return v, nil
	case []any:
		// try parse step as integer index
		idx, err := strconv.Atoi(step)
		if err != nil {
			return nil, fmt.Errorf("expected numeric index into array but got '%s'", step)
		}
		if idx < 0 || idx >= len(t) {
			return nil, fmt.Errorf("index %d out of range", idx)
		}
		return t[idx], nil
	default:
		return reflectStep(cur, step, key)
	}
}

// reflectStep handles typed containers handed to NodeAtPath directly by
// embedders, such as map[string]int, []string, or tagged structs.
func reflectStep(cur any, step, key string) (any, error) {
	rv := reflect.ValueOf(cur)
	if !rv.IsValid() {
		return nil, fmt.Errorf("cannot descend into %T at '%s'", cur, step)
	}

	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, fmt.Errorf("cannot descend into %T at '%s'", cur, step)
		}
		rv = rv.Elem()
	}

	switch rv.Kind() { //nolint:exhaustive // only handle container kinds relevant to navigation
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("cannot descend into %T at '%s'", cur, step)
		}
		mapKey := reflect.ValueOf(key).Convert(rv.Type().Key())
		value := rv.MapIndex(mapKey)
		if !value.IsValid() {
			return nil, fmt.Errorf("key '%s' not found", key)
		}
		return value.Interface(), nil
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(step)
		if err != nil {
			return nil, fmt.Errorf("expected numeric index into array but got '%s'", step)
		}
		if idx < 0 || idx >= rv.Len() {
			return nil, fmt.Errorf("index %d out of range", idx)
		}
		return rv.Index(idx).Interface(), nil
	case reflect.Struct:
		if field, ok := structFieldValue(rv, key); ok {
			return field, nil
		}
		return nil, fmt.Errorf("key '%s' not found", key)
	default:
		return nil, fmt.Errorf("cannot descend into %T at '%s'", cur, step)
	}
}

func structFieldValue(rv reflect.Value, key string) (any, bool) {
	typ := rv.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("json")
		tagName := strings.Split(tag, ",")[0]
		if tagName == "-" {
			continue
		}
		if tagName == key || field.Name == key {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}
