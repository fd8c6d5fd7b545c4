package api

import (
	"bytes"
	"encoding"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

// A struct field is required unless it is a pointer, an interface, or tagged
// omitempty/omitzero. Required fields must be present in the payload and not null.
type fieldRule struct {
	name     string
	typ      reflect.Type
	optional bool
}

var (
	fieldRules sync.Map // reflect.Type -> []fieldRule

	jsonUnmarshaler = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	textUnmarshaler = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// requireFields walks raw alongside t and reports the first required field
// the payload leaves out. raw must already be valid JSON for t.
func requireFields(raw []byte, t reflect.Type, path string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if !needsCheck(t) || isNull(raw) {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return err
		}
		for _, rule := range rulesFor(t) {
			field := joinPath(path, rule.name)
			value, ok := lookup(obj, rule.name)
			if !ok || isNull(value) {
				if rule.optional {
					continue
				}
				if !ok {
					return fmt.Errorf("missing required field %q", field)
				}
				return fmt.Errorf("required field %q is null", field)
			}
			if err := requireFields(value, rule.typ, field); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		for i, item := range items {
			field := fmt.Sprintf("%s[%d]", path, i)
			if isNull(item) && t.Elem().Kind() != reflect.Pointer {
				return fmt.Errorf("element %q is null", field)
			}
			if err := requireFields(item, t.Elem(), field); err != nil {
				return err
			}
		}
	}
	return nil
}

// needsCheck reports whether t holds struct fields that decoding could zero-fill.
func needsCheck(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct:
		return !customDecoded(t)
	case reflect.Slice, reflect.Array:
		return needsCheck(t.Elem())
	default:
		return false
	}
}

// customDecoded types (time.Time, decimal.Decimal, ...) own their JSON shape.
func customDecoded(t reflect.Type) bool {
	p := reflect.PointerTo(t)
	return t.Implements(jsonUnmarshaler) || p.Implements(jsonUnmarshaler) ||
		t.Implements(textUnmarshaler) || p.Implements(textUnmarshaler)
}

func rulesFor(t reflect.Type) []fieldRule {
	if cached, ok := fieldRules.Load(t); ok {
		return cached.([]fieldRule)
	}
	rules := collectRules(t)
	fieldRules.Store(t, rules)
	return rules
}

func collectRules(t reflect.Type) []fieldRule {
	var rules []fieldRule
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() && !f.Anonymous {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")

		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
			rules = append(rules, collectRules(f.Type)...)
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}

		kind := f.Type.Kind()
		rules = append(rules, fieldRule{
			name: name,
			typ:  f.Type,
			optional: kind == reflect.Pointer || kind == reflect.Interface ||
				hasOpt(opts, "omitempty") || hasOpt(opts, "omitzero"),
		})
	}
	return rules
}

func hasOpt(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}

// lookup matches keys the way the decoder does: exact first, then case-insensitive.
func lookup(obj map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if v, ok := obj[name]; ok {
		return v, true
	}
	for k, v := range obj {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
