package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gebhydro/gebconf/pkg/settings"
)

// Date layouts differ between the two source layers: the structured
// document writes ISO calendar dates, the flat hydrological settings
// write day-first dates. The layer a path resolves from decides which
// layout applies.
const (
	structuredDateLayout = "2006-01-02"
	flatDateLayout       = "02/01/2006"
)

type hit struct {
	value    *settings.Value // non-nil for structured-layer hits
	raw      string
	fromFlat bool
}

// lookup resolves a dotted path, trying the structured tree first and
// then the flat set (first segment as section, remainder as key).
func (c *Config) lookup(path string) (hit, bool) {
	if v, ok := c.lookupStructured(path); ok {
		return hit{value: v, raw: v.Text()}, true
	}
	if parts := strings.SplitN(path, ".", 2); len(parts) == 2 && c.flat != nil {
		if raw, ok := c.flat.Get(parts[0], parts[1]); ok {
			return hit{raw: raw, fromFlat: true}, true
		}
	}
	return hit{}, false
}

func (c *Config) lookupStructured(path string) (*settings.Value, bool) {
	node := c.doc
	for _, segment := range strings.Split(path, ".") {
		next, ok := node.Lookup(segment)
		if !ok {
			return nil, false
		}
		node = next
	}
	return node, true
}

// Has reports whether a path resolves in either layer.
func (c *Config) Has(path string) bool {
	_, ok := c.lookup(path)
	return ok
}

// String returns the scalar at path as a string.
func (c *Config) String(path string) (string, error) {
	h, ok := c.lookup(path)
	if !ok {
		return "", &MissingRequiredKeyError{Path: path}
	}
	if h.value != nil {
		switch h.value.Kind() {
		case settings.KindList, settings.KindMapping:
			return "", &TypeMismatchError{Path: path, Raw: h.value.Kind().String(), Expected: "string"}
		}
	}
	return h.raw, nil
}

// Path returns the value at path as an opaque filesystem path. No
// existence check is performed; that belongs to the I/O collaborator.
func (c *Config) Path(path string) (string, error) {
	return c.String(path)
}

// Float returns the value at path as a base-10 float.
func (c *Config) Float(path string) (float64, error) {
	h, ok := c.lookup(path)
	if !ok {
		return 0, &MissingRequiredKeyError{Path: path}
	}
	if h.value != nil && h.value.Kind() == settings.KindNumber {
		return h.value.Num(), nil
	}
	if h.value != nil && h.value.Kind() != settings.KindString {
		return 0, &TypeMismatchError{Path: path, Raw: h.raw, Expected: "number"}
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(h.raw), 64)
	if err != nil {
		return 0, &TypeMismatchError{Path: path, Raw: h.raw, Expected: "number"}
	}
	return n, nil
}

// Bool returns the value at path as a boolean. Only case-insensitive
// "true" and "false" are accepted.
func (c *Config) Bool(path string) (bool, error) {
	h, ok := c.lookup(path)
	if !ok {
		return false, &MissingRequiredKeyError{Path: path}
	}
	if h.value != nil && h.value.Kind() == settings.KindBool {
		return h.value.Bool(), nil
	}
	switch strings.ToLower(strings.TrimSpace(h.raw)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &TypeMismatchError{Path: path, Raw: h.raw, Expected: "boolean"}
}

// Date returns the value at path as a calendar date, applying the date
// convention of the layer the path resolved from.
func (c *Config) Date(path string) (time.Time, error) {
	h, ok := c.lookup(path)
	if !ok {
		return time.Time{}, &MissingRequiredKeyError{Path: path}
	}
	if h.value != nil && h.value.Kind() == settings.KindDate {
		return h.value.Date(), nil
	}
	layout := structuredDateLayout
	if h.fromFlat {
		layout = flatDateLayout
	}
	t, err := time.Parse(layout, strings.TrimSpace(h.raw))
	if err != nil {
		return time.Time{}, &TypeMismatchError{Path: path, Raw: h.raw, Expected: "date (" + layout + ")"}
	}
	return t, nil
}

// Enum returns the string at path after checking membership in the
// allowed set.
func (c *Config) Enum(path string, allowed []string) (string, error) {
	raw, err := c.String(path)
	if err != nil {
		return "", err
	}
	for _, candidate := range allowed {
		if raw == candidate {
			return raw, nil
		}
	}
	return "", &TypeMismatchError{
		Path:     path,
		Raw:      raw,
		Expected: fmt.Sprintf("one of [%s]", strings.Join(allowed, ", ")),
	}
}

// List returns the structured-layer list at path.
func (c *Config) List(path string) ([]*settings.Value, error) {
	h, ok := c.lookup(path)
	if !ok {
		return nil, &MissingRequiredKeyError{Path: path}
	}
	if h.value == nil || h.value.Kind() != settings.KindList {
		return nil, &TypeMismatchError{Path: path, Raw: h.raw, Expected: "list"}
	}
	return h.value.List(), nil
}

// Mapping returns the structured-layer mapping at path.
func (c *Config) Mapping(path string) (*settings.Value, error) {
	h, ok := c.lookup(path)
	if !ok {
		return nil, &MissingRequiredKeyError{Path: path}
	}
	if h.value == nil || h.value.Kind() != settings.KindMapping {
		return nil, &TypeMismatchError{Path: path, Raw: h.raw, Expected: "mapping"}
	}
	return h.value, nil
}

// StringList returns a structured-layer list whose elements are all
// scalars, as plain strings.
func (c *Config) StringList(path string) ([]string, error) {
	items, err := c.List(path)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(items))
	for i, item := range items {
		switch item.Kind() {
		case settings.KindList, settings.KindMapping:
			return nil, &TypeMismatchError{
				Path:     fmt.Sprintf("%s[%d]", path, i),
				Raw:      item.Kind().String(),
				Expected: "string",
			}
		}
		out[i] = item.Text()
	}
	return out, nil
}
