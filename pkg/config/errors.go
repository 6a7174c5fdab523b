package config

import (
	"fmt"
	"sort"
	"strings"
)

// TypeMismatchError reports a value that could not be coerced to the
// requested type.
type TypeMismatchError struct {
	Path     string
	Raw      string
	Expected string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: cannot interpret %q as %s", e.Path, e.Raw, e.Expected)
}

// MissingRequiredKeyError reports a key path absent from the final
// merged configuration.
type MissingRequiredKeyError struct {
	Path string
}

func (e *MissingRequiredKeyError) Error() string {
	return fmt.Sprintf("%s: required key is not defined", e.Path)
}

// ValidationError reports a violated cross-field invariant, naming the
// relation and every value taking part in it.
type ValidationError struct {
	Relation string
	Values   map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Values))
	for name := range e.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = fmt.Sprintf("%s=%s", name, e.Values[name])
	}
	return fmt.Sprintf("validation failed: %s (%s)", e.Relation, strings.Join(pairs, ", "))
}
