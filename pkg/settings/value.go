package settings

import (
	"time"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindDate
	KindList
	KindMapping
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindList:
		return "list"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed settings document. Scalars are typed
// during parsing where the syntax is unambiguous; everything else stays
// a string until a typed accessor asks for it. A Value is immutable once
// the parser returns it.
type Value struct {
	kind    Kind
	text    string // original scalar text, kept for diagnostics
	num     float64
	boolean bool
	date    time.Time
	list    []*Value
	entries []MapEntry
	line    int
	column  int
}

// MapEntry is one key/value pair of a mapping, in document order.
// Duplicate keys are preserved here even though keyed lookup is
// last-write-wins.
type MapEntry struct {
	Key   string
	Value *Value
}

// Kind returns the variant this value holds.
func (v *Value) Kind() Kind { return v.kind }

// Text returns the original scalar text as it appeared in the source.
// Empty for lists and mappings.
func (v *Value) Text() string { return v.text }

// Str returns the string form of a scalar value.
func (v *Value) Str() string { return v.text }

// Num returns the numeric form. Only meaningful for KindNumber.
func (v *Value) Num() float64 { return v.num }

// Bool returns the boolean form. Only meaningful for KindBool.
func (v *Value) Bool() bool { return v.boolean }

// Date returns the calendar date. Only meaningful for KindDate.
func (v *Value) Date() time.Time { return v.date }

// List returns the elements of a KindList value.
func (v *Value) List() []*Value {
	out := make([]*Value, len(v.list))
	copy(out, v.list)
	return out
}

// Entries returns the ordered key/value pairs of a KindMapping value,
// duplicates included. This is the access path for directive-like
// sections where repeated keys are intentional.
func (v *Value) Entries() []MapEntry {
	out := make([]MapEntry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Get returns the value for key in a mapping, or nil if absent. When a
// key is repeated at the same level the last occurrence wins.
func (v *Value) Get(key string) *Value {
	val, _ := v.Lookup(key)
	return val
}

// Lookup is Get with an explicit presence flag.
func (v *Value) Lookup(key string) (*Value, bool) {
	if v == nil || v.kind != KindMapping {
		return nil, false
	}
	var found *Value
	for _, e := range v.entries {
		if e.Key == key {
			found = e.Value
		}
	}
	return found, found != nil
}

// Line returns the 1-based source line the value started on.
func (v *Value) Line() int { return v.line }

// Column returns the 1-based source column the value started on.
func (v *Value) Column() int { return v.column }
