// Package flatconf handles the flat section-and-key settings layer used
// by the hydrological model: bracketed section headers, key = value
// assignments, and $(key) / $(Section:key) placeholders resolved over a
// dependency graph.
package flatconf

import (
	"regexp"
	"strings"
)

// Ref identifies one (section, key) slot in a Set.
type Ref struct {
	Section string
	Key     string
}

func (r Ref) String() string { return r.Section + "." + r.Key }

// Section is a named, ordered collection of raw key/value pairs. Key
// order is preserved for diagnostics only; resolution never depends on
// it. Reassigning a key inside one section overwrites the earlier value.
type Section struct {
	Name   string
	keys   []string
	values map[string]string
	lines  map[string]int
}

func newSection(name string) *Section {
	return &Section{
		Name:   name,
		values: make(map[string]string),
		lines:  make(map[string]int),
	}
}

// Keys returns the section's keys in first-assignment order.
func (s *Section) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Get returns the raw value for key.
func (s *Section) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Line returns the source line key was first assigned on, or 0 when the
// key came from a merge rather than a parsed file.
func (s *Section) Line(key string) int { return s.lines[key] }

func (s *Section) set(key, value string, line int) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
		s.lines[key] = line
	}
	s.values[key] = value
}

// Set is an ordered collection of sections, one per parsed flat source
// (or the result of merging several).
type Set struct {
	sections []*Section
	index    map[string]*Section
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{index: make(map[string]*Section)}
}

// Sections returns the sections in declaration order.
func (s *Set) Sections() []*Section {
	out := make([]*Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// Section returns the named section.
func (s *Set) Section(name string) (*Section, bool) {
	sec, ok := s.index[name]
	return sec, ok
}

// Get returns the raw value at (section, key).
func (s *Set) Get(section, key string) (string, bool) {
	sec, ok := s.index[section]
	if !ok {
		return "", false
	}
	return sec.Get(key)
}

// Len returns the total number of keys across all sections.
func (s *Set) Len() int {
	n := 0
	for _, sec := range s.sections {
		n += len(sec.keys)
	}
	return n
}

func (s *Set) section(name string) *Section {
	if sec, ok := s.index[name]; ok {
		return sec
	}
	sec := newSection(name)
	s.sections = append(s.sections, sec)
	s.index[name] = sec
	return sec
}

func (s *Set) set(section, key, value string, line int) {
	s.section(section).set(key, value, line)
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	out := NewSet()
	for _, sec := range s.sections {
		osec := out.section(sec.Name)
		for _, key := range sec.keys {
			osec.set(key, sec.values[key], sec.lines[key])
		}
	}
	return out
}

// Equal reports whether two sets hold the same sections, keys and
// values in the same order.
func (s *Set) Equal(o *Set) bool {
	if len(s.sections) != len(o.sections) {
		return false
	}
	for i, sec := range s.sections {
		osec := o.sections[i]
		if sec.Name != osec.Name || len(sec.keys) != len(osec.keys) {
			return false
		}
		for j, key := range sec.keys {
			if key != osec.keys[j] || sec.values[key] != osec.values[key] {
				return false
			}
		}
	}
	return true
}

var placeholderPattern = regexp.MustCompile(`\$\(([^()]*)\)`)

// Placeholders returns the references embedded in a raw value, in
// textual order. Local references carry owner as their section.
func Placeholders(raw, owner string) []Ref {
	var refs []Ref
	for _, m := range placeholderPattern.FindAllStringSubmatch(raw, -1) {
		refs = append(refs, parseRef(m[1], owner))
	}
	return refs
}

func parseRef(inner, owner string) Ref {
	if i := strings.Index(inner, ":"); i >= 0 {
		return Ref{
			Section: strings.TrimSpace(inner[:i]),
			Key:     strings.TrimSpace(inner[i+1:]),
		}
	}
	return Ref{Section: owner, Key: strings.TrimSpace(inner)}
}
