package flatconf

import (
	"strings"
)

// Interpolate returns a new Set in which every placeholder has been
// substituted with its referent's fully resolved value. Evaluation is
// memoized recursive descent over the (section, key) dependency graph,
// so declaration order in the source text never affects the result and
// forward references are fine. Interpolating an already resolved set is
// a no-op. The receiver is never mutated.
func (s *Set) Interpolate() (*Set, error) {
	r := &resolver{
		set:      s,
		resolved: make(map[Ref]string),
		active:   make(map[Ref]bool),
	}
	out := NewSet()
	for _, sec := range s.sections {
		osec := out.section(sec.Name)
		for _, key := range sec.keys {
			value, err := r.resolve(Ref{Section: sec.Name, Key: key})
			if err != nil {
				return nil, err
			}
			osec.set(key, value, sec.lines[key])
		}
	}
	return out, nil
}

type resolver struct {
	set      *Set
	resolved map[Ref]string
	active   map[Ref]bool
	stack    []Ref
}

func (r *resolver) resolve(node Ref) (string, error) {
	if v, ok := r.resolved[node]; ok {
		return v, nil
	}
	if r.active[node] {
		return "", r.cycle(node)
	}
	raw, _ := r.set.Get(node.Section, node.Key)

	r.active[node] = true
	r.stack = append(r.stack, node)
	value, err := r.expand(node, raw)
	r.stack = r.stack[:len(r.stack)-1]
	delete(r.active, node)

	if err != nil {
		return "", err
	}
	r.resolved[node] = value
	return value, nil
}

// expand substitutes each placeholder in raw with its referent's
// resolved value. Substitution is purely textual; typing happens later,
// in the accessor layer.
func (r *resolver) expand(owner Ref, raw string) (string, error) {
	matches := placeholderPattern.FindAllStringSubmatchIndex(raw, -1)
	if matches == nil {
		return raw, nil
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(raw[last:m[0]])
		target := parseRef(raw[m[2]:m[3]], owner.Section)
		if _, ok := r.set.Get(target.Section, target.Key); !ok {
			return "", &UnresolvedReferenceError{From: owner, Target: target}
		}
		value, err := r.resolve(target)
		if err != nil {
			return "", err
		}
		b.WriteString(value)
		last = m[1]
	}
	b.WriteString(raw[last:])
	return b.String(), nil
}

func (r *resolver) cycle(node Ref) error {
	start := 0
	for i, ref := range r.stack {
		if ref == node {
			start = i
			break
		}
	}
	chain := make([]Ref, 0, len(r.stack)-start+1)
	chain = append(chain, r.stack[start:]...)
	chain = append(chain, node)
	return &CyclicReferenceError{Chain: chain}
}
