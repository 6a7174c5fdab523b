package flatconf

import (
	"fmt"
	"strings"
)

// ParseError reports malformed flat-settings syntax.
type ParseError struct {
	Source string
	Line   int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
}

// UnresolvedReferenceError reports a placeholder whose target section
// or key does not exist in the merged set.
type UnresolvedReferenceError struct {
	From   Ref
	Target Ref
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference: %s refers to %s, which is not defined", e.From, e.Target)
}

// CyclicReferenceError reports a placeholder cycle. Chain holds the
// nodes in evaluation order, ending with the re-entered node.
type CyclicReferenceError struct {
	Chain []Ref
}

func (e *CyclicReferenceError) Error() string {
	parts := make([]string, len(e.Chain))
	for i, r := range e.Chain {
		parts[i] = r.String()
	}
	return "cyclic reference: " + strings.Join(parts, " -> ")
}
