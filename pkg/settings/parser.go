package settings

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ParseError reports malformed structured-settings syntax, carrying
// enough position information to locate the offending token.
type ParseError struct {
	Source string
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.Source, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Msg)
}

var calendarDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Parse turns structured settings text into a Value tree. The source
// name is only used in error messages. An empty document parses to an
// empty mapping.
func Parse(src []byte, source string) (*Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, &ParseError{Source: source, Msg: err.Error()}
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return &Value{kind: KindMapping}, nil
	}
	return convert(root.Content[0], source)
}

func convert(node *yaml.Node, source string) (*Value, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return convert(node.Alias, source)
	case yaml.MappingNode:
		v := &Value{kind: KindMapping, line: node.Line, column: node.Column}
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, &ParseError{
					Source: source, Line: keyNode.Line, Column: keyNode.Column,
					Msg: "mapping key must be a scalar",
				}
			}
			val, err := convert(valNode, source)
			if err != nil {
				return nil, err
			}
			v.entries = append(v.entries, MapEntry{Key: keyNode.Value, Value: val})
		}
		return v, nil
	case yaml.SequenceNode:
		v := &Value{kind: KindList, line: node.Line, column: node.Column}
		for _, item := range node.Content {
			elem, err := convert(item, source)
			if err != nil {
				return nil, err
			}
			v.list = append(v.list, elem)
		}
		return v, nil
	case yaml.ScalarNode:
		return convertScalar(node, source)
	default:
		return nil, &ParseError{
			Source: source, Line: node.Line, Column: node.Column,
			Msg: fmt.Sprintf("unsupported node kind %d", node.Kind),
		}
	}
}

func convertScalar(node *yaml.Node, source string) (*Value, error) {
	v := &Value{text: node.Value, line: node.Line, column: node.Column}
	switch node.Tag {
	case "!!bool":
		switch strings.ToLower(node.Value) {
		case "true":
			v.kind, v.boolean = KindBool, true
		case "false":
			v.kind, v.boolean = KindBool, false
		default:
			return nil, &ParseError{
				Source: source, Line: node.Line, Column: node.Column,
				Msg: fmt.Sprintf("unparseable boolean literal %q", node.Value),
			}
		}
	case "!!int", "!!float":
		n, err := parseNumber(node.Value)
		if err != nil {
			return nil, &ParseError{
				Source: source, Line: node.Line, Column: node.Column,
				Msg: fmt.Sprintf("unparseable number literal %q", node.Value),
			}
		}
		v.kind, v.num = KindNumber, n
	case "!!timestamp":
		d, err := parseCalendar(node.Value)
		if err != nil {
			return nil, &ParseError{
				Source: source, Line: node.Line, Column: node.Column,
				Msg: fmt.Sprintf("unparseable date literal %q", node.Value),
			}
		}
		v.kind, v.date = KindDate, d
	case "!!null":
		v.kind, v.text = KindString, ""
	default:
		// Plain scalars shaped like calendar dates are typed as dates;
		// quoted scalars always stay strings.
		if node.Style == 0 && calendarDate.MatchString(node.Value) {
			d, err := parseCalendar(node.Value)
			if err != nil {
				return nil, &ParseError{
					Source: source, Line: node.Line, Column: node.Column,
					Msg: fmt.Sprintf("impossible calendar date %q", node.Value),
				}
			}
			v.kind, v.date = KindDate, d
			return v, nil
		}
		v.kind = KindString
	}
	return v, nil
}

func parseNumber(s string) (float64, error) {
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n, nil
	}
	// Hex and octal integer forms are valid YAML but not float syntax.
	i, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, err
	}
	return float64(i), nil
}

func parseCalendar(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
