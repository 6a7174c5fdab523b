package flatconf

import (
	"fmt"
	"strings"
	"unicode"
)

// Parse turns flat section-and-key text into a Set. Placeholders inside
// values are recognized but not resolved; an unresolvable placeholder is
// not a parse error. The source name is only used in error messages.
func Parse(src []byte, source string) (*Set, error) {
	set := NewSet()
	var current *Section

	for lineno, line := range strings.Split(string(src), "\n") {
		lineno++ // 1-based
		text := strings.TrimSpace(line)
		if text == "" || text[0] == '#' || text[0] == ';' {
			continue
		}

		if text[0] == '[' {
			end := strings.Index(text, "]")
			if end < 0 {
				return nil, &ParseError{Source: source, Line: lineno, Msg: "unterminated section header"}
			}
			if rest := strings.TrimSpace(text[end+1:]); rest != "" && rest[0] != '#' && rest[0] != ';' {
				return nil, &ParseError{
					Source: source, Line: lineno,
					Msg: fmt.Sprintf("unexpected text %q after section header", rest),
				}
			}
			name := strings.TrimSpace(text[1:end])
			if name == "" {
				return nil, &ParseError{Source: source, Line: lineno, Msg: "empty section name"}
			}
			current = set.section(name)
			continue
		}

		eq := strings.Index(text, "=")
		if eq < 0 {
			return nil, &ParseError{
				Source: source, Line: lineno,
				Msg: fmt.Sprintf("expected key = value, got %q", text),
			}
		}
		key := strings.TrimSpace(text[:eq])
		if key == "" {
			return nil, &ParseError{Source: source, Line: lineno, Msg: "assignment with empty key"}
		}
		if current == nil {
			return nil, &ParseError{
				Source: source, Line: lineno,
				Msg: fmt.Sprintf("key %q assigned before any [Section] header", key),
			}
		}
		value := stripInlineComment(strings.TrimSpace(text[eq+1:]))
		current.set(key, value, lineno)
	}
	return set, nil
}

// stripInlineComment cuts a trailing "# ..." or "; ..." comment. The
// comment marker only counts when preceded by whitespace, so path
// values containing '#' mid-token survive.
func stripInlineComment(value string) string {
	for i, r := range value {
		if r != '#' && r != ';' {
			continue
		}
		if i == 0 {
			return ""
		}
		if unicode.IsSpace(rune(value[i-1])) {
			return strings.TrimRightFunc(value[:i], unicode.IsSpace)
		}
	}
	return value
}
