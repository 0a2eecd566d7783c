package scaffold

import (
	"bytes"
	"sort"
	"strings"
)

// Placeholder delimiters. A placeholder is the open delimiter, an identifier
// ([a-z0-9_]+), and the close delimiter with nothing in between; anything
// else, including "{{ name }}" with inner spaces, is literal text. This keeps
// generated bodies that themselves contain Jinja expressions intact.
const (
	tokenOpen  = "{{"
	tokenClose = "}}"
)

// Render substitutes bindings into the spec's template body and returns the
// final content. Substitution is a single literal pass: binding values are
// inserted as-is and never re-scanned, so there is no nested evaluation and
// no expression language. Rendering performs no I/O.
//
// A placeholder with no matching binding fails with ErrUnresolvedPlaceholder.
// Under a correctly registered catalog the resolver's required-variable check
// makes that unreachable, so hitting it means an internal defect.
func Render(spec FileSpec, bindings Bindings) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(spec.Body))

	body := spec.Body
	for {
		open := strings.Index(body, tokenOpen)
		if open < 0 {
			buf.WriteString(body)
			return buf.Bytes(), nil
		}

		buf.WriteString(body[:open])
		rest := body[open+len(tokenOpen):]

		name, ok := leadingIdentifier(rest)
		if !ok {
			// Not a placeholder; emit the open delimiter literally and
			// continue scanning after it.
			buf.WriteString(tokenOpen)
			body = rest
			continue
		}

		value, bound := bindings[name]
		if !bound {
			return nil, newUnresolvedPlaceholderError(spec.Path, name)
		}

		buf.WriteString(value)
		body = rest[len(name)+len(tokenClose):]
	}
}

// leadingIdentifier reports whether s starts with "<identifier>}}" and
// returns the identifier.
func leadingIdentifier(s string) (string, bool) {
	i := 0
	for i < len(s) && isIdentChar(s[i]) {
		i++
	}
	if i == 0 || !strings.HasPrefix(s[i:], tokenClose) {
		return "", false
	}
	return s[:i], true
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_'
}

// scanVars returns the sorted set of placeholder names referenced by a
// template body. Used by catalog registration to verify declared variable
// sets against the actual bodies.
func scanVars(body string) []string {
	seen := make(map[string]bool)

	for {
		open := strings.Index(body, tokenOpen)
		if open < 0 {
			break
		}
		rest := body[open+len(tokenOpen):]

		name, ok := leadingIdentifier(rest)
		if !ok {
			body = rest
			continue
		}

		seen[name] = true
		body = rest[len(name)+len(tokenClose):]
	}

	vars := make([]string, 0, len(seen))
	for name := range seen {
		vars = append(vars, name)
	}
	sort.Strings(vars)
	return vars
}
