package mux

import (
	"fmt"
	"strings"
)

// segment is one /-delimited component of a path template
// (RFC 3986 Section 3.3). A segment is either literal text or a named
// parameter written as {name}.
type segment struct {
	name  string
	param bool
}

// pathTemplate stores a parsed path template and metadata about it.
type pathTemplate struct {
	// template is the canonical template string, rebuilt from the
	// parsed segments.
	template string
	// segments are the parsed /-delimited components, empty components
	// from leading, trailing, or doubled slashes discarded.
	segments []segment
	// prefix indicates a prefix match (mount point), where the template
	// only needs to cover the leading request segments.
	prefix bool
	// hasParams indicates at least one parameter segment.
	hasParams bool
}

// parseTemplate parses a path template such as "/users/{id}/posts" into
// its segments. Parameter names must be non-empty and unique within the
// template. Braces are only understood when they wrap a whole segment.
func parseTemplate(tpl string, prefix bool) (*pathTemplate, error) {
	raw := strings.Split(tpl, "/")
	segments := make([]segment, 0, len(raw))
	seen := make(map[string]bool)
	hasParams := false

	for _, s := range raw {
		if s == "" {
			continue
		}
		if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
			name := s[1 : len(s)-1]
			if name == "" {
				return nil, fmt.Errorf("mux: missing parameter name in %q from %q", s, tpl)
			}
			if strings.ContainsAny(name, "{}") {
				return nil, fmt.Errorf("mux: unbalanced braces in %q", tpl)
			}
			if seen[name] {
				return nil, fmt.Errorf("mux: duplicated route parameter %q", name)
			}
			seen[name] = true
			segments = append(segments, segment{name: name, param: true})
			hasParams = true
			continue
		}
		if strings.ContainsAny(s, "{}") {
			return nil, fmt.Errorf("mux: unbalanced braces in %q", tpl)
		}
		segments = append(segments, segment{name: s})
	}

	return &pathTemplate{
		template:  canonicalTemplate(segments),
		segments:  segments,
		prefix:    prefix,
		hasParams: hasParams,
	}, nil
}

// canonicalTemplate rebuilds the template string from parsed segments.
func canonicalTemplate(segments []segment) string {
	if len(segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		if s.param {
			b.WriteByte('{')
			b.WriteString(s.name)
			b.WriteByte('}')
		} else {
			b.WriteString(s.name)
		}
	}
	return b.String()
}

// match reports whether the given request path segments satisfy the
// template. On success the bound parameter values are written into dst,
// which may be nil when the template has no parameters.
func (t *pathTemplate) match(path []string, dst map[string]string) bool {
	if t.prefix {
		if len(path) < len(t.segments) {
			return false
		}
	} else if len(path) != len(t.segments) {
		return false
	}

	for i, s := range t.segments {
		if !s.param && s.name != path[i] {
			return false
		}
	}

	if t.hasParams && dst != nil {
		for i, s := range t.segments {
			if s.param {
				dst[s.name] = path[i]
			}
		}
	}
	return true
}

// paramNames returns the parameter names in template order.
func (t *pathTemplate) paramNames() []string {
	var names []string
	for _, s := range t.segments {
		if s.param {
			names = append(names, s.name)
		}
	}
	return names
}

// url builds a concrete path from the template and the given parameter
// values. Returns an error if a parameter value is missing or would span
// multiple segments.
func (t *pathTemplate) url(values map[string]string) (string, error) {
	if len(t.segments) == 0 {
		return "/", nil
	}
	var b strings.Builder
	for _, s := range t.segments {
		b.WriteByte('/')
		if !s.param {
			b.WriteString(s.name)
			continue
		}
		v, ok := values[s.name]
		if !ok {
			return "", fmt.Errorf("mux: missing route parameter %q", s.name)
		}
		if strings.Contains(v, "/") {
			return "", fmt.Errorf("mux: parameter %q value %q contains a slash", s.name, v)
		}
		b.WriteString(v)
	}
	return b.String(), nil
}

// splitPath splits a request path into its non-empty /-delimited segments.
// An empty or all-slash path yields an empty slice.
func splitPath(p string) []string {
	raw := strings.Split(p, "/")
	segments := raw[:0]
	for _, s := range raw {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
