package typo

import (
	"strings"

	"github.com/typomux/typomux/mux"
)

// Segment is one /-delimited component of a route template: either
// literal text or a named parameter.
type Segment struct {
	// Name is the literal text, or the parameter name when Param is true.
	Name string
	// Param marks a parameter segment, which matches any single request
	// segment and binds its value.
	Param bool
}

// Template is one registered route the resolver can correct a request to.
// Templates are immutable once built; rebuild the catalog rather than
// mutating entries when the host's route set changes.
type Template struct {
	// Methods is the set of HTTP methods the route responds to, uppercase.
	// An empty set means the route responds to any method.
	Methods []string

	// Path is the canonical template string, e.g. "/users/{userId}".
	Path string

	// Segments is the parsed form of Path.
	Segments []Segment

	// HasParams indicates at least one parameter segment.
	HasParams bool
}

// allowsMethod reports whether the template responds to the given
// uppercase method. Templates without an explicit method set respond to
// every method.
func (t Template) allowsMethod(method string) bool {
	if len(t.Methods) == 0 {
		return true
	}
	for _, m := range t.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// ParseTemplate builds a Template from a method set and a path template
// string. Both {name} and :name parameter syntaxes are understood, so
// catalogs can be built against routers that use either convention.
// Parsing is lenient: it never fails, and empty segments from leading,
// trailing, or doubled slashes are discarded.
func ParseTemplate(methods []string, path string) Template {
	segments := parseSegments(path)

	upper := make([]string, 0, len(methods))
	for _, m := range methods {
		upper = append(upper, strings.ToUpper(m))
	}

	hasParams := false
	for _, s := range segments {
		if s.Param {
			hasParams = true
			break
		}
	}

	return Template{
		Methods:   upper,
		Path:      joinTemplate(segments),
		Segments:  segments,
		HasParams: hasParams,
	}
}

// parseSegments splits a template path into segments, recognizing both
// brace and colon parameter markers.
func parseSegments(path string) []Segment {
	raw := strings.Split(path, "/")
	segments := make([]Segment, 0, len(raw))
	for _, s := range raw {
		if s == "" {
			continue
		}
		switch {
		case strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") && len(s) > 2:
			segments = append(segments, Segment{Name: s[1 : len(s)-1], Param: true})
		case strings.HasPrefix(s, ":") && len(s) > 1:
			segments = append(segments, Segment{Name: s[1:], Param: true})
		default:
			segments = append(segments, Segment{Name: s})
		}
	}
	return segments
}

// joinTemplate renders segments back into a canonical template string
// using the brace parameter syntax.
func joinTemplate(segments []Segment) string {
	if len(segments) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		if s.Param {
			b.WriteByte('{')
			b.WriteString(s.Name)
			b.WriteByte('}')
		} else {
			b.WriteString(s.Name)
		}
	}
	return b.String()
}

// Catalog is an immutable snapshot of the host's registered routes,
// flattened into absolute templates. Duplicate entries are tolerated and
// scanned as-is. Concurrent resolutions may share a snapshot freely as
// long as nothing mutates it; rebuild a fresh catalog when the host's
// route set changes.
type Catalog struct {
	templates []Template
}

// NewCatalog builds a catalog from the given templates, preserving their
// order. Catalog order determines tie-breaking between equally distant
// candidates, so keep it stable across rebuilds when reproducibility
// matters.
func NewCatalog(templates ...Template) *Catalog {
	return &Catalog{templates: templates}
}

// Templates returns the catalog entries in registration order.
// The returned slice must not be modified.
func (c *Catalog) Templates() []Template {
	if c == nil {
		return nil
	}
	return c.templates
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.templates)
}

// CatalogFromRouter flattens a router's route tree into a catalog.
// Subrouter mount points are skipped — their child routes already carry
// absolute templates. Routes without a path, build-only routes, and
// routes with registration errors are skipped as well.
func CatalogFromRouter(r *mux.Router) *Catalog {
	var templates []Template

	// The walk cannot fail: the walk function below never returns an
	// error and SkipRouter is never used.
	_ = r.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		if route.GetError() != nil || route.IsBuildOnly() {
			return nil
		}
		if _, ok := route.GetHandler().(*mux.Router); ok {
			return nil
		}
		tpl, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = nil
		}
		templates = append(templates, ParseTemplate(methods, tpl))
		return nil
	})

	return NewCatalog(templates...)
}
