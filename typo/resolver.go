package typo

import "strings"

// Match is the outcome of a successful resolution: the template the
// request was corrected to, how far away it was, the parameter values
// bound along the way, and the concrete corrected path to dispatch or
// redirect to. The caller owns the returned value.
type Match struct {
	// Template is the catalog entry the request was corrected to.
	Template Template

	// Distance is the accumulated edit distance between the requested
	// path and the template, never above the configured tolerance.
	Distance int

	// Params maps parameter names to the request segments they bound.
	// Empty for static templates.
	Params map[string]string

	// Path is the corrected request path: template literals with bound
	// parameter values substituted in.
	Path string
}

// HasParams reports whether the matched template carries parameters.
// Redirect-based correction must be refused for such matches, since a
// redirect cannot convey the bound values to the client.
func (m *Match) HasParams() bool {
	return m.Template.HasParams
}

// Resolver finds the registered route closest to a requested path.
// A Resolver is stateless apart from its configuration: Resolve is a pure
// function of its inputs and is safe for concurrent use as long as the
// catalog snapshots passed in are not mutated.
type Resolver struct {
	cfg Config
}

// NewResolver returns a resolver with the given configuration.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Config returns the resolver's configuration.
func (rs *Resolver) Config() Config {
	return rs.cfg
}

// Resolve scores the requested path against every eligible catalog entry
// and returns the closest one within tolerance, or ok == false when no
// candidate is close enough. Resolution never fails with an error:
// malformed paths, empty catalogs, and templates without segments all
// simply score high or produce no candidate.
//
// Candidate selection, first success wins:
//
//  1. Entries are filtered by request method unless AllMethods is set.
//  2. With HandleParams on, parameterized templates are scanned for an
//     exact structural match first, so a genuine parameterized route is
//     never shadowed by a coincidentally closer static one.
//  3. Static templates are scanned by whole-path edit distance. The
//     first entry in catalog order to reach the minimum wins.
//  4. Parameterized templates are scanned segment-wise only when the
//     static scan found nothing within tolerance, and replace the static
//     candidate only at a strictly lower distance.
func (rs *Resolver) Resolve(path, method string, catalog *Catalog) (*Match, bool) {
	fold := !rs.cfg.CaseSensitive
	method = strings.ToUpper(method)
	request := splitRequest(path)
	requestPath := foldCase(joinRequest(request), fold)

	templates := catalog.Templates()

	// Exact structural pass: a parameterized route the request actually
	// hits short-circuits all distance scanning.
	if rs.cfg.HandleParams {
		for _, t := range templates {
			if !t.HasParams || !rs.eligible(t, method) {
				continue
			}
			if res, ok := exactStructural(request, t, fold); ok {
				return &Match{Template: t, Params: res.params, Path: res.path}, true
			}
		}
	}

	// Static pass: whole-path distance over non-parameterized templates.
	var best *Match
	bestDistance := 0
	for _, t := range templates {
		if t.HasParams || !rs.eligible(t, method) {
			continue
		}
		d := Distance(requestPath, foldCase(t.Path, fold))
		if best == nil || d < bestDistance {
			best = &Match{Template: t, Distance: d, Path: t.Path}
			bestDistance = d
		}
	}

	// Parameterized pass: runs only when the static pass left nothing
	// acceptable; a strictly lower distance takes over.
	if rs.cfg.HandleParams && (best == nil || bestDistance > rs.cfg.Tolerance) {
		for _, t := range templates {
			if !t.HasParams || !rs.eligible(t, method) {
				continue
			}
			res, ok := fuzzySegments(request, t, rs.cfg.Tolerance, fold)
			if !ok {
				continue
			}
			if best == nil || res.distance < bestDistance {
				best = &Match{
					Template: t,
					Distance: res.distance,
					Params:   res.params,
					Path:     res.path,
				}
				bestDistance = res.distance
			}
		}
	}

	if best == nil || best.Distance > rs.cfg.Tolerance {
		return nil, false
	}
	return best, true
}

// eligible reports whether a template is a candidate for the request
// method under the current configuration.
func (rs *Resolver) eligible(t Template, method string) bool {
	return rs.cfg.AllMethods || t.allowsMethod(method)
}

// splitRequest splits a request path into its non-empty segments.
func splitRequest(path string) []string {
	raw := strings.Split(path, "/")
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// joinRequest renders request segments back into a canonical path, so
// doubled or trailing slashes in the original request do not inflate the
// whole-path distance. An empty request collapses to the root path.
func joinRequest(segments []string) string {
	if len(segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(segments, "/")
}
