package mux

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// matcher is the interface implemented by route matchers.
type matcher interface {
	Match(*http.Request, *RouteMatch) bool
}

// parentRoute is the interface implemented by types that can serve as
// a route's parent (Router or Route via subrouter).
type parentRoute interface {
	getNamedRoutes() map[string]*Route
	getTemplate() *pathTemplate
}

// Route stores information to match a request and build URLs.
type Route struct {
	parent      parentRoute
	handler     http.Handler
	matchers    []matcher
	tpl         *pathTemplate
	name        string
	err         error
	namedRoutes map[string]*Route
	buildOnly   bool

	// staticCtx caches the request context value for routes without
	// parameters, initialized on first dispatch.
	staticCtx     *routeContext
	staticCtxOnce sync.Once
}

// Match matches this route against the request.
func (r *Route) Match(req *http.Request, match *RouteMatch) bool {
	if r.err != nil {
		return false
	}

	var methodMismatch bool

	// Check all matchers.
	for _, m := range r.matchers {
		if !m.Match(req, match) {
			if _, ok := m.(methodMatcher); ok {
				methodMismatch = true
				continue
			}
			if match.MatchErr == ErrMethodMismatch {
				methodMismatch = true
				continue
			}
			return false
		}
	}

	// Check the path template.
	var vars map[string]string
	if r.tpl != nil {
		if r.tpl.hasParams {
			vars = make(map[string]string, len(r.tpl.segments))
		}
		if !r.tpl.match(match.pathSegments(req), vars) {
			return false
		}
	}

	// If method didn't match but everything else did, record the mismatch.
	if methodMismatch {
		match.MatchErr = ErrMethodMismatch
		return false
	}

	// If the handler is a Router (subrouter), delegate to it. Parameters
	// bound by a prefix template are merged only once the subrouter
	// reports a match, so a failed delegation leaves the match untouched.
	if r.handler != nil {
		if router, ok := r.handler.(*Router); ok {
			if !router.Match(req, match) {
				return false
			}
			mergeVars(match, vars)
			return true
		}
	}

	match.Route = r
	match.Handler = r.handler
	mergeVars(match, vars)

	return true
}

// mergeVars folds extracted parameter values into the match.
func mergeVars(match *RouteMatch, vars map[string]string) {
	if len(vars) == 0 {
		return
	}
	if match.Vars == nil {
		match.Vars = vars
		return
	}
	for k, v := range vars {
		match.Vars[k] = v
	}
}

// --- Matchers ---

// addMatcher adds a matcher to the route.
func (r *Route) addMatcher(m matcher) *Route {
	if r.err == nil {
		r.matchers = append(r.matchers, m)
	}
	return r
}

// addTemplateMatcher parses and attaches a path template, prepending the
// parent's template when the route lives under a subrouter so templates
// are always absolute.
func (r *Route) addTemplateMatcher(tpl string, prefix bool) error {
	if r.err != nil {
		return r.err
	}

	if r.parent != nil {
		if p := r.parent.getTemplate(); p != nil {
			tpl = strings.TrimRight(p.template, "/") + "/" + strings.TrimLeft(tpl, "/")
		}
	}

	parsed, err := parseTemplate(tpl, prefix)
	if err != nil {
		return err
	}
	r.tpl = parsed
	return nil
}

// Handler sets a handler for the route.
func (r *Route) Handler(handler http.Handler) *Route {
	if r.err == nil {
		r.handler = handler
	}
	return r
}

// HandlerFunc sets a handler function for the route.
func (r *Route) HandlerFunc(f func(http.ResponseWriter, *http.Request)) *Route {
	return r.Handler(http.HandlerFunc(f))
}

// GetHandler returns the handler for the route, if any.
func (r *Route) GetHandler() http.Handler {
	return r.handler
}

// Name sets the name for the route, used to build URLs.
// Returns an error if the name was already used.
func (r *Route) Name(name string) *Route {
	if r.name != "" {
		r.err = fmt.Errorf("mux: route already has name %q, can't set %q", r.name, name)
		return r
	}
	if r.err == nil {
		r.name = name
		if r.namedRoutes != nil {
			r.namedRoutes[name] = r
		}
	}
	return r
}

// GetName returns the name for the route, if any.
func (r *Route) GetName() string {
	return r.name
}

// Path adds a path matcher to the route per RFC 3986 Section 3.3.
// Templates consist of /-delimited segments; a segment written as {name}
// matches any single segment and binds it as a parameter:
//
//	r.Path("/users/{id}")
func (r *Route) Path(tpl string) *Route {
	r.err = r.addTemplateMatcher(tpl, false)
	return r
}

// PathPrefix adds a path prefix matcher to the route. Prefix templates
// match when their segments cover the leading segments of the request
// path, and are typically used to mount subrouters.
func (r *Route) PathPrefix(tpl string) *Route {
	r.err = r.addTemplateMatcher(tpl, true)
	return r
}

// Methods adds a method matcher to the route. Methods are matched against
// the request method token defined in RFC 9110 Section 9.
// Calling Methods multiple times replaces the previous method matcher.
func (r *Route) Methods(methods ...string) *Route {
	for i, m := range methods {
		methods[i] = strings.ToUpper(m)
	}
	// Remove existing method matchers to allow replacing via chained calls.
	filtered := r.matchers[:0]
	for _, m := range r.matchers {
		if _, ok := m.(methodMatcher); !ok {
			filtered = append(filtered, m)
		}
	}
	r.matchers = filtered
	return r.addMatcher(methodMatcher(methods))
}

// MatcherFunc adds a custom matcher function to the route.
func (r *Route) MatcherFunc(f MatcherFunc) *Route {
	return r.addMatcher(f)
}

// BuildOnly sets the route to be used only for URL building,
// not for request matching.
func (r *Route) BuildOnly() *Route {
	r.buildOnly = true
	return r
}

// IsBuildOnly reports whether the route is used only for URL building.
func (r *Route) IsBuildOnly() bool {
	return r.buildOnly
}

// Subrouter creates a new Router for the route.
func (r *Route) Subrouter() *Router {
	router := &Router{
		parent:      r,
		namedRoutes: r.namedRoutes,
	}
	r.handler = router
	return router
}

// --- URL building ---

// URLPath builds the path part of the URL per RFC 3986 Section 3.3.
// It accepts a sequence of key/value pairs for the route parameters.
func (r *Route) URLPath(pairs ...string) (*url.URL, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.tpl == nil {
		return nil, errors.New("mux: route doesn't have a path")
	}
	values, err := mapFromPairsToString(pairs...)
	if err != nil {
		return nil, err
	}
	path, err := r.tpl.url(values)
	if err != nil {
		return nil, err
	}
	return &url.URL{Path: path}, nil
}

// --- Inspection ---

// GetPathTemplate returns the canonical template for the route path,
// if defined.
func (r *Route) GetPathTemplate() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.tpl == nil {
		return "", errors.New("mux: route doesn't have a path")
	}
	return r.tpl.template, nil
}

// GetMethods returns the methods the route matches against.
func (r *Route) GetMethods() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, m := range r.matchers {
		if methods, ok := m.(methodMatcher); ok {
			return []string(methods), nil
		}
	}
	return nil, errors.New("mux: route doesn't have methods")
}

// GetVarNames returns the parameter names for the route in template order.
func (r *Route) GetVarNames() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.tpl == nil {
		return nil, errors.New("mux: route doesn't have a path")
	}
	return r.tpl.paramNames(), nil
}

// GetError returns any error that was set on the route.
func (r *Route) GetError() error {
	return r.err
}

// --- parentRoute interface implementation ---

func (r *Route) getNamedRoutes() map[string]*Route {
	return r.namedRoutes
}

func (r *Route) getTemplate() *pathTemplate {
	return r.tpl
}

// --- Internal matchers ---

// methodMatcher matches the request method token (RFC 9110 Section 9)
// against a list of allowed methods.
type methodMatcher []string

func (m methodMatcher) Match(r *http.Request, _ *RouteMatch) bool {
	return matchInArray([]string(m), r.Method)
}
