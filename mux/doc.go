// Package mux implements a request router and dispatcher for matching
// incoming HTTP requests to their respective handler functions.
//
// Routing is segment-based: templates and request paths are split on "/"
// (RFC 3986 Section 3.3) and compared component by component. A template
// segment written as {name} matches any single path segment and binds it
// as a parameter. Only literal and parameter segments are understood,
// which keeps every registered route introspectable — the typo package
// relies on this to build its correction catalog.
//
// # Router
//
// Create a new router and register handlers:
//
//	r := mux.NewRouter()
//	r.HandleFunc("/articles/{category}/{id}", ArticleHandler)
//	r.HandleFunc("/products/{key}", ProductHandler)
//	http.Handle("/", r)
//
// # Path Parameters
//
// Parameters are extracted and stored in the request context, accessible
// via the Vars function:
//
//	vars := mux.Vars(r)
//	category := vars["category"]
//
// VarGet returns a single parameter by name and a boolean indicating
// whether it exists:
//
//	id, ok := mux.VarGet(r, "id")
//
// # Matchers
//
// Routes support method matchers and custom matcher functions:
//
//	r.HandleFunc("/users", handler).Methods(http.MethodGet, http.MethodPost)
//
//	r.HandleFunc("/custom", handler).MatcherFunc(func(r *http.Request, rm *mux.RouteMatch) bool {
//	    return r.Header.Get("X-Custom") != ""
//	})
//
// # Subrouters
//
// Subrouters group routes under a common path prefix. A subrouter's
// templates are absolute: the mount prefix is prepended at registration
// time, so walking the tree yields full paths:
//
//	s := r.PathPrefix("/api").Subrouter()
//	s.HandleFunc("/users", UsersHandler)
//
// # Error Handling
//
// NotFoundHandler is called when no route matches a request. If nil,
// http.NotFoundHandler() is used (404 Not Found per RFC 9110 Section
// 15.5.5). MethodNotAllowedHandler is called when a route matches the
// path but not the method; the Allow header is always set before it is
// invoked, per RFC 9110 Section 15.5.6.
//
// # Route Matching
//
// Use Router.Match to test whether a request matches any registered route
// without dispatching it:
//
//	var match mux.RouteMatch
//	if r.Match(req, &match) {
//	    // match.Route, match.Handler, match.Vars are populated
//	}
//
// The RouteMatch.MatchErr field indicates the type of match failure:
// ErrMethodMismatch for 405 errors and ErrNotFound for 404 errors.
//
// # Middleware
//
// Middleware can be added to a router or subrouter to wrap matched
// handlers:
//
//	r.Use(mux.MiddlewareFunc(loggingMiddleware))
//
// # URL Building
//
// Named routes support reverse path building:
//
//	r.HandleFunc("/articles/{category}/{id}", handler).Name("article")
//	u, err := r.Get("article").URLPath("category", "tech", "id", "42")
//
// # Route Inspection
//
// Routes expose methods to inspect their configuration:
//
//	tpl, _ := route.GetPathTemplate() // e.g. "/articles/{category}/{id}"
//	methods, _ := route.GetMethods()  // e.g. ["GET", "POST"]
//	vars, _ := route.GetVarNames()    // e.g. ["category", "id"]
//
// # Walking Routes
//
// Walk traverses the router and all its subrouters, calling a function for
// each registered route. Return SkipRouter from the walk function to skip
// descending into a subrouter:
//
//	r.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
//	    tpl, _ := route.GetPathTemplate()
//	    fmt.Println(tpl)
//	    return nil
//	})
//
// # Path Cleaning
//
// By default, the router cleans request paths by removing dot segments per
// RFC 3986 Section 5.2.4. SkipClean disables this behavior:
//
//	r.SkipClean(true)
package mux
