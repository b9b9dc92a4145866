// Package typo implements the route-matching engine behind typo-tolerant
// routing: given a requested path that matched nothing, it finds the
// registered route closest to what the client probably meant.
//
// The engine is pure computation. It performs no I/O, holds no locks, and
// keeps no state between calls; everything it needs — the requested path,
// the HTTP method, an immutable catalog snapshot, and a configuration —
// is passed in, and everything it produces is returned. Applying the
// correction (redirecting, rewriting, logging) is the caller's job; the
// muxhandlers package provides a ready-made middleware for it.
//
// # Catalog
//
// A Catalog is a flat snapshot of the routes a request may be corrected
// to. Build one by hand from templates:
//
//	catalog := typo.NewCatalog(
//	    typo.ParseTemplate([]string{"GET"}, "/products"),
//	    typo.ParseTemplate([]string{"GET"}, "/users/{userId}"),
//	)
//
// or flatten a router's tree, nested subrouters included:
//
//	catalog := typo.CatalogFromRouter(r)
//
// Both {name} and :name parameter syntaxes are accepted. Catalogs are
// immutable: rebuild a fresh snapshot when the route set changes, and
// let in-flight resolutions finish on whichever snapshot they hold.
//
// # Resolution
//
// A Resolver scores the requested path against every eligible catalog
// entry and picks the closest one within tolerance:
//
//	rs := typo.NewResolver(typo.DefaultConfig())
//	if m, ok := rs.Resolve("/produts", "GET", catalog); ok {
//	    // m.Path == "/products", m.Distance == 1
//	}
//
// Parameterized templates that the request matches structurally — same
// segment count, identical literals, parameters binding the rest — win
// immediately at distance zero:
//
//	m, _ := rs.Resolve("/users/42", "GET", catalog)
//	// m.Path == "/users/42", m.Params["userId"] == "42"
//
// Otherwise static routes are scanned by whole-path edit distance, and
// parameterized routes segment by segment: parameters match anything at
// no cost, literals cost their edit distance, and any single literal
// farther than the tolerance disqualifies its template outright.
//
// # Distance
//
// Distance is a plain Levenshtein edit distance, exported because the
// metric is useful on its own:
//
//	typo.Distance("products", "produts") // 1
//
// # Configuration
//
// Config is a value, immutable per resolver. DefaultConfig gives
// tolerance 2, case-insensitive matching, method-scoped candidates, and
// parameter handling on. ParseConfig reads a partial YAML document over
// those defaults:
//
//	cfg, err := typo.ParseConfig(data)
package typo
