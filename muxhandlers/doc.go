// Package muxhandlers provides HTTP middleware for the mux router.
//
// TypoCorrectMiddleware transparently routes requests whose paths contain
// minor spelling errors to the closest registered route, instead of
// letting them fall through to a 404:
//
//	r := mux.NewRouter()
//	r.HandleFunc("/products", ProductsHandler).Methods(http.MethodGet)
//	r.HandleFunc("/users/{userId}", UserHandler).Methods(http.MethodGet)
//
//	cfg := muxhandlers.TypoCorrectConfig{Config: typo.DefaultConfig()}
//	h := muxhandlers.TypoCorrectMiddleware(r, cfg).Middleware(r)
//	http.ListenAndServe(":8080", h)
//
// With this in place, GET /produts serves the /products handler and
// GET /usrs/42 serves the /users/{userId} handler with userId bound to
// "42". Corrected responses carry the X-Typo-Correction header with a
// unique event ID.
//
// The matching itself lives in the typo package; this package only
// applies the side effects: probing the router, redirecting or
// rewriting, parameter injection, logging, and the bookkeeping that
// keeps a request from being corrected twice.
package muxhandlers
