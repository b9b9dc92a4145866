package muxhandlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/typomux/typomux/mux"
	"github.com/typomux/typomux/typo"
)

// CorrectionHeader is the response header carrying the correction event
// ID on corrected requests, so they can be traced through access logs.
const CorrectionHeader = "X-Typo-Correction"

// correctedKey marks a request that has already been through typo
// correction, preventing a second pass when the corrected path still
// fails to match.
type correctedKey struct{}

// WasCorrected reports whether the request has already been rewritten by
// TypoCorrectMiddleware.
func WasCorrected(r *http.Request) bool {
	corrected, _ := r.Context().Value(correctedKey{}).(bool)
	return corrected
}

// TypoCorrectConfig configures the typo correction middleware behaviour.
type TypoCorrectConfig struct {
	// Config is the correction policy handed to the resolver.
	// The zero value disables almost everything; start from
	// typo.DefaultConfig.
	Config typo.Config

	// Catalog supplies the catalog snapshot to resolve against. It is
	// called once per corrected-candidate request, so hosts that change
	// their route set can swap in a freshly rebuilt snapshot at any
	// time. When nil, a catalog is built from the router on first use
	// and kept for the lifetime of the middleware.
	Catalog func() *typo.Catalog

	// LogFunc is invoked once per applied correction when
	// Config.LogCorrections is set. It receives the original request,
	// the match that was applied, and the correction event ID.
	LogFunc func(r *http.Request, match *typo.Match, eventID string)
}

// TypoCorrectMiddleware returns a middleware that corrects minor spelling
// errors in request paths against the given router's registered routes.
// Wrap the router itself with it:
//
//	r := mux.NewRouter()
//	r.HandleFunc("/products", handler).Methods(http.MethodGet)
//	h := muxhandlers.TypoCorrectMiddleware(r, cfg).Middleware(r)
//	http.ListenAndServe(":8080", h)
//
// Requests the router already matches pass through untouched, as do
// method mismatches (a 405 with its Allow header is more useful than a
// correction to a different route) and requests that have already been
// corrected once. For everything else the resolver picks the closest
// route within tolerance; if it finds one, the middleware either sends a
// 302 redirect to the corrected path (Config.RedirectOnCorrect, refused
// for matches carrying parameters) or rewrites the request path, binds
// the extracted parameters, and dispatches through the wrapped handler
// exactly once. No acceptable match means the request proceeds to its
// normal 404.
func TypoCorrectMiddleware(router *mux.Router, cfg TypoCorrectConfig) mux.MiddlewareFunc {
	resolver := typo.NewResolver(cfg.Config)

	snapshot := cfg.Catalog
	if snapshot == nil {
		var once sync.Once
		var built *typo.Catalog
		snapshot = func() *typo.Catalog {
			once.Do(func() {
				built = typo.CatalogFromRouter(router)
			})
			return built
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if WasCorrected(r) {
				next.ServeHTTP(w, r)
				return
			}

			var probe mux.RouteMatch
			if router.Match(r, &probe) || probe.MatchErr == mux.ErrMethodMismatch {
				next.ServeHTTP(w, r)
				return
			}

			match, ok := resolver.Resolve(r.URL.Path, r.Method, snapshot())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			eventID := uuid.NewString()
			w.Header().Set(CorrectionHeader, eventID)
			if cfg.Config.LogCorrections && cfg.LogFunc != nil {
				cfg.LogFunc(r, match, eventID)
			}

			// A redirect cannot carry bound parameter values to the
			// client, so parameterized matches always rewrite in place.
			if cfg.Config.RedirectOnCorrect && !match.HasParams() {
				http.Redirect(w, r, match.Path, http.StatusFound)
				return
			}

			u := *r.URL
			u.Path = match.Path
			u.RawPath = ""
			corrected := r.Clone(context.WithValue(r.Context(), correctedKey{}, true))
			corrected.URL = &u
			if len(match.Params) > 0 {
				corrected = mux.SetURLVars(corrected, match.Params)
			}
			next.ServeHTTP(w, corrected)
		})
	}
}
