package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVars(t *testing.T) {
	t.Run("returns nil without route context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Nil(t, Vars(req))
	})

	t.Run("returns vars set via SetURLVars", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = SetURLVars(req, map[string]string{"id": "42"})
		assert.Equal(t, map[string]string{"id": "42"}, Vars(req))
	})
}

func TestVarGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = SetURLVars(req, map[string]string{"id": "42"})

	val, ok := VarGet(req, "id")
	assert.True(t, ok)
	assert.Equal(t, "42", val)

	_, ok = VarGet(req, "missing")
	assert.False(t, ok)
}

func TestCurrentRoute(t *testing.T) {
	t.Run("returns nil outside a handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Nil(t, CurrentRoute(req))
	})

	t.Run("survives SetURLVars", func(t *testing.T) {
		r := NewRouter()
		var got *Route
		r.HandleFunc("/x", func(_ http.ResponseWriter, req *http.Request) {
			req = SetURLVars(req, map[string]string{"k": "v"})
			got = CurrentRoute(req)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		require.NotNil(t, got)
	})
}

func TestStaticRouteContextReuse(t *testing.T) {
	// Static routes share one cached context value across dispatches.
	r := NewRouter()
	var first, second *Route
	r.HandleFunc("/static", func(_ http.ResponseWriter, req *http.Request) {
		if first == nil {
			first = CurrentRoute(req)
		} else {
			second = CurrentRoute(req)
		}
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/static", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/static", nil))
	require.NotNil(t, first)
	assert.Same(t, first, second)
}
