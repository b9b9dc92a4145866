package typo

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverResolve(t *testing.T) {
	t.Run("corrects a one-letter static typo", func(t *testing.T) {
		catalog := NewCatalog(
			ParseTemplate([]string{"GET"}, "/products"),
			ParseTemplate([]string{"GET"}, "/categories"),
		)
		rs := NewResolver(DefaultConfig())

		m, ok := rs.Resolve("/produts", "get", catalog)
		require.True(t, ok)
		assert.Equal(t, "/products", m.Path)
		assert.Equal(t, 1, m.Distance)
		assert.False(t, m.HasParams())
	})

	t.Run("exact static route resolves at distance zero", func(t *testing.T) {
		catalog := NewCatalog(ParseTemplate([]string{"GET"}, "/products"))
		rs := NewResolver(DefaultConfig())

		m, ok := rs.Resolve("/Products", "GET", catalog)
		require.True(t, ok)
		assert.Zero(t, m.Distance)
	})

	t.Run("corrects a typo into a parameterized route", func(t *testing.T) {
		catalog := NewCatalog(ParseTemplate([]string{"GET"}, "/users/{userId}"))
		rs := NewResolver(DefaultConfig())

		m, ok := rs.Resolve("/usrs/123", "GET", catalog)
		require.True(t, ok)
		assert.Equal(t, "/users/{userId}", m.Template.Path)
		assert.Equal(t, 1, m.Distance)
		assert.Equal(t, map[string]string{"userId": "123"}, m.Params)
		assert.Equal(t, "/users/123", m.Path)
		assert.True(t, m.HasParams())
	})

	t.Run("exact structural match short-circuits static scanning", func(t *testing.T) {
		// The static /users/abc route is closer by whole-path distance to
		// /users/abd than the rewritten parameter value, but a genuine
		// structural match on the parameterized route must win outright.
		catalog := NewCatalog(
			ParseTemplate([]string{"GET"}, "/users/abc"),
			ParseTemplate([]string{"GET"}, "/users/{userId}"),
		)
		rs := NewResolver(DefaultConfig())

		m, ok := rs.Resolve("/users/abd", "GET", catalog)
		require.True(t, ok)
		assert.Equal(t, "/users/{userId}", m.Template.Path)
		assert.Zero(t, m.Distance)
		assert.Equal(t, "abd", m.Params["userId"])
	})

	t.Run("tolerance zero rejects any distance", func(t *testing.T) {
		catalog := NewCatalog(ParseTemplate([]string{"GET"}, "/about"))
		cfg := DefaultConfig()
		cfg.Tolerance = 0
		rs := NewResolver(cfg)

		_, ok := rs.Resolve("/abot", "GET", catalog)
		assert.False(t, ok)

		m, ok := rs.Resolve("/about", "GET", catalog)
		require.True(t, ok)
		assert.Zero(t, m.Distance)
	})

	t.Run("never returns a match beyond tolerance", func(t *testing.T) {
		catalog := NewCatalog(
			ParseTemplate([]string{"GET"}, "/products"),
			ParseTemplate([]string{"GET"}, "/users/{userId}"),
		)
		rs := NewResolver(DefaultConfig())

		paths := []string{"/", "/x", "/zzzzzzzz", "/completely/unrelated/path", ""}
		for _, p := range paths {
			if m, ok := rs.Resolve(p, "GET", catalog); ok {
				assert.LessOrEqual(t, m.Distance, rs.Config().Tolerance, "path %q", p)
			}
		}
	})

	t.Run("method filtering excludes other methods", func(t *testing.T) {
		catalog := NewCatalog(ParseTemplate([]string{"POST"}, "/products"))
		rs := NewResolver(DefaultConfig())

		_, ok := rs.Resolve("/produts", "GET", catalog)
		assert.False(t, ok)

		m, ok := rs.Resolve("/produts", "post", catalog)
		require.True(t, ok)
		assert.Equal(t, "/products", m.Path)
	})

	t.Run("all methods mode ignores the method filter", func(t *testing.T) {
		catalog := NewCatalog(ParseTemplate([]string{"POST"}, "/products"))
		cfg := DefaultConfig()
		cfg.AllMethods = true
		rs := NewResolver(cfg)

		m, ok := rs.Resolve("/produts", "GET", catalog)
		require.True(t, ok)
		assert.Equal(t, "/products", m.Path)
	})

	t.Run("templates without methods match any method", func(t *testing.T) {
		catalog := NewCatalog(ParseTemplate(nil, "/products"))
		rs := NewResolver(DefaultConfig())

		_, ok := rs.Resolve("/produts", http.MethodDelete, catalog)
		assert.True(t, ok)
	})

	t.Run("disabled parameter handling never yields parameterized matches", func(t *testing.T) {
		catalog := NewCatalog(
			ParseTemplate([]string{"GET"}, "/users/{userId}"),
			ParseTemplate([]string{"GET"}, "/products"),
		)
		cfg := DefaultConfig()
		cfg.HandleParams = false
		rs := NewResolver(cfg)

		// Structurally matches the parameterized route, but parameter
		// handling is off.
		_, ok := rs.Resolve("/users/123", "GET", catalog)
		assert.False(t, ok)

		m, ok := rs.Resolve("/produts", "GET", catalog)
		require.True(t, ok)
		assert.False(t, m.HasParams())
	})

	t.Run("static wins ties against fuzzy parameterized candidates", func(t *testing.T) {
		catalog := NewCatalog(
			ParseTemplate([]string{"GET"}, "/users/{userId}"),
			ParseTemplate([]string{"GET"}, "/user"),
		)
		rs := NewResolver(DefaultConfig())

		// "/usr" is distance 1 from the static "/user" full path, so the
		// parameterized pass never runs.
		m, ok := rs.Resolve("/usr", "GET", catalog)
		require.True(t, ok)
		assert.Equal(t, "/user", m.Path)
		assert.False(t, m.HasParams())
	})

	t.Run("first catalog entry wins static ties", func(t *testing.T) {
		catalog := NewCatalog(
			ParseTemplate([]string{"GET"}, "/cart"),
			ParseTemplate([]string{"GET"}, "/card"),
		)
		rs := NewResolver(DefaultConfig())

		m, ok := rs.Resolve("/carb", "GET", catalog)
		require.True(t, ok)
		assert.Equal(t, "/cart", m.Path)
		assert.Equal(t, 1, m.Distance)
	})

	t.Run("case sensitive mode counts case differences", func(t *testing.T) {
		catalog := NewCatalog(ParseTemplate([]string{"GET"}, "/About"))
		cfg := DefaultConfig()
		cfg.CaseSensitive = true
		cfg.Tolerance = 0
		rs := NewResolver(cfg)

		_, ok := rs.Resolve("/about", "GET", catalog)
		assert.False(t, ok)

		_, ok = rs.Resolve("/About", "GET", catalog)
		assert.True(t, ok)
	})

	t.Run("empty catalog yields nothing", func(t *testing.T) {
		rs := NewResolver(DefaultConfig())
		_, ok := rs.Resolve("/products", "GET", NewCatalog())
		assert.False(t, ok)
	})

	t.Run("empty path scores against the root", func(t *testing.T) {
		catalog := NewCatalog(ParseTemplate([]string{"GET"}, "/"))
		rs := NewResolver(DefaultConfig())

		m, ok := rs.Resolve("", "GET", catalog)
		require.True(t, ok)
		assert.Zero(t, m.Distance)
		assert.Equal(t, "/", m.Path)
	})

	t.Run("redundant slashes do not inflate the distance", func(t *testing.T) {
		catalog := NewCatalog(ParseTemplate([]string{"GET"}, "/products"))
		rs := NewResolver(DefaultConfig())

		m, ok := rs.Resolve("//products/", "GET", catalog)
		require.True(t, ok)
		assert.Zero(t, m.Distance)
	})

	t.Run("fuzzy parameterized match fills in when no static route is close", func(t *testing.T) {
		catalog := NewCatalog(
			ParseTemplate([]string{"GET"}, "/completely/elsewhere"),
			ParseTemplate([]string{"GET"}, "/orders/{orderId}/items"),
		)
		rs := NewResolver(DefaultConfig())

		m, ok := rs.Resolve("/ordes/77/items", "GET", catalog)
		require.True(t, ok)
		assert.Equal(t, "/orders/{orderId}/items", m.Template.Path)
		assert.Equal(t, 1, m.Distance)
		assert.Equal(t, "77", m.Params["orderId"])
		assert.Equal(t, "/orders/77/items", m.Path)
	})
}
