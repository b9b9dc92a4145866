package mux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPath(t *testing.T) {
	cases := map[string]string{
		"":                "/",
		"/":               "/",
		"users":           "/users",
		"/users/../admin": "/admin",
		"/users/./42":     "/users/42",
		"/users/":         "/users/",
		"//users":         "/users",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanPath(in), "cleanPath(%q)", in)
	}
}

func TestMapFromPairsToString(t *testing.T) {
	t.Run("even pairs build a map", func(t *testing.T) {
		m, err := mapFromPairsToString("a", "1", "b", "2")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "1", "b": "2"}, m)
	})

	t.Run("odd pairs are an error", func(t *testing.T) {
		_, err := mapFromPairsToString("a", "1", "b")
		assert.Error(t, err)
	})
}

func TestMatchInArray(t *testing.T) {
	assert.True(t, matchInArray([]string{"GET", "POST"}, "GET"))
	assert.False(t, matchInArray([]string{"GET", "POST"}, "PUT"))
	assert.False(t, matchInArray(nil, "GET"))
}
