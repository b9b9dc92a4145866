package typo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2, cfg.Tolerance)
	assert.False(t, cfg.CaseSensitive)
	assert.False(t, cfg.AllMethods)
	assert.True(t, cfg.HandleParams)
	assert.False(t, cfg.RedirectOnCorrect)
	assert.False(t, cfg.LogCorrections)
}

func TestParseConfig(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		cfg, err := ParseConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("partial document only overrides named keys", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("tolerance: 3\nredirect_on_correct: true\n"))
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Tolerance)
		assert.True(t, cfg.RedirectOnCorrect)
		assert.True(t, cfg.HandleParams, "unnamed keys keep their defaults")
	})

	t.Run("explicit zero tolerance is honored", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("tolerance: 0\n"))
		require.NoError(t, err)
		assert.Zero(t, cfg.Tolerance)
	})

	t.Run("negative tolerance is rejected", func(t *testing.T) {
		_, err := ParseConfig([]byte("tolerance: -1\n"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml is rejected", func(t *testing.T) {
		_, err := ParseConfig([]byte("tolerance: [\n"))
		assert.Error(t, err)
	})

	t.Run("full document", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`
tolerance: 1
case_sensitive: true
all_methods: true
handle_params: false
redirect_on_correct: true
log_corrections: true
`))
		require.NoError(t, err)
		assert.Equal(t, Config{
			Tolerance:         1,
			CaseSensitive:     true,
			AllMethods:        true,
			HandleParams:      false,
			RedirectOnCorrect: true,
			LogCorrections:    true,
		}, cfg)
	})
}
