package typo

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config controls how the resolver scores and accepts corrections.
// The zero value is not useful; start from DefaultConfig.
type Config struct {
	// Tolerance is the maximum accumulated edit distance accepted as
	// close enough to correct. Must not be negative.
	Tolerance int `yaml:"tolerance"`

	// CaseSensitive disables the case folding applied to request paths
	// and literal template segments before comparison.
	CaseSensitive bool `yaml:"case_sensitive"`

	// AllMethods makes the resolver consider every catalog entry
	// regardless of the request method.
	AllMethods bool `yaml:"all_methods"`

	// HandleParams enables matching against parameterized templates.
	// When false, only static routes are candidates.
	HandleParams bool `yaml:"handle_params"`

	// RedirectOnCorrect tells the correction middleware to redirect the
	// client to the corrected path instead of rewriting the request
	// in place. Read by the middleware, not the resolver. Matches that
	// carry parameters are never redirected.
	RedirectOnCorrect bool `yaml:"redirect_on_correct"`

	// LogCorrections tells the correction middleware to report applied
	// corrections through its log hook. Read by the middleware, not the
	// resolver.
	LogCorrections bool `yaml:"log_corrections"`
}

// DefaultConfig returns the default correction policy: tolerance 2,
// case-insensitive, method-scoped, parameter handling on, in-place
// rewrite, logging off.
func DefaultConfig() Config {
	return Config{
		Tolerance:    2,
		HandleParams: true,
	}
}

// ParseConfig parses a YAML document into a Config. Absent keys keep
// their defaults, so a partial document only overrides what it names:
//
//	tolerance: 3
//	redirect_on_correct: true
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("typo: parsing config: %w", err)
	}
	if cfg.Tolerance < 0 {
		return Config{}, fmt.Errorf("typo: tolerance must not be negative, got %d", cfg.Tolerance)
	}
	return cfg, nil
}
