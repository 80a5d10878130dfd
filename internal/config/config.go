package config

import (
	"os"
	"strconv"
	"strings"
)

// Snapshot is an immutable view of the environment, captured once per call site.
// Resolver functions take a Snapshot instead of reading os.Getenv directly so
// tests can construct environments without mutating process state.
type Snapshot map[string]string

// FromEnvironment captures the current process environment.
func FromEnvironment() Snapshot {
	env := os.Environ()
	s := make(Snapshot, len(env))
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok {
			s[k] = v
		}
	}
	return s
}

// Get returns the value for key, or "" when unset.
func (s Snapshot) Get(key string) string {
	return s[key]
}

// GetDefault returns the value for key, or defaultValue when unset or empty.
func (s Snapshot) GetDefault(key, defaultValue string) string {
	if value := s[key]; value != "" {
		return value
	}
	return defaultValue
}

// GetInt returns the value for key parsed as an integer. Unset, empty, or
// non-numeric values fall back to defaultValue; configuration typos must never
// block startup.
func (s Snapshot) GetInt(key string, defaultValue int) int {
	if value := s[key]; value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Has reports whether key is set to a non-empty value. Presence-marker
// variables (e.g. RENDER) are checked this way regardless of their value.
func (s Snapshot) Has(key string) bool {
	return s[key] != ""
}
