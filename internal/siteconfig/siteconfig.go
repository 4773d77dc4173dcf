// Package siteconfig loads the site's config.yml and exposes it through
// slash-separated path lookups with defaults. The doctor treats it as an
// opaque key/value source; nothing here is a mutable singleton.
package siteconfig

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is a read-only view over the parsed site configuration.
type Config struct {
	values map[string]any
}

// Load reads and parses a YAML site configuration file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site config: %w", err)
	}

	var values map[string]any
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("parse site config %s: %w", path, err)
	}
	return FromMap(values), nil
}

// FromMap wraps an already-parsed configuration tree. Tests and embedded
// defaults use this.
func FromMap(values map[string]any) *Config {
	if values == nil {
		values = map[string]any{}
	}
	return &Config{values: values}
}

// Get walks the tree along a slash-separated path ("general/mailoptions")
// and returns the value found there, or def when any segment is absent.
func (c *Config) Get(path string, def any) any {
	var node any = c.values
	for _, seg := range strings.Split(path, "/") {
		m, ok := node.(map[string]any)
		if !ok {
			return def
		}
		node, ok = m[seg]
		if !ok {
			return def
		}
	}
	return node
}

// GetString returns the string at path, or def when absent or not a
// string.
func (c *Config) GetString(path, def string) string {
	if s, ok := c.Get(path, nil).(string); ok {
		return s
	}
	return def
}

// GetInt64 returns the integer at path, tolerating the int and float64
// shapes YAML produces.
func (c *Config) GetInt64(path string, def int64) int64 {
	switch n := c.Get(path, nil).(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		return def
	}
}

// GetBool returns the boolean at path, or def when absent or not a bool.
func (c *Config) GetBool(path string, def bool) bool {
	if b, ok := c.Get(path, nil).(bool); ok {
		return b
	}
	return def
}
