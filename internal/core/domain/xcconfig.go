package domain

import "strings"

// XCConfig is a build-configuration fragment: an insertion-ordered set of
// unique keys plus the file path it is serialized to.
type XCConfig struct {
	Path string

	keys   []string
	values map[string]string
}

// NewXCConfig returns an empty config targeting the given path.
func NewXCConfig(path string) *XCConfig {
	return &XCConfig{
		Path:   path,
		values: make(map[string]string),
	}
}

// Set adds or replaces an entry. First insertion determines the key's position.
func (c *XCConfig) Set(key, value string) {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Get returns the value for key and whether it is present.
func (c *XCConfig) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Len returns the number of entries.
func (c *XCConfig) Len() int {
	return len(c.keys)
}

// Keys returns the keys in insertion order.
func (c *XCConfig) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Render serializes the config as one "KEY = VALUE" line per entry.
func (c *XCConfig) Render() []byte {
	var b strings.Builder
	for _, key := range c.keys {
		b.WriteString(key)
		b.WriteString(" = ")
		b.WriteString(c.values[key])
		b.WriteString("\n")
	}
	return []byte(b.String())
}
