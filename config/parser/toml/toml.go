// Package toml provides a TOML parser for the config package, backed by
// github.com/pelletier/go-toml/v2.
package toml

import (
	"fmt"

	"github.com/0xalexb/hydr8/tree"

	"github.com/pelletier/go-toml/v2"
)

// Parser implements config.Parser for TOML data.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses TOML data into a tree. An empty document yields an empty tree.
// Date and time values are kept as go-toml's local date/time types.
func (p *Parser) Parse(data []byte) (*tree.Map, error) {
	var root map[string]any

	err := toml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return tree.New(root), nil
}
