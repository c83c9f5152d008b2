// Package json provides a JSON parser for the config package, backed by
// github.com/olebedev/config.
package json

import (
	"errors"
	"fmt"
	"math"

	"github.com/0xalexb/hydr8/tree"

	olebedev "github.com/olebedev/config"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements config.Parser for JSON data.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses a JSON object into a tree. Numbers without a fractional part
// become int, matching the YAML and TOML parsers.
func (p *Parser) Parse(data []byte) (*tree.Map, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	cfg, err := olebedev.ParseJson(string(data))
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	cfg.Root = integers(cfg.Root)

	return tree.FromConfig(cfg)
}

func integers(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, child := range typed {
			typed[key] = integers(child)
		}

		return typed
	case []any:
		for i, child := range typed {
			typed[i] = integers(child)
		}

		return typed
	case float64:
		if typed == math.Trunc(typed) && math.Abs(typed) < 1<<53 {
			return int(typed)
		}

		return typed
	default:
		return value
	}
}
