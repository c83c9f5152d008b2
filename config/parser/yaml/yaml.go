package yaml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/0xalexb/hydr8/tree"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the parser's root path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser for YAML data.
type Parser struct {
	root string
}

// NewParser creates a parser that uses the whole document as the tree.
func NewParser() *Parser {
	return &Parser{}
}

// NewParserAt creates a parser that uses the mapping at root as the tree.
// Root uses the tree path syntax, e.g. "services.api" or "envs[0]", and is
// navigated with goccy/go-yaml PathString.
func NewParserAt(root string) *Parser {
	return &Parser{root: root}
}

// Parse parses YAML data into a tree. A document without content yields an empty tree.
func (p *Parser) Parse(data []byte) (*tree.Map, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var root map[string]any

	if p.root == "" {
		err := yaml.Unmarshal(data, &root)
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}

		return tree.New(root), nil
	}

	pathObj, err := yaml.PathString(toYAMLPath(p.root))
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", p.root, err)
	}

	err = pathObj.Read(bytes.NewReader(data), &root)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, p.root)
		}

		return nil, fmt.Errorf("reading path %q: %w", p.root, err)
	}

	return tree.New(root), nil
}

// toYAMLPath converts a tree path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api.permissions" -> "$.api.permissions"
//   - "envs[0]" -> "$.envs[0]"
func toYAMLPath(path string) string {
	return "$." + path
}
