// Package yaml provides a YAML parser for the config package.
//
// This package uses github.com/goccy/go-yaml. NewParserAt loads only a
// sub-document, navigated with goccy/go-yaml PathString:
//
//	parser := yaml.NewParserAt("app")
//	cfg, err := parser.Parse(data) // cfg holds the keys under app:
//
// Integers decode to int and nested mappings to map[string]any, as for every
// tree.
package yaml
