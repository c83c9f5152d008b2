package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	filefetcher "github.com/0xalexb/hydr8/config/fetcher/file"
	jsonparser "github.com/0xalexb/hydr8/config/parser/json"
	tomlparser "github.com/0xalexb/hydr8/config/parser/toml"
	yamlparser "github.com/0xalexb/hydr8/config/parser/yaml"
	"github.com/0xalexb/hydr8/tree"
)

// ErrUnsupportedFormat is returned by ParserFor for an unknown file extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Parser defines an interface for parsing configuration data into a tree.
type Parser interface {
	Parse(data []byte) (*tree.Map, error)
}

// DataFetcher defines an interface for reading configuration data.
// Source names where the data comes from and is used in logs and errors.
type DataFetcher interface {
	Fetch() ([]byte, error)
	Source() string
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider reads and parses configuration data into a tree.
// Its signature makes it usable directly as an Fx constructor.
func Provider(parser Parser, fetcher DataFetcher) (*tree.Map, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	cfg, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fetcher.Source(), err)
	}

	slog.Info("configuration loaded",
		slog.String("source", fetcher.Source()),
		slog.Int("keys", len(cfg.Keys())),
	)

	return cfg, nil
}

// ParserFor selects a parser from the file extension of name.
//
//nolint:ireturn // callers only need the Parser behaviour
func ParserFor(name string) (Parser, error) {
	return ParserAt(name, "")
}

// ParserAt is like ParserFor, but the returned parser uses the mapping at
// root (e.g. "services.api") as the whole tree. An empty root selects the
// whole document.
//
//nolint:ireturn // callers only need the Parser behaviour
func ParserAt(name, root string) (Parser, error) {
	var parser Parser

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		return yamlparser.NewParserAt(root), nil
	case ".toml":
		parser = tomlparser.NewParser()
	case ".json":
		parser = jsonparser.NewParser()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if root == "" {
		return parser, nil
	}

	path, err := tree.ParsePath(root)
	if err != nil {
		return nil, err
	}

	return &subtreeParser{parser: parser, root: path}, nil
}

// subtreeParser narrows the result of another parser to the mapping at root.
type subtreeParser struct {
	parser Parser
	root   tree.Path
}

func (p *subtreeParser) Parse(data []byte) (*tree.Map, error) {
	cfg, err := p.parser.Parse(data)
	if err != nil {
		return nil, err
	}

	node, err := cfg.Select(p.root)
	if err != nil {
		return nil, err
	}

	mapping, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", tree.ErrRootNotMapping, p.root, node)
	}

	return tree.New(mapping), nil
}

// Load reads the file at path and parses it according to its extension.
func Load(path string) (*tree.Map, error) {
	parser, err := ParserFor(path)
	if err != nil {
		return nil, err
	}

	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, err
	}

	return Provider(parser, fetcher)
}

// StaticFetcher implements DataFetcher with in-memory data.
type StaticFetcher struct {
	Name string
	Data []byte
}

// Fetch returns the static data.
func (f *StaticFetcher) Fetch() ([]byte, error) {
	return f.Data, nil
}

// Source returns the fetcher's name.
func (f *StaticFetcher) Source() string {
	return f.Name
}
