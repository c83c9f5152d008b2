package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/hydr8/config"
	jsonparser "github.com/0xalexb/hydr8/config/parser/json"
	tomlparser "github.com/0xalexb/hydr8/config/parser/toml"
	yamlparser "github.com/0xalexb/hydr8/config/parser/yaml"
	"github.com/0xalexb/hydr8/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockParser struct {
	parseFunc func(data []byte) (*tree.Map, error)
}

func (m *mockParser) Parse(data []byte) (*tree.Map, error) {
	return m.parseFunc(data)
}

type failingFetcher struct {
	err error
}

func (f *failingFetcher) Fetch() ([]byte, error) { return nil, f.err }

func (f *failingFetcher) Source() string { return "failing" }

func TestProvider_Success(t *testing.T) {
	t.Parallel()

	expected := tree.New(map[string]any{"name": "test"})
	parser := &mockParser{
		parseFunc: func(data []byte) (*tree.Map, error) {
			if string(data) != "data" {
				return nil, errors.New("unexpected data")
			}

			return expected, nil
		},
	}

	result, err := config.Provider(parser, &config.StaticFetcher{Name: "static", Data: []byte("data")})
	require.NoError(t, err)
	assert.Same(t, expected, result)
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")

	tests := []struct {
		name    string
		fetcher config.DataFetcher
		parser  config.Parser
		wantErr error
		wantMsg string
	}{
		{
			name:    "fetch error",
			fetcher: &failingFetcher{err: fetchErr},
			parser: &mockParser{parseFunc: func([]byte) (*tree.Map, error) {
				return tree.New(nil), nil
			}},
			wantErr: fetchErr,
			wantMsg: "reading data error",
		},
		{
			name:    "parse error",
			fetcher: &config.StaticFetcher{Name: "inline.yaml", Data: []byte("x")},
			parser: &mockParser{parseFunc: func([]byte) (*tree.Map, error) {
				return nil, parseErr
			}},
			wantErr: parseErr,
			wantMsg: "parsing inline.yaml",
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			result, err := config.Provider(testInfo.parser, testInfo.fetcher)

			assert.Nil(t, result)
			require.ErrorIs(t, err, testInfo.wantErr)
			assert.Contains(t, err.Error(), testInfo.wantMsg)
		})
	}
}

func TestParserFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		expected config.Parser
	}{
		{name: "yaml", file: "config.yaml", expected: yamlparser.NewParser()},
		{name: "yml upper case", file: "CONFIG.YML", expected: yamlparser.NewParser()},
		{name: "toml", file: "/etc/app/config.toml", expected: tomlparser.NewParser()},
		{name: "json", file: "config.json", expected: jsonparser.NewParser()},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			parser, err := config.ParserFor(testInfo.file)
			require.NoError(t, err)
			assert.IsType(t, testInfo.expected, parser)
		})
	}
}

func TestParserFor_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := config.ParserFor("config.ini")
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.ParserFor("config")
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"config.yaml": "db:\n  host: localhost\n  port: 5432\n",
		"config.toml": "[db]\nhost = \"localhost\"\nport = 5432\n",
		"config.json": `{"db": {"host": "localhost", "port": 5432}}`,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			cfg, err := config.Load(path)
			require.NoError(t, err)

			node, err := cfg.Select(tree.Path{{Key: "db"}})
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"host": "localhost", "port": 5432}, node)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load("config.xml")
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestParserAt(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"config.yaml": "services:\n  api:\n    port: 8080\n  web:\n    port: 80\n",
		"config.toml": "[services.api]\nport = 8080\n[services.web]\nport = 80\n",
		"config.json": `{"services": {"api": {"port": 8080}, "web": {"port": 80}}}`,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			parser, err := config.ParserAt(name, "services.api")
			require.NoError(t, err)

			cfg, err := parser.Parse([]byte(content))
			require.NoError(t, err)
			assert.Equal(t, []string{"port"}, cfg.Keys())

			node, err := cfg.Select(tree.Path{{Key: "port"}})
			require.NoError(t, err)
			assert.Equal(t, 8080, node)
		})
	}
}

func TestParserAt_Errors(t *testing.T) {
	t.Parallel()

	_, err := config.ParserAt("config.json", "a..b")
	require.ErrorIs(t, err, tree.ErrInvalidPath)

	_, err = config.ParserAt("config.ini", "a")
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)

	parser, err := config.ParserAt("config.toml", "missing")
	require.NoError(t, err)

	_, err = parser.Parse([]byte("title = \"x\"\n"))
	require.ErrorIs(t, err, tree.ErrPathNotFound)

	parser, err = config.ParserAt("config.json", "title")
	require.NoError(t, err)

	_, err = parser.Parse([]byte(`{"title": "x"}`))
	require.ErrorIs(t, err, tree.ErrRootNotMapping)
}
