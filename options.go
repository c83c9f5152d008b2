package hydr8

import (
	"github.com/0xalexb/hydr8/store"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules    []fx.Option
	LogLevel   string
	LogFormat  string
	Store      *store.Store
	ConfigFile string
	ConfigRoot string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithStore supplies st to the Fx graph instead of the default store.
func WithStore(st *store.Store) Option {
	return func(opts *Options) {
		opts.Store = st
	}
}

// WithConfigFile loads the YAML, TOML or JSON file at path into the store
// when the application is built. The format follows the file extension.
func WithConfigFile(path string) Option {
	return func(opts *Options) {
		opts.ConfigFile = path
	}
}

// WithConfigRoot makes WithConfigFile use the mapping at root, e.g.
// "services.api", as the whole tree.
func WithConfigRoot(root string) Option {
	return func(opts *Options) {
		opts.ConfigRoot = root
	}
}

// WithLogFormat selects the log output format: "text" or "json" (the default).
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}
