package hydr8

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/hydr8/config"
	filefetcher "github.com/0xalexb/hydr8/config/fetcher/file"
	"github.com/0xalexb/hydr8/logging"
	"github.com/0xalexb/hydr8/store"
	"github.com/0xalexb/hydr8/tree"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is an Fx application whose graph carries a configuration store.
type App struct {
	app   *fx.App
	store *store.Store
}

// NewApp creates a new instance of App with Fx configured.
// The store is Default() unless WithStore is given; WithConfigFile loads a
// file into it while the graph is built.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.Store == nil {
		options.Store = Default()
	}

	return &App{
		app:   configure(&options),
		store: options.Store,
	}
}

func configure(options *Options) *fx.App {
	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := logging.NewLogger(loggerConfig, os.Stderr)
	slog.SetDefault(logger)

	modules := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Supply(options.Store),
	}

	if options.ConfigFile != "" {
		modules = append(modules, configModule(options.ConfigFile, options.ConfigRoot))
	}

	return fx.New(append(modules, fx.Options(options.Modules...))...)
}

// configModule loads path with the parser matching its extension and
// initializes the store with the result. A non-empty root selects the mapping
// at root as the whole tree.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func configModule(path, root string) fx.Option {
	return fx.Module("config",
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher(path),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Provide(func() (config.Parser, error) {
			return config.ParserAt(path, root)
		}),
		fx.Provide(config.Provider),
		fx.Invoke(func(st *store.Store, cfg *tree.Map) {
			st.Init(cfg)
		}),
	)
}

// Store returns the store supplied to the Fx graph.
func (app *App) Store() *store.Store {
	if app == nil {
		return nil
	}

	return app.store
}

// Err returns the error, if any, encountered while building the Fx graph.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err()
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
