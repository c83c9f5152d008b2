package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/0xalexb/hydr8"
	"github.com/0xalexb/hydr8/store"
	"github.com/0xalexb/hydr8/tree"
)

const configEnv = "HYDR8_CONFIG"

var errNoConfig = errors.New("no configuration file: pass --config or set " + configEnv)

type commandContext struct {
	configFlag    *string
	rootFlag      *string
	logLevelFlag  *string
	logFormatFlag *string

	once     sync.Once
	store    *store.Store
	storeErr error
}

func newCommandContext(configFlag, rootFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		rootFlag:      rootFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}

	return strings.TrimSpace(*flag)
}

func (c *commandContext) configPath() string {
	path := flagValue(c.configFlag)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(configEnv))
	}

	return path
}

// ensureStore builds the App once, which loads the file into a fresh store.
func (c *commandContext) ensureStore() (*store.Store, error) {
	c.once.Do(func() {
		path := c.configPath()
		if path == "" {
			c.storeErr = errNoConfig

			return
		}

		st := store.New()

		app := hydr8.NewApp(
			hydr8.WithLogLevel(flagValue(c.logLevelFlag)),
			hydr8.WithLogFormat(flagValue(c.logFormatFlag)),
			hydr8.WithStore(st),
			hydr8.WithConfigFile(path),
			hydr8.WithConfigRoot(flagValue(c.rootFlag)),
		)
		if err := app.Err(); err != nil {
			c.storeErr = fmt.Errorf("load config %s: %w", path, err)

			return
		}

		c.store = st
	})

	return c.store, c.storeErr
}

func (c *commandContext) tree() (tree.Tree, error) {
	st, err := c.ensureStore()
	if err != nil {
		return nil, err
	}

	return st.Get()
}
