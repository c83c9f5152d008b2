// Package config loads configuration trees from raw data.
//
// The package uses an interface-based design:
//   - Parser: turns raw bytes into a *tree.Map (YAML, TOML, JSON)
//   - DataFetcher: retrieves raw config data (file, static bytes)
//   - Validator and Defaulter: hooks run by inject.Decode on typed structs
//
// Load picks the parser from the file extension:
//
//	cfg, err := config.Load("config.yaml")
//	if err != nil {
//	    return err
//	}
//	st.Init(cfg)
//
// Provider is usable directly as an Fx constructor once a Parser and a
// DataFetcher are provided.
package config
