// Package resolve turns a configuration path, explicit or derived from a
// function's location, into a plain map.
//
// Resolve walks an explicit path such as "db.replicas[0]". ResolveAuto
// derives the path from a Location first:
//
//	loc := resolve.NewLocation("myproject.data.loaders", "BuildLoader")
//	resolve.ResolveAuto(cfg, loc, resolve.ScopeModule) // cfg.data.loaders
//	resolve.ResolveAuto(cfg, loc, resolve.ScopeFn)     // cfg.data.loaders.BuildLoader
//
// The leading "myproject" is dropped only because it is not a top-level key
// of cfg. If a project name is also a top-level key it is kept; this
// ambiguity is inherent to the derivation and is not special-cased.
//
// LocationOf computes a Location from a Go function value.
package resolve
