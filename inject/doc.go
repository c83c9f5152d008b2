// Package inject supplies function arguments from configuration.
//
// A Proxy is created with Use. It is both a binder for functions and a lazy,
// read-only view of the mapping at its path.
//
// # Wrapping functions
//
// Go keeps no parameter names at run time, so a wrapped function declares
// its parameters with a Signature and receives them as Args:
//
//	connect := inject.MustWrap(
//	    inject.Use(st, inject.AtPath("db")),
//	    inject.MustSignature(inject.Required("host"), inject.Required("port")),
//	    func(args inject.Args) (*Conn, error) { ... },
//	)
//
//	connect.Call(nil)                          // host and port from db
//	connect.Call(inject.Args{"host": "other"}) // caller values win
//
// The store is read only when a required parameter is missing after binding
// the caller's arguments. Without AtPath the path is derived from the wrapped
// function's location (see resolve.DerivePath). AsDict passes the whole
// mapping as one argument instead of matching keys to parameters.
//
// # Mapping view
//
//	db := inject.Use(st, inject.AtPath("db")) // safe before st.Init
//	host, err := db.Get("host")
//
// The mapping is resolved on first access and kept for the life of the
// Proxy. A Proxy without a path fails every access with ErrNoExplicitPath.
package inject
