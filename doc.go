// Package hydr8 binds configuration values to function parameters.
//
// A configuration tree is set once with Init (or loaded by an App built with
// WithConfigFile), and Use hands out proxies that either supply missing
// arguments to wrapped functions or act as lazy views of a subtree:
//
//	hydr8.Init(cfg)
//
//	connect := inject.MustWrap(hydr8.Use(inject.AtPath("db")), sig, dial)
//	conn, err := connect.Call(nil)
//
//	db := hydr8.Use(inject.AtPath("db"))
//	host, err := db.Get("host")
//
// The package-level functions share one process default store. Libraries and
// tests that need isolation create their own with store.New and call
// inject.Use directly.
package hydr8
